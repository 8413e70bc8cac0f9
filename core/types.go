// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Building and Edge value types plus the shared ErrInvalidKey sentinel.

package core

import (
	"errors"
	"fmt"
)

// ErrInvalidKey indicates that a Building ID cannot be used as a tree key or matrix index.
var ErrInvalidKey = errors.New("core: invalid building key")

// Building is a labeled entity keyed by ID.
type Building struct {
	// ID is the unique sort/lookup key. Must be >= 0.
	ID int

	// Name is a short display label, e.g. "Admin".
	Name string

	// Detail is free-form descriptive text.
	Detail string
}

// NewBuilding constructs a Building and validates its key.
func NewBuilding(id int, name, detail string) (Building, error) {
	b := Building{ID: id, Name: name, Detail: detail}
	if err := b.Validate(); err != nil {
		return Building{}, err
	}

	return b, nil
}

// Validate reports ErrInvalidKey for a negative ID.
func (b Building) Validate() error {
	if b.ID < 0 {
		return fmt.Errorf("%w: id=%d", ErrInvalidKey, b.ID)
	}

	return nil
}

// String renders the Building as "(id:name)".
func (b Building) String() string {
	return fmt.Sprintf("(%d:%s)", b.ID, b.Name)
}

// Edge is an undirected weighted connection between two building IDs.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// String renders the Edge as "(from, to, weight)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d, %d)", e.From, e.To, e.Weight)
}

// IDs extracts the ID of each Building, preserving order.
func IDs(bs []Building) []int {
	ids := make([]int, len(bs))
	for i, b := range bs {
		ids[i] = b.ID
	}

	return ids
}
