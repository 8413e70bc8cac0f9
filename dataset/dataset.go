// Package dataset decodes and validates the fixed campus description that
// drives the demonstration: buildings, weighted roads, the traversal start
// node, and a postfix expression.
//
// The default campus is embedded from campus.yaml and decoded with
// gopkg.in/yaml.v3; Load accepts any document with the same shape.
package dataset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/campusgraph/avl"
	"github.com/katalvlaran/campusgraph/bst"
	"github.com/katalvlaran/campusgraph/core"
	"github.com/katalvlaran/campusgraph/graph"
)

//go:embed campus.yaml
var campusYAML []byte

// Sentinel errors for dataset validation.
var (
	// ErrNoBuildings indicates a document without any building.
	ErrNoBuildings = errors.New("dataset: no buildings")

	// ErrDuplicateID indicates two buildings sharing an ID.
	ErrDuplicateID = errors.New("dataset: duplicate building id")

	// ErrNoExpression indicates a document without postfix tokens.
	ErrNoExpression = errors.New("dataset: no expression tokens")

	// ErrDecode wraps YAML syntax or type errors.
	ErrDecode = errors.New("dataset: decode failed")
)

// Dataset is the validated, in-memory campus description.
type Dataset struct {
	Buildings  []core.Building
	Edges      []core.Edge
	Start      int
	Expression []string
}

// document mirrors campus.yaml.
type document struct {
	Buildings []struct {
		ID     int    `yaml:"id"`
		Name   string `yaml:"name"`
		Detail string `yaml:"detail"`
	} `yaml:"buildings"`
	Edges []struct {
		From   int   `yaml:"from"`
		To     int   `yaml:"to"`
		Weight int64 `yaml:"weight"`
	} `yaml:"edges"`
	Start      int      `yaml:"start"`
	Expression []string `yaml:"expression"`
}

// Default returns the embedded seven-building campus.
func Default() (*Dataset, error) {
	return Load(campusYAML)
}

// Load decodes a YAML document and validates it: at least one building,
// unique non-negative IDs, edges between known buildings with non-negative
// weights, a start node that exists and a non-empty expression.
func Load(data []byte) (*Dataset, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(doc.Buildings) == 0 {
		return nil, ErrNoBuildings
	}

	ds := &Dataset{Start: doc.Start, Expression: doc.Expression}
	seen := make(map[int]bool, len(doc.Buildings))
	for _, b := range doc.Buildings {
		bld, err := core.NewBuilding(b.ID, b.Name, b.Detail)
		if err != nil {
			return nil, err
		}
		if seen[b.ID] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, b.ID)
		}
		seen[b.ID] = true
		ds.Buildings = append(ds.Buildings, bld)
	}
	for _, e := range doc.Edges {
		ds.Edges = append(ds.Edges, core.Edge{From: e.From, To: e.To, Weight: e.Weight})
	}

	// building the graph once checks edge endpoints and weights
	if _, err := ds.Graph(); err != nil {
		return nil, err
	}
	if !seen[ds.Start] {
		return nil, fmt.Errorf("%w: start %d", graph.ErrUnknownNode, ds.Start)
	}
	if len(ds.Expression) == 0 {
		return nil, ErrNoExpression
	}

	return ds, nil
}

// BST inserts every building, in document order, into a new bst.Tree.
func (d *Dataset) BST() (*bst.Tree, error) {
	t := bst.New()
	for _, b := range d.Buildings {
		if err := t.Insert(b); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// AVL inserts every building, in document order, into a new avl.Tree.
func (d *Dataset) AVL() (*avl.Tree, error) {
	t := avl.New()
	for _, b := range d.Buildings {
		if err := t.Insert(b); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Graph adds every building, then every edge, to a new graph.Graph.
func (d *Dataset) Graph() (*graph.Graph, error) {
	g := graph.New()
	for _, b := range d.Buildings {
		if err := g.Add(b); err != nil {
			return nil, err
		}
	}
	for _, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}
