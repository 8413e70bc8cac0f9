package expr

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Sentinel errors for building and evaluating expression trees.
var (
	// ErrMalformedExpression indicates the postfix stream left the operand stack invalid.
	ErrMalformedExpression = errors.New("expr: malformed expression")

	// ErrInvalidOperand indicates a leaf token that is not a number.
	ErrInvalidOperand = errors.New("expr: invalid operand")

	// ErrDivisionByZero indicates a division whose divisor evaluated to zero.
	ErrDivisionByZero = errors.New("expr: division by zero")

	// ErrUnknownOperator indicates an internal node whose token is not + - * /.
	ErrUnknownOperator = errors.New("expr: unknown operator")
)

// Node is one vertex of the expression tree. Leaves hold numeric literals;
// internal nodes hold an operator and exactly two children.
type Node struct {
	Value string
	Left  *Node
	Right *Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Tree owns the root of a built expression.
type Tree struct {
	Root *Node
}

// IsOperator reports whether tok is one of the four binary operators.
func IsOperator(tok string) bool {
	switch tok {
	case "+", "-", "*", "/":
		return true
	}

	return false
}

// Build constructs a tree from postfix tokens.
func Build(tokens []string) (*Tree, error) {
	st := arraystack.New()
	for i, tok := range tokens {
		if !IsOperator(tok) {
			st.Push(&Node{Value: tok})
			continue
		}
		if st.Size() < 2 {
			return nil, fmt.Errorf("%w: operator %q at position %d needs 2 operands, have %d",
				ErrMalformedExpression, tok, i, st.Size())
		}
		r, _ := st.Pop()
		l, _ := st.Pop()
		st.Push(&Node{Value: tok, Left: l.(*Node), Right: r.(*Node)})
	}

	if st.Size() != 1 {
		return nil, fmt.Errorf("%w: %d trees left after %d tokens", ErrMalformedExpression, st.Size(), len(tokens))
	}
	root, _ := st.Pop()

	return &Tree{Root: root.(*Node)}, nil
}

// Eval evaluates the whole tree.
func (t *Tree) Eval() (float64, error) {
	if t == nil || t.Root == nil {
		return 0, ErrMalformedExpression
	}

	return Eval(t.Root)
}

// Eval evaluates the subtree rooted at n.
func Eval(n *Node) (float64, error) {
	if n == nil {
		return 0, fmt.Errorf("%w: nil node", ErrMalformedExpression)
	}
	if n.IsLeaf() {
		v, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidOperand, n.Value)
		}
		return v, nil
	}
	if n.Left == nil || n.Right == nil {
		return 0, fmt.Errorf("%w: operator %q with one child", ErrMalformedExpression, n.Value)
	}

	a, err := Eval(n.Left)
	if err != nil {
		return 0, err
	}
	b, err := Eval(n.Right)
	if err != nil {
		return 0, err
	}

	switch n.Value {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, fmt.Errorf("%w: %v / %v", ErrDivisionByZero, a, b)
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, n.Value)
	}
}

// Evaluate builds and evaluates tokens in one call.
func Evaluate(tokens []string) (float64, error) {
	t, err := Build(tokens)
	if err != nil {
		return 0, err
	}

	return t.Eval()
}

// String renders the tree in fully parenthesised infix form.
func (t *Tree) String() string {
	if t == nil || t.Root == nil {
		return ""
	}

	return t.Root.String()
}

// String renders the subtree in fully parenthesised infix form.
func (n *Node) String() string {
	if n.IsLeaf() {
		return n.Value
	}

	return fmt.Sprintf("(%s %s %s)", n.Left, n.Value, n.Right)
}
