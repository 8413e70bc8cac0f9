// Package expr builds binary expression trees from postfix (Reverse Polish)
// token sequences and evaluates them numerically.
//
// Build
//
//	Tokens are consumed left to right with an explicit operand stack
//	(github.com/emirpasic/gods/stacks/arraystack). A token equal to one of
//	"+", "-", "*", "/" pops the right operand, then the left operand, and
//	pushes a new internal node; any other token is pushed as a leaf. When the
//	tokens run out exactly one tree must remain.
//
//	Leaves are not checked at build time: a non-numeric leaf is reported by
//	Eval as ErrInvalidOperand.
//
// Eval
//
//	Recursive float64 evaluation. Division by zero is an error
//	(ErrDivisionByZero) rather than ±Inf or NaN.
//
// Example
//
//	t, _ := expr.Build([]string{"3", "4", "5", "*", "6", "-", "+"})
//	t.String()  // (3 + ((4 * 5) - 6))
//	t.Eval()    // 17
//
// Errors
//
//   - ErrMalformedExpression  operator without two operands, empty input,
//     or more than one tree left on the stack.
//   - ErrInvalidOperand       a leaf is not a float literal.
//   - ErrDivisionByZero       right operand of "/" evaluates to 0.
//   - ErrUnknownOperator      an internal node carries a non-operator token.
package expr
