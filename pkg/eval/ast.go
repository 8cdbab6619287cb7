package eval

import "math"

// node is a typed AST node. Evaluation is infallible at this level: the
// parser only builds nodes with known operators, and IEEE-754 carries
// division by zero through as an infinity for the finiteness gate to catch.
type node interface {
	eval() float64
}

// literal is a numeric leaf.
type literal float64

func (n literal) eval() float64 { return float64(n) }

// unary is a prefix operator applied to one operand. Only '-' negates;
// any other operator passes the operand through.
type unary struct {
	op      byte
	operand node
}

func (n unary) eval() float64 {
	v := n.operand.eval()
	if n.op == '-' {
		return -v
	}
	return v
}

// binary is an infix operator applied to two operands.
type binary struct {
	op          byte
	left, right node
}

func (n binary) eval() float64 {
	x := n.left.eval()
	y := n.right.eval()
	switch n.op {
	case '+':
		return x + y
	case '-':
		return x - y
	case '*':
		return x * y
	case '/':
		return x / y
	case '%':
		return math.Mod(x, y)
	}
	return math.NaN()
}
