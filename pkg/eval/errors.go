package eval

import "fmt"

// Kind classifies why an evaluation failed. The UI treats all kinds the
// same (transient "Err" flash); tests and logs distinguish them.
type Kind int

const (
	// KindInvalidCharacter means the expression contained a character
	// outside the digit/operator/parenthesis whitelist.
	KindInvalidCharacter Kind = iota

	// KindMalformed means the expression had an illegal operator run or
	// failed to parse (unbalanced parenthesis, missing operand, ...).
	KindMalformed

	// KindTooLong means the expression exceeded MaxExprLen characters.
	KindTooLong

	// KindNonFinite means evaluation produced NaN or an infinity.
	KindNonFinite

	// KindEvaluation covers any other internal failure during evaluation.
	KindEvaluation
)

// String returns the stable identifier for a failure kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidCharacter:
		return "invalid_character"
	case KindMalformed:
		return "malformed_expression"
	case KindTooLong:
		return "expression_too_long"
	case KindNonFinite:
		return "non_finite_result"
	case KindEvaluation:
		return "evaluation_error"
	default:
		return "unknown"
	}
}

// Error is the failure type returned by Evaluate.
type Error struct {
	Kind   Kind
	Expr   string // the expression as passed to Evaluate
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("eval: %s: %s", e.Kind, e.Detail)
}

// errorf builds an *Error with a formatted detail message.
func errorf(kind Kind, expr, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Expr: expr, Detail: fmt.Sprintf(format, args...)}
}

// KindOf extracts the failure kind from an error returned by Evaluate.
// Returns KindEvaluation for foreign error values.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindEvaluation
}
