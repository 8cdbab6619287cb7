// Package eval validates and evaluates flat arithmetic expressions.
//
// Expressions are restricted to decimal numbers, the operators + - * / %,
// and parentheses. Evaluation goes through a strict pipeline: whitespace
// stripping, character whitelist, malformed-operator-run rejection, length
// limit, recursive-descent parsing to a typed AST, and a finiteness gate on
// the result. There is no dynamic or host-language evaluation surface.
package eval

import (
	"math"
	"strings"
	"unicode"
)

// MaxExprLen is the maximum accepted expression length after whitespace
// stripping.
const MaxExprLen = 180

// operators are the characters counted by the consecutive-run check.
const operators = "+-*/%"

// whitelist is every character an expression may contain.
const whitelist = "0123456789+-*/()." + "%"

// Evaluate validates expr and computes its value. On failure the returned
// error is an *Error whose Kind identifies the first pipeline stage that
// rejected the expression.
func Evaluate(expr string) (result float64, err error) {
	s := stripSpace(expr)

	if i := strings.IndexFunc(s, func(r rune) bool {
		return !strings.ContainsRune(whitelist, r)
	}); i >= 0 {
		return 0, errorf(KindInvalidCharacter, expr, "disallowed character %q", s[i])
	}

	if reason := checkOperatorRuns(s); reason != "" {
		return 0, errorf(KindMalformed, expr, "%s", reason)
	}

	if len(s) > MaxExprLen {
		return 0, errorf(KindTooLong, expr, "%d characters exceeds limit of %d", len(s), MaxExprLen)
	}

	// A panic anywhere below is re-signaled uniformly; the parser and AST
	// are not supposed to panic, so this is the taxonomy's catch-all.
	defer func() {
		if r := recover(); r != nil {
			result = 0
			err = errorf(KindEvaluation, expr, "internal failure: %v", r)
		}
	}()

	n, perr := parse(s)
	if perr != nil {
		return 0, perr
	}

	v := n.eval()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errorf(KindNonFinite, expr, "result is not finite")
	}
	return v, nil
}

// stripSpace removes all whitespace characters from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// checkOperatorRuns rejects two or more consecutive operator characters.
// The only sanctioned operator adjacencies are a unary minus after an
// opening parenthesis ("(-") and a unary minus at the start of the
// expression; "(" is not an operator character, so both reduce to "no
// operator may directly follow another, and only '-' may lead".
// Returns an empty string when the expression is acceptable.
func checkOperatorRuns(s string) string {
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(operators, rune(s[i])) {
			continue
		}
		if i == 0 && s[i] != '-' {
			return "expression starts with operator " + string(s[i])
		}
		if i > 0 && strings.ContainsRune(operators, rune(s[i-1])) {
			return "operator run " + s[i-1:i+1]
		}
	}
	return ""
}
