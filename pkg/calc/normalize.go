package calc

import "strings"

// symbolReplacer maps the display glyphs used on keypad buttons to the
// canonical ASCII operators the evaluator understands.
var symbolReplacer = strings.NewReplacer(
	"×", "*",
	"✕", "*",
	"÷", "/",
	"−", "-", // U+2212 minus sign
	"–", "-", // U+2013 en dash
)

// NormalizeSymbols substitutes operator glyphs with their ASCII
// equivalents and trims surrounding whitespace. Pure and total: any
// string is accepted, characters without a mapping pass through.
func NormalizeSymbols(s string) string {
	return symbolReplacer.Replace(strings.TrimSpace(s))
}
