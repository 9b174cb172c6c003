package text

import (
	"strings"
	"unicode"
)

// Tokenize splits input on runs of whitespace. Tokens are returned in input
// order and are never empty. No other normalization is applied.
func Tokenize(input string) []string {
	return strings.FieldsFunc(input, unicode.IsSpace)
}
