package text

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Anchored so the whole token has to match, not a substring of it.
const (
	symbolPattern = `^[A-Z.]{2,}$`
	numberPattern = `^\$?[0-9,]+(?:st|nd|th)?$`
)

var (
	symbolRegexp = mustCompile("symbol", symbolPattern)
	numberRegexp = mustCompile("number", numberPattern)
)

func mustCompile(name, expr string) *regexp.Regexp {
	re, err := regexp.Compile(expr)
	if err != nil {
		panic(fmt.Errorf("%w: %s %q: %w", ErrPatternCompile, name, expr, err))
	}
	return re
}

// isSymbol reports whether raw is an all-caps run such as "MIT" or "U.S.".
// Runs made only of periods are punctuation, not symbols.
func isSymbol(raw string) bool {
	return symbolRegexp.MatchString(raw) && strings.IndexFunc(raw, unicode.IsUpper) >= 0
}

func isNumber(raw string) bool {
	return numberRegexp.MatchString(raw)
}

// classify applies the fixed precedence Symbol, Number, Abbreviation, Word.
func classify(raw string, abbr *AbbreviationTable) Category {
	switch {
	case isSymbol(raw):
		return Symbol
	case isNumber(raw):
		return Number
	case abbr.Contains(raw):
		return Abbreviation
	default:
		return Word
	}
}
