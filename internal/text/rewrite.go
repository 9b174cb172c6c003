package text

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"
)

var ordinalSuffixes = []string{"st", "nd", "th"}

// rewrite produces the speakable form of tok. A non-nil error means the
// returned text is tok.Raw unchanged.
func rewrite(tok Token, abbr *AbbreviationTable) (string, error) {
	switch tok.Category {
	case Word:
		return tok.Raw, nil
	case Abbreviation:
		exp, ok := abbr.Lookup(tok.Raw)
		if !ok {
			return tok.Raw, fmt.Errorf("%w: %q", ErrUnknownAbbreviation, tok.Raw)
		}
		return exp, nil
	case Symbol:
		spelled, err := spellSymbol(tok.Raw)
		if err != nil {
			return tok.Raw, err
		}
		return spelled, nil
	case Number:
		words, err := numberWords(tok.Raw)
		if err != nil {
			return tok.Raw, err
		}
		return words, nil
	default:
		return tok.Raw, fmt.Errorf("unknown category %v", tok.Category)
	}
}

// spellSymbol forces letter-by-letter reading: every letter is upper-cased
// and followed by a period. Periods already in the symbol are not doubled.
func spellSymbol(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r == '.' {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
		b.WriteByte('.')
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownSymbol, raw)
	}
	return b.String(), nil
}

func numberWords(raw string) (string, error) {
	style := NumberStyle{Currency: strings.HasPrefix(raw, "$")}
	for _, suffix := range ordinalSuffixes {
		if strings.HasSuffix(raw, suffix) {
			style.Ordinal = true
			break
		}
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)

	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNumberParsing, raw)
	}

	return NumberToWords(n, style)
}
