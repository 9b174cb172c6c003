package text

import (
	"fmt"
	"math/big"
	"strings"
)

var (
	unitWords = [...]string{
		"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
		"seventeen", "eighteen", "nineteen",
	}
	tensWords = [...]string{
		2: "twenty", 3: "thirty", 4: "forty", 5: "fifty",
		6: "sixty", 7: "seventy", 8: "eighty", 9: "ninety",
	}
	// Short scale, one name per group of three digits above the units group.
	scaleWords = [...]string{
		"thousand", "million", "billion", "trillion", "quadrillion",
		"quintillion", "sextillion", "septillion", "octillion", "nonillion",
		"decillion", "undecillion", "duodecillion", "tredecillion",
		"quattuordecillion", "quindecillion", "sexdecillion", "septendecillion",
		"octodecillion", "novemdecillion", "vigintillion",
	}
	irregularOrdinals = map[string]string{
		"one":    "first",
		"two":    "second",
		"three":  "third",
		"five":   "fifth",
		"eight":  "eighth",
		"nine":   "ninth",
		"twelve": "twelfth",
	}
	thousand = big.NewInt(1000)
)

// NumberStyle selects how NumberToWords spells a value.
type NumberStyle struct {
	Ordinal  bool
	Currency bool
}

// NumberToWords spells a non-negative integer in English. Cardinals put "and"
// before a non-zero final remainder below one hundred ("four thousand and
// ninety-six"); ordinals do not ("five hundred eighty-second").
func NumberToWords(n *big.Int, style NumberStyle) (string, error) {
	if n == nil || n.Sign() < 0 {
		return "", fmt.Errorf("%w: negative or missing value", ErrNumericConversion)
	}

	groups := splitThousands(n)
	if len(groups) > len(scaleWords)+1 {
		return "", fmt.Errorf("%w: %d digit groups exceed largest scale %q",
			ErrNumericConversion, len(groups), scaleWords[len(scaleWords)-1])
	}

	words := spellGroups(groups, !style.Ordinal)
	if style.Ordinal {
		words[len(words)-1] = ordinalWord(words[len(words)-1])
	}
	if style.Currency {
		if n.IsInt64() && n.Int64() == 1 {
			words = append(words, "dollar")
		} else {
			words = append(words, "dollars")
		}
	}

	return strings.Join(words, " "), nil
}

// splitThousands returns the base-1000 digits of n, least significant first.
func splitThousands(n *big.Int) []int {
	if n.Sign() == 0 {
		return []int{0}
	}

	var groups []int
	rest := new(big.Int).Set(n)
	mod := new(big.Int)
	for rest.Sign() > 0 {
		rest.QuoRem(rest, thousand, mod)
		groups = append(groups, int(mod.Int64()))
	}
	return groups
}

func spellGroups(groups []int, withAnd bool) []string {
	if len(groups) == 1 && groups[0] == 0 {
		return []string{unitWords[0]}
	}

	var words []string
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}

		if h := g / 100; h > 0 {
			words = append(words, unitWords[h], "hundred")
		}
		if rem := g % 100; rem > 0 {
			if i == 0 && withAnd && len(words) > 0 {
				words = append(words, "and")
			}
			words = append(words, belowHundred(rem))
		}
		if i > 0 {
			words = append(words, scaleWords[i-1])
		}
	}
	return words
}

func belowHundred(n int) string {
	if n < len(unitWords) {
		return unitWords[n]
	}
	tens, units := n/10, n%10
	if units == 0 {
		return tensWords[tens]
	}
	return tensWords[tens] + "-" + unitWords[units]
}

// ordinalWord turns the last cardinal word into its ordinal form. Hyphenated
// words only change their final part: "eighty-two" becomes "eighty-second".
func ordinalWord(w string) string {
	prefix := ""
	if i := strings.LastIndexByte(w, '-'); i >= 0 {
		prefix, w = w[:i+1], w[i+1:]
	}

	switch {
	case irregularOrdinals[w] != "":
		w = irregularOrdinals[w]
	case strings.HasSuffix(w, "y"):
		w = strings.TrimSuffix(w, "y") + "ieth"
	default:
		w += "th"
	}
	return prefix + w
}
