package text

import "fmt"

// Category is the semantic class assigned to a token at classification time.
type Category int

const (
	Word Category = iota
	Number
	Symbol
	Abbreviation
)

var categoryNames = [...]string{
	Word:         "word",
	Number:       "number",
	Symbol:       "symbol",
	Abbreviation: "abbreviation",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("category(%d)", int(c))
	}

	return categoryNames[c]
}

// MarshalText implements encoding.TextMarshaler so categories render as names
// in JSON responses.
func (c Category) MarshalText() ([]byte, error) {
	if c < 0 || int(c) >= len(categoryNames) {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}

	return []byte(categoryNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(b []byte) error {
	for i, name := range categoryNames {
		if name == string(b) {
			*c = Category(i)
			return nil
		}
	}

	return fmt.Errorf("unknown category %q", string(b))
}

// Token is a classified whitespace-delimited slice of input text.
type Token struct {
	Raw      string   `json:"raw"`
	Category Category `json:"category"`
}
