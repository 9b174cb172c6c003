package text

import "errors"

var (
	// ErrEmptyText is returned when the input text is empty or whitespace-only.
	ErrEmptyText = errors.New("text is empty")

	// ErrPatternCompile marks a static classification pattern that failed to
	// compile. It is only ever raised as a panic during package initialization.
	ErrPatternCompile = errors.New("classification pattern does not compile")

	// ErrAbbreviationData marks a malformed embedded abbreviation table.
	ErrAbbreviationData = errors.New("malformed abbreviation data")

	// ErrNumberParsing is returned when a number token holds no parseable digits.
	ErrNumberParsing = errors.New("number token has no digits")

	// ErrNumericConversion is returned when a parsed number cannot be spelled out.
	ErrNumericConversion = errors.New("number cannot be converted to words")

	// ErrUnknownSymbol is returned when a symbol token has nothing to spell.
	ErrUnknownSymbol = errors.New("symbol has no letters to spell")

	// ErrUnknownAbbreviation is returned when an abbreviation has no expansion.
	ErrUnknownAbbreviation = errors.New("abbreviation has no expansion")
)
