package text

import (
	"context"
	"log/slog"
	"strings"
)

// Normalizer classifies and rewrites text into speakable words. A Normalizer
// is immutable and safe for concurrent use.
type Normalizer struct {
	abbr *AbbreviationTable
	log  *slog.Logger
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithAbbreviations replaces the embedded abbreviation table.
func WithAbbreviations(t *AbbreviationTable) Option {
	return func(n *Normalizer) { n.abbr = t }
}

// WithLogger sets the logger that receives per-token fallback events.
func WithLogger(l *slog.Logger) Option {
	return func(n *Normalizer) { n.log = l }
}

// New returns a Normalizer backed by the embedded abbreviation table unless
// WithAbbreviations says otherwise.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{}
	for _, opt := range opts {
		opt(n)
	}
	if n.abbr == nil {
		n.abbr = DefaultAbbreviations()
	}
	if n.log == nil {
		n.log = slog.Default()
	}
	return n
}

// Classify tags a single token.
func (n *Normalizer) Classify(raw string) Token {
	return Token{Raw: raw, Category: classify(raw, n.abbr)}
}

// Tag tokenizes input and classifies every token, preserving order.
func (n *Normalizer) Tag(input string) []Token {
	fields := Tokenize(input)
	tokens := make([]Token, len(fields))
	for i, f := range fields {
		tokens[i] = n.Classify(f)
	}
	return tokens
}

// Rewrite returns the speakable form of tok. It never fails: any conversion
// error degrades to the raw token text.
func (n *Normalizer) Rewrite(tok Token) string {
	out, err := rewrite(tok, n.abbr)
	if err != nil {
		n.log.LogAttrs(context.Background(), slog.LevelDebug, "token kept verbatim",
			slog.String("token", tok.Raw),
			slog.String("category", tok.Category.String()),
			slog.String("error", err.Error()),
		)
		return tok.Raw
	}
	return out
}

// Normalize tokenizes, classifies and rewrites input, joining the results with
// single spaces.
func (n *Normalizer) Normalize(input string) string {
	tokens := n.Tag(input)
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = n.Rewrite(tok)
	}
	return strings.Join(out, " ")
}

// Normalize runs the default Normalizer over input.
func Normalize(input string) string {
	return New().Normalize(input)
}

// Tag classifies input with the default Normalizer.
func Tag(input string) []Token {
	return New().Tag(input)
}

// CleanInput prepares raw user text before normalization.
// It trims surrounding whitespace, normalizes line endings to \n,
// and rejects empty or whitespace-only input.
func CleanInput(s string) (string, error) {
	// Normalize line endings: CRLF → LF, then bare CR → LF.
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	s = strings.TrimSpace(s)

	if s == "" {
		return "", ErrEmptyText
	}

	return s, nil
}
