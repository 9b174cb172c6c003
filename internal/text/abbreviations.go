package text

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"
)

// AbbreviationDelimiter separates an abbreviation from its expansion in the
// table source, e.g. "Dr. = Doctor".
const AbbreviationDelimiter = " = "

//go:embed data/abbreviations.txt
var abbreviationData []byte

// AbbreviationTable maps abbreviated forms to their spoken expansions.
// It is never mutated after construction and is safe for concurrent reads.
type AbbreviationTable struct {
	entries map[string]string
}

// ParseAbbreviations reads one "ABBREVIATION = EXPANSION" entry per line.
// Blank lines and lines starting with '#' are skipped. A line without the
// delimiter, an empty side, or a repeated key is an error.
func ParseAbbreviations(r io.Reader) (*AbbreviationTable, error) {
	table := &AbbreviationTable{entries: make(map[string]string)}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		from, to, ok := strings.Cut(line, AbbreviationDelimiter)
		if !ok {
			return nil, fmt.Errorf("line %d: missing %q delimiter", lineNo, AbbreviationDelimiter)
		}
		from = strings.TrimSpace(from)
		to = strings.TrimSpace(to)
		if from == "" || to == "" {
			return nil, fmt.Errorf("line %d: empty abbreviation or expansion", lineNo)
		}
		if _, dup := table.entries[from]; dup {
			return nil, fmt.Errorf("line %d: duplicate abbreviation %q", lineNo, from)
		}

		table.entries[from] = to
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read abbreviations: %w", err)
	}

	return table, nil
}

// Lookup returns the expansion for an exact, case-sensitive key.
func (t *AbbreviationTable) Lookup(abbr string) (string, bool) {
	if t == nil {
		return "", false
	}
	exp, ok := t.entries[abbr]
	return exp, ok
}

// Contains reports whether abbr is a key of the table.
func (t *AbbreviationTable) Contains(abbr string) bool {
	_, ok := t.Lookup(abbr)
	return ok
}

// Len returns the number of entries.
func (t *AbbreviationTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// DefaultAbbreviations returns the table built from the embedded data. It is
// parsed once on first use; malformed embedded data panics since it can only
// come from a broken build.
var DefaultAbbreviations = sync.OnceValue(func() *AbbreviationTable {
	table, err := ParseAbbreviations(bytes.NewReader(abbreviationData))
	if err != nil {
		panic(fmt.Errorf("%w: %w", ErrAbbreviationData, err))
	}
	return table
})
