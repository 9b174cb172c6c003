package text

import (
	"strings"
	"unicode/utf8"
)

// ChunkByLetters groups the words of text into chunks of at most maxLetters
// characters, counting the single space between words. Words longer than
// maxLetters are split into maxLetters-sized pieces.
// If maxLetters is 0 or less, no splitting is performed.
func ChunkByLetters(text string, maxLetters int) []string {
	words := Tokenize(text)
	if len(words) == 0 {
		return nil
	}
	if maxLetters <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	for _, w := range words {
		for _, piece := range splitRunes(w, maxLetters) {
			n := utf8.RuneCountInString(piece)
			if currentLen == 0 {
				current.WriteString(piece)
				currentLen = n
				continue
			}
			// Would appending this piece (with a space separator) exceed the limit?
			if currentLen+1+n > maxLetters {
				flush()
				current.WriteString(piece)
				currentLen = n
			} else {
				current.WriteByte(' ')
				current.WriteString(piece)
				currentLen += 1 + n
			}
		}
	}
	flush()

	return chunks
}

// splitRunes cuts s into pieces of at most size runes.
func splitRunes(s string, size int) []string {
	if utf8.RuneCountInString(s) <= size {
		return []string{s}
	}

	var pieces []string
	start, count := 0, 0
	for i := range s {
		if count == size {
			pieces = append(pieces, s[start:i])
			start, count = i, 0
		}
		count++
	}
	return append(pieces, s[start:])
}
