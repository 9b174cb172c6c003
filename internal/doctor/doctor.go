// Package doctor provides preflight checks for the fry data and letter bank.
package doctor

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// PassMark and FailMark are the prefix symbols printed for each check result.
const (
	PassMark = "✓"
	FailMark = "✗"
)

// CountFunc loads a data table and returns its entry count. Loaders that
// panic on corrupt data are recovered and reported as failures.
type CountFunc func() int

// Config holds injectable dependencies for each doctor check.
type Config struct {
	// Abbreviations loads the abbreviation table.
	Abbreviations CountFunc
	// Dictionary loads the pronunciation dictionary.
	Dictionary CountFunc
	// LetterBank loads the configured letter bank and lists what it can voice.
	LetterBank func() ([]rune, error)
	// RequiredLetters must all be voiced by the letter bank.
	RequiredLetters string
	// Files lists paths that must exist on disk.
	Files []string
}

// Result collects the outcome of all checks.
type Result struct {
	failures []string
}

// Failed returns true if any check failed.
func (r *Result) Failed() bool { return len(r.failures) > 0 }

// Failures returns the list of failure messages.
func (r *Result) Failures() []string { return append([]string(nil), r.failures...) }

// AddFailure appends an external failure message to the result.
func (r *Result) AddFailure(msg string) { r.failures = append(r.failures, msg) }

func (r *Result) fail(msg string) { r.failures = append(r.failures, msg) }

// Run executes all configured checks and writes human-readable output to w.
// Each check line is prefixed with PassMark or FailMark.
func Run(cfg Config, w io.Writer) Result {
	var res Result

	// ---- files ------------------------------------------------------------
	for _, path := range cfg.Files {
		if _, err := os.Stat(path); err != nil {
			res.fail(fmt.Sprintf("file %q: %v", path, err))
			fmt.Fprintf(w, "%s file %s: not found\n", FailMark, path)
		} else {
			fmt.Fprintf(w, "%s file: %s\n", PassMark, path)
		}
	}

	// ---- embedded tables --------------------------------------------------
	checkTable(&res, w, "abbreviation table", cfg.Abbreviations)
	checkTable(&res, w, "pronunciation dictionary", cfg.Dictionary)

	// ---- letter bank ------------------------------------------------------
	if cfg.LetterBank == nil {
		fmt.Fprintf(w, "%s letter bank: skipped\n", PassMark)
		return res
	}

	letters, err := cfg.LetterBank()
	if err != nil {
		res.fail(fmt.Sprintf("letter bank: %v", err))
		fmt.Fprintf(w, "%s letter bank: %v\n", FailMark, err)
		return res
	}

	if missing := missingLetters(letters, cfg.RequiredLetters); missing != "" {
		res.fail(fmt.Sprintf("letter bank: missing %q", missing))
		fmt.Fprintf(w, "%s letter bank: missing %q\n", FailMark, missing)
	} else {
		fmt.Fprintf(w, "%s letter bank: %d characters\n", PassMark, len(letters))
	}

	return res
}

func checkTable(res *Result, w io.Writer, name string, load CountFunc) {
	if load == nil {
		fmt.Fprintf(w, "%s %s: skipped\n", PassMark, name)
		return
	}

	n, err := safeCount(load)
	switch {
	case err != nil:
		res.fail(fmt.Sprintf("%s: %v", name, err))
		fmt.Fprintf(w, "%s %s: %v\n", FailMark, name, err)
	case n == 0:
		res.fail(name + ": empty")
		fmt.Fprintf(w, "%s %s: empty\n", FailMark, name)
	default:
		fmt.Fprintf(w, "%s %s: %d entries\n", PassMark, name, n)
	}
}

func safeCount(load CountFunc) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("load failed: %v", r)
		}
	}()
	return load(), nil
}

// missingLetters returns the characters of required absent from have.
func missingLetters(have []rune, required string) string {
	set := make(map[rune]bool, len(have))
	for _, r := range have {
		set[r] = true
	}

	var b strings.Builder
	for _, r := range required {
		if !set[r] {
			b.WriteRune(r)
		}
	}
	return b.String()
}
