package text

import (
	"encoding/json"
	"testing"
)

func TestClassify(t *testing.T) {
	n := New()

	tests := []struct {
		raw  string
		want Category
	}{
		{"MIT", Symbol},
		{"U.S.", Symbol},
		{"NASA", Symbol},
		{"A.", Symbol},
		{"I", Word},
		{"Mit", Word},
		{"...", Word},
		{"4096", Number},
		{"$10", Number},
		{"$100,000", Number},
		{"582nd", Number},
		{"1st", Number},
		{"10th", Number},
		{"10stth", Word},
		{"1st!", Word},
		{"3rd", Word},
		{"$", Word},
		{"-5", Word},
		{"Dr.", Abbreviation},
		{"Prof.", Abbreviation},
		{"dr.", Word},
		{"Dr", Word},
		{"hello", Word},
		{"!", Word},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			tok := n.Classify(tt.raw)
			if tok.Category != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.raw, tok.Category, tt.want)
			}
			if tok.Raw != tt.raw {
				t.Errorf("Classify(%q) changed raw text to %q", tt.raw, tok.Raw)
			}
			if again := n.Classify(tt.raw); again != tok {
				t.Errorf("Classify(%q) not stable: %v then %v", tt.raw, tok, again)
			}
		})
	}
}

func TestClassifySymbolBeatsAbbreviation(t *testing.T) {
	table, err := ParseAbbreviations(stringsReader("NATO = the North Atlantic alliance\nGo. = Going\n"))
	if err != nil {
		t.Fatalf("ParseAbbreviations: %v", err)
	}
	n := New(WithAbbreviations(table))

	if got := n.Classify("NATO").Category; got != Symbol {
		t.Errorf("Classify(NATO) = %v, want symbol", got)
	}
	if got := n.Classify("Go.").Category; got != Abbreviation {
		t.Errorf("Classify(Go.) = %v, want abbreviation", got)
	}
}

func TestSymbolAndNumberPatternsAreDisjoint(t *testing.T) {
	samples := []string{"MIT", "U.S.", "4096", "$10", "1st", "A1", "1A", "AB12", "12AB", ",,", ".."}
	for _, s := range samples {
		if isSymbol(s) && isNumber(s) {
			t.Errorf("%q matches both symbol and number patterns", s)
		}
	}
}

func TestCategoryText(t *testing.T) {
	for _, c := range []Category{Word, Number, Symbol, Abbreviation} {
		b, err := json.Marshal(c)
		if err != nil {
			t.Fatalf("marshal %v: %v", c, err)
		}

		var back Category
		if err := json.Unmarshal(b, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", b, err)
		}
		if back != c {
			t.Errorf("category %v came back as %v", c, back)
		}
	}

	if got := Category(42).String(); got != "category(42)" {
		t.Errorf("String() = %q", got)
	}
	if _, err := Category(-1).MarshalText(); err == nil {
		t.Error("expected error for invalid category")
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize(" a\tb\n\nc  d ")
	want := []string{"a", "b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("Tokenize = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}

	if got := Tokenize(""); len(got) != 0 {
		t.Errorf("Tokenize(\"\") = %q, want empty", got)
	}
}
