package pronounce

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestLookupHelloGoodbye(t *testing.T) {
	hello, ok := Lookup("hello")
	if !ok {
		t.Fatal("hello should be in the dictionary")
	}
	if want := []Sound{HH, AH, L, OW}; !slices.Equal(hello, want) {
		t.Errorf("hello = %v, want %v", hello, want)
	}

	goodbye, ok := Lookup("goodbye")
	if !ok {
		t.Fatal("goodbye should be in the dictionary")
	}
	if want := []Sound{G, UH, D, B, AY}; !slices.Equal(goodbye, want) {
		t.Errorf("goodbye = %v, want %v", goodbye, want)
	}
}

func TestLookupMissesAreNotDefaulted(t *testing.T) {
	for _, w := range []string{"Hello", "HELLO", "xyzzy", "", "hello "} {
		if sounds, ok := Lookup(w); ok || sounds != nil {
			t.Errorf("Lookup(%q) = %v, %v; want not found", w, sounds, ok)
		}
	}
}

func TestLookupAlternatives(t *testing.T) {
	alt, ok := Lookup("hello(2)")
	if !ok {
		t.Fatal("hello(2) should be in the dictionary")
	}
	if alt[1] != EH {
		t.Errorf("hello(2) = %v", alt)
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	first, _ := Lookup("hello")
	first[0] = ZH

	again, _ := Lookup("hello")
	if again[0] != HH {
		t.Errorf("dictionary entry was mutated through a lookup result: %v", again)
	}
}

func TestDefaultParsedOnce(t *testing.T) {
	if Default() != Default() {
		t.Error("Default must return the same dictionary")
	}
	if Default().Len() < 100 {
		t.Errorf("embedded dictionary has only %d entries", Default().Len())
	}
}

func TestEveryNumberWordIsPronounceable(t *testing.T) {
	words := "zero one two three four five six seven eight nine ten eleven twelve thirteen " +
		"fourteen fifteen sixteen seventeen eighteen nineteen twenty thirty forty fifty " +
		"sixty seventy eighty ninety hundred thousand million and dollar dollars"
	for _, w := range strings.Fields(words) {
		if _, ok := Lookup(w); !ok {
			t.Errorf("%q missing from the dictionary", w)
		}
	}
}

func TestParseSound(t *testing.T) {
	if s, err := ParseSound("NG"); err != nil || s != NG {
		t.Errorf("ParseSound(NG) = %v, %v", s, err)
	}
	for _, bad := range []string{"ng", "XX", "", "AH0"} {
		if _, err := ParseSound(bad); !errors.Is(err, ErrInvalidSound) {
			t.Errorf("ParseSound(%q) error = %v, want ErrInvalidSound", bad, err)
		}
	}
	if len(AllSounds()) != 40 {
		t.Errorf("AllSounds has %d entries, want 40", len(AllSounds()))
	}
}

func TestParseDictionaryErrors(t *testing.T) {
	tests := map[string]string{
		"no pronunciation": "hello\n",
		"invalid sound":    "hello HH AH L QQ\n",
		"only spaces":      "hello    \n",
		"duplicate word":   "hello HH AH L OW\nhello HH EH L OW\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDictionary(strings.NewReader(src))
			if !errors.Is(err, ErrMalformedDictionary) {
				t.Errorf("error = %v, want ErrMalformedDictionary", err)
			}
		})
	}
}

func TestPronounceText(t *testing.T) {
	got := PronounceText("Hello, World! ninety-six xyzzy --")

	if len(got) != 4 {
		t.Fatalf("PronounceText returned %d words: %+v", len(got), got)
	}

	if got[0].Word != "hello" || !got[0].Found {
		t.Errorf("word 0 = %+v", got[0])
	}
	if got[1].Word != "world" || !slices.Equal(got[1].Sounds, []Sound{W, ER, L, D}) {
		t.Errorf("word 1 = %+v", got[1])
	}

	wantCompound := []Sound{N, AY, N, T, IY, S, IH, K, S}
	if got[2].Word != "ninety-six" || !got[2].Found || !slices.Equal(got[2].Sounds, wantCompound) {
		t.Errorf("word 2 = %+v", got[2])
	}
	if got[3].Word != "xyzzy" || got[3].Found || got[3].Sounds != nil {
		t.Errorf("word 3 = %+v", got[3])
	}
}
