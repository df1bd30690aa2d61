package card

import (
	"errors"
	"testing"
)

func TestParseSuit(t *testing.T) {
	tests := map[string]Suit{
		"c": Clubs, "d": Diamonds, "h": Hearts, "s": Spades,
		"C": Clubs, "D": Diamonds, "H": Hearts, "S": Spades,
	}
	for in, expected := range tests {
		s, err := ParseSuit(in)
		if err != nil {
			t.Fatalf("ParseSuit(%q): %v", in, err)
		}
		if s != expected {
			t.Fatalf("ParseSuit(%q): expected %v, got %v", in, expected, s)
		}
	}
}

func TestParseInvalidSuit(t *testing.T) {
	for _, in := range []string{"", "x", "ss", "1", " s", "♠"} {
		_, err := ParseSuit(in)
		if !errors.Is(err, ErrInvalidSuit) {
			t.Fatalf("ParseSuit(%q): expected ErrInvalidSuit, got %v", in, err)
		}
	}
}

func TestSuitValues(t *testing.T) {
	expected := []uint8{0, 1, 2, 3}
	for i, s := range Suits {
		if s.Value() != expected[i] {
			t.Fatalf("%v: expected value %d, got %d", s, expected[i], s.Value())
		}
	}
}

func TestSuitFromValue(t *testing.T) {
	for v := 0; v < 4; v++ {
		s, err := SuitFromValue(v)
		if err != nil {
			t.Fatal(err)
		}
		if int(s.Value()) != v {
			t.Fatalf("expected %d, got %d", v, s.Value())
		}
	}
	for _, v := range []int{-1, 4, 13, 255} {
		_, err := SuitFromValue(v)
		if !errors.Is(err, ErrInvalidSuitValue) {
			t.Fatalf("SuitFromValue(%d): expected ErrInvalidSuitValue, got %v", v, err)
		}
	}
}

func TestSuitStringParses(t *testing.T) {
	for _, s := range Suits {
		parsed, err := ParseSuit(s.String())
		if err != nil {
			t.Fatal(err)
		}
		if parsed != s {
			t.Fatalf("expected %v, got %v", s, parsed)
		}
	}
	if Suit(4).String() != "?" || Suit(4).Symbol() != "?" {
		t.Fatal("out of range suit should render as ?")
	}
}
