package card

import "fmt"

// Suit is one of the four french suits. The numeric values are part of the
// card encoding and must not change.
type Suit uint8

const (
	Clubs    Suit = 0 // ♣ (black)
	Diamonds Suit = 1 // ♦ (red)
	Hearts   Suit = 2 // ♥ (red)
	Spades   Suit = 3 // ♠ (black)
)

// Suits lists every suit in value order.
var Suits = [4]Suit{Clubs, Diamonds, Hearts, Spades}

// ParseSuit parses a single suit letter (c, d, h, s), case-insensitive.
func ParseSuit(s string) (Suit, error) {
	switch s {
	case "c", "C":
		return Clubs, nil
	case "d", "D":
		return Diamonds, nil
	case "h", "H":
		return Hearts, nil
	case "s", "S":
		return Spades, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSuit, s)
}

// SuitFromValue returns the suit encoded by v (0-3: clubs, diamonds, hearts, spades).
func SuitFromValue(v int) (Suit, error) {
	if v < 0 || v > int(Spades) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSuitValue, v)
	}
	return Suit(v), nil
}

func (s Suit) Value() uint8 {
	return uint8(s)
}

func (s Suit) Valid() bool {
	return s <= Spades
}

// String returns the lowercase notation letter used by Parse.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	}
	return "?"
}

func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	}
	return "?"
}

// Red reports whether the suit is printed in red.
func (s Suit) Red() bool {
	return s == Diamonds || s == Hearts
}
