package card

import (
	"fmt"

	"github.com/pterm/pterm"
)

// DeckSize is the number of distinct cards.
const DeckSize = 52

// FaceDown is the display string for a card that is not known.
const FaceDown = "▓"

// Card is a playing card packed into a single byte:
//
//	value = suit*13 + rank
//
// so 0 is the two of clubs and 51 the ace of spades. Suit and rank are
// decoded from the value on demand.
type Card uint8

// New returns the card with the given rank and suit.
func New(r Rank, s Suit) Card {
	return Card(s.Value()*13 + r.Value())
}

// FromValue wraps a raw encoded value without validation. Decoding a card
// built from a value above 51 panics.
func FromValue(v uint8) Card {
	return Card(v)
}

// Parse parses the two character notation <rank><suit>, e.g. "As" or "td".
func Parse(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCardLength, s)
	}
	r, err := ParseRank(s[:1])
	if err != nil {
		return 0, fmt.Errorf("card %q: %w", s, err)
	}
	st, err := ParseSuit(s[1:])
	if err != nil {
		return 0, fmt.Errorf("card %q: %w", s, err)
	}
	return New(r, st), nil
}

// MustParse is like Parse but panics if s is not a valid card.
func MustParse(s string) Card {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Value() uint8 {
	return uint8(c)
}

func (c Card) Valid() bool {
	return c < DeckSize
}

// Suit decodes the suit of the card.
func (c Card) Suit() Suit {
	s, err := SuitFromValue(int(c) / 13)
	if err != nil {
		corrupted(c, err)
	}
	return s
}

// Rank decodes the rank of the card.
func (c Card) Rank() Rank {
	if !c.Valid() {
		corrupted(c, ErrInvalidCard)
	}
	r, err := RankFromValue(int(c) % 13)
	if err != nil {
		corrupted(c, err)
	}
	return r
}

// Bitfield returns a mask with the single bit at position Value set.
// Bits 52-63 are never set by a valid card.
func (c Card) Bitfield() uint64 {
	return 1 << c
}

// String returns the canonical notation accepted by Parse.
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return c.Rank().String() + c.Suit().String()
}

// Pretty returns the rank followed by the coloured suit symbol.
func (c Card) Pretty() string {
	if !c.Valid() {
		return FaceDown
	}
	s := c.Suit()
	var symbol string
	if s.Red() {
		symbol = pterm.LightRed(s.Symbol())
	} else {
		symbol = pterm.Black(s.Symbol())
	}
	return c.Rank().String() + symbol
}

func (c Card) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCard, uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// corrupted aborts on a card value that can only come from misuse of FromValue.
func corrupted(c Card, err error) {
	panic(fmt.Sprintf("corrupted card value %d: %v", uint8(c), err))
}
