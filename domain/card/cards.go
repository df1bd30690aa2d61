package card

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"
)

// Cards is an ordered list of cards, e.g. a board or a hand.
type Cards []Card

// Deck returns the 52 cards in value order.
func Deck() Cards {
	d := make(Cards, DeckSize)
	for i := range d {
		d[i] = Card(i)
	}
	return d
}

// ParseCards parses a list of cards written back to back ("AsKd") or
// separated by spaces or commas ("As Kd,2c").
func ParseCards(s string) (Cards, error) {
	var cards Cards
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	for _, f := range fields {
		if len(f)%2 != 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCardLength, f)
		}
		for i := 0; i < len(f); i += 2 {
			c, err := Parse(f[i : i+2])
			if err != nil {
				return nil, fmt.Errorf("card %d: %w", len(cards), err)
			}
			cards = append(cards, c)
		}
	}
	return cards, nil
}

// CardsFromBitfield returns the cards whose bit is set in mask, in value order.
// Bits 52-63 are ignored.
func CardsFromBitfield(mask uint64) Cards {
	mask &= 1<<DeckSize - 1
	cards := make(Cards, 0, bits.OnesCount64(mask))
	for mask != 0 {
		cards = append(cards, Card(bits.TrailingZeros64(mask)))
		mask &= mask - 1
	}
	return cards
}

// Bitfield returns the union of the bitfields of the cards.
func (cs Cards) Bitfield() uint64 {
	var mask uint64
	for _, c := range cs {
		mask |= c.Bitfield()
	}
	return mask
}

func (cs Cards) Contains(c Card) bool {
	return cs.Bitfield()&c.Bitfield() != 0
}

// Sort orders the cards by value in place.
func (cs Cards) Sort() {
	slices.Sort(cs)
}

func (cs Cards) String() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func (cs Cards) Pretty() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.Pretty()
	}
	return strings.Join(parts, " ")
}
