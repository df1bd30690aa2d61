package card

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// pokerAce is the rank the evaluator uses for aces; it counts 2-10 at face
// value, then Jack=11, Queen=12, King=13.
const pokerAce = poker.Rank(1)

// ToPoker converts the card to the evaluator representation. Suits share
// the same 0-3 numbering in both packages.
func (c Card) ToPoker() (pc poker.Card, err error) {
	if !c.Valid() {
		return pc, fmt.Errorf("%w: %d", ErrInvalidCard, uint8(c))
	}
	r := poker.Rank(c.Rank().Value() + 2)
	if c.Rank() == Ace {
		r = pokerAce
	}
	pc, err = poker.MakeCard(poker.Suit(c.Suit().Value()), r)
	if err != nil {
		return pc, fmt.Errorf("card %s: %w", c, err)
	}
	return pc, nil
}

// FromPoker converts an evaluator card back to a Card.
func FromPoker(pc poker.Card) (Card, error) {
	if !pc.Valid() {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCard, pc)
	}
	s, err := SuitFromValue(int(pc.Suit()))
	if err != nil {
		return 0, err
	}
	v := int(pc.Rank()) - 2
	if pc.Rank() == pokerAce {
		v = int(Ace)
	}
	r, err := RankFromValue(v)
	if err != nil {
		return 0, err
	}
	return New(r, s), nil
}

// ToPoker converts every card, failing on the first invalid one.
func (cs Cards) ToPoker() ([]poker.Card, error) {
	out := make([]poker.Card, len(cs))
	for i, c := range cs {
		pc, err := c.ToPoker()
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		out[i] = pc
	}
	return out, nil
}
