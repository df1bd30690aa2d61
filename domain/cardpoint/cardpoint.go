// Package cardpoint encodes cards as elements of a prime order group so
// they can be masked and shuffled by the mental poker protocols.
//
// Card c is represented by (c.Value()+1)·B, where B is the base point of the
// suite. The encoding is public and deterministic: every peer building a
// Codec over the same suite obtains the same 52 points, and a point that
// comes back unmasked from the protocol is mapped to its card by Decode.
package cardpoint

import (
	"errors"
	"fmt"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/suites"

	"github.com/luca-patrignani/poker-cards/domain/card"
)

var ErrUnknownPoint = errors.New("point does not encode a card")

// Codec maps cards to group elements and back. It is immutable once built
// and safe for concurrent use.
type Codec struct {
	suite  suites.Suite
	points [card.DeckSize]kyber.Point // indexed by card value
	lookup map[string]card.Card       // binary point -> card
}

// NewCodec precomputes the points of the 52 cards on the given suite.
func NewCodec(suite suites.Suite) (*Codec, error) {
	c := &Codec{
		suite:  suite,
		lookup: make(map[string]card.Card, card.DeckSize),
	}
	for _, cd := range card.Deck() {
		exp := suite.Scalar().SetInt64(int64(cd.Value()) + 1)
		p := suite.Point().Mul(exp, nil)
		data, err := p.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("card %s: %w", cd, err)
		}
		c.points[cd.Value()] = p
		c.lookup[string(data)] = cd
	}
	return c, nil
}

var defaultSuite suites.Suite = suites.MustFind("Ed25519")

// Default returns a codec over Ed25519, the suite used by the deck protocols.
func Default() *Codec {
	c, err := NewCodec(defaultSuite)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Codec) Suite() suites.Suite {
	return c.suite
}

// Encode returns a fresh copy of the point representing cd.
func (c *Codec) Encode(cd card.Card) (kyber.Point, error) {
	if !cd.Valid() {
		return nil, fmt.Errorf("%w: %d", card.ErrInvalidCard, cd.Value())
	}
	return c.points[cd.Value()].Clone(), nil
}

// Decode returns the card represented by p.
func (c *Codec) Decode(p kyber.Point) (card.Card, error) {
	data, err := p.MarshalBinary()
	if err != nil {
		return 0, err
	}
	cd, ok := c.lookup[string(data)]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownPoint, p.String())
	}
	return cd, nil
}

// Points returns the encodings of the whole deck, indexed by card value.
func (c *Codec) Points() []kyber.Point {
	out := make([]kyber.Point, card.DeckSize)
	for i, p := range c.points {
		out[i] = p.Clone()
	}
	return out
}

// Marshal returns the binary form of the point encoding cd.
func (c *Codec) Marshal(cd card.Card) ([]byte, error) {
	p, err := c.Encode(cd)
	if err != nil {
		return nil, err
	}
	return p.MarshalBinary()
}

// Unmarshal decodes a point received in binary form.
func (c *Codec) Unmarshal(data []byte) (card.Card, error) {
	p := c.suite.Point()
	if err := p.UnmarshalBinary(data); err != nil {
		return 0, err
	}
	return c.Decode(p)
}
