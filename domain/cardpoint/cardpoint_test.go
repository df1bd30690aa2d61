package cardpoint

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.dedis.ch/kyber/v4"

	"github.com/luca-patrignani/poker-cards/domain/card"
)

var codec = Default()

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	for _, cd := range card.Deck() {
		p, err := codec.Encode(cd)
		require.NoError(t, err)

		back, err := codec.Decode(p)
		require.NoError(t, err)
		assert.Equal(t, cd, back)
	}
}

func TestPointsAreDistinct(t *testing.T) {
	t.Parallel()

	points := codec.Points()
	require.Len(t, points, card.DeckSize)
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			assert.False(t, points[i].Equal(points[j]), "cards %d and %d share a point", i, j)
		}
	}
}

func TestEncodingIsDeterministic(t *testing.T) {
	t.Parallel()

	other, err := NewCodec(codec.Suite())
	require.NoError(t, err)

	for _, cd := range card.Deck() {
		a, err := codec.Marshal(cd)
		require.NoError(t, err)
		b, err := other.Marshal(cd)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	t.Parallel()

	ace := card.MustParse("As")
	data, err := codec.Marshal(ace)
	require.NoError(t, err)

	back, err := codec.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, ace, back)

	// either not a curve point or not one of the card points
	_, err = codec.Unmarshal(bytes.Repeat([]byte{0xff}, len(data)))
	assert.Error(t, err)
}

func TestEncodeIsACopy(t *testing.T) {
	t.Parallel()

	cd := card.MustParse("2c")
	p, err := codec.Encode(cd)
	require.NoError(t, err)
	p.Null()

	back, err := codec.Decode(mustEncode(t, cd))
	require.NoError(t, err)
	assert.Equal(t, cd, back)
}

func TestMaskUnmask(t *testing.T) {
	t.Parallel()

	s := codec.Suite()
	secret := s.Scalar().Pick(s.RandomStream())
	cd := card.MustParse("Qh")

	masked := s.Point().Mul(secret, mustEncode(t, cd))
	_, err := codec.Decode(masked)
	assert.ErrorIs(t, err, ErrUnknownPoint)

	unmasked := s.Point().Mul(s.Scalar().Inv(secret), masked)
	back, err := codec.Decode(unmasked)
	require.NoError(t, err)
	assert.Equal(t, cd, back)
}

func TestEncodeInvalidCard(t *testing.T) {
	t.Parallel()

	_, err := codec.Encode(card.FromValue(52))
	assert.ErrorIs(t, err, card.ErrInvalidCard)

	_, err = codec.Marshal(card.FromValue(255))
	assert.ErrorIs(t, err, card.ErrInvalidCard)
}

func mustEncode(t *testing.T, cd card.Card) kyber.Point {
	t.Helper()
	p, err := codec.Encode(cd)
	require.NoError(t, err)
	return p
}
