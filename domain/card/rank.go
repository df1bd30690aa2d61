package card

import (
	"fmt"
	"strings"
)

// Rank is a card face value. Ranks are ordered by their numeric value, so
// the usual comparison operators give poker order (Two lowest, Ace highest).
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank in ascending order.
var Ranks = [13]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

const rankLetters = "23456789TJQKA"

// ParseRank parses a single rank character: 2-9, T, J, Q, K or A.
// Letters are case-insensitive.
func ParseRank(s string) (Rank, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRank, s)
	}
	i := strings.IndexByte(rankLetters, upper(s[0]))
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRank, s)
	}
	return Rank(i), nil
}

// RankFromValue returns the rank encoded by v (0-12: two through ace).
func RankFromValue(v int) (Rank, error) {
	if v < 0 || v > int(Ace) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRankValue, v)
	}
	return Rank(v), nil
}

func (r Rank) Value() uint8 {
	return uint8(r)
}

func (r Rank) Valid() bool {
	return r <= Ace
}

// String returns the canonical uppercase character of the rank.
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return rankLetters[r : r+1]
}

// Compare returns -1, 0 or +1 when r is lower than, equal to or higher than o.
func (r Rank) Compare(o Rank) int {
	switch {
	case r < o:
		return -1
	case r > o:
		return 1
	}
	return 0
}

// CompareRanks compares two sequences of rank values element by element;
// the first differing pair decides. Only the common prefix is compared, so
// sequences of different length that agree on it compare equal: callers
// comparing kickers must pass sequences of the same length.
func CompareRanks(a, b []uint8) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
