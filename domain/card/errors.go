package card

import "errors"

var (
	ErrInvalidSuit       = errors.New("invalid suit")
	ErrInvalidSuitValue  = errors.New("invalid suit value")
	ErrInvalidRank       = errors.New("invalid rank")
	ErrInvalidRankValue  = errors.New("invalid rank value")
	ErrInvalidCardLength = errors.New("card notation must be exactly 2 characters")
	// ErrInvalidCard is returned when a raw card value outside 0-51 reaches
	// an operation that has to reject it instead of trusting it.
	ErrInvalidCard = errors.New("invalid card")
)
