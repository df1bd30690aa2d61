// Package card implements the playing card data model shared by the poker
// packages: suits, ranks and cards, together with the two character
// notation used to write them ("As", "Td", "2c").
//
// # Encoding
//
// A Card is a single byte holding suit*13 + rank, with suits numbered
// clubs, diamonds, hearts, spades (0-3) and ranks two through ace (0-12):
//
//	2c = 0, 3c = 1, ..., Ac = 12, 2d = 13, ..., As = 51
//
// Suit and Rank are decoded from that value, never stored separately.
// Bitfield maps a card to 1<<value, so a set of cards fits in a uint64 and
// membership is a single AND.
//
// # Errors
//
// Parsing and decoding return errors wrapping ErrInvalidSuit,
// ErrInvalidSuitValue, ErrInvalidRank, ErrInvalidRankValue or
// ErrInvalidCardLength; test them with errors.Is. Decoding a card created
// through FromValue with a value above 51 panics.
//
// # Interoperability
//
// ToPoker and FromPoker convert to the github.com/paulhankin/poker card
// type used for hand evaluation.
package card
