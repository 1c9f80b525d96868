package poker

import "fmt"

// HandRank is the category of a poker hand, i.e., royal flush
type HandRank int

// Constants for hand ranks, weakest to strongest
const (
	HighCard HandRank = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// HandRanks returns every rank from weakest to strongest
func HandRanks() []HandRank {
	return []HandRank{HighCard, Pair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush}
}

// Strength returns the 1-based position of the rank, 1 (high card) through 10 (royal flush)
func (r HandRank) Strength() int {
	return int(r) + 1
}

// String returns the string representation of a hand rank
func (r HandRank) String() string {
	switch r {
	case HighCard:
		return "High card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalFlush:
		return "Royal flush"
	default:
		panic(fmt.Sprintf("unknown hand rank: %d", r))
	}
}

// MarshalText encodes the rank as its display name
func (r HandRank) MarshalText() ([]byte, error) {
	if r < HighCard || r > RoyalFlush {
		return nil, fmt.Errorf("unknown hand rank: %d", r)
	}

	return []byte(r.String()), nil
}

// UnmarshalText decodes a rank from its display name
func (r *HandRank) UnmarshalText(text []byte) error {
	for _, rank := range HandRanks() {
		if rank.String() == string(text) {
			*r = rank
			return nil
		}
	}

	return fmt.Errorf("unknown hand rank: %q", text)
}
