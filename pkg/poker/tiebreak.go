package poker

import (
	"fmt"

	"showdown-server/pkg/deck"
)

// AllTied is returned from BreakTie when the best hands cannot be separated
const AllTied = -1

// comparator returns a positive number if a beats b, negative if b beats a,
// and zero if the hands split
type comparator func(a, b Hand) int

var tieBreakers = map[HandRank]comparator{
	HighCard:      compareHighCard,
	Pair:          comparePair,
	TwoPair:       compareTwoPair,
	ThreeOfAKind:  compareThreeOfAKind,
	Straight:      compareStraight,
	Flush:         compareFlush,
	FullHouse:     compareFullHouse,
	FourOfAKind:   compareFourOfAKind,
	StraightFlush: compareStraightFlush,
	RoyalFlush:    compareRoyalFlush,
}

// BreakTie returns the index of the single best result, or AllTied if two or
// more results share the best hand.
// Every result must have the same rank.
func BreakTie(results []Result) (int, error) {
	best, err := TieBreak(results)
	if err != nil {
		return 0, err
	}

	if len(best) > 1 {
		return AllTied, nil
	}

	return best[0], nil
}

// TieBreak returns the indices of every result holding the best hand, in order.
// Every result must have the same rank.
func TieBreak(results []Result) ([]int, error) {
	if len(results) < 2 {
		return nil, fmt.Errorf("%w: expected two or more hands in tie break, got %d", ErrInvalidInput, len(results))
	}

	rank := results[0].Hand.Rank
	for _, result := range results[1:] {
		if result.Hand.Rank != rank {
			return nil, fmt.Errorf("%w: expected same rank for hands in tie break, got %d and %d", ErrInternalInconsistency, rank, result.Hand.Rank)
		}
	}

	compare, ok := tieBreakers[rank]
	if !ok {
		return nil, fmt.Errorf("%w: no tie breaker for rank %d", ErrInternalInconsistency, rank)
	}

	best := []int{0}
	for i := 1; i < len(results); i++ {
		cmp := compare(results[i].Hand, results[best[0]].Hand)
		if cmp > 0 {
			best = []int{i}
		} else if cmp == 0 {
			best = append(best, i)
		}
	}

	return best, nil
}

func compareHighCard(a, b Hand) int {
	if cmp := compareValues(a.RankCards, b.RankCards); cmp != 0 {
		return cmp
	}

	// only relevant when fewer than five cards were evaluated
	return compareValues(a.KickerCards, b.KickerCards)
}

func comparePair(a, b Hand) int {
	return compareGroupThenKickers(a, b)
}

// higher pair, then lower pair, then the kicker
func compareTwoPair(a, b Hand) int {
	if cmp := deck.CompareValue(a.RankCards[0], b.RankCards[0]); cmp != 0 {
		return cmp
	}

	if cmp := deck.CompareValue(a.RankCards[2], b.RankCards[2]); cmp != 0 {
		return cmp
	}

	return compareValues(a.KickerCards, b.KickerCards)
}

func compareThreeOfAKind(a, b Hand) int {
	return compareGroupThenKickers(a, b)
}

// a wheel's rank cards start with the Five, so it loses to every other straight
func compareStraight(a, b Hand) int {
	return compareValues(a.RankCards, b.RankCards)
}

func compareFlush(a, b Hand) int {
	return compareValues(a.RankCards, b.RankCards)
}

// trips first, then the pair
func compareFullHouse(a, b Hand) int {
	if cmp := deck.CompareValue(a.RankCards[0], b.RankCards[0]); cmp != 0 {
		return cmp
	}

	return deck.CompareValue(a.RankCards[3], b.RankCards[3])
}

func compareFourOfAKind(a, b Hand) int {
	return compareGroupThenKickers(a, b)
}

func compareStraightFlush(a, b Hand) int {
	return compareValues(a.RankCards, b.RankCards)
}

func compareRoyalFlush(Hand, Hand) int {
	return 0
}

func compareGroupThenKickers(a, b Hand) int {
	if cmp := deck.CompareValue(a.RankCards[0], b.RankCards[0]); cmp != 0 {
		return cmp
	}

	return compareValues(a.KickerCards, b.KickerCards)
}

// compareValues compares cards pairwise by value; the first difference decides.
// If one list runs out first, the longer list wins.
func compareValues(a, b deck.Cards) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if cmp := deck.CompareValue(a[i], b[i]); cmp != 0 {
			return cmp
		}
	}

	return len(a) - len(b)
}
