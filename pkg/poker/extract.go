package poker

import (
	"showdown-server/pkg/deck"
)

// extractor attempts to build a hand of a single rank
type extractor func(a *analysis) (Hand, bool)

// extractors are ordered strongest first; the first match is the best hand.
// extractHighCard always matches and is not in the list.
var extractors = []extractor{
	extractRoyalFlush,
	extractStraightFlush,
	extractFourOfAKind,
	extractFullHouse,
	extractFlush,
	extractStraight,
	extractThreeOfAKind,
	extractTwoPair,
	extractPair,
}

// extractHand returns the best hand from the analyzed cards
func extractHand(a *analysis) Hand {
	for _, extract := range extractors {
		if hand, ok := extract(a); ok {
			return hand
		}
	}

	return extractHighCard(a)
}

func extractRoyalFlush(a *analysis) (Hand, bool) {
	for _, group := range a.suits {
		if len(group) < handSize {
			continue
		}

		top := group[:handSize]
		isRoyal := true
		for i, card := range top {
			if card.Value() != deck.AceValue-i {
				isRoyal = false
				break
			}
		}

		if isRoyal {
			return newHand(RoyalFlush, take(top, handSize)), true
		}
	}

	return Hand{}, false
}

func extractStraightFlush(a *analysis) (Hand, bool) {
	var best deck.Cards
	for _, runs := range a.suitRuns {
		run, ok := highestStraight(runs)
		if !ok {
			continue
		}

		if best == nil || run[0].Value() > best[0].Value() {
			best = run
		}
	}

	if best == nil {
		return Hand{}, false
	}

	return newHand(StraightFlush, best), true
}

func extractFourOfAKind(a *analysis) (Hand, bool) {
	if len(a.faces) == 0 || len(a.faces[0]) < 4 {
		return Hand{}, false
	}

	return assemble(FourOfAKind, take(a.faces[0], 4), a.cards), true
}

func extractFullHouse(a *analysis) (Hand, bool) {
	var trips deck.Cards
	for _, group := range a.faces {
		if len(group) >= 3 {
			trips = group
			break
		}
	}

	if trips == nil {
		return Hand{}, false
	}

	// any other group can be the pair, including a second set of trips
	var pair deck.Cards
	for _, group := range a.faces {
		if group[0].Face == trips[0].Face {
			continue
		}

		if pair == nil || group[0].Value() > pair[0].Value() {
			pair = group
		}
	}

	if pair == nil {
		return Hand{}, false
	}

	return newHand(FullHouse, deck.Concat(take(trips, 3), take(pair, 2))), true
}

func extractFlush(a *analysis) (Hand, bool) {
	var best deck.Cards
	for _, group := range a.suits {
		if len(group) < handSize {
			continue
		}

		top := group[:handSize]
		if best == nil || compareValues(top, best) > 0 {
			best = top
		}
	}

	if best == nil {
		return Hand{}, false
	}

	return newHand(Flush, take(best, handSize)), true
}

func extractStraight(a *analysis) (Hand, bool) {
	run, ok := highestStraight(a.runs)
	if !ok {
		return Hand{}, false
	}

	return newHand(Straight, run), true
}

func extractThreeOfAKind(a *analysis) (Hand, bool) {
	for _, group := range a.faces {
		if len(group) == 3 {
			return assemble(ThreeOfAKind, take(group, 3), a.cards), true
		}
	}

	return Hand{}, false
}

func extractTwoPair(a *analysis) (Hand, bool) {
	if len(a.faces) < 2 {
		return Hand{}, false
	}

	// the two highest faces, regardless of group size
	first, second := a.faces[0], a.faces[1]
	if second[0].Value() > first[0].Value() {
		first, second = second, first
	}

	for _, group := range a.faces[2:] {
		switch {
		case group[0].Value() > first[0].Value():
			first, second = group, first
		case group[0].Value() > second[0].Value():
			second = group
		}
	}

	return assemble(TwoPair, deck.Concat(take(first, 2), take(second, 2)), a.cards), true
}

func extractPair(a *analysis) (Hand, bool) {
	if len(a.faces) == 0 {
		return Hand{}, false
	}

	return assemble(Pair, take(a.faces[0], 2), a.cards), true
}

// extractHighCard always succeeds. With fewer than five cards, every card is a rank card.
func extractHighCard(a *analysis) Hand {
	return assemble(HighCard, take(a.cards, handSize), a.cards)
}

// highestStraight returns the top five cards of the first run long enough to be a straight
func highestStraight(runs []deck.Cards) (deck.Cards, bool) {
	for _, run := range runs {
		if len(run) >= handSize {
			return take(run, handSize), true
		}
	}

	return nil, false
}
