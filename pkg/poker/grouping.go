package poker

import (
	"sort"

	"showdown-server/pkg/deck"
)

type byValue deck.Cards

func (s byValue) Len() int {
	return len(s)
}

// suit only breaks ties so that the order never depends on the input order
func (s byValue) Less(i, j int) bool {
	if cmp := deck.CompareValue(s[i], s[j]); cmp != 0 {
		return cmp < 0
	}

	return deck.CompareSuit(s[i], s[j]) < 0
}

func (s byValue) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// sortedByValue returns a copy of the cards, highest value first
func sortedByValue(cards deck.Cards) deck.Cards {
	sorted := cards.Clone()
	sort.Stable(sort.Reverse(byValue(sorted)))

	return sorted
}

// faceGroups returns the cards that share a face with at least one other card.
// The largest groups come first, groups of the same size are ordered by value.
func faceGroups(cards deck.Cards) []deck.Cards {
	var byFace [13]deck.Cards
	order := make([]deck.Face, 0, len(cards))
	for _, card := range sortedByValue(cards) {
		if len(byFace[card.Face]) == 0 {
			order = append(order, card.Face)
		}

		byFace[card.Face] = append(byFace[card.Face], card)
	}

	groups := make([]deck.Cards, 0, len(order))
	for _, face := range order {
		if len(byFace[face]) > 1 {
			groups = append(groups, byFace[face])
		}
	}

	// order is already highest value first
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i]) > len(groups[j])
	})

	return groups
}

// suitGroups returns the cards that share a suit with at least one other card,
// in suit order. Each group is ordered by value.
func suitGroups(cards deck.Cards) []deck.Cards {
	var bySuit [4]deck.Cards
	for _, card := range sortedByValue(cards) {
		bySuit[card.Suit] = append(bySuit[card.Suit], card)
	}

	groups := make([]deck.Cards, 0, len(bySuit))
	for _, group := range bySuit {
		if len(group) > 1 {
			groups = append(groups, group)
		}
	}

	return groups
}

// consecutiveRuns returns the maximal runs of cards whose faces are one apart,
// highest run first. Each face appears once per run. An Ace also counts as
// the card below a Two, so A-2-3-4-5 comes back as the run 5, 4, 3, 2, A.
func consecutiveRuns(cards deck.Cards) []deck.Cards {
	sorted := sortedByValue(cards)

	unique := make(deck.Cards, 0, len(sorted))
	for _, card := range sorted {
		if n := len(unique); n > 0 && unique[n-1].Face == card.Face {
			continue
		}

		unique = append(unique, card)
	}

	runs := make([]deck.Cards, 0, len(unique))
	for _, card := range unique {
		if n := len(runs); n > 0 {
			run := runs[n-1]
			if run[len(run)-1].Value()-card.Value() == 1 {
				runs[n-1] = append(run, card)
				continue
			}
		}

		runs = append(runs, deck.Cards{card})
	}

	if len(unique) > 1 && unique[0].Face == deck.Ace {
		ace := unique[0]
		last := runs[len(runs)-1]
		if last[len(last)-1].Face == deck.Two && last[0] != ace {
			runs[len(runs)-1] = append(last, ace)
		}
	}

	return runs
}

// analysis holds the groupings of a set of cards that the extractors work from
type analysis struct {
	cards deck.Cards
	faces []deck.Cards
	suits []deck.Cards
	runs  []deck.Cards
	// suitRuns[i] are the runs of suits[i], only set for groups that could flush
	suitRuns [][]deck.Cards
}

func analyze(cards deck.Cards) *analysis {
	a := &analysis{
		cards: sortedByValue(cards),
		faces: faceGroups(cards),
		suits: suitGroups(cards),
		runs:  consecutiveRuns(cards),
	}

	a.suitRuns = make([][]deck.Cards, len(a.suits))
	for i, group := range a.suits {
		if len(group) >= handSize {
			a.suitRuns[i] = consecutiveRuns(group)
		}
	}

	return a
}

// take returns a copy of the first n cards.
// Groups may be shared through the cache, so hands never reference them directly.
func take(cards deck.Cards, n int) deck.Cards {
	if n > len(cards) {
		n = len(cards)
	}

	return cards[:n].Clone()
}
