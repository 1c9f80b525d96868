package poker

import (
	"showdown-server/pkg/deck"
)

// handSize is the number of cards that make up a poker hand
const handSize = 5

// Hand is the best poker hand that could be formed from a set of cards
type Hand struct {
	Rank HandRank `json:"rank"`
	// Strength is Rank.Strength(), 1 (high card) through 10 (royal flush)
	Strength int `json:"strength"`
	// RankCards are the cards that define the rank, strongest group first
	RankCards deck.Cards `json:"rankCards"`
	// KickerCards fill out the hand to five cards, highest value first
	KickerCards deck.Cards `json:"kickerCards"`
}

// Candidate is a player's pocket cards along with the community cards they can use
type Candidate struct {
	PocketCards    deck.Cards `json:"pocketCards"`
	CommunityCards deck.Cards `json:"communityCards"`
}

// Cards returns the pocket and community cards in a new slice
func (c Candidate) Cards() deck.Cards {
	return deck.Concat(c.PocketCards, c.CommunityCards)
}

func (c Candidate) clone() Candidate {
	return Candidate{
		PocketCards:    c.PocketCards.Clone(),
		CommunityCards: c.CommunityCards.Clone(),
	}
}

// Result pairs a candidate with its evaluated hand
type Result struct {
	Candidate Candidate `json:"candidate"`
	Hand      Hand      `json:"hand"`
}

// newHand creates a hand whose rank cards already make up all five cards
func newHand(rank HandRank, rankCards deck.Cards) Hand {
	return Hand{
		Rank:        rank,
		Strength:    rank.Strength(),
		RankCards:   rankCards,
		KickerCards: deck.Cards{},
	}
}

// assemble creates a hand, filling out the kicker cards with the best of the
// remaining cards until there are five cards in total
func assemble(rank HandRank, rankCards, cards deck.Cards) Hand {
	n := handSize - len(rankCards)
	if n < 0 {
		n = 0
	}

	kickers := sortedByValue(cards.Without(rankCards))
	if len(kickers) > n {
		kickers = kickers[:n]
	}

	return Hand{
		Rank:        rank,
		Strength:    rank.Strength(),
		RankCards:   rankCards,
		KickerCards: kickers,
	}
}
