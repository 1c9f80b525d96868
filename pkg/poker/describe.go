package poker

import (
	"fmt"
	"strings"

	"showdown-server/pkg/deck"
)

// Description is a hand in words, i.e., "Two pair, Aces over Kings" with "Jack kicker"
type Description struct {
	Rank    string `json:"rank"`
	Kickers string `json:"kickers"`
}

func (d Description) String() string {
	if d.Kickers == "" {
		return d.Rank
	}

	return d.Rank + ", " + d.Kickers
}

// singular and plural names, indexed by face
var faceNames = [13][2]string{
	deck.Ace:   {"Ace", "Aces"},
	deck.Two:   {"Two", "Twos"},
	deck.Three: {"Three", "Threes"},
	deck.Four:  {"Four", "Fours"},
	deck.Five:  {"Five", "Fives"},
	deck.Six:   {"Six", "Sixes"},
	deck.Seven: {"Seven", "Sevens"},
	deck.Eight: {"Eight", "Eights"},
	deck.Nine:  {"Nine", "Nines"},
	deck.Ten:   {"Ten", "Tens"},
	deck.Jack:  {"Jack", "Jacks"},
	deck.Queen: {"Queen", "Queens"},
	deck.King:  {"King", "Kings"},
}

func faceName(card deck.Card) string {
	return faceNames[card.Face][0]
}

func facePlural(card deck.Card) string {
	return faceNames[card.Face][1]
}

// DescribeCard describes a card in words, i.e., "Two of Hearts"
func DescribeCard(card deck.Card) string {
	suit := card.Suit.String()
	return fmt.Sprintf("%s of %s", faceName(card), strings.ToUpper(suit[0:1])+suit[1:])
}

// DescribePocketCards describes pocket cards in words, i.e., "Pocket Aces" or "Ace-King Suited"
func DescribePocketCards(pocketCards deck.Cards) string {
	switch len(pocketCards) {
	case 0:
		return ""
	case 1:
		return faceName(pocketCards[0])
	}

	sameFace, sameSuit := true, true
	for _, card := range pocketCards[1:] {
		sameFace = sameFace && card.Face == pocketCards[0].Face
		sameSuit = sameSuit && card.Suit == pocketCards[0].Suit
	}

	if sameFace {
		return "Pocket " + facePlural(pocketCards[0])
	}

	status := "Offsuit"
	if sameSuit {
		status = "Suited"
	}

	return cardList(sortedByValue(pocketCards)) + " " + status
}

// Describe describes a hand in words
func Describe(hand Hand) Description {
	rankCards := hand.RankCards
	switch hand.Rank {
	case HighCard:
		// the only rank that could have been extracted from fewer than two cards
		if len(rankCards) == 0 {
			return Description{}
		}

		return Description{
			Rank:    faceName(rankCards[0]) + " high",
			Kickers: kickerList(deck.Concat(rankCards[1:], hand.KickerCards)),
		}
	case Pair:
		return Description{
			Rank:    "Pair " + facePlural(rankCards[0]),
			Kickers: kickerList(hand.KickerCards),
		}
	case TwoPair:
		return Description{
			Rank:    fmt.Sprintf("Two pair, %s over %s", facePlural(rankCards[0]), facePlural(rankCards[2])),
			Kickers: kickerList(hand.KickerCards),
		}
	case ThreeOfAKind:
		return Description{
			Rank:    "Three of a kind " + facePlural(rankCards[0]),
			Kickers: kickerList(hand.KickerCards),
		}
	case Straight:
		return Description{
			Rank: fmt.Sprintf("Straight, %s to %s", faceName(rankCards[len(rankCards)-1]), faceName(rankCards[0])),
		}
	case Flush:
		return Description{
			Rank: fmt.Sprintf("Flush, %s high", cardList(take(rankCards, 2))),
		}
	case FullHouse:
		return Description{
			Rank: fmt.Sprintf("Full house, %s full of %s", facePlural(rankCards[0]), facePlural(rankCards[len(rankCards)-1])),
		}
	case FourOfAKind:
		return Description{
			Rank:    "Four of a kind " + facePlural(rankCards[0]),
			Kickers: kickerList(hand.KickerCards),
		}
	case StraightFlush:
		return Description{
			Rank: fmt.Sprintf("Straight flush, %s to %s", faceName(rankCards[len(rankCards)-1]), faceName(rankCards[0])),
		}
	case RoyalFlush:
		return Description{Rank: "Royal flush"}
	default:
		panic(fmt.Sprintf("unknown hand rank: %d", hand.Rank))
	}
}

func cardList(cards deck.Cards) string {
	names := make([]string, len(cards))
	for i, card := range cards {
		names[i] = faceName(card)
	}

	return strings.Join(names, "-")
}

func kickerList(kickers deck.Cards) string {
	switch len(kickers) {
	case 0:
		return ""
	case 1:
		return cardList(kickers) + " kicker"
	default:
		return cardList(kickers) + " kickers"
	}
}
