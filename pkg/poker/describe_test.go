package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"showdown-server/pkg/deck"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		cards   string
		rank    string
		kickers string
	}{
		{"Ah,Jd,9s,7c,5h,3d,2c", "Ace high", "Jack-Nine-Seven-Five kickers"},
		{"Tc,Td,Ah,9s,5d,3c,2h", "Pair Tens", "Ace-Nine-Five kickers"},
		{"Ac,Ad,Kc,Kd,Js,3c,2h", "Two pair, Aces over Kings", "Jack kicker"},
		{"8c,8d,8h,Ks,4d,3c,2h", "Three of a kind Eights", "King-Four kickers"},
		{"9c,8d,7h,6s,5d,2c,2h", "Straight, Five to Nine", ""},
		{"Ac,2d,3h,4s,5d,9c,Kh", "Straight, Ace to Five", ""},
		{"Ah,Jh,9h,6h,3h,2c,Kc", "Flush, Ace-Jack high", ""},
		{"Kc,Kd,Ks,Qh,Qd,3c,2s", "Full house, Kings full of Queens", ""},
		{"7c,7d,7h,7s,Kd,2c,3h", "Four of a kind Sevens", "King kicker"},
		{"9s,8s,7s,6s,5s,Ac,2d", "Straight flush, Five to Nine", ""},
		{"Ah,Kh,Qh,Jh,Th,2c,3d", "Royal flush", ""},
		{"Ah", "Ace high", ""},
	}

	for _, test := range tests {
		t.Run(test.cards, func(t *testing.T) {
			hand, err := ExtractHand(deck.CardsFromString(test.cards))
			assert.NoError(t, err)

			desc := Describe(hand)
			assert.Equal(t, test.rank, desc.Rank)
			assert.Equal(t, test.kickers, desc.Kickers)
		})
	}
}

func TestDescription_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("Royal flush", Description{Rank: "Royal flush"}.String())
	a.Equal("Pair Tens, Ace-Nine-Five kickers", Description{Rank: "Pair Tens", Kickers: "Ace-Nine-Five kickers"}.String())
	a.Equal("", Describe(Hand{Rank: HighCard}).String())
	a.Panics(func() {
		Describe(Hand{Rank: HandRank(10)})
	})
}

func TestDescribeCard(t *testing.T) {
	a := assert.New(t)
	a.Equal("Two of Hearts", DescribeCard(deck.CardFromString("2h")))
	a.Equal("Ace of Spades", DescribeCard(deck.CardFromString("As")))
	a.Equal("Ten of Clubs", DescribeCard(deck.CardFromString("Tc")))
}

func TestDescribePocketCards(t *testing.T) {
	a := assert.New(t)
	a.Equal("", DescribePocketCards(nil))
	a.Equal("Queen", DescribePocketCards(deck.CardsFromString("Qd")))
	a.Equal("Pocket Aces", DescribePocketCards(deck.CardsFromString("Ah,As")))
	a.Equal("Pocket Sixes", DescribePocketCards(deck.CardsFromString("6h,6c")))
	a.Equal("Ace-King Suited", DescribePocketCards(deck.CardsFromString("Kh,Ah")))
	a.Equal("Jack-Two Offsuit", DescribePocketCards(deck.CardsFromString("2c,Jd")))
}
