package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"showdown-server/pkg/deck"
)

func notations(groups []deck.Cards) []string {
	s := make([]string, len(groups))
	for i, group := range groups {
		s[i] = group.Notation()
	}

	return s
}

func Test_sortedByValue(t *testing.T) {
	cards := deck.CardsFromString("2c,Ah,Kd,Ac,Ts")
	sorted := sortedByValue(cards)

	assert.Equal(t, "Ah,Ac,Kd,Ts,2c", sorted.Notation())
	// the input is left alone
	assert.Equal(t, "2c,Ah,Kd,Ac,Ts", cards.Notation())

	assert.Equal(t, sorted, sortedByValue(deck.CardsFromString("Ts,Ac,2c,Kd,Ah")))
}

func Test_faceGroups(t *testing.T) {
	tests := []struct {
		cards   string
		expects []string
	}{
		{"Kh,Kd,3c,3d,3s,9h,2c", []string{"3s,3d,3c", "Kh,Kd"}},
		{"2c,2d,Ac,Ad,9s", []string{"Ad,Ac", "2d,2c"}},
		{"2c,2d,2h,2s,Ac,Ad,Ah", []string{"2s,2h,2d,2c", "Ah,Ad,Ac"}},
		{"2c,3d,4h,5s,7c", []string{}},
	}

	for _, test := range tests {
		assert.Equal(t, test.expects, notations(faceGroups(deck.CardsFromString(test.cards))), test.cards)
	}
}

func Test_suitGroups(t *testing.T) {
	tests := []struct {
		cards   string
		expects []string
	}{
		{"Ah,Kh,2c,3c,9s", []string{"3c,2c", "Ah,Kh"}},
		{"2s,9s,4s,As,Ks,Qd", []string{"As,Ks,9s,4s,2s"}},
		{"2c,3d,4h,5s", []string{}},
	}

	for _, test := range tests {
		assert.Equal(t, test.expects, notations(suitGroups(deck.CardsFromString(test.cards))), test.cards)
	}
}

func Test_consecutiveRuns(t *testing.T) {
	tests := []struct {
		cards   string
		expects []string
	}{
		{"9c,8d,8h,7s,5c,4d,Ah", []string{"Ah", "9c,8h,7s", "5c,4d"}},
		{"Ad,2c,3h,4s,5d,9c,9h", []string{"Ad", "9h", "5d,4s,3h,2c,Ad"}},
		{"Ah,Kh,2c", []string{"Ah,Kh", "2c,Ah"}},
		{"6c,5c,4c,3c,2c,Ac", []string{"Ac", "6c,5c,4c,3c,2c,Ac"}},
		{"Tc,Jd,Qh,Ks,As", []string{"As,Ks,Qh,Jd,Tc"}},
		{"2c", []string{"2c"}},
	}

	for _, test := range tests {
		assert.Equal(t, test.expects, notations(consecutiveRuns(deck.CardsFromString(test.cards))), test.cards)
	}
}

func Test_analyze(t *testing.T) {
	a := assert.New(t)
	an := analyze(deck.CardsFromString("As,2s,3s,4s,5s,Kd,Kc"))

	a.Equal("As,Kd,Kc,5s,4s,3s,2s", an.cards.Notation())
	a.Equal([]string{"Kd,Kc"}, notations(an.faces))
	a.Equal([]string{"As,5s,4s,3s,2s"}, notations(an.suits))
	a.Equal([]string{"As,Kd", "5s,4s,3s,2s,As"}, notations(an.runs))
	a.Len(an.suitRuns, 1)
	a.Equal([]string{"As", "5s,4s,3s,2s,As"}, notations(an.suitRuns[0]))

	an = analyze(deck.CardsFromString("Ah,Kh,2c,3c"))
	a.Len(an.suitRuns, 2)
	a.Nil(an.suitRuns[0])
	a.Nil(an.suitRuns[1])
}

func Test_take(t *testing.T) {
	cards := deck.CardsFromString("Ah,Kh,Qh")
	taken := take(cards, 2)
	taken[0] = deck.CardFromString("2c")

	assert.Equal(t, "Ah,Kh,Qh", cards.Notation())
	assert.Equal(t, "Ah,Kh,Qh", take(cards, 5).Notation())
}
