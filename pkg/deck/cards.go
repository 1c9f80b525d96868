package deck

import (
	"strings"
)

// Cards represents a collection of cards
type Cards []Card

// Has returns true if the collection contains the specified card
func (c Cards) Has(card Card) bool {
	for _, cc := range c {
		if cc == card {
			return true
		}
	}

	return false
}

// Without returns a new collection with every card in remove taken out
func (c Cards) Without(remove Cards) Cards {
	out := make(Cards, 0, len(c))
	for _, card := range c {
		if !remove.Has(card) {
			out = append(out, card)
		}
	}

	return out
}

// Duplicate returns the first card that appears more than once
func (c Cards) Duplicate() (Card, bool) {
	var seen uint64
	for _, card := range c {
		bit := uint64(1) << uint(card.Index())
		if seen&bit != 0 {
			return card, true
		}

		seen |= bit
	}

	return Card{}, false
}

// Mask returns a bitmask of the cards in the collection.
// The mask does not depend on the order of the cards.
func (c Cards) Mask() uint64 {
	var mask uint64
	for _, card := range c {
		mask |= uint64(1) << uint(card.Index())
	}

	return mask
}

// Concat returns a new collection containing all cards from each collection
func Concat(collections ...Cards) Cards {
	n := 0
	for _, cards := range collections {
		n += len(cards)
	}

	out := make(Cards, 0, n)
	for _, cards := range collections {
		out = append(out, cards...)
	}

	return out
}

// Clone returns a clone of the collection
func (c Cards) Clone() Cards {
	c2 := make(Cards, len(c))
	copy(c2, c)

	return c2
}

// Notation returns the cards in short notation, i.e., "Ah,Kh,Qh"
func (c Cards) Notation() string {
	s := make([]string, len(c))
	for i, card := range c {
		s[i] = card.Notation()
	}

	return strings.Join(s, ",")
}

func (c Cards) String() string {
	s := make([]string, len(c))
	for i, card := range c {
		s[i] = card.String()
	}

	return strings.Join(s, " ")
}
