package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"showdown-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
type Deck struct {
	Cards Cards `json:"cards"`
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{}
	d.buildDeck()

	return d
}

func (d *Deck) buildDeck() {
	cards := make(Cards, 0, 52)
	for _, suit := range Suits() {
		for value := 2; value <= AceValue; value++ {
			face, _ := FaceFromValue(value)
			cards = append(cards, Card{Face: face, Suit: suit})
		}
	}

	d.Cards = cards
}

// Shuffle rebuilds the deck and shuffles all 52 cards with a Fisher-Yates shuffle.
// If g is nil, a crypto/rand generator is used.
func (d *Deck) Shuffle(g rng.Generator) {
	if g == nil {
		g = rng.Crypto{}
	}

	// we always want to shuffle from an unshuffled deck
	d.buildDeck()

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := g.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.Notation()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) == 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// DrawN will draw the next n cards
// If there are not enough cards, no cards are drawn and ErrEndOfDeck is returned.
func (d *Deck) DrawN(n int) (Cards, error) {
	if !d.CanDraw(n) {
		return nil, ErrEndOfDeck
	}

	cards := d.Cards[:n].Clone()
	d.Cards = d.Cards[n:]

	return cards, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
