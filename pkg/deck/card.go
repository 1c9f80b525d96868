package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Face is one of the 13 card ranks.
// The enumeration starts at the Ace so that the natural order is the
// sequence order (Ace adjacent to Two). Value() rotates the Ace to the top.
type Face int

// face constants
const (
	Ace Face = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// the values returned from Face.Value() for the face cards
const (
	JackValue  = 11
	QueenValue = 12
	KingValue  = 13
	AceValue   = 14
)

// Faces returns all faces in sequence order (Ace, Two, ..., King)
func Faces() []Face {
	return []Face{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
}

// Sequence returns the Ace-low position of the face, 1 (Ace) through 13 (King)
func (f Face) Sequence() int {
	return int(f) + 1
}

// Value returns the Ace-high strength of the face, 2 (Two) through 14 (Ace)
func (f Face) Value() int {
	return (int(f)+12)%13 + 2
}

// IsValid returns true if the face is one of the 13 ranks
func (f Face) IsValid() bool {
	return f >= Ace && f <= King
}

// FaceFromValue returns the face for an Ace-high value (2-14)
func FaceFromValue(value int) (Face, bool) {
	if value < 2 || value > AceValue {
		return 0, false
	}

	return Face((value - 1) % 13), true
}

// Symbol returns the single character notation of the face
func (f Face) Symbol() string {
	switch f {
	case Ace:
		return "A"
	case King:
		return "K"
	case Queen:
		return "Q"
	case Jack:
		return "J"
	case Ten:
		return "T"
	default:
		if !f.IsValid() {
			panic(fmt.Sprintf("unknown face: %d", f))
		}

		return strconv.Itoa(f.Value())
	}
}

// Suit represents a card suit
// The order only exists so that sorting is deterministic.
type Suit int

// suit constants
const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits returns all suits in order
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	default:
		panic(fmt.Sprintf("unknown suit: %d", s))
	}
}

// Letter returns the single letter notation of the suit (c, d, h, s)
func (s Suit) Letter() string {
	return s.String()[0:1]
}

// Symbol returns the unicode symbol for the suit
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♢"
	case Hearts:
		return "♡"
	case Spades:
		return "♠"
	default:
		panic(fmt.Sprintf("unknown suit: %d", s))
	}
}

// Card is an individual playing card
// Cards are values: two cards are equal when face and suit match.
type Card struct {
	Face Face
	Suit Suit
}

// NewCard returns a new card
func NewCard(face Face, suit Suit) Card {
	return Card{Face: face, Suit: suit}
}

// IsValid returns true if both the face and suit are known
func (c Card) IsValid() bool {
	return c.Face.IsValid() && c.Suit >= Clubs && c.Suit <= Spades
}

// Value is shorthand for c.Face.Value()
func (c Card) Value() int {
	return c.Face.Value()
}

// Sequence is shorthand for c.Face.Sequence()
func (c Card) Sequence() int {
	return c.Face.Sequence()
}

// Index returns a unique number from 0-51 for the card
func (c Card) Index() int {
	return int(c.Suit)*13 + int(c.Face)
}

func (c Card) String() string {
	return c.Face.Symbol() + c.Suit.Symbol()
}

// Notation returns the card in short notation, i.e., "Ah" or "Td"
func (c Card) Notation() string {
	return c.Face.Symbol() + c.Suit.Letter()
}

// MarshalText encodes the card in short notation
func (c Card) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: face=%d suit=%d", ErrInvalidCard, c.Face, c.Suit)
	}

	return []byte(c.Notation()), nil
}

// UnmarshalText decodes a card from short notation
func (c *Card) UnmarshalText(text []byte) error {
	card, err := ParseCard(string(text))
	if err != nil {
		return err
	}

	*c = card
	return nil
}

// CompareValue compares two cards by their Ace-high value.
// The result is negative if a is lower than b, positive if higher, zero if the faces match.
func CompareValue(a, b Card) int {
	return a.Value() - b.Value()
}

// CompareSuit compares two cards by suit order
func CompareSuit(a, b Card) int {
	return int(a.Suit) - int(b.Suit)
}

var cardRx = regexp.MustCompile(`(?i)^(10|1[1-4]|[2-9]|[akqjt])([cdhs])\z`)

// ParseCard returns a Card from the string.
// The string must be in the format of <rank><suit> where rank is 2-9, T, J, Q, K, A
// (10-14 are accepted as well) and suit in [cdhs]
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	var value int
	switch strings.ToUpper(match[1]) {
	case "A":
		value = AceValue
	case "K":
		value = KingValue
	case "Q":
		value = QueenValue
	case "J":
		value = JackValue
	case "T":
		value = 10
	default:
		// the regexp guarantees a number
		value, _ = strconv.Atoi(match[1])
	}

	face, _ := FaceFromValue(value)

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return Card{Face: face, Suit: suit}, nil
}

// ParseCards parses a comma separated list of cards
func ParseCards(s string) (Cards, error) {
	if strings.TrimSpace(s) == "" {
		return Cards{}, nil
	}

	parts := strings.Split(s, ",")
	cards := make(Cards, len(parts))
	for i, part := range parts {
		card, err := ParseCard(part)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardFromString is like ParseCard, but panics if the card cannot be parsed
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card: %v", err))
	}

	return card
}

// CardsFromString is like ParseCards, but panics if a card cannot be parsed
func CardsFromString(s string) Cards {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse cards: %v", err))
	}

	return cards
}
