package cards

import (
	"fmt"
	"unicode/utf8"
)

// Suit represents a card suit
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

// Color represents a suit color, used by the pair side bet
type Color string

const (
	Red   Color = "red"
	Black Color = "black"
)

// Color returns the color of the suit
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Rank represents a card rank
type Rank string

const (
	Ace   Rank = "A"
	King  Rank = "K"
	Queen Rank = "Q"
	Jack  Rank = "J"
	Ten   Rank = "10"
	Nine  Rank = "9"
	Eight Rank = "8"
	Seven Rank = "7"
	Six   Rank = "6"
	Five  Rank = "5"
	Four  Rank = "4"
	Three Rank = "3"
	Two   Rank = "2"
)

// Suits lists all four suits in deck order
func Suits() []Suit {
	return []Suit{Spades, Hearts, Diamonds, Clubs}
}

// Ranks lists all thirteen ranks in deck order
func Ranks() []Rank {
	return []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
}

// Card represents a playing card. FaceUp controls whether the card counts
// toward a publicly visible hand value; it is set at deal time.
type Card struct {
	Suit   Suit `json:"suit"`
	Rank   Rank `json:"rank"`
	FaceUp bool `json:"faceUp"`
}

// String returns the string representation of a card
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Equals checks if two cards have the same rank and suit
func (c Card) Equals(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}

// Stack represents multiple cards
type Stack []Card

// NewStack creates a new stack with the given cards
func NewStack(cards ...Card) Stack {
	return cards
}

// CardFromString creates a face-up card from a string representation
// e.g., "10♠" or "10s" or "10S" -> Card{Suit: Spades, Rank: Ten}
func CardFromString(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card shorthand: %s", s)
	}

	// The suit is the last rune, which may be a multi-byte symbol.
	last, width := utf8.DecodeLastRuneInString(s)

	var suit Suit
	switch string(last) {
	case "♠", "s", "S":
		suit = Spades
	case "♥", "h", "H":
		suit = Hearts
	case "♦", "d", "D":
		suit = Diamonds
	case "♣", "c", "C":
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid card suit: %s", string(last))
	}

	var rank Rank
	switch s[:len(s)-width] {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "10":
		rank = Ten
	case "9":
		rank = Nine
	case "8":
		rank = Eight
	case "7":
		rank = Seven
	case "6":
		rank = Six
	case "5":
		rank = Five
	case "4":
		rank = Four
	case "3":
		rank = Three
	case "2":
		rank = Two
	default:
		return Card{}, fmt.Errorf("invalid card rank: %s", s[:len(s)-width])
	}

	return Card{Suit: suit, Rank: rank, FaceUp: true}, nil
}

// MustCardFromString is CardFromString that panics on invalid input.
// Intended for tests and fixtures.
func MustCardFromString(s string) Card {
	card, err := CardFromString(s)
	if err != nil {
		panic(err)
	}
	return card
}
