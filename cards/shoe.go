package cards

import (
	"errors"
	"math/rand"
)

// ErrEmptyShoe is returned when dealing from a shoe with no cards left.
// The reshuffle policy makes this unreachable in normal play, so callers
// treat it as a broken invariant rather than a recoverable condition.
var ErrEmptyShoe = errors.New("shoe is empty")

// Shoe represents multiple shuffled decks that cards are dealt from
type Shoe struct {
	cards Stack
	decks int
}

// NewShoe creates a shoe of decks×52 cards shuffled with the given source.
// Fisher–Yates via rand.Shuffle, so every permutation is equally likely
// when the source is uniform.
func NewShoe(decks int, rng *rand.Rand) *Shoe {
	cards := make(Stack, 0, decks*52)
	for i := 0; i < decks; i++ {
		for _, suit := range Suits() {
			for _, rank := range Ranks() {
				cards = append(cards, Card{Suit: suit, Rank: rank, FaceUp: true})
			}
		}
	}

	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return &Shoe{cards: cards, decks: decks}
}

// NewStackedShoe creates a shoe that deals the given cards in order and
// never reports needing a shuffle. Intended for tests and fixtures.
func NewStackedShoe(cards ...Card) *Shoe {
	stack := make(Stack, len(cards))
	copy(stack, cards)
	return &Shoe{cards: stack}
}

// Len returns the number of cards remaining in the shoe
func (s *Shoe) Len() int {
	return len(s.cards)
}

// Decks returns the number of decks the shoe was built from
func (s *Shoe) Decks() int {
	return s.decks
}

// Deal removes and returns the front card with its face orientation
// overridden. Returns ErrEmptyShoe when no cards remain.
func (s *Shoe) Deal(faceUp bool) (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrEmptyShoe
	}

	card := s.cards[0]
	card.FaceUp = faceUp
	s.cards = s.cards[1:]
	return card, nil
}

// NeedsShuffle reports whether the remaining cards have dropped below the
// given fraction of the shoe's full size
func (s *Shoe) NeedsShuffle(threshold float64) bool {
	full := float64(s.decks * 52)
	return float64(len(s.cards)) < full*threshold
}
