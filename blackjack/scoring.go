// Package blackjack holds the pure scoring rules of the game: hand values
// with soft/hard ace handling, the predicates the table engine guards on,
// and the two side-bet evaluators with their payout tables.
package blackjack

import (
	"fmt"
	"strconv"

	"github.com/lazharichir/blackjack/cards"
)

// RankValue returns the blackjack value of a rank: aces count 11 until
// reduced, face cards count 10.
func RankValue(rank cards.Rank) int {
	switch rank {
	case cards.Ace:
		return 11
	case cards.King, cards.Queen, cards.Jack:
		return 10
	default:
		n, _ := strconv.Atoi(string(rank))
		return n
	}
}

func sum(hand cards.Stack, faceUpOnly bool) (value, aces int) {
	for _, card := range hand {
		if faceUpOnly && !card.FaceUp {
			continue
		}
		value += RankValue(card.Rank)
		if card.Rank == cards.Ace {
			aces++
		}
	}
	return value, aces
}

func reduceAces(value, aces int) int {
	for value > 21 && aces > 0 {
		value -= 10
		aces--
	}
	return value
}

// Value computes the hand total counting only face-up cards. Used for the
// player-visible value during play.
func Value(hand cards.Stack) int {
	return reduceAces(sum(hand, true))
}

// FullValue computes the hand total counting every card regardless of
// orientation. Used for the dealer's true hand and for settlement.
func FullValue(hand cards.Stack) int {
	return reduceAces(sum(hand, false))
}

// DisplayValue formats the visible hand total for presentation:
// "BJ" for a face-up two-card 21, "8 / 18" while an ace is still soft,
// the plain total otherwise, and "" when nothing is face up.
func DisplayValue(hand cards.Stack) string {
	value, aces := 0, 0
	allFaceUp := true
	for _, card := range hand {
		if !card.FaceUp {
			allFaceUp = false
			continue
		}
		value += RankValue(card.Rank)
		if card.Rank == cards.Ace {
			aces++
		}
	}

	if value == 0 && aces == 0 {
		return ""
	}

	if len(hand) == 2 && allFaceUp && value == 21 {
		return "BJ"
	}

	reduced := 0
	adjusted := value
	for adjusted > 21 && reduced < aces {
		adjusted -= 10
		reduced++
	}

	// An ace still counted as 11 makes the hand soft; show both totals.
	if aces-reduced > 0 && adjusted <= 21 {
		low := adjusted - 10
		if low > 0 && low != adjusted {
			return fmt.Sprintf("%d / %d", low, adjusted)
		}
	}

	return strconv.Itoa(adjusted)
}

// IsBust reports whether the visible hand value exceeds 21
func IsBust(hand cards.Stack) bool {
	return Value(hand) > 21
}

// IsBlackjack reports whether the hand is a two-card 21, counting face-down
// cards (the dealer's hole card matters here)
func IsBlackjack(hand cards.Stack) bool {
	return len(hand) == 2 && FullValue(hand) == 21
}

// IsTripleSeven reports whether the hand holds at least three sevens
func IsTripleSeven(hand cards.Stack) bool {
	if len(hand) < 3 {
		return false
	}
	sevens := 0
	for _, card := range hand {
		if card.Rank == cards.Seven {
			sevens++
		}
	}
	return sevens >= 3
}

// CanSplit reports whether the two cards form a splittable pair. Equality
// is on blackjack value, not rank, so King+Queen splits like two tens.
func CanSplit(hand cards.Stack) bool {
	if len(hand) != 2 {
		return false
	}
	return RankValue(hand[0].Rank) == RankValue(hand[1].Rank)
}

// CanDouble reports whether the hand may double down (any two cards)
func CanDouble(hand cards.Stack) bool {
	return len(hand) == 2
}
