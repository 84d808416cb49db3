package blackjack

import (
	"sort"

	"github.com/lazharichir/blackjack/cards"
)

// TwentyOnePlusThreeResult is the outcome tier of the 21+3 side bet.
// The empty string means no win.
type TwentyOnePlusThreeResult string

const (
	SuitedTriple  TwentyOnePlusThreeResult = "suitedTriple"
	StraightFlush TwentyOnePlusThreeResult = "straightFlush"
	ThreeOfAKind  TwentyOnePlusThreeResult = "threeOfAKind"
	Straight      TwentyOnePlusThreeResult = "straight"
	Flush         TwentyOnePlusThreeResult = "flush"
)

// PerfectPairsResult is the outcome tier of the Perfect Pairs side bet.
// The empty string means no win.
type PerfectPairsResult string

const (
	PerfectPair PerfectPairsResult = "perfectPair"
	ColoredPair PerfectPairsResult = "coloredPair"
	MixedPair   PerfectPairsResult = "mixedPair"
)

// Side-bet payout multipliers, stake return included: a winning 21+3
// suited triple returns 101× the stake (100:1 profit plus the stake).
var (
	TwentyOnePlusThreePayouts = map[TwentyOnePlusThreeResult]float64{
		SuitedTriple:  101,
		StraightFlush: 41,
		ThreeOfAKind:  31,
		Straight:      11,
		Flush:         6,
	}

	PerfectPairsPayouts = map[PerfectPairsResult]float64{
		PerfectPair: 26,
		ColoredPair: 13,
		MixedPair:   7,
	}
)

// straightRank maps ranks for straight detection: A=14, K=13, Q=12, J=11,
// number cards their face value. The ace also plays low in A-2-3.
func straightRank(rank cards.Rank) int {
	switch rank {
	case cards.Ace:
		return 14
	case cards.King:
		return 13
	case cards.Queen:
		return 12
	case cards.Jack:
		return 11
	default:
		return RankValue(rank)
	}
}

func isStraight(three cards.Stack) bool {
	values := []int{straightRank(three[0].Rank), straightRank(three[1].Rank), straightRank(three[2].Rank)}
	sort.Ints(values)

	if values[2]-values[1] == 1 && values[1]-values[0] == 1 {
		return true
	}

	// Ace low: A-2-3 sorts to [2, 3, 14]
	return values[0] == 2 && values[1] == 3 && values[2] == 14
}

func isFlush(three cards.Stack) bool {
	return three[0].Suit == three[1].Suit && three[1].Suit == three[2].Suit
}

func isTriple(three cards.Stack) bool {
	return three[0].Rank == three[1].Rank && three[1].Rank == three[2].Rank
}

// EvaluateTwentyOnePlusThree classifies the 21+3 side bet over the player's
// first two cards plus the dealer's up-card. First matching tier wins.
// A suited triple needs the same physical card twice, which a multi-deck
// shoe can produce.
func EvaluateTwentyOnePlusThree(player cards.Stack, dealerUpCard cards.Card) TwentyOnePlusThreeResult {
	if len(player) < 2 {
		return ""
	}

	three := cards.NewStack(player[0], player[1], dealerUpCard)

	triple := isTriple(three)
	straight := isStraight(three)
	flush := isFlush(three)

	switch {
	case triple && flush:
		return SuitedTriple
	case straight && flush:
		return StraightFlush
	case triple:
		return ThreeOfAKind
	case straight:
		return Straight
	case flush:
		return Flush
	default:
		return ""
	}
}

// EvaluatePerfectPairs classifies the pair side bet over the player's first
// two cards only
func EvaluatePerfectPairs(player cards.Stack) PerfectPairsResult {
	if len(player) < 2 {
		return ""
	}

	first, second := player[0], player[1]
	if first.Rank != second.Rank {
		return ""
	}

	if first.Suit == second.Suit {
		return PerfectPair
	}

	if first.Suit.Color() == second.Suit.Color() {
		return ColoredPair
	}

	return MixedPair
}
