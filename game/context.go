package game

import (
	"github.com/lazharichir/blackjack/blackjack"
	"github.com/lazharichir/blackjack/cards"
)

// HandResult is the settled outcome of a single hand
type HandResult string

const (
	ResultWin       HandResult = "win"
	ResultLose      HandResult = "lose"
	ResultPush      HandResult = "push"
	ResultBlackjack HandResult = "blackjack"
	ResultSurrender HandResult = "surrender"
)

// SideBetKind identifies one of the two side bets on a spot
type SideBetKind string

const (
	SideBetTwentyOnePlusThree SideBetKind = "twentyOnePlusThree"
	SideBetPerfectPairs       SideBetKind = "perfectPairs"
)

// Hand is one hand of cards within a spot. A spot starts with one hand and
// gains more via splitting; hands persist, settled, until the next round
// resets the spots.
type Hand struct {
	Cards              cards.Stack
	Bet                float64
	Doubled            bool
	Split              bool
	SplitAces          bool
	Settled            bool
	TripleSevenAwarded bool
	Result             HandResult // "" until settled, then set exactly once
}

// SideBets holds the wager amounts per side bet on a spot
type SideBets struct {
	TwentyOnePlusThree float64 `json:"twentyOnePlusThree"`
	PerfectPairs       float64 `json:"perfectPairs"`
}

// Total returns the combined side-bet stake
func (s SideBets) Total() float64 {
	return s.TwentyOnePlusThree + s.PerfectPairs
}

// SideBetResults holds the outcomes evaluated once at deal time; they are
// immutable afterwards
type SideBetResults struct {
	TwentyOnePlusThree blackjack.TwentyOnePlusThreeResult `json:"twentyOnePlusThree"`
	PerfectPairs       blackjack.PerfectPairsResult       `json:"perfectPairs"`
}

// Spot is one of the fixed betting positions at the table
type Spot struct {
	ID              int
	Bet             float64
	SideBets        SideBets
	SideBetResults  SideBetResults
	Hands           []Hand
	ActiveHandIndex int
}

// SpotBets is the bet shape of a single spot, snapshotted for rebet
type SpotBets struct {
	Bet      float64
	SideBets SideBets
}

// PreviousBets is the bet shape of the whole table at the last deal,
// overwritten every deal
type PreviousBets struct {
	Spots []SpotBets
}

// Total returns the bankroll cost of replaying these bets
func (p *PreviousBets) Total() float64 {
	total := 0.0
	for _, spot := range p.Spots {
		total += spot.Bet + spot.SideBets.Total()
	}
	return total
}

// GameContext is the root aggregate of a table session: every piece of
// mutable round state lives here and is only touched by the state machine.
type GameContext struct {
	Shoe             *cards.Shoe
	Spots            []Spot
	ActiveSpotIndex  int // spot currently acting during the player turn
	BettingSpotIndex int // spot currently receiving chips during betting
	DealerHand       cards.Stack
	Bankroll         float64
	InsuranceBet     float64 // global, tied to the dealer showing an ace
	Message          string
	PreviousBets     *PreviousBets
	LastWin          float64 // net profit/loss of the last completed round
	LastWinAmount    float64 // gross returned from winning wagers
}

func newSpot(id int) Spot {
	return Spot{ID: id}
}

func newSpots(count int) []Spot {
	spots := make([]Spot, count)
	for i := range spots {
		spots[i] = newSpot(i)
	}
	return spots
}

func newHand(bet float64) Hand {
	return Hand{Bet: bet}
}

// --- context queries, mirroring the guard predicates of the round flow ---

func (g *GameContext) currentSpot() *Spot {
	return &g.Spots[g.ActiveSpotIndex]
}

func (g *GameContext) currentHand() *Hand {
	spot := g.currentSpot()
	if spot.ActiveHandIndex >= len(spot.Hands) {
		return nil
	}
	return &spot.Hands[spot.ActiveHandIndex]
}

func (g *GameContext) totalMainBets() float64 {
	total := 0.0
	for _, spot := range g.Spots {
		total += spot.Bet
	}
	return total
}

func (g *GameContext) totalBets() float64 {
	total := 0.0
	for _, spot := range g.Spots {
		total += spot.Bet + spot.SideBets.Total()
	}
	return total
}

// handDone reports whether a hand needs no further player action
func handDone(h Hand) bool {
	return h.Settled || blackjack.IsBust(h.Cards) || blackjack.IsBlackjack(h.Cards)
}

// findNextActiveSpotIndex returns the next spot after current that still
// has a playable hand, or -1
func (g *GameContext) findNextActiveSpotIndex(current int) int {
	for i := current + 1; i < len(g.Spots); i++ {
		spot := g.Spots[i]
		if spot.Bet == 0 {
			continue
		}
		for _, hand := range spot.Hands {
			if !handDone(hand) {
				return i
			}
		}
	}
	return -1
}

// allSpotsSettled reports whether every funded spot's hands are settled,
// bust, or blackjack
func (g *GameContext) allSpotsSettled() bool {
	for _, spot := range g.Spots {
		if spot.Bet == 0 {
			continue
		}
		for _, hand := range spot.Hands {
			if !handDone(hand) {
				return false
			}
		}
	}
	return true
}

func (g *GameContext) currentSpotSettled() bool {
	spot := g.currentSpot()
	for _, hand := range spot.Hands {
		if !handDone(hand) {
			return false
		}
	}
	return true
}

func (g *GameContext) spotHasMoreHands() bool {
	spot := g.currentSpot()
	return spot.ActiveHandIndex < len(spot.Hands)-1
}

// noActivePlayerHands reports whether the dealer has nothing left to beat:
// every funded spot's hands are bust, surrendered, or blackjack
func (g *GameContext) noActivePlayerHands() bool {
	funded := false
	for _, spot := range g.Spots {
		if spot.Bet == 0 {
			continue
		}
		funded = true
		for _, hand := range spot.Hands {
			if blackjack.IsBust(hand.Cards) || hand.Result == ResultSurrender || blackjack.IsBlackjack(hand.Cards) {
				continue
			}
			return false
		}
	}
	return funded
}

func (g *GameContext) anyPlayerHasBlackjack() bool {
	for _, spot := range g.Spots {
		if spot.Bet == 0 {
			continue
		}
		for _, hand := range spot.Hands {
			if blackjack.IsBlackjack(hand.Cards) && !hand.Settled {
				return true
			}
		}
	}
	return false
}

func (g *GameContext) allActiveSpotsHaveBlackjack() bool {
	funded := false
	for _, spot := range g.Spots {
		if spot.Bet == 0 {
			continue
		}
		funded = true
		for _, hand := range spot.Hands {
			if !blackjack.IsBlackjack(hand.Cards) {
				return false
			}
		}
	}
	return funded
}

func (g *GameContext) canRebet() bool {
	if g.PreviousBets == nil {
		return false
	}
	total := g.PreviousBets.Total()
	return total > 0 && g.Bankroll >= total
}
