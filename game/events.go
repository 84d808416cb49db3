package game

import (
	"github.com/lazharichir/blackjack/cards"
)

// Event represents a domain event emitted by the table as a round plays
// out. Handlers registered with OnEvent receive every event in order.
type Event interface {
	EventName() string
}

// EventHandler is a callback receiving table events
type EventHandler func(Event)

// StateChanged is emitted on every state transition, including the
// automatic ones.
type StateChanged struct {
	TableID string `json:"tableId"`
	From    State  `json:"from"`
	To      State  `json:"to"`
}

func (e StateChanged) EventName() string { return "state-changed" }

// BetPlaced is emitted when chips land on a spot's main bet
type BetPlaced struct {
	TableID  string  `json:"tableId"`
	Spot     int     `json:"spot"`
	Amount   float64 `json:"amount"`
	Total    float64 `json:"total"`
	Bankroll float64 `json:"bankroll"`
}

func (e BetPlaced) EventName() string { return "bet-placed" }

// SideBetPlaced is emitted when chips land on a spot's side bet
type SideBetPlaced struct {
	TableID string      `json:"tableId"`
	Spot    int         `json:"spot"`
	Kind    SideBetKind `json:"kind"`
	Amount  float64     `json:"amount"`
}

func (e SideBetPlaced) EventName() string { return "side-bet-placed" }

// BetsCleared is emitted when a spot (or, with Spot == -1, the whole
// table) is cleared and refunded
type BetsCleared struct {
	TableID string  `json:"tableId"`
	Spot    int     `json:"spot"`
	Refund  float64 `json:"refund"`
}

func (e BetsCleared) EventName() string { return "bets-cleared" }

// ShoeShuffled is emitted when a fresh shoe replaces the depleted one
// before a deal
type ShoeShuffled struct {
	TableID string `json:"tableId"`
	Cards   int    `json:"cards"`
}

func (e ShoeShuffled) EventName() string { return "shoe-shuffled" }

// CardDealt is emitted for every face-up card that leaves the shoe.
// Spot -1 is the dealer. The dealer's hole card is not announced until
// DealerRevealed.
type CardDealt struct {
	TableID string     `json:"tableId"`
	Spot    int        `json:"spot"`
	Hand    int        `json:"hand"`
	Card    cards.Card `json:"card"`
}

func (e CardDealt) EventName() string { return "card-dealt" }

// RoundDealt is emitted after the initial deal completes
type RoundDealt struct {
	TableID      string     `json:"tableId"`
	DealerUpCard cards.Card `json:"dealerUpCard"`
}

func (e RoundDealt) EventName() string { return "round-dealt" }

// SideBetSettled is emitted once per wagered side bet at deal time
type SideBetSettled struct {
	TableID string      `json:"tableId"`
	Spot    int         `json:"spot"`
	Kind    SideBetKind `json:"kind"`
	Result  string      `json:"result"` // empty on a losing bet
	Payout  float64     `json:"payout"`
}

func (e SideBetSettled) EventName() string { return "side-bet-settled" }

// TripleSevenBonus is emitted when a hand collects the triple-seven bonus
type TripleSevenBonus struct {
	TableID string  `json:"tableId"`
	Spot    int     `json:"spot"`
	Hand    int     `json:"hand"`
	Bonus   float64 `json:"bonus"`
}

func (e TripleSevenBonus) EventName() string { return "triple-seven-bonus" }

// HandSplit is emitted when a pair is split into two hands
type HandSplit struct {
	TableID string `json:"tableId"`
	Spot    int    `json:"spot"`
	Aces    bool   `json:"aces"`
}

func (e HandSplit) EventName() string { return "hand-split" }

// HandSettled is emitted the moment a hand's result is fixed, whether
// during play or at settlement
type HandSettled struct {
	TableID string     `json:"tableId"`
	Spot    int        `json:"spot"`
	Hand    int        `json:"hand"`
	Result  HandResult `json:"result"`
}

func (e HandSettled) EventName() string { return "hand-settled" }

// InsuranceTaken is emitted when the insurance wager is placed
type InsuranceTaken struct {
	TableID string  `json:"tableId"`
	Amount  float64 `json:"amount"`
}

func (e InsuranceTaken) EventName() string { return "insurance-taken" }

// DealerRevealed is emitted when the dealer's hole card turns face up
type DealerRevealed struct {
	TableID string      `json:"tableId"`
	Hand    cards.Stack `json:"hand"`
}

func (e DealerRevealed) EventName() string { return "dealer-revealed" }

// RoundSettled is emitted after settlement with the round's aggregate
// outcome
type RoundSettled struct {
	TableID       string  `json:"tableId"`
	LastWin       float64 `json:"lastWin"`
	LastWinAmount float64 `json:"lastWinAmount"`
	Bankroll      float64 `json:"bankroll"`
	Message       string  `json:"message"`
}

func (e RoundSettled) EventName() string { return "round-settled" }

// RoundReset is emitted when the table returns to betting
type RoundReset struct {
	TableID string `json:"tableId"`
}

func (e RoundReset) EventName() string { return "round-reset" }
