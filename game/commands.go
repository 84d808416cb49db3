package game

// Command represents a player intent raised into the table. Commands whose
// guard fails in the current state are ignored without a state change.
type Command interface {
	CommandName() string
}

// SelectSpot moves the betting focus to a spot
type SelectSpot struct {
	SpotIndex int `json:"spotIndex"`
}

func (c SelectSpot) CommandName() string { return "select-spot" }

// AddBet places chips on the focused spot's main bet
type AddBet struct {
	Amount float64 `json:"amount"`
}

func (c AddBet) CommandName() string { return "add-bet" }

// DoubleBet doubles the focused spot's main bet
type DoubleBet struct{}

func (c DoubleBet) CommandName() string { return "double-bet" }

// ClearBet refunds the focused spot's main and side bets
type ClearBet struct{}

func (c ClearBet) CommandName() string { return "clear-bet" }

// ClearAllBets refunds every spot
type ClearAllBets struct{}

func (c ClearAllBets) CommandName() string { return "clear-all-bets" }

// AddSideBet places chips on one of the focused spot's side bets
type AddSideBet struct {
	Kind   SideBetKind `json:"betType"`
	Amount float64     `json:"amount"`
}

func (c AddSideBet) CommandName() string { return "add-side-bet" }

// Rebet restores the previous round's bet shape
type Rebet struct{}

func (c Rebet) CommandName() string { return "rebet" }

// Deal starts the round (from betting) or replays the previous bets and
// deals immediately (from settlement)
type Deal struct{}

func (c Deal) CommandName() string { return "deal" }

// TakeEvenMoney settles every live blackjack at 1:1 while the dealer
// shows an ace
type TakeEvenMoney struct{}

func (c TakeEvenMoney) CommandName() string { return "take-even-money" }

// DeclineEvenMoney declines the even-money offer
type DeclineEvenMoney struct{}

func (c DeclineEvenMoney) CommandName() string { return "decline-even-money" }

// TakeInsurance wagers half the total main bets against a dealer blackjack
type TakeInsurance struct{}

func (c TakeInsurance) CommandName() string { return "take-insurance" }

// DeclineInsurance declines the insurance offer
type DeclineInsurance struct{}

func (c DeclineInsurance) CommandName() string { return "decline-insurance" }

// Hit draws one card to the active hand
type Hit struct{}

func (c Hit) CommandName() string { return "hit" }

// Stand ends the active hand's turn
type Stand struct{}

func (c Stand) CommandName() string { return "stand" }

// Double doubles the active hand's bet for exactly one more card
type Double struct{}

func (c Double) CommandName() string { return "double" }

// Split breaks a pair into two hands, each dealt one fresh card
type Split struct{}

func (c Split) CommandName() string { return "split" }

// Surrender forfeits the active hand for half its bet back
type Surrender struct{}

func (c Surrender) CommandName() string { return "surrender" }

// NewRound clears the table back to betting
type NewRound struct{}

func (c NewRound) CommandName() string { return "new-round" }
