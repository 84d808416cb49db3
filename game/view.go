package game

import (
	"github.com/lazharichir/blackjack/blackjack"
	"github.com/lazharichir/blackjack/cards"
)

// CardView is the client-safe representation of a card. A face-down card
// keeps its FaceUp flag but loses its identity until revealed.
type CardView struct {
	Suit   cards.Suit `json:"suit,omitempty"`
	Rank   cards.Rank `json:"rank,omitempty"`
	FaceUp bool       `json:"faceUp"`
}

// HandView is the client view of one hand within a spot
type HandView struct {
	Cards     []CardView `json:"cards"`
	Value     string     `json:"value"`
	Bet       float64    `json:"bet"`
	Doubled   bool       `json:"doubled"`
	Split     bool       `json:"split"`
	SplitAces bool       `json:"splitAces"`
	Settled   bool       `json:"settled"`
	Result    HandResult `json:"result,omitempty"`
}

// SpotView is the client view of one betting spot
type SpotView struct {
	ID              int            `json:"id"`
	Bet             float64        `json:"bet"`
	SideBets        SideBets       `json:"sideBets"`
	SideBetResults  SideBetResults `json:"sideBetResults"`
	Hands           []HandView     `json:"hands"`
	ActiveHandIndex int            `json:"activeHandIndex"`
}

// TableView is the full client snapshot of a table. The dealer's hole
// card is redacted until it is revealed, and the shoe exposes only its
// remaining size.
type TableView struct {
	TableID          string     `json:"tableId"`
	State            State      `json:"state"`
	Spots            []SpotView `json:"spots"`
	ActiveSpotIndex  int        `json:"activeSpotIndex"`
	BettingSpotIndex int        `json:"bettingSpotIndex"`
	DealerHand       []CardView `json:"dealerHand"`
	DealerValue      string     `json:"dealerValue"`
	ShoeSize         int        `json:"shoeSize"`
	Bankroll         float64    `json:"bankroll"`
	InsuranceBet     float64    `json:"insuranceBet"`
	Message          string     `json:"message"`
	LastWin          float64    `json:"lastWin"`
	LastWinAmount    float64    `json:"lastWinAmount"`
	CanRebet         bool       `json:"canRebet"`
	MinBet           float64    `json:"minBet"`
	ChipValues       []float64  `json:"chipValues"`
	AvailableActions []string   `json:"availableActions"`
}

func buildCardView(card cards.Card) CardView {
	if !card.FaceUp {
		return CardView{FaceUp: false}
	}
	return CardView{Suit: card.Suit, Rank: card.Rank, FaceUp: true}
}

func buildCardViews(stack cards.Stack) []CardView {
	views := make([]CardView, len(stack))
	for i, card := range stack {
		views[i] = buildCardView(card)
	}
	return views
}

func buildHandView(hand Hand) HandView {
	return HandView{
		Cards:     buildCardViews(hand.Cards),
		Value:     blackjack.DisplayValue(hand.Cards),
		Bet:       hand.Bet,
		Doubled:   hand.Doubled,
		Split:     hand.Split,
		SplitAces: hand.SplitAces,
		Settled:   hand.Settled,
		Result:    hand.Result,
	}
}

// View builds the client snapshot of the table in its current state
func (t *Table) View() TableView {
	view := TableView{
		TableID:          t.id,
		State:            t.state,
		ActiveSpotIndex:  t.game.ActiveSpotIndex,
		BettingSpotIndex: t.game.BettingSpotIndex,
		DealerHand:       buildCardViews(t.game.DealerHand),
		DealerValue:      blackjack.DisplayValue(t.game.DealerHand),
		ShoeSize:         t.game.Shoe.Len(),
		Bankroll:         t.game.Bankroll,
		InsuranceBet:     t.game.InsuranceBet,
		Message:          t.game.Message,
		LastWin:          t.game.LastWin,
		LastWinAmount:    t.game.LastWinAmount,
		CanRebet:         t.game.canRebet(),
		MinBet:           t.rules.MinBet,
		ChipValues:       t.rules.ChipValues,
	}

	view.Spots = make([]SpotView, len(t.game.Spots))
	for i, spot := range t.game.Spots {
		spotView := SpotView{
			ID:              spot.ID,
			Bet:             spot.Bet,
			SideBets:        spot.SideBets,
			SideBetResults:  spot.SideBetResults,
			ActiveHandIndex: spot.ActiveHandIndex,
		}
		spotView.Hands = make([]HandView, len(spot.Hands))
		for j, hand := range spot.Hands {
			spotView.Hands[j] = buildHandView(hand)
		}
		view.Spots[i] = spotView
	}

	view.AvailableActions = t.availableActions()

	return view
}

// availableActions lists the commands whose guards currently pass
func (t *Table) availableActions() []string {
	actions := []string{}

	switch t.state {
	case StateBetting:
		actions = append(actions, "select-spot", "add-bet", "add-side-bet")
		if t.game.Spots[t.game.BettingSpotIndex].Bet > 0 {
			actions = append(actions, "double-bet", "clear-bet")
		}
		if t.game.totalBets() > 0 {
			actions = append(actions, "clear-all-bets")
		}
		if t.game.canRebet() {
			actions = append(actions, "rebet")
		}
		if t.hasAnyBet() {
			actions = append(actions, "deal")
		}
	case StateEvenMoney:
		actions = append(actions, "take-even-money", "decline-even-money")
	case StateInsurance:
		if t.game.Bankroll >= t.game.totalMainBets()/2 {
			actions = append(actions, "take-insurance")
		}
		actions = append(actions, "decline-insurance")
	case StatePlayerTurn:
		actions = append(actions, t.playerActions()...)
	case StateSettlement:
		actions = append(actions, "new-round")
		if t.game.canRebet() {
			actions = append(actions, "rebet", "deal")
		}
	}

	return actions
}

func (t *Table) playerActions() []string {
	actions := []string{}

	spot := t.game.currentSpot()
	hand := t.game.currentHand()
	if hand == nil {
		return actions
	}

	if !hand.SplitAces && !blackjack.IsBust(hand.Cards) && blackjack.Value(hand.Cards) < 21 {
		actions = append(actions, "hit")
	}
	actions = append(actions, "stand")
	if blackjack.CanDouble(hand.Cards) && !hand.SplitAces && t.game.Bankroll >= hand.Bet {
		actions = append(actions, "double")
	}
	if blackjack.CanSplit(hand.Cards) && len(spot.Hands) < 4 && t.game.Bankroll >= hand.Bet {
		actions = append(actions, "split")
	}
	if len(hand.Cards) == 2 && !hand.Split && spot.ActiveHandIndex == 0 {
		actions = append(actions, "surrender")
	}

	return actions
}
