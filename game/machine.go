// Package game implements the round state machine of a seven-spot
// blackjack table: betting, dealing, the even-money and insurance offers,
// per-spot player turns, dealer play, and settlement. The machine is an
// explicit state enum plus guarded command handlers; automatic transitions
// run to a fixed point inside HandleCommand, so callers only ever observe
// a state that is waiting for input.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/config"
)

// State identifies where in the round the table is
type State string

const (
	StateBetting        State = "betting"
	StateDealing        State = "dealing"
	StateEvenMoney      State = "even_money"
	StateAfterEvenMoney State = "after_even_money"
	StateInsurance      State = "insurance"
	StateCheckBlackjack State = "check_blackjacks"
	StatePlayerTurn     State = "player_turn"
	StateAfterHit       State = "after_hit"
	StateAfterDouble    State = "after_double"
	StateDealerTurn     State = "dealer_turn"
	StateSettlement     State = "settlement"
)

// Table is one blackjack table session. All round state lives in its
// GameContext and is only mutated inside HandleCommand; nothing escapes
// except copies (View) and emitted events.
type Table struct {
	id       string
	rules    config.Rules
	rng      *rand.Rand
	state    State
	game     GameContext
	handlers []EventHandler
}

// NewTable creates a table in the betting state with a freshly shuffled
// shoe. Seed 0 draws a seed from the clock.
func NewTable(id string, rules config.Rules, seed int64) *Table {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	return &Table{
		id:    id,
		rules: rules,
		rng:   rng,
		state: StateBetting,
		game: GameContext{
			Shoe:             cards.NewShoe(rules.DeckCount, rng),
			Spots:            newSpots(rules.SpotCount),
			BettingSpotIndex: rules.SpotCount / 2, // start in the middle spot
			Bankroll:         rules.InitialBankroll,
			Message:          "Select a spot and place your bet",
		},
	}
}

// ID returns the table's identifier
func (t *Table) ID() string { return t.id }

// State returns the current machine state
func (t *Table) State() State { return t.state }

// Rules returns the table's rule set
func (t *Table) Rules() config.Rules { return t.rules }

// OnEvent registers a handler that will receive every emitted event
func (t *Table) OnEvent(handler EventHandler) {
	t.handlers = append(t.handlers, handler)
}

func (t *Table) emit(event Event) {
	for _, handler := range t.handlers {
		handler(event)
	}
}

// HandleCommand applies one player command. Commands that are not legal in
// the current state, or whose guard fails, are ignored. Any automatic
// transitions the command triggers complete before HandleCommand returns.
func (t *Table) HandleCommand(cmd Command) {
	switch t.state {
	case StateBetting:
		t.handleBettingCommand(cmd)
	case StateEvenMoney:
		t.handleEvenMoneyCommand(cmd)
	case StateInsurance:
		t.handleInsuranceCommand(cmd)
	case StatePlayerTurn:
		t.handlePlayerTurnCommand(cmd)
	case StateSettlement:
		t.handleSettlementCommand(cmd)
	default:
		// dealing, check_blackjacks, after_* and dealer_turn are
		// transient; they never wait for input
	}
}

// transitionTo switches states and runs the new state's entry behaviour.
// Transient states chain further transitions; the recursion is bounded by
// the finite number of spots and hands in a round.
func (t *Table) transitionTo(next State) {
	from := t.state
	t.state = next
	t.emit(StateChanged{TableID: t.id, From: from, To: next})

	switch next {
	case StateDealing:
		t.dealInitialCards()
		t.branchAfterDealing()
	case StateAfterEvenMoney:
		t.branchAfterEvenMoney()
	case StateCheckBlackjack:
		t.branchCheckBlackjacks()
	case StatePlayerTurn:
		t.runPlayerTurnCascade()
	case StateAfterHit:
		t.branchAfterHit()
	case StateAfterDouble:
		t.advanceOrFinish()
	case StateDealerTurn:
		t.runDealerTurn()
	case StateSettlement:
		t.settle()
	}
}

// mustDeal draws from the shoe. An empty shoe is a broken reshuffle
// invariant; continuing would corrupt the settlement math, so fail loudly.
func (t *Table) mustDeal(faceUp bool) cards.Card {
	card, err := t.game.Shoe.Deal(faceUp)
	if err != nil {
		panic(fmt.Sprintf("table %s: %v", t.id, err))
	}
	return card
}
