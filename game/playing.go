package game

import (
	"fmt"

	"github.com/lazharichir/blackjack/blackjack"
	"github.com/lazharichir/blackjack/cards"
)

// runPlayerTurnCascade is the player-turn entry action. It runs the
// automatic guards in priority order until the machine either settles on a
// playable hand or hands control to the dealer. Hands sitting on 21 and
// split-aces hands never wait for input.
func (t *Table) runPlayerTurnCascade() {
	if t.game.allSpotsSettled() {
		t.transitionTo(StateDealerTurn)
		return
	}

	if t.game.currentSpotSettled() {
		if next := t.game.findNextActiveSpotIndex(t.game.ActiveSpotIndex); next != -1 {
			t.moveToSpot(next)
			t.runPlayerTurnCascade()
			return
		}
	}

	hand := t.game.currentHand()
	if hand == nil {
		return
	}

	if blackjack.Value(hand.Cards) == 21 || hand.SplitAces {
		if t.game.spotHasMoreHands() {
			t.moveToNextHand()
			t.runPlayerTurnCascade()
			return
		}
		if next := t.game.findNextActiveSpotIndex(t.game.ActiveSpotIndex); next != -1 {
			t.moveToSpot(next)
			t.runPlayerTurnCascade()
			return
		}
		t.transitionTo(StateDealerTurn)
		return
	}

	// A playable hand remains; wait for input.
}

func (t *Table) handlePlayerTurnCommand(cmd Command) {
	switch cmd.(type) {
	case Hit:
		t.hit()
	case Stand:
		t.stand()
	case Double:
		t.double()
	case Split:
		t.split()
	case Surrender:
		t.surrender()
	}
}

func (t *Table) hit() {
	hand := t.game.currentHand()
	if hand == nil || hand.SplitAces || blackjack.IsBust(hand.Cards) || blackjack.Value(hand.Cards) >= 21 {
		return
	}

	spot := t.game.currentSpot()
	card := t.mustDeal(true)
	hand.Cards = append(hand.Cards, card)
	t.emit(CardDealt{TableID: t.id, Spot: spot.ID, Hand: spot.ActiveHandIndex, Card: card})

	t.game.Message = fmt.Sprintf("Spot %d - Your turn", t.game.ActiveSpotIndex+1)
	bonus := t.awardTripleSeven(hand)

	if blackjack.IsBust(hand.Cards) {
		hand.Settled = true
		hand.Result = ResultLose
		if !bonus {
			t.game.Message = "Bust!"
		}
		t.emit(HandSettled{TableID: t.id, Spot: spot.ID, Hand: spot.ActiveHandIndex, Result: ResultLose})
	}

	t.transitionTo(StateAfterHit)
}

// awardTripleSeven pays the triple-seven bonus, once per hand, equal to
// the hand's current bet. Reports whether the bonus fired.
func (t *Table) awardTripleSeven(hand *Hand) bool {
	if hand.TripleSevenAwarded || !blackjack.IsTripleSeven(hand.Cards) {
		return false
	}

	spot := t.game.currentSpot()
	hand.TripleSevenAwarded = true
	bonus := hand.Bet
	t.game.Bankroll += bonus
	t.game.Message = fmt.Sprintf("Triple 7s! Bonus +$%.0f!", bonus)
	t.emit(TripleSevenBonus{TableID: t.id, Spot: spot.ID, Hand: spot.ActiveHandIndex, Bonus: bonus})
	return true
}

// branchAfterHit resumes the same hand while it can still act, otherwise
// advances like a stand
func (t *Table) branchAfterHit() {
	hand := t.game.currentHand()
	if hand != nil && !blackjack.IsBust(hand.Cards) && blackjack.Value(hand.Cards) < 21 {
		t.transitionTo(StatePlayerTurn)
		return
	}

	if t.game.allSpotsSettled() {
		t.transitionTo(StateDealerTurn)
		return
	}

	t.advanceOrFinish()
}

func (t *Table) stand() {
	t.game.Message = fmt.Sprintf("Spot %d - Stand", t.game.ActiveSpotIndex+1)
	t.advanceOrFinish()
}

// advanceOrFinish moves to the next hand in the spot, else the next
// eligible spot, else the dealer turn. It is the shared tail of stand,
// double, and a finished hit.
func (t *Table) advanceOrFinish() {
	if t.game.spotHasMoreHands() {
		t.moveToNextHand()
		t.transitionTo(StatePlayerTurn)
		return
	}
	if next := t.game.findNextActiveSpotIndex(t.game.ActiveSpotIndex); next != -1 {
		t.moveToSpot(next)
		t.transitionTo(StatePlayerTurn)
		return
	}
	t.transitionTo(StateDealerTurn)
}

func (t *Table) moveToNextHand() {
	spot := t.game.currentSpot()
	spot.ActiveHandIndex++
	t.game.Message = fmt.Sprintf("Spot %d - Hand %d", t.game.ActiveSpotIndex+1, spot.ActiveHandIndex+1)
}

func (t *Table) moveToSpot(index int) {
	t.game.ActiveSpotIndex = index
	t.game.Message = fmt.Sprintf("Spot %d - Your turn", index+1)
}

func (t *Table) double() {
	hand := t.game.currentHand()
	if hand == nil || !blackjack.CanDouble(hand.Cards) || hand.SplitAces || t.game.Bankroll < hand.Bet {
		return
	}

	spot := t.game.currentSpot()
	originalBet := hand.Bet

	card := t.mustDeal(true)
	hand.Cards = append(hand.Cards, card)
	hand.Bet *= 2
	hand.Doubled = true
	t.game.Bankroll -= originalBet
	t.emit(CardDealt{TableID: t.id, Spot: spot.ID, Hand: spot.ActiveHandIndex, Card: card})

	t.game.Message = "Doubled down"
	if !hand.TripleSevenAwarded && blackjack.IsTripleSeven(hand.Cards) {
		hand.TripleSevenAwarded = true
		bonus := hand.Bet
		t.game.Bankroll += bonus
		t.game.Message = fmt.Sprintf("Doubled + Triple 7s! Bonus +$%.0f!", bonus)
		t.emit(TripleSevenBonus{TableID: t.id, Spot: spot.ID, Hand: spot.ActiveHandIndex, Bonus: bonus})
	}

	t.transitionTo(StateAfterDouble)
}

func (t *Table) split() {
	spot := t.game.currentSpot()
	hand := t.game.currentHand()
	if hand == nil || !blackjack.CanSplit(hand.Cards) || len(spot.Hands) >= 4 || t.game.Bankroll < hand.Bet {
		return
	}

	first, second := hand.Cards[0], hand.Cards[1]
	splittingAces := first.Rank == cards.Ace

	firstDraw := t.mustDeal(true)
	secondDraw := t.mustDeal(true)

	hand1 := Hand{
		Cards:     cards.NewStack(first, firstDraw),
		Bet:       hand.Bet,
		Split:     true,
		SplitAces: splittingAces,
	}
	hand2 := Hand{
		Cards:     cards.NewStack(second, secondDraw),
		Bet:       hand.Bet,
		Split:     true,
		SplitAces: splittingAces,
	}

	hands := make([]Hand, 0, len(spot.Hands)+1)
	hands = append(hands, spot.Hands[:spot.ActiveHandIndex]...)
	hands = append(hands, hand1, hand2)
	hands = append(hands, spot.Hands[spot.ActiveHandIndex+1:]...)
	spot.Hands = hands

	t.game.Bankroll -= hand.Bet
	t.game.Message = "Hand split"
	t.emit(HandSplit{TableID: t.id, Spot: spot.ID, Aces: splittingAces})
	t.emit(CardDealt{TableID: t.id, Spot: spot.ID, Hand: spot.ActiveHandIndex, Card: firstDraw})
	t.emit(CardDealt{TableID: t.id, Spot: spot.ID, Hand: spot.ActiveHandIndex + 1, Card: secondDraw})

	t.runPlayerTurnCascade()
}

func (t *Table) surrender() {
	spot := t.game.currentSpot()
	hand := t.game.currentHand()
	if hand == nil || len(hand.Cards) != 2 || hand.Split || spot.ActiveHandIndex != 0 {
		return
	}

	hand.Settled = true
	hand.Result = ResultSurrender
	t.game.Bankroll += hand.Bet / 2
	t.game.Message = "Surrendered"
	t.emit(HandSettled{TableID: t.id, Spot: spot.ID, Hand: spot.ActiveHandIndex, Result: ResultSurrender})

	t.runPlayerTurnCascade()
}
