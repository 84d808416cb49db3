package game

import (
	"github.com/lazharichir/blackjack/blackjack"
	"github.com/lazharichir/blackjack/cards"
)

// runDealerTurn is the dealer-turn entry action: reveal the hole card,
// then draw to 17 unless every player hand is already out of contention.
// The dealer stands on all 17s.
func (t *Table) runDealerTurn() {
	for i := range t.game.DealerHand {
		t.game.DealerHand[i].FaceUp = true
	}
	t.emit(DealerRevealed{TableID: t.id, Hand: t.game.DealerHand})

	if !t.game.noActivePlayerHands() {
		for blackjack.FullValue(t.game.DealerHand) < 17 {
			card := t.mustDeal(true)
			t.game.DealerHand = append(t.game.DealerHand, card)
			t.emit(CardDealt{TableID: t.id, Spot: -1, Hand: 0, Card: card})
		}
	}

	t.transitionTo(StateSettlement)
}

// settle is the settlement entry action. Insurance resolves first, then
// every unsettled hand is compared against the dealer. Hands settled
// earlier in the round keep their result but still count toward the round
// tallies and message.
func (t *Table) settle() {
	dealerValue := blackjack.FullValue(t.game.DealerHand)
	dealerBust := dealerValue > 21
	dealerBlackjack := blackjack.IsBlackjack(t.game.DealerHand)

	wins := 0
	losses := 0

	if t.game.InsuranceBet > 0 && dealerBlackjack {
		// 2:1 plus the stake back.
		t.game.Bankroll += t.game.InsuranceBet * 3
	}

	for i := range t.game.Spots {
		spot := &t.game.Spots[i]
		if spot.Bet == 0 {
			continue
		}

		for j := range spot.Hands {
			hand := &spot.Hands[j]

			if hand.Settled {
				switch hand.Result {
				case ResultWin, ResultBlackjack:
					wins++
				case ResultLose, ResultSurrender:
					losses++
				}
				continue
			}

			playerValue := blackjack.FullValue(hand.Cards)
			playerBlackjack := blackjack.IsBlackjack(hand.Cards) && !hand.Split
			playerBust := playerValue > 21

			var result HandResult
			switch {
			case playerBust:
				result = ResultLose
				losses++
			case playerBlackjack && !dealerBlackjack:
				result = ResultBlackjack
				t.game.Bankroll += hand.Bet * 2.5
				wins++
			case dealerBust:
				result = ResultWin
				t.game.Bankroll += hand.Bet * 2
				wins++
			case playerBlackjack && dealerBlackjack:
				result = ResultPush
				t.game.Bankroll += hand.Bet
			case dealerBlackjack:
				result = ResultLose
				losses++
			case playerValue > dealerValue:
				result = ResultWin
				t.game.Bankroll += hand.Bet * 2
				wins++
			case playerValue < dealerValue:
				result = ResultLose
				losses++
			default:
				result = ResultPush
				t.game.Bankroll += hand.Bet
			}

			hand.Settled = true
			hand.Result = result
			t.emit(HandSettled{TableID: t.id, Spot: spot.ID, Hand: j, Result: result})
		}
	}

	t.tallyRound(dealerBlackjack)

	switch {
	case wins > 0 && losses == 0:
		t.game.Message = "You win!"
	case losses > 0 && wins == 0:
		t.game.Message = "Dealer wins"
	case wins > 0 && losses > 0:
		t.game.Message = "Mixed results"
	default:
		t.game.Message = "Push"
	}

	t.game.InsuranceBet = 0

	t.emit(RoundSettled{
		TableID:       t.id,
		LastWin:       t.game.LastWin,
		LastWinAmount: t.game.LastWinAmount,
		Bankroll:      t.game.Bankroll,
		Message:       t.game.Message,
	})
}

// tallyRound computes LastWin (net profit or loss across insurance, main
// bets, and side bets) and LastWinAmount (gross returned from winning and
// pushed wagers)
func (t *Table) tallyRound(dealerBlackjack bool) {
	lastWin := 0.0
	lastWinAmount := 0.0

	if t.game.InsuranceBet > 0 {
		if dealerBlackjack {
			lastWin += t.game.InsuranceBet * 2
			lastWinAmount += t.game.InsuranceBet * 3
		} else {
			lastWin -= t.game.InsuranceBet
		}
	}

	for _, spot := range t.game.Spots {
		if spot.Bet == 0 {
			continue
		}

		for _, hand := range spot.Hands {
			switch hand.Result {
			case ResultBlackjack:
				lastWin += hand.Bet * 1.5
				lastWinAmount += hand.Bet * 2.5
			case ResultWin:
				lastWin += hand.Bet
				lastWinAmount += hand.Bet * 2
			case ResultLose:
				lastWin -= hand.Bet
			case ResultSurrender:
				lastWin -= hand.Bet / 2
				lastWinAmount += hand.Bet / 2
			case ResultPush:
				lastWinAmount += hand.Bet
			}
		}

		if spot.SideBets.TwentyOnePlusThree > 0 {
			if result := spot.SideBetResults.TwentyOnePlusThree; result != "" {
				payout := blackjack.TwentyOnePlusThreePayouts[result]
				lastWin += spot.SideBets.TwentyOnePlusThree * (payout - 1)
				lastWinAmount += spot.SideBets.TwentyOnePlusThree * payout
			} else {
				lastWin -= spot.SideBets.TwentyOnePlusThree
			}
		}
		if spot.SideBets.PerfectPairs > 0 {
			if result := spot.SideBetResults.PerfectPairs; result != "" {
				payout := blackjack.PerfectPairsPayouts[result]
				lastWin += spot.SideBets.PerfectPairs * (payout - 1)
				lastWinAmount += spot.SideBets.PerfectPairs * payout
			} else {
				lastWin -= spot.SideBets.PerfectPairs
			}
		}
	}

	t.game.LastWin = lastWin
	t.game.LastWinAmount = lastWinAmount
}

func (t *Table) handleSettlementCommand(cmd Command) {
	switch cmd.(type) {
	case NewRound:
		t.resetRound()
		t.game.Message = "Place your bets"
		t.state = StateBetting
		t.emit(StateChanged{TableID: t.id, From: StateSettlement, To: StateBetting})
		t.emit(RoundReset{TableID: t.id})
	case Rebet:
		if !t.game.canRebet() {
			return
		}
		t.resetRound()
		t.restorePreviousBets()
		t.game.Message = "Place your bets"
		t.state = StateBetting
		t.emit(StateChanged{TableID: t.id, From: StateSettlement, To: StateBetting})
		t.emit(RoundReset{TableID: t.id})
	case Deal:
		if !t.game.canRebet() {
			return
		}
		t.resetRound()
		t.restorePreviousBets()
		t.transitionTo(StateDealing)
	}
}

// resetRound clears the table for a new round. The bankroll, shoe, and
// previous-bets snapshot carry over.
func (t *Table) resetRound() {
	t.game.Spots = newSpots(t.rules.SpotCount)
	t.game.DealerHand = cards.Stack{}
	t.game.ActiveSpotIndex = 0
	t.game.BettingSpotIndex = t.rules.SpotCount / 2
	t.game.InsuranceBet = 0
}

// restorePreviousBets replays the snapshotted bet shape and deducts its
// cost. Callers guard with canRebet.
func (t *Table) restorePreviousBets() {
	total := t.game.PreviousBets.Total()
	for i := range t.game.Spots {
		prev := t.game.PreviousBets.Spots[i]
		t.game.Spots[i].Bet = prev.Bet
		t.game.Spots[i].SideBets = prev.SideBets
	}
	t.game.Bankroll -= total
}
