package game

import (
	"fmt"

	"github.com/lazharichir/blackjack/blackjack"
	"github.com/lazharichir/blackjack/cards"
)

// dealInitialCards is the dealing entry action: reshuffle if the shoe has
// run down, deal two cards to every funded spot and two to the dealer
// (hole card down), settle both side bets immediately, and snapshot the
// bets for rebet.
func (t *Table) dealInitialCards() {
	if t.game.Shoe.NeedsShuffle(t.rules.ReshuffleThreshold) {
		t.game.Shoe = cards.NewShoe(t.rules.DeckCount, t.rng)
		t.emit(ShoeShuffled{TableID: t.id, Cards: t.game.Shoe.Len()})
	}

	// Snapshot the bet shape before anything else touches the spots.
	previous := &PreviousBets{Spots: make([]SpotBets, len(t.game.Spots))}
	for i, spot := range t.game.Spots {
		previous.Spots[i] = SpotBets{Bet: spot.Bet, SideBets: spot.SideBets}
	}

	for i := range t.game.Spots {
		spot := &t.game.Spots[i]
		if spot.Bet == 0 {
			continue
		}

		hand := newHand(spot.Bet)
		for j := 0; j < 2; j++ {
			card := t.mustDeal(true)
			hand.Cards = append(hand.Cards, card)
			t.emit(CardDealt{TableID: t.id, Spot: spot.ID, Hand: 0, Card: card})
		}
		spot.Hands = []Hand{hand}
		spot.ActiveHandIndex = 0
	}

	upCard := t.mustDeal(true)
	holeCard := t.mustDeal(false)
	t.game.DealerHand = cards.NewStack(upCard, holeCard)
	t.emit(CardDealt{TableID: t.id, Spot: -1, Hand: 0, Card: upCard})

	t.settleSideBets(upCard)

	t.game.ActiveSpotIndex = t.firstPlayableSpot()
	t.game.PreviousBets = previous
	t.game.Message = fmt.Sprintf("Spot %d - Your turn", t.game.ActiveSpotIndex+1)

	t.emit(RoundDealt{TableID: t.id, DealerUpCard: upCard})
}

// settleSideBets evaluates and pays both side bets per spot. Results are
// fixed here and never revisited; settlement only reads them back for the
// round tallies.
func (t *Table) settleSideBets(dealerUpCard cards.Card) {
	for i := range t.game.Spots {
		spot := &t.game.Spots[i]
		if spot.Bet == 0 || len(spot.Hands) == 0 {
			continue
		}

		playerCards := spot.Hands[0].Cards

		if spot.SideBets.TwentyOnePlusThree > 0 {
			result := blackjack.EvaluateTwentyOnePlusThree(playerCards, dealerUpCard)
			spot.SideBetResults.TwentyOnePlusThree = result

			payout := 0.0
			if result != "" {
				payout = spot.SideBets.TwentyOnePlusThree * blackjack.TwentyOnePlusThreePayouts[result]
				t.game.Bankroll += payout
			}
			t.emit(SideBetSettled{
				TableID: t.id,
				Spot:    spot.ID,
				Kind:    SideBetTwentyOnePlusThree,
				Result:  string(result),
				Payout:  payout,
			})
		}

		if spot.SideBets.PerfectPairs > 0 {
			result := blackjack.EvaluatePerfectPairs(playerCards)
			spot.SideBetResults.PerfectPairs = result

			payout := 0.0
			if result != "" {
				payout = spot.SideBets.PerfectPairs * blackjack.PerfectPairsPayouts[result]
				t.game.Bankroll += payout
			}
			t.emit(SideBetSettled{
				TableID: t.id,
				Spot:    spot.ID,
				Kind:    SideBetPerfectPairs,
				Result:  string(result),
				Payout:  payout,
			})
		}
	}
}

// firstPlayableSpot picks the first funded spot without a blackjack, or
// the first funded spot when every hand is a blackjack
func (t *Table) firstPlayableSpot() int {
	firstFunded := -1
	for i, spot := range t.game.Spots {
		if spot.Bet == 0 || len(spot.Hands) == 0 {
			continue
		}
		if firstFunded == -1 {
			firstFunded = i
		}
		if !blackjack.IsBlackjack(spot.Hands[0].Cards) {
			return i
		}
	}
	if firstFunded != -1 {
		return firstFunded
	}
	return 0
}

// branchAfterDealing routes out of dealing: the even-money offer when the
// dealer shows an ace against a live blackjack, the insurance offer on a
// bare ace, otherwise straight to the blackjack check.
func (t *Table) branchAfterDealing() {
	dealerShowsAce := len(t.game.DealerHand) > 0 && t.game.DealerHand[0].Rank == cards.Ace

	switch {
	case dealerShowsAce && t.game.anyPlayerHasBlackjack():
		t.transitionTo(StateEvenMoney)
	case dealerShowsAce:
		t.transitionTo(StateInsurance)
	default:
		t.transitionTo(StateCheckBlackjack)
	}
}

func (t *Table) handleEvenMoneyCommand(cmd Command) {
	switch cmd.(type) {
	case TakeEvenMoney:
		t.takeEvenMoney()
		t.transitionTo(StateAfterEvenMoney)
	case DeclineEvenMoney:
		// With nothing but blackjacks on the table there is nothing
		// left worth insuring.
		if t.game.allActiveSpotsHaveBlackjack() {
			t.transitionTo(StateCheckBlackjack)
		} else {
			t.transitionTo(StateInsurance)
		}
	}
}

// takeEvenMoney settles every live blackjack at 1:1 in a single action
func (t *Table) takeEvenMoney() {
	for i := range t.game.Spots {
		spot := &t.game.Spots[i]
		if spot.Bet == 0 || len(spot.Hands) == 0 {
			continue
		}

		for j := range spot.Hands {
			hand := &spot.Hands[j]
			if !blackjack.IsBlackjack(hand.Cards) || hand.Settled {
				continue
			}

			// 1:1 means the stake back plus the same again.
			t.game.Bankroll += hand.Bet * 2
			hand.Settled = true
			hand.Result = ResultWin
			t.emit(HandSettled{TableID: t.id, Spot: spot.ID, Hand: j, Result: ResultWin})
		}
	}

	t.game.Message = "Even money taken"
}

// branchAfterEvenMoney skips insurance when even money settled everything
func (t *Table) branchAfterEvenMoney() {
	if t.game.allSpotsSettled() {
		t.transitionTo(StateCheckBlackjack)
	} else {
		t.transitionTo(StateInsurance)
	}
}

func (t *Table) handleInsuranceCommand(cmd Command) {
	switch cmd.(type) {
	case TakeInsurance:
		cost := t.game.totalMainBets() / 2
		if t.game.Bankroll < cost {
			return
		}
		t.game.InsuranceBet = cost
		t.game.Bankroll -= cost
		t.emit(InsuranceTaken{TableID: t.id, Amount: cost})
		t.transitionTo(StateCheckBlackjack)
	case DeclineInsurance:
		t.transitionTo(StateCheckBlackjack)
	}
}

// branchCheckBlackjacks skips the player turn entirely when the dealer
// already has blackjack; the hole card is revealed on the way into the
// dealer turn and everything resolves at settlement.
func (t *Table) branchCheckBlackjacks() {
	if blackjack.IsBlackjack(t.game.DealerHand) {
		t.transitionTo(StateDealerTurn)
	} else {
		t.transitionTo(StatePlayerTurn)
	}
}
