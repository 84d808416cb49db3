package game

func (t *Table) handleBettingCommand(cmd Command) {
	switch c := cmd.(type) {
	case SelectSpot:
		t.selectSpot(c.SpotIndex)
	case AddBet:
		t.addBet(c.Amount)
	case DoubleBet:
		t.doubleBet()
	case ClearBet:
		t.clearBet()
	case ClearAllBets:
		t.clearAllBets()
	case AddSideBet:
		t.addSideBet(c.Kind, c.Amount)
	case Rebet:
		t.rebetInBetting()
	case Deal:
		if t.hasAnyBet() {
			t.transitionTo(StateDealing)
		}
	}
}

// hasAnyBet reports whether at least one spot carries the table minimum
func (t *Table) hasAnyBet() bool {
	for _, spot := range t.game.Spots {
		if spot.Bet >= t.rules.MinBet {
			return true
		}
	}
	return false
}

func (t *Table) selectSpot(index int) {
	if index < 0 || index >= len(t.game.Spots) {
		return
	}
	t.game.BettingSpotIndex = index
}

func (t *Table) addBet(amount float64) {
	if amount <= 0 || t.game.Bankroll < amount {
		return
	}

	spot := &t.game.Spots[t.game.BettingSpotIndex]
	spot.Bet += amount
	t.game.Bankroll -= amount

	t.emit(BetPlaced{
		TableID:  t.id,
		Spot:     spot.ID,
		Amount:   amount,
		Total:    spot.Bet,
		Bankroll: t.game.Bankroll,
	})
}

func (t *Table) doubleBet() {
	spot := &t.game.Spots[t.game.BettingSpotIndex]
	current := spot.Bet
	if current == 0 || t.game.Bankroll < current {
		return
	}

	spot.Bet = current * 2
	t.game.Bankroll -= current

	t.emit(BetPlaced{
		TableID:  t.id,
		Spot:     spot.ID,
		Amount:   current,
		Total:    spot.Bet,
		Bankroll: t.game.Bankroll,
	})
}

func (t *Table) clearBet() {
	spot := &t.game.Spots[t.game.BettingSpotIndex]
	refund := spot.Bet + spot.SideBets.Total()
	spot.Bet = 0
	spot.SideBets = SideBets{}
	t.game.Bankroll += refund

	t.emit(BetsCleared{TableID: t.id, Spot: spot.ID, Refund: refund})
}

func (t *Table) clearAllBets() {
	refund := t.game.totalBets()
	t.game.Spots = newSpots(t.rules.SpotCount)
	t.game.Bankroll += refund

	t.emit(BetsCleared{TableID: t.id, Spot: -1, Refund: refund})
}

func (t *Table) addSideBet(kind SideBetKind, amount float64) {
	if amount <= 0 || t.game.Bankroll < amount {
		return
	}

	spot := &t.game.Spots[t.game.BettingSpotIndex]
	switch kind {
	case SideBetTwentyOnePlusThree:
		spot.SideBets.TwentyOnePlusThree += amount
	case SideBetPerfectPairs:
		spot.SideBets.PerfectPairs += amount
	default:
		return
	}
	t.game.Bankroll -= amount

	t.emit(SideBetPlaced{TableID: t.id, Spot: spot.ID, Kind: kind, Amount: amount})
}

// rebetInBetting restores the previous round's bet shape onto the spots
func (t *Table) rebetInBetting() {
	if !t.game.canRebet() {
		return
	}

	total := t.game.PreviousBets.Total()
	for i := range t.game.Spots {
		prev := t.game.PreviousBets.Spots[i]
		t.game.Spots[i].Bet = prev.Bet
		t.game.Spots[i].SideBets = prev.SideBets
	}
	t.game.Bankroll -= total
}
