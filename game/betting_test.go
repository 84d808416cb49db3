package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/config"
)

func testTable() *Table {
	return NewTable("test-table", config.Default(), 1)
}

// rigShoe replaces the table's shoe with a fixed deal order
func rigShoe(tbl *Table, shorthand ...string) {
	tbl.game.Shoe = cards.NewStackedShoe(stackOf(shorthand...)...)
}

func stackOf(shorthand ...string) cards.Stack {
	stack := make(cards.Stack, 0, len(shorthand))
	for _, s := range shorthand {
		stack = append(stack, cards.MustCardFromString(s))
	}
	return stack
}

func TestNewTableStartsInBetting(t *testing.T) {
	tbl := testTable()

	assert.Equal(t, StateBetting, tbl.State())
	assert.Equal(t, 2500.0, tbl.game.Bankroll)
	assert.Equal(t, 312, tbl.game.Shoe.Len())
	assert.Equal(t, 3, tbl.game.BettingSpotIndex, "betting starts on the middle spot")
	assert.Len(t, tbl.game.Spots, 7)
}

func TestSelectSpot(t *testing.T) {
	tbl := testTable()

	tbl.HandleCommand(SelectSpot{SpotIndex: 0})
	assert.Equal(t, 0, tbl.game.BettingSpotIndex)

	tbl.HandleCommand(SelectSpot{SpotIndex: 9})
	assert.Equal(t, 0, tbl.game.BettingSpotIndex, "out of range selection is ignored")

	tbl.HandleCommand(SelectSpot{SpotIndex: -1})
	assert.Equal(t, 0, tbl.game.BettingSpotIndex)
}

func TestAddBetDeductsBankroll(t *testing.T) {
	tbl := testTable()

	tbl.HandleCommand(AddBet{Amount: 25})
	assert.Equal(t, 25.0, tbl.game.Spots[3].Bet)
	assert.Equal(t, 2475.0, tbl.game.Bankroll)

	tbl.HandleCommand(AddBet{Amount: 25})
	assert.Equal(t, 50.0, tbl.game.Spots[3].Bet)
	assert.Equal(t, 2450.0, tbl.game.Bankroll)
}

func TestAddBetInsufficientBankrollIsNoOp(t *testing.T) {
	tbl := testTable()

	tbl.HandleCommand(AddBet{Amount: 5000})
	assert.Equal(t, 0.0, tbl.game.Spots[3].Bet)
	assert.Equal(t, 2500.0, tbl.game.Bankroll)
}

func TestDoubleBet(t *testing.T) {
	tbl := testTable()

	tbl.HandleCommand(DoubleBet{})
	assert.Equal(t, 0.0, tbl.game.Spots[3].Bet, "nothing to double")

	tbl.HandleCommand(AddBet{Amount: 100})
	tbl.HandleCommand(DoubleBet{})
	assert.Equal(t, 200.0, tbl.game.Spots[3].Bet)
	assert.Equal(t, 2300.0, tbl.game.Bankroll)
}

func TestClearBetRefundsMainAndSideBets(t *testing.T) {
	tbl := testTable()

	tbl.HandleCommand(AddBet{Amount: 25})
	tbl.HandleCommand(AddSideBet{Kind: SideBetTwentyOnePlusThree, Amount: 10})
	tbl.HandleCommand(AddSideBet{Kind: SideBetPerfectPairs, Amount: 5})
	require.Equal(t, 2460.0, tbl.game.Bankroll)

	tbl.HandleCommand(ClearBet{})
	assert.Equal(t, 0.0, tbl.game.Spots[3].Bet)
	assert.Equal(t, SideBets{}, tbl.game.Spots[3].SideBets)
	assert.Equal(t, 2500.0, tbl.game.Bankroll)
}

func TestClearAllBetsRefundsEverySpot(t *testing.T) {
	tbl := testTable()

	tbl.HandleCommand(SelectSpot{SpotIndex: 0})
	tbl.HandleCommand(AddBet{Amount: 25})
	tbl.HandleCommand(SelectSpot{SpotIndex: 6})
	tbl.HandleCommand(AddBet{Amount: 50})
	require.Equal(t, 2425.0, tbl.game.Bankroll)

	tbl.HandleCommand(ClearAllBets{})
	for _, spot := range tbl.game.Spots {
		assert.Equal(t, 0.0, spot.Bet)
	}
	assert.Equal(t, 2500.0, tbl.game.Bankroll)
}

func TestAddSideBetUnknownKindIsNoOp(t *testing.T) {
	tbl := testTable()

	tbl.HandleCommand(AddSideBet{Kind: "luckyLadies", Amount: 10})
	assert.Equal(t, 2500.0, tbl.game.Bankroll)
}

func TestDealRequiresMinimumBet(t *testing.T) {
	tbl := testTable()

	tbl.HandleCommand(Deal{})
	assert.Equal(t, StateBetting, tbl.State())

	tbl.HandleCommand(AddBet{Amount: 3})
	tbl.HandleCommand(Deal{})
	assert.Equal(t, StateBetting, tbl.State(), "bet below table minimum")

	tbl.HandleCommand(AddBet{Amount: 2})
	tbl.HandleCommand(Deal{})
	assert.NotEqual(t, StateBetting, tbl.State())
}

func TestRebetInBettingRestoresPreviousShape(t *testing.T) {
	tbl := testTable()
	rigShoe(tbl,
		"10♠", "9♥", "8♦", "9♣", // round 1: player, dealer
		"10♦", "10♥", // round 2 player
	)

	tbl.HandleCommand(SelectSpot{SpotIndex: 0})
	tbl.HandleCommand(AddBet{Amount: 25})
	tbl.HandleCommand(AddSideBet{Kind: SideBetPerfectPairs, Amount: 5})
	tbl.HandleCommand(Deal{})
	tbl.HandleCommand(Stand{})
	require.Equal(t, StateSettlement, tbl.State())

	tbl.HandleCommand(NewRound{})
	require.Equal(t, StateBetting, tbl.State())

	bankrollBefore := tbl.game.Bankroll
	tbl.HandleCommand(Rebet{})
	assert.Equal(t, 25.0, tbl.game.Spots[0].Bet)
	assert.Equal(t, 5.0, tbl.game.Spots[0].SideBets.PerfectPairs)
	assert.Equal(t, bankrollBefore-30, tbl.game.Bankroll)
}

func TestRebetWithoutPreviousBetsIsNoOp(t *testing.T) {
	tbl := testTable()

	tbl.HandleCommand(Rebet{})
	assert.Equal(t, 2500.0, tbl.game.Bankroll)
	for _, spot := range tbl.game.Spots {
		assert.Equal(t, 0.0, spot.Bet)
	}
}
