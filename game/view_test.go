package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazharichir/blackjack/cards"
)

func TestViewRedactsHoleCard(t *testing.T) {
	tbl := testTable()
	rigShoe(tbl,
		"10♠", "9♥",
		"6♦", "10♣",
		"9♣",
	)

	tbl.HandleCommand(SelectSpot{SpotIndex: 0})
	tbl.HandleCommand(AddBet{Amount: 25})
	tbl.HandleCommand(Deal{})
	require.Equal(t, StatePlayerTurn, tbl.State())

	view := tbl.View()
	require.Len(t, view.DealerHand, 2)
	assert.Equal(t, cards.Diamonds, view.DealerHand[0].Suit)
	assert.Equal(t, cards.Six, view.DealerHand[0].Rank)

	hole := view.DealerHand[1]
	assert.False(t, hole.FaceUp)
	assert.Empty(t, hole.Suit, "hole card identity must not leak")
	assert.Empty(t, hole.Rank)
	assert.Equal(t, "6", view.DealerValue, "only the up card counts")

	tbl.HandleCommand(Stand{})
	view = tbl.View()
	assert.True(t, view.DealerHand[1].FaceUp)
	assert.Equal(t, cards.Ten, view.DealerHand[1].Rank)
}

func TestViewExposesShoeSizeOnly(t *testing.T) {
	tbl := testTable()
	view := tbl.View()
	assert.Equal(t, 312, view.ShoeSize)
}

func TestAvailableActionsInBetting(t *testing.T) {
	tbl := testTable()

	actions := tbl.View().AvailableActions
	assert.Contains(t, actions, "select-spot")
	assert.Contains(t, actions, "add-bet")
	assert.NotContains(t, actions, "deal", "no qualifying bet yet")
	assert.NotContains(t, actions, "rebet")

	tbl.HandleCommand(AddBet{Amount: 25})
	actions = tbl.View().AvailableActions
	assert.Contains(t, actions, "deal")
	assert.Contains(t, actions, "clear-bet")
	assert.Contains(t, actions, "double-bet")
}

func TestAvailableActionsInPlayerTurn(t *testing.T) {
	tbl := testTable()
	rigShoe(tbl,
		"8♠", "8♣",
		"10♦", "7♥",
	)

	tbl.HandleCommand(SelectSpot{SpotIndex: 0})
	tbl.HandleCommand(AddBet{Amount: 25})
	tbl.HandleCommand(Deal{})
	require.Equal(t, StatePlayerTurn, tbl.State())

	actions := tbl.View().AvailableActions
	assert.Contains(t, actions, "hit")
	assert.Contains(t, actions, "stand")
	assert.Contains(t, actions, "double")
	assert.Contains(t, actions, "split")
	assert.Contains(t, actions, "surrender")
}

func TestAvailableActionsAfterSplitExcludeSurrender(t *testing.T) {
	tbl := testTable()
	rigShoe(tbl,
		"8♠", "8♣",
		"10♦", "7♥",
		"3♥", "5♦",
	)

	tbl.HandleCommand(SelectSpot{SpotIndex: 0})
	tbl.HandleCommand(AddBet{Amount: 25})
	tbl.HandleCommand(Deal{})
	tbl.HandleCommand(Split{})
	require.Equal(t, StatePlayerTurn, tbl.State())

	actions := tbl.View().AvailableActions
	assert.Contains(t, actions, "hit")
	assert.NotContains(t, actions, "surrender", "split hands cannot surrender")
}

func TestAvailableActionsInSettlement(t *testing.T) {
	tbl := testTable()
	rigShoe(tbl,
		"10♠", "9♥",
		"10♦", "9♣",
	)

	tbl.HandleCommand(SelectSpot{SpotIndex: 0})
	tbl.HandleCommand(AddBet{Amount: 25})
	tbl.HandleCommand(Deal{})
	tbl.HandleCommand(Stand{})
	require.Equal(t, StateSettlement, tbl.State())

	actions := tbl.View().AvailableActions
	assert.Contains(t, actions, "new-round")
	assert.Contains(t, actions, "rebet")
	assert.Contains(t, actions, "deal")
}

func TestViewCarriesRules(t *testing.T) {
	tbl := testTable()
	view := tbl.View()

	assert.Equal(t, 5.0, view.MinBet)
	assert.Equal(t, []float64{5, 25, 100, 500, 1000}, view.ChipValues)
	assert.Equal(t, "test-table", view.TableID)
	assert.Equal(t, StateBetting, view.State)
}

func TestViewHandValues(t *testing.T) {
	tbl := testTable()
	rigShoe(tbl,
		"A♠", "7♥", // soft 18
		"10♦", "9♣",
	)

	tbl.HandleCommand(SelectSpot{SpotIndex: 0})
	tbl.HandleCommand(AddBet{Amount: 25})
	tbl.HandleCommand(Deal{})

	view := tbl.View()
	require.Len(t, view.Spots[0].Hands, 1)
	assert.Equal(t, "8 / 18", view.Spots[0].Hands[0].Value)
}
