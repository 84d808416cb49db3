package cards

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShoeSize(t *testing.T) {
	shoe := NewShoe(6, rand.New(rand.NewSource(1)))
	assert.Equal(t, 312, shoe.Len())
	assert.Equal(t, 6, shoe.Decks())
}

func TestNewShoeContainsSixOfEachCard(t *testing.T) {
	shoe := NewShoe(6, rand.New(rand.NewSource(1)))

	counts := make(map[string]int)
	for shoe.Len() > 0 {
		card, err := shoe.Deal(true)
		require.NoError(t, err)
		counts[card.String()]++
	}

	assert.Len(t, counts, 52)
	for name, count := range counts {
		assert.Equal(t, 6, count, "card %s", name)
	}
}

func TestNewShoeIsDeterministicForSeed(t *testing.T) {
	a := NewShoe(6, rand.New(rand.NewSource(42)))
	b := NewShoe(6, rand.New(rand.NewSource(42)))

	for a.Len() > 0 {
		cardA, err := a.Deal(true)
		require.NoError(t, err)
		cardB, err := b.Deal(true)
		require.NoError(t, err)
		assert.True(t, cardA.Equals(cardB))
	}
}

func TestDealOverridesOrientation(t *testing.T) {
	shoe := NewStackedShoe(
		MustCardFromString("A♠"),
		MustCardFromString("K♥"),
	)

	up, err := shoe.Deal(true)
	require.NoError(t, err)
	assert.True(t, up.FaceUp)

	down, err := shoe.Deal(false)
	require.NoError(t, err)
	assert.False(t, down.FaceUp)
	assert.Equal(t, King, down.Rank)
}

func TestDealFromEmptyShoe(t *testing.T) {
	shoe := NewStackedShoe()
	_, err := shoe.Deal(true)
	require.ErrorIs(t, err, ErrEmptyShoe)
}

func TestNeedsShuffleBoundary(t *testing.T) {
	// 6 decks at threshold 0.25 reshuffles below 78 cards.
	shoe := NewShoe(6, rand.New(rand.NewSource(1)))

	for shoe.Len() > 78 {
		_, err := shoe.Deal(true)
		require.NoError(t, err)
	}
	assert.False(t, shoe.NeedsShuffle(0.25), "78 cards is exactly the cut, not below it")

	_, err := shoe.Deal(true)
	require.NoError(t, err)
	assert.True(t, shoe.NeedsShuffle(0.25), "77 cards is below the cut")
}

func TestStackedShoeNeverNeedsShuffle(t *testing.T) {
	shoe := NewStackedShoe(MustCardFromString("A♠"))
	assert.False(t, shoe.NeedsShuffle(0.25))
}
