package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		{"Ace of Spades Unicode", "A♠", Card{Suit: Spades, Rank: Ace, FaceUp: true}, false},
		{"Ace of Spades lowercase", "As", Card{Suit: Spades, Rank: Ace, FaceUp: true}, false},
		{"Ace of Spades uppercase", "AS", Card{Suit: Spades, Rank: Ace, FaceUp: true}, false},
		{"Ten of Hearts Unicode", "10♥", Card{Suit: Hearts, Rank: Ten, FaceUp: true}, false},
		{"Ten of Hearts lowercase", "10h", Card{Suit: Hearts, Rank: Ten, FaceUp: true}, false},
		{"Queen of Diamonds Unicode", "Q♦", Card{Suit: Diamonds, Rank: Queen, FaceUp: true}, false},
		{"Queen of Diamonds uppercase", "QD", Card{Suit: Diamonds, Rank: Queen, FaceUp: true}, false},
		{"Two of Clubs lowercase", "2c", Card{Suit: Clubs, Rank: Two, FaceUp: true}, false},
		{"King of Hearts", "Kh", Card{Suit: Hearts, Rank: King, FaceUp: true}, false},
		{"Jack of Hearts", "Jh", Card{Suit: Hearts, Rank: Jack, FaceUp: true}, false},
		{"Seven of Clubs", "7♣", Card{Suit: Clubs, Rank: Seven, FaceUp: true}, false},

		{"Too short input", "A", Card{}, true},
		{"Empty input", "", Card{}, true},
		{"Invalid suit", "10X", Card{}, true},
		{"Invalid rank", "11S", Card{}, true},
		{"Input with trailing space", "AS ", Card{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CardFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCardFromStringRoundTripsSuitSymbols(t *testing.T) {
	// Suit symbols are multi-byte runes; parsing must split the shorthand
	// on the rune boundary, not the last byte.
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			want := Card{Suit: suit, Rank: rank, FaceUp: true}
			got, err := CardFromString(want.String())
			require.NoError(t, err, want.String())
			assert.Equal(t, want, got)
		}
	}
}

func TestMustCardFromStringPanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() {
		MustCardFromString("bogus")
	})
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "A♠", Card{Suit: Spades, Rank: Ace}.String())
	assert.Equal(t, "10♥", Card{Suit: Hearts, Rank: Ten}.String())
}

func TestCardEquals(t *testing.T) {
	faceUp := Card{Suit: Spades, Rank: Ace, FaceUp: true}
	faceDown := Card{Suit: Spades, Rank: Ace, FaceUp: false}
	other := Card{Suit: Hearts, Rank: Ace, FaceUp: true}

	assert.True(t, faceUp.Equals(faceDown), "orientation should not affect identity")
	assert.False(t, faceUp.Equals(other))
}

func TestSuitColor(t *testing.T) {
	assert.Equal(t, Red, Hearts.Color())
	assert.Equal(t, Red, Diamonds.Color())
	assert.Equal(t, Black, Spades.Color())
	assert.Equal(t, Black, Clubs.Color())
}
