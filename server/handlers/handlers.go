package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/lazharichir/blackjack/game"
)

// ParseCommand decodes a client message of the form {"name": ..., ...}
// into the matching game command. Unknown names are an error; payload
// fields beyond what the command declares are ignored.
func ParseCommand(message []byte) (game.Command, error) {
	var base struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(message, &base); err != nil {
		return nil, err
	}

	switch base.Name {
	case game.SelectSpot{}.CommandName():
		var cmd game.SelectSpot
		if err := json.Unmarshal(message, &cmd); err != nil {
			return nil, err
		}
		return cmd, nil

	case game.AddBet{}.CommandName():
		var cmd game.AddBet
		if err := json.Unmarshal(message, &cmd); err != nil {
			return nil, err
		}
		return cmd, nil

	case game.DoubleBet{}.CommandName():
		return game.DoubleBet{}, nil

	case game.ClearBet{}.CommandName():
		return game.ClearBet{}, nil

	case game.ClearAllBets{}.CommandName():
		return game.ClearAllBets{}, nil

	case game.AddSideBet{}.CommandName():
		var cmd game.AddSideBet
		if err := json.Unmarshal(message, &cmd); err != nil {
			return nil, err
		}
		return cmd, nil

	case game.Rebet{}.CommandName():
		return game.Rebet{}, nil

	case game.Deal{}.CommandName():
		return game.Deal{}, nil

	case game.TakeEvenMoney{}.CommandName():
		return game.TakeEvenMoney{}, nil

	case game.DeclineEvenMoney{}.CommandName():
		return game.DeclineEvenMoney{}, nil

	case game.TakeInsurance{}.CommandName():
		return game.TakeInsurance{}, nil

	case game.DeclineInsurance{}.CommandName():
		return game.DeclineInsurance{}, nil

	case game.Hit{}.CommandName():
		return game.Hit{}, nil

	case game.Stand{}.CommandName():
		return game.Stand{}, nil

	case game.Double{}.CommandName():
		return game.Double{}, nil

	case game.Split{}.CommandName():
		return game.Split{}, nil

	case game.Surrender{}.CommandName():
		return game.Surrender{}, nil

	case game.NewRound{}.CommandName():
		return game.NewRound{}, nil

	default:
		return nil, fmt.Errorf("unknown command %q", base.Name)
	}
}
