package core

import (
	"fmt"

	"github.com/google/uuid"
)

type PlayerType int

const (
	PlayerHuman PlayerType = iota + 1
	PlayerComputer
)

func (t PlayerType) String() string {
	switch t {
	case PlayerHuman:
		return "human"
	case PlayerComputer:
		return "computer"
	default:
		return "unknown"
	}
}

// ParsePlayerType accepts the long and short forms used by flags and prompts
func ParsePlayerType(s string) (PlayerType, error) {
	switch s {
	case "h", "human":
		return PlayerHuman, nil
	case "c", "computer":
		return PlayerComputer, nil
	default:
		return 0, fmt.Errorf("invalid player type %q (use human or computer)", s)
	}
}

// Player is a participant bound to one color for the whole game
type Player struct {
	ID    string     `json:"id"`
	Color Color      `json:"color"`
	Type  PlayerType `json:"type"`
}

// NewPlayer creates a Player with a fresh ID
func NewPlayer(t PlayerType, color Color) *Player {
	return &Player{
		ID:    uuid.New().String(),
		Color: color,
		Type:  t,
	}
}
