package game

import (
	"fmt"

	"checkers/internal/board"
	"checkers/internal/core"

	"github.com/google/uuid"
)

const startingPieces = 12

// MoveResult records one applied move
type MoveResult struct {
	Move        Move       `json:"move"`
	PlayerColor core.Color `json:"playerColor"`
	Captured    bool       `json:"captured"`
	CapturedRow int        `json:"capturedRow,omitempty"`
	CapturedCol int        `json:"capturedCol,omitempty"`
	Promoted    bool       `json:"promoted"`
	GameState   core.State `json:"gameState"`
}

// Game owns the board and all bookkeeping for one match. It is not safe for
// concurrent use.
type Game struct {
	id         string
	initialPos string
	board      *board.Board
	turn       core.Color
	counts     map[core.Color]int
	players    map[core.Color]*core.Player
	over       bool
	state      core.State
	history    []MoveResult
}

// New creates a game in the standard starting layout with White to move
func New(whitePlayer, blackPlayer *core.Player) *Game {
	return &Game{
		id:         uuid.New().String(),
		initialPos: board.StartingPosition,
		board:      board.New(),
		turn:       core.ColorWhite,
		counts: map[core.Color]int{
			core.ColorWhite: startingPieces,
			core.ColorBlack: startingPieces,
		},
		players: map[core.Color]*core.Player{
			core.ColorWhite: whitePlayer,
			core.ColorBlack: blackPlayer,
		},
		state: core.StateOngoing,
	}
}

// FromPosition creates a game from position text. Piece counts are taken from
// the position; a side without pieces has already lost.
func FromPosition(pos string, whitePlayer, blackPlayer *core.Player) (*Game, error) {
	b, turn, err := board.Parse(pos)
	if err != nil {
		return nil, fmt.Errorf("could not load position: %w", err)
	}

	g := New(whitePlayer, blackPlayer)
	g.initialPos = pos
	g.board = b
	g.turn = turn
	g.counts[core.ColorWhite] = b.Count(core.ColorWhite)
	g.counts[core.ColorBlack] = b.Count(core.ColorBlack)

	switch {
	case g.counts[core.ColorWhite] == 0 && g.counts[core.ColorBlack] == 0:
		return nil, fmt.Errorf("could not load position: board is empty")
	case g.counts[core.ColorWhite] == 0:
		g.finish(core.ColorBlack)
	case g.counts[core.ColorBlack] == 0:
		g.finish(core.ColorWhite)
	}

	return g, nil
}

func (g *Game) ID() string {
	return g.id
}

// Board returns a copy of the current grid for rendering
func (g *Game) Board() *board.Board {
	return g.board.Clone()
}

// Position returns the current position text
func (g *Game) Position() string {
	return g.board.String() + " " + g.turn.String()
}

func (g *Game) InitialPosition() string {
	return g.initialPos
}

func (g *Game) CurrentPlayer() core.Color {
	return g.turn
}

func (g *Game) CurrentPlayerType() core.PlayerType {
	return g.players[g.turn].Type
}

func (g *Game) GetPlayer(color core.Color) *core.Player {
	return g.players[color]
}

func (g *Game) PieceCount(color core.Color) int {
	return g.counts[color]
}

func (g *Game) IsGameOver() bool {
	return g.over
}

func (g *Game) State() core.State {
	return g.state
}

// Winner returns the winning color, or ColorNone while the game is running
func (g *Game) Winner() core.Color {
	switch g.state {
	case core.StateWhiteWins:
		return core.ColorWhite
	case core.StateBlackWins:
		return core.ColorBlack
	default:
		return core.ColorNone
	}
}

// Moves returns the applied moves in order
func (g *Game) Moves() []MoveResult {
	out := make([]MoveResult, len(g.history))
	copy(out, g.history)
	return out
}

// LastMove returns the most recent move, or nil before the first one
func (g *Game) LastMove() *MoveResult {
	if len(g.history) == 0 {
		return nil
	}
	last := g.history[len(g.history)-1]
	return &last
}

// EndNoMoves ends the game because the side to move has no legal move.
// The opponent wins.
func (g *Game) EndNoMoves() {
	if g.over {
		return
	}
	g.finish(core.OppositeColor(g.turn))
}

// EndDraw ends a game that hit an external move limit
func (g *Game) EndDraw() {
	if g.over {
		return
	}
	g.over = true
	g.state = core.StateDraw
}

func (g *Game) finish(winner core.Color) {
	g.over = true
	g.state = core.WinState(winner)
}
