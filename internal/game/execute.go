package game

import (
	"checkers/internal/board"
	"checkers/internal/core"
)

// MakeMove applies a legal move and reports whether it was applied. An
// illegal request returns false and leaves the game untouched.
//
// A jump removes only the first opposing piece found on its path; legality
// already limits a king to crossing at most one.
func (g *Game) MakeMove(fromRow, fromCol, toRow, toCol int) bool {
	if !g.IsValidMove(fromRow, fromCol, toRow, toCol) {
		return false
	}

	m := NewMove(fromRow, fromCol, toRow, toCol)
	mover := g.turn
	piece := g.board.At(fromRow, fromCol)

	g.board.Set(toRow, toCol, piece)
	g.board.Clear(fromRow, fromCol)

	result := MoveResult{
		Move:        m,
		PlayerColor: mover,
	}

	if !piece.King && toRow == promotionRow(mover) {
		piece.King = true
		g.board.Set(toRow, toCol, piece)
		result.Promoted = true
	}

	if abs(toRow-fromRow) >= 2 {
		if sq, ok := g.firstOpponent(m, mover); ok {
			g.board.Clear(sq[0], sq[1])
			g.counts[core.OppositeColor(mover)]--
			result.Captured = true
			result.CapturedRow, result.CapturedCol = sq[0], sq[1]
		}
	}

	if g.counts[core.ColorWhite] == 0 || g.counts[core.ColorBlack] == 0 {
		g.finish(mover)
	}

	g.turn = core.OppositeColor(g.turn)

	result.GameState = g.state
	g.history = append(g.history, result)
	return true
}

// promotionRow is the farthest row for a man of the given color
func promotionRow(color core.Color) int {
	if color == core.ColorWhite {
		return 0
	}
	return board.Size - 1
}

// firstOpponent finds the first opposing piece strictly between the move's
// endpoints in travel direction
func (g *Game) firstOpponent(m Move, mover core.Color) ([2]int, bool) {
	opponent := core.OppositeColor(mover)
	for _, sq := range between(m) {
		if g.board.At(sq[0], sq[1]).Color == opponent {
			return sq, true
		}
	}
	return [2]int{}, false
}
