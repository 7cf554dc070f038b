package game

import (
	"checkers/internal/board"
	"checkers/internal/core"
)

// IsValidMove reports whether the current player may move the piece at
// (fromRow, fromCol) to (toRow, toCol). It never mutates the game and accepts
// any integers, including out-of-range ones. Forced capture is not enforced.
func (g *Game) IsValidMove(fromRow, fromCol, toRow, toCol int) bool {
	if g.over {
		return false
	}
	if !board.InBounds(fromRow, fromCol) || !board.InBounds(toRow, toCol) {
		return false
	}

	piece := g.board.At(fromRow, fromCol)
	if piece.Color != g.turn {
		return false
	}
	if !g.board.At(toRow, toCol).IsEmpty() {
		return false
	}
	if !board.IsDark(toRow, toCol) {
		return false
	}

	m := NewMove(fromRow, fromCol, toRow, toCol)
	if piece.King {
		return g.validKingMove(m, piece.Color)
	}
	return g.validManMove(m, piece.Color)
}

// forward is the row step a man of the given color moves in
func forward(color core.Color) int {
	if color == core.ColorWhite {
		return -1
	}
	return 1
}

func (g *Game) validManMove(m Move, color core.Color) bool {
	rowDiff := m.ToRow - m.FromRow
	colDiff := m.ToCol - m.FromCol
	dir := forward(color)

	switch {
	case rowDiff == dir && abs(colDiff) == 1:
		return true
	case rowDiff == 2*dir && abs(colDiff) == 2:
		mid := g.board.At(m.FromRow+dir, m.FromCol+colDiff/2)
		return mid.Color == core.OppositeColor(color)
	default:
		return false
	}
}

func (g *Game) validKingMove(m Move, color core.Color) bool {
	if m.Distance() == 0 {
		return false
	}

	crossed := 0
	opponent := core.OppositeColor(color)
	for _, sq := range between(m) {
		switch g.board.At(sq[0], sq[1]).Color {
		case color:
			return false
		case opponent:
			crossed++
			if crossed > 1 {
				return false
			}
		}
	}
	return true
}

// between lists the cells strictly between the endpoints of a diagonal move
// in travel order
func between(m Move) [][2]int {
	n := m.Distance()
	if n < 2 {
		return nil
	}

	dr, dc := sign(m.ToRow-m.FromRow), sign(m.ToCol-m.FromCol)
	cells := make([][2]int, 0, n-1)
	for i := 1; i < n; i++ {
		cells = append(cells, [2]int{m.FromRow + i*dr, m.FromCol + i*dc})
	}
	return cells
}
