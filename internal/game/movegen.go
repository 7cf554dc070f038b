package game

import "checkers/internal/board"

// LegalMoves enumerates every legal move for the side to move, in row-major
// order of source and then destination
func (g *Game) LegalMoves() []Move {
	var moves []Move
	if g.over {
		return moves
	}

	for fr := 0; fr < board.Size; fr++ {
		for fc := 0; fc < board.Size; fc++ {
			if g.board.At(fr, fc).Color != g.turn {
				continue
			}
			for tr := 0; tr < board.Size; tr++ {
				for tc := 0; tc < board.Size; tc++ {
					if g.IsValidMove(fr, fc, tr, tc) {
						moves = append(moves, NewMove(fr, fc, tr, tc))
					}
				}
			}
		}
	}
	return moves
}

// IsCapture reports whether a move spans two or more rows. Such a move
// removes the first opposing piece on its path when there is one; a long
// king slide over empty squares still counts.
func (g *Game) IsCapture(m Move) bool {
	return abs(m.ToRow-m.FromRow) >= 2
}

// CaptureMoves returns the legal moves spanning two or more rows
func (g *Game) CaptureMoves() []Move {
	captures, _ := g.SplitMoves()
	return captures
}

// SimpleMoves returns the legal one-step moves
func (g *Game) SimpleMoves() []Move {
	_, simple := g.SplitMoves()
	return simple
}

func (g *Game) HasLegalMove() bool {
	return len(g.LegalMoves()) > 0
}

// SplitMoves partitions the legal moves into captures and simple moves
func (g *Game) SplitMoves() (captures, simple []Move) {
	for _, m := range g.LegalMoves() {
		if g.IsCapture(m) {
			captures = append(captures, m)
		} else {
			simple = append(simple, m)
		}
	}
	return captures, simple
}
