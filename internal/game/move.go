package game

import "fmt"

// Move is a single relocation request in board coordinates
type Move struct {
	FromRow int `json:"fromRow"`
	FromCol int `json:"fromCol"`
	ToRow   int `json:"toRow"`
	ToCol   int `json:"toCol"`
}

func NewMove(fromRow, fromCol, toRow, toCol int) Move {
	return Move{FromRow: fromRow, FromCol: fromCol, ToRow: toRow, ToCol: toCol}
}

// Distance is the number of diagonal steps, or 0 when the move is not diagonal
func (m Move) Distance() int {
	dr, dc := abs(m.ToRow-m.FromRow), abs(m.ToCol-m.FromCol)
	if dr != dc {
		return 0
	}
	return dr
}

func (m Move) String() string {
	return fmt.Sprintf("%d,%d-%d,%d", m.FromRow, m.FromCol, m.ToRow, m.ToCol)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
