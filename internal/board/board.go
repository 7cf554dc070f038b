package board

import (
	"fmt"
	"strings"

	"checkers/internal/core"
)

const (
	Size = 8

	// StartingPosition is the standard layout in position text form
	StartingPosition = ".b.b.b.b/b.b.b.b./.b.b.b.b/......../......../w.w.w.w./.w.w.w.w/w.w.w.w. w"
)

// Piece is the content of one cell. The zero value is an empty cell.
type Piece struct {
	Color core.Color
	King  bool
}

// Empty is the content of a cell with no piece
var Empty = Piece{}

func (p Piece) IsEmpty() bool {
	return p.Color == core.ColorNone
}

// Rune returns the position text character for the piece
func (p Piece) Rune() rune {
	switch {
	case p.Color == core.ColorWhite && p.King:
		return 'W'
	case p.Color == core.ColorWhite:
		return 'w'
	case p.Color == core.ColorBlack && p.King:
		return 'B'
	case p.Color == core.ColorBlack:
		return 'b'
	default:
		return '.'
	}
}

func pieceFromRune(ch rune) (Piece, bool) {
	switch ch {
	case '.':
		return Empty, true
	case 'w':
		return Piece{Color: core.ColorWhite}, true
	case 'W':
		return Piece{Color: core.ColorWhite, King: true}, true
	case 'b':
		return Piece{Color: core.ColorBlack}, true
	case 'B':
		return Piece{Color: core.ColorBlack, King: true}, true
	default:
		return Empty, false
	}
}

// Board is the 8x8 grid addressed by (row, col), row 0 on Black's side
type Board struct {
	cells [Size][Size]Piece
}

// New returns a board in the standard starting layout
func New() *Board {
	b := &Board{}
	b.Initialize()
	return b
}

// Initialize places 12 Black men on rows 0-2 and 12 White men on rows 5-7,
// dark squares only
func (b *Board) Initialize() {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch {
			case !IsDark(r, c):
				b.cells[r][c] = Empty
			case r < 3:
				b.cells[r][c] = Piece{Color: core.ColorBlack}
			case r > 4:
				b.cells[r][c] = Piece{Color: core.ColorWhite}
			default:
				b.cells[r][c] = Empty
			}
		}
	}
}

func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// IsDark reports whether pieces may stand on the square
func IsDark(row, col int) bool {
	return (row+col)%2 == 1
}

// At returns the cell content. Coordinates must already be in bounds.
func (b *Board) At(row, col int) Piece {
	return b.cells[row][col]
}

// Set stores p at the cell. Coordinates must already be in bounds.
func (b *Board) Set(row, col int, p Piece) {
	b.cells[row][col] = p
}

func (b *Board) Clear(row, col int) {
	b.cells[row][col] = Empty
}

// Count returns the number of pieces of the given color
func (b *Board) Count(color core.Color) int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.cells[r][c].Color == color {
				n++
			}
		}
	}
	return n
}

func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// Parse reads a position in the form "<rank>/<rank>/.../<rank> <turn>"
// with rank 0 first. It returns the board and the side to move.
func Parse(pos string) (*Board, core.Color, error) {
	parts := strings.Fields(pos)
	if len(parts) != 2 {
		return nil, core.ColorNone, fmt.Errorf("invalid position: expected 2 parts, got %d", len(parts))
	}

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != Size {
		return nil, core.ColorNone, fmt.Errorf("invalid position: expected %d ranks, got %d", Size, len(ranks))
	}

	b := &Board{}
	for r, rank := range ranks {
		if len(rank) != Size {
			return nil, core.ColorNone, fmt.Errorf("invalid position: rank %d has %d cells", r, len(rank))
		}
		for c, ch := range rank {
			p, ok := pieceFromRune(ch)
			if !ok {
				return nil, core.ColorNone, fmt.Errorf("invalid position: unknown piece %q at %d,%d", ch, r, c)
			}
			if !p.IsEmpty() && !IsDark(r, c) {
				return nil, core.ColorNone, fmt.Errorf("invalid position: piece on light square %d,%d", r, c)
			}
			b.cells[r][c] = p
		}
	}

	var turn core.Color
	switch parts[1] {
	case "w":
		turn = core.ColorWhite
	case "b":
		turn = core.ColorBlack
	default:
		return nil, core.ColorNone, fmt.Errorf("invalid position: turn must be 'w' or 'b'")
	}

	return b, turn, nil
}

// String encodes the grid part of the position text
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := 0; c < Size; c++ {
			sb.WriteRune(b.cells[r][c].Rune())
		}
	}
	return sb.String()
}

// ToASCII creates an ASCII representation of the board with row and column
// indices matching the coordinates players type
func (b *Board) ToASCII() string {
	var sb strings.Builder
	sb.WriteString("  0 1 2 3 4 5 6 7\n")

	for r := 0; r < Size; r++ {
		sb.WriteString(fmt.Sprintf("%d ", r))
		for c := 0; c < Size; c++ {
			sb.WriteRune(b.cells[r][c].Rune())
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%d\n", r))
	}
	sb.WriteString("  0 1 2 3 4 5 6 7")

	return sb.String()
}
