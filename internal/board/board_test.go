package board

import (
	"strings"
	"testing"

	"checkers/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeLayout(t *testing.T) {
	b := New()

	assert.Equal(t, 12, b.Count(core.ColorWhite))
	assert.Equal(t, 12, b.Count(core.ColorBlack))

	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			p := b.At(r, c)
			if !IsDark(r, c) {
				assert.True(t, p.IsEmpty(), "light square %d,%d must be empty", r, c)
				continue
			}
			switch {
			case r <= 2:
				assert.Equal(t, Piece{Color: core.ColorBlack}, p, "cell %d,%d", r, c)
			case r >= 5:
				assert.Equal(t, Piece{Color: core.ColorWhite}, p, "cell %d,%d", r, c)
			default:
				assert.True(t, p.IsEmpty(), "middle cell %d,%d must be empty", r, c)
			}
		}
	}
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{7, 7, true},
		{3, 4, true},
		{-1, 0, false},
		{0, -1, false},
		{8, 0, false},
		{0, 8, false},
		{100, -100, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, InBounds(tt.row, tt.col), "InBounds(%d, %d)", tt.row, tt.col)
	}
}

func TestStartingPositionMatchesInitialize(t *testing.T) {
	parsed, turn, err := Parse(StartingPosition)
	require.NoError(t, err)

	assert.Equal(t, core.ColorWhite, turn)
	assert.Equal(t, New().String(), parsed.String())
	assert.Equal(t, StartingPosition, New().String()+" w")
}

func TestParseRoundTrip(t *testing.T) {
	pos := "......../..b...../......../....W.../......../......../.B.w..../........ b"

	b, turn, err := Parse(pos)
	require.NoError(t, err)

	assert.Equal(t, core.ColorBlack, turn)
	assert.Equal(t, Piece{Color: core.ColorBlack}, b.At(1, 2))
	assert.Equal(t, Piece{Color: core.ColorWhite, King: true}, b.At(3, 4))
	assert.Equal(t, Piece{Color: core.ColorBlack, King: true}, b.At(6, 1))
	assert.Equal(t, Piece{Color: core.ColorWhite}, b.At(6, 3))
	assert.Equal(t, strings.Fields(pos)[0], b.String())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		pos  string
		msg  string
	}{
		{"missing turn", "......../......../......../......../......../......../......../........", "expected 2 parts"},
		{"short board", "......../........ w", "expected 8 ranks"},
		{"short rank", "......./......../......../......../......../......../......../........ w", "rank 0 has 7 cells"},
		{"unknown piece", "x......./......../......../......../......../......../......../........ w", "unknown piece"},
		{"light square", "b......./......../......../......../......../......../......../........ w", "light square"},
		{"bad turn", "......../......../......../......../......../......../......../........ x", "turn must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.pos)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := New()
	cp := b.Clone()
	cp.Clear(5, 0)

	assert.False(t, b.At(5, 0).IsEmpty())
	assert.True(t, cp.At(5, 0).IsEmpty())
}

func TestToASCII(t *testing.T) {
	lines := strings.Split(New().ToASCII(), "\n")
	require.Len(t, lines, 10)

	assert.Equal(t, "  0 1 2 3 4 5 6 7", lines[0])
	assert.Equal(t, "0 . b . b . b . b 0", lines[1])
	assert.Equal(t, "7 w . w . w . w . 7", lines[8])
}
