package arena

import (
	"context"
	"math/rand"
	"testing"

	"checkers/internal/core"
	"checkers/internal/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTalliesEveryGame(t *testing.T) {
	seen := map[int]bool{}
	summary, err := Run(context.Background(), Options{
		Games:       24,
		Concurrency: 4,
		MaxPlies:    150,
		Seed:        11,
	}, func(r Result) {
		seen[r.Index] = true
		assert.NotEmpty(t, r.GameID)
		assert.NotEqual(t, core.StateOngoing, r.State)
		assert.LessOrEqual(t, r.Plies, 150)
	})

	require.NoError(t, err)
	assert.Equal(t, 24, summary.Games)
	assert.Equal(t, 24, summary.WhiteWins+summary.BlackWins+summary.Draws)
	assert.Len(t, seen, 24)
	assert.Greater(t, summary.AveragePlies(), 0.0)
	assert.Contains(t, summary.String(), "games=24")
}

func TestRunRejectsBadOptions(t *testing.T) {
	_, err := Run(context.Background(), Options{Games: 0, Concurrency: 1, MaxPlies: 10}, nil)
	assert.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Games: 1000, Concurrency: 2, MaxPlies: 200, Seed: 1}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlayGamePlyLimitIsDraw(t *testing.T) {
	r, err := PlayGame(context.Background(), engine.New(rand.NewSource(5)), 1)

	require.NoError(t, err)
	assert.Equal(t, core.StateDraw, r.State)
	assert.Equal(t, 1, r.Plies)
	assert.Equal(t, 12, r.White)
	assert.Equal(t, 12, r.Black)
}

func TestPlayGameReproducible(t *testing.T) {
	a, err := PlayGame(context.Background(), engine.New(rand.NewSource(42)), 500)
	require.NoError(t, err)
	b, err := PlayGame(context.Background(), engine.New(rand.NewSource(42)), 500)
	require.NoError(t, err)

	assert.Equal(t, a.State, b.State)
	assert.Equal(t, a.Plies, b.Plies)
	assert.Equal(t, a.White, b.White)
	assert.Equal(t, a.Black, b.Black)
}

func TestRunSameSeedSameTally(t *testing.T) {
	opts := Options{Games: 40, Concurrency: 4, MaxPlies: 200, Seed: 11}

	plies := func() map[int]int {
		byIndex := map[int]int{}
		_, err := Run(context.Background(), opts, func(r Result) {
			byIndex[r.Index] = r.Plies
		})
		require.NoError(t, err)
		return byIndex
	}

	first, err := Run(context.Background(), opts, nil)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Run(context.Background(), opts, nil)
		require.NoError(t, err)
		assert.Equal(t, first, again, "run %d", i)
	}

	serial := opts
	serial.Concurrency = 1
	one, err := Run(context.Background(), serial, nil)
	require.NoError(t, err)
	assert.Equal(t, first, one)

	assert.Equal(t, plies(), plies())
}

func TestSummaryAverageEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Summary{}.AveragePlies())
}
