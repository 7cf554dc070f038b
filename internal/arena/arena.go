// Package arena plays computer-vs-computer games in parallel and tallies the
// results.
package arena

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"checkers/internal/core"
	"checkers/internal/engine"
	"checkers/internal/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	Games       int
	Concurrency int
	MaxPlies    int
	Seed        int64 // game i uses Seed+i; zero seeds from the clock
}

// Result is the outcome of one arena game
type Result struct {
	GameID string
	Index  int
	State  core.State
	Plies  int
	White  int // pieces left
	Black  int
}

type Summary struct {
	Games      int
	WhiteWins  int
	BlackWins  int
	Draws      int
	TotalPlies int
}

func (s Summary) AveragePlies() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalPlies) / float64(s.Games)
}

func (s Summary) String() string {
	return fmt.Sprintf("games=%d white=%d black=%d draws=%d avg-plies=%.1f",
		s.Games, s.WhiteWins, s.BlackWins, s.Draws, s.AveragePlies())
}

func (s *Summary) add(r Result) {
	s.Games++
	s.TotalPlies += r.Plies
	switch r.State {
	case core.StateWhiteWins:
		s.WhiteWins++
	case core.StateBlackWins:
		s.BlackWins++
	default:
		s.Draws++
	}
}

// Run plays opts.Games games on opts.Concurrency workers. onResult, when not
// nil, is called from a single goroutine for every finished game.
func Run(ctx context.Context, opts Options, onResult func(Result)) (Summary, error) {
	if opts.Games < 1 || opts.Concurrency < 1 || opts.MaxPlies < 1 {
		return Summary{}, fmt.Errorf("invalid arena options: %+v", opts)
	}

	log.Info().
		Int("games", opts.Games).
		Int("concurrency", opts.Concurrency).
		Int("maxPlies", opts.MaxPlies).
		Msg("arena started")

	g, ctx := errgroup.WithContext(ctx)

	indices := make(chan int)
	results := make(chan Result)

	g.Go(func() error {
		defer close(indices)
		for i := 0; i < opts.Games; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case indices <- i:
			}
		}
		return nil
	})

	var summary Summary
	g.Go(func() error {
		for r := range results {
			summary.add(r)
			if onResult != nil {
				onResult(r)
			}
		}
		return nil
	})

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	wg := &sync.WaitGroup{}
	for w := 0; w < opts.Concurrency; w++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, seed, opts.MaxPlies, indices, results)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	if err := g.Wait(); err != nil {
		return summary, err
	}

	log.Info().Stringer("summary", summary).Msg("arena finished")
	return summary, nil
}

// playGames seeds every game from its index so results do not depend on
// which worker picked it up
func playGames(ctx context.Context, seed int64, maxPlies int, indices <-chan int, results chan<- Result) error {
	for i := range indices {
		r, err := PlayGame(ctx, engine.New(rand.NewSource(seed+int64(i))), maxPlies)
		if err != nil {
			return err
		}
		r.Index = i
		select {
		case <-ctx.Done():
			return ctx.Err()
		case results <- r:
		}
	}
	return nil
}

// PlayGame plays one game from the starting position. A game still running
// after maxPlies is scored as a draw.
func PlayGame(ctx context.Context, eng *engine.Engine, maxPlies int) (Result, error) {
	g := game.New(
		core.NewPlayer(core.PlayerComputer, core.ColorWhite),
		core.NewPlayer(core.PlayerComputer, core.ColorBlack),
	)

	plies := 0
	for !g.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if plies >= maxPlies {
			g.EndDraw()
			break
		}

		m, ok := eng.SelectMove(g)
		if !ok {
			g.EndNoMoves()
			break
		}
		if !g.MakeMove(m.FromRow, m.FromCol, m.ToRow, m.ToCol) {
			return Result{}, fmt.Errorf("game %s: engine produced illegal move %s", g.ID(), m)
		}
		plies++
	}

	log.Debug().
		Str("game", g.ID()).
		Str("result", g.State().String()).
		Int("plies", plies).
		Msg("arena game finished")

	return Result{
		GameID: g.ID(),
		State:  g.State(),
		Plies:  plies,
		White:  g.PieceCount(core.ColorWhite),
		Black:  g.PieceCount(core.ColorBlack),
	}, nil
}
