package engine

import (
	"math/rand"
	"time"

	"checkers/internal/game"
)

// Engine picks computer moves uniformly at random from the candidate list.
// Each Engine owns its random source and must not be shared between
// goroutines.
type Engine struct {
	rng *rand.Rand
}

// SearchResult is the outcome of one move selection
type SearchResult struct {
	BestMove   game.Move
	Candidates []game.Move
	Capture    bool
}

// New creates an engine drawing from the given source
func New(src rand.Source) *Engine {
	return &Engine{rng: rand.New(src)}
}

// NewSeeded creates an engine with a fixed seed, or a wall-clock seed when
// seed is zero
func NewSeeded(seed int64) *Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return New(rand.NewSource(seed))
}

// Candidates returns the moves the computer chooses between: every capture
// if any capture exists, otherwise every simple move. The list is
// deterministic for a given game.
func Candidates(g *game.Game) (moves []game.Move, capture bool) {
	captures, simple := g.SplitMoves()
	if len(captures) > 0 {
		return captures, true
	}
	return simple, false
}

// Search draws one candidate. It returns nil when the side to move has no
// legal move.
func (e *Engine) Search(g *game.Game) *SearchResult {
	moves, capture := Candidates(g)
	if len(moves) == 0 {
		return nil
	}

	return &SearchResult{
		BestMove:   moves[e.rng.Intn(len(moves))],
		Candidates: moves,
		Capture:    capture,
	}
}

// SelectMove returns the chosen move, or false when no legal move exists
func (e *Engine) SelectMove(g *game.Game) (game.Move, bool) {
	result := e.Search(g)
	if result == nil {
		return game.Move{}, false
	}
	return result.BestMove, true
}
