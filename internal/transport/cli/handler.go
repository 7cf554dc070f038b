package cli

import (
	"errors"
	"fmt"

	"checkers/internal/core"
	"checkers/internal/engine"
	"checkers/internal/game"
	"checkers/internal/transport"

	"github.com/rs/zerolog/log"
)

var errIllegalMove = errors.New("illegal move, try again")

type CLIHandler struct {
	view transport.View
	eng  *engine.Engine
}

func New(view transport.View, eng *engine.Engine) *CLIHandler {
	return &CLIHandler{
		view: view,
		eng:  eng,
	}
}

// SelectMode shows the game mode menu and returns the player kinds. Any
// unrecognized choice falls back to Player vs Computer.
func (h *CLIHandler) SelectMode() (white, black core.PlayerType, err error) {
	h.view.ShowMenu()
	h.view.ShowPrompt("Select game mode: ")

	choice, err := h.view.ReadLine()
	if err != nil {
		return 0, 0, err
	}

	switch choice {
	case "1":
		return core.PlayerHuman, core.PlayerComputer, nil
	case "2":
		return core.PlayerHuman, core.PlayerHuman, nil
	case "3":
		return core.PlayerComputer, core.PlayerComputer, nil
	default:
		h.view.ShowMessage("Invalid choice. Starting default: Player vs Computer")
		return core.PlayerHuman, core.PlayerComputer, nil
	}
}

// Play runs the game loop until the game ends or a human quits. It returns
// true when the game reached a result.
func (h *CLIHandler) Play(g *game.Game) (bool, error) {
	logger := log.With().Str("game", g.ID()).Logger()
	logger.Info().
		Str("white", g.GetPlayer(core.ColorWhite).Type.String()).
		Str("black", g.GetPlayer(core.ColorBlack).Type.String()).
		Str("position", g.Position()).
		Msg("game started")

	h.view.DisplayBoard(g.Board())

	for !g.IsGameOver() {
		if !g.HasLegalMove() {
			logger.Debug().Str("color", g.CurrentPlayer().Name()).Msg("no legal move")
			g.EndNoMoves()
			break
		}

		switch g.CurrentPlayerType() {
		case core.PlayerComputer:
			h.computerTurn(g)
		default:
			quit, err := h.humanTurn(g)
			if err != nil {
				return false, err
			}
			if quit {
				logger.Info().Int("moves", len(g.Moves())).Msg("game abandoned")
				h.view.ShowMessage("Game abandoned.")
				return false, nil
			}
		}
	}

	logger.Info().
		Str("result", g.State().String()).
		Int("white", g.PieceCount(core.ColorWhite)).
		Int("black", g.PieceCount(core.ColorBlack)).
		Int("moves", len(g.Moves())).
		Msg("game over")
	h.view.ShowGameOver(g)
	return true, nil
}

func (h *CLIHandler) computerTurn(g *game.Game) {
	m, ok := h.eng.SelectMove(g)
	if !ok {
		g.EndNoMoves()
		return
	}

	if !g.MakeMove(m.FromRow, m.FromCol, m.ToRow, m.ToCol) {
		// Candidates come from the legality check, so this means a rules bug
		log.Error().Str("game", g.ID()).Stringer("move", m).Msg("engine produced an illegal move")
		g.EndNoMoves()
		return
	}

	log.Debug().Str("game", g.ID()).Stringer("move", m).Msg("computer moved")
	h.view.ShowMove(g.LastMove(), core.PlayerComputer)
	h.view.DisplayBoard(g.Board())
}

// humanTurn prompts until a legal move is made. It returns true when the
// player quits or input ends.
func (h *CLIHandler) humanTurn(g *game.Game) (bool, error) {
	for {
		h.view.ShowPrompt(fmt.Sprintf("[%s]> ", g.CurrentPlayer().Name()))

		cmd, err := h.view.ReadCommand()
		if err != nil {
			return false, fmt.Errorf("failed to read input: %w", err)
		}

		switch cmd.Type {
		case transport.CmdNone:
			continue

		case transport.CmdQuit:
			return true, nil

		case transport.CmdInvalid:
			h.view.ShowError(fmt.Errorf("invalid input: %s", cmd.Args[0]))

		case transport.CmdMove:
			m := cmd.Move
			if !g.MakeMove(m.FromRow, m.FromCol, m.ToRow, m.ToCol) {
				log.Debug().Str("game", g.ID()).Stringer("move", m).Msg("rejected move")
				h.view.ShowError(errIllegalMove)
				continue
			}
			h.view.ShowMove(g.LastMove(), core.PlayerHuman)
			h.view.DisplayBoard(g.Board())
			return false, nil

		case transport.CmdHistory:
			h.view.ShowGameHistory(g)

		case transport.CmdColor:
			if len(cmd.Args) < 1 {
				h.view.ShowMessage("Usage: color <off|brown|green|gray>")
				continue
			}
			if err := h.view.SetTheme(cmd.Args[0]); err != nil {
				h.view.ShowError(err)
				continue
			}
			h.view.ShowMessage(fmt.Sprintf("Color theme set to: %s", cmd.Args[0]))
			h.view.DisplayBoard(g.Board())

		case transport.CmdVerbose:
			verbose := h.view.ToggleVerbose()
			h.view.ShowMessage(fmt.Sprintf("Verbose mode: %t", verbose))

		case transport.CmdHelp:
			h.view.ShowHelp()
		}
	}
}
