// Package main is the console checkers game: play human or computer matches
// in the terminal, or run computer self-play in the arena.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"checkers/internal/arena"
	"checkers/internal/cli"
	"checkers/internal/config"
	"checkers/internal/core"
	"checkers/internal/engine"
	"checkers/internal/game"
	"checkers/internal/logger"
	clitransport "checkers/internal/transport/cli"

	"github.com/rs/zerolog/log"
	urfave "github.com/urfave/cli/v2"
	"golang.org/x/term"
)

const envFile = ".env"

func main() {
	if err := config.LoadEnv(envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	cfg := config.Default()
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		cfg.Theme = string(cli.ThemeBrown)
	}

	app := &urfave.App{
		Name:  "checkers",
		Usage: "Console checkers for humans and computers",
		Flags: []urfave.Flag{
			&urfave.BoolFlag{
				Name:        "debug",
				Usage:       "log debug events to stderr",
				EnvVars:     []string{"CHECKERS_DEBUG"},
				Destination: &cfg.Debug,
			},
			seedFlag(&cfg.Seed),
		},
		Before: func(cCtx *urfave.Context) error {
			logger.Configure(os.Stderr, cfg.Debug, term.IsTerminal(int(os.Stderr.Fd())))
			return nil
		},
		Action: func(cCtx *urfave.Context) error {
			return runPlay(&cfg, interactive)
		},
		Commands: []*urfave.Command{
			{
				Name:    "play",
				Aliases: []string{"p"},
				Usage:   "Play a game in the terminal",
				Flags: []urfave.Flag{
					seedFlag(&cfg.Seed),
					&urfave.StringFlag{
						Name:        "white",
						Aliases:     []string{"w"},
						Usage:       "white player: human or computer (skips the menu)",
						EnvVars:     []string{"CHECKERS_WHITE"},
						Destination: &cfg.White,
					},
					&urfave.StringFlag{
						Name:        "black",
						Aliases:     []string{"b"},
						Usage:       "black player: human or computer (skips the menu)",
						EnvVars:     []string{"CHECKERS_BLACK"},
						Destination: &cfg.Black,
					},
					&urfave.StringFlag{
						Name:        "position",
						Usage:       "start from a position, e.g. \"" + "......../......../...b..../..w...../......../......../......../........ w" + "\"",
						EnvVars:     []string{"CHECKERS_POSITION"},
						Destination: &cfg.Position,
					},
					&urfave.StringFlag{
						Name:        "theme",
						Usage:       "board colors: off, brown, green, gray",
						EnvVars:     []string{"CHECKERS_THEME"},
						Value:       cfg.Theme,
						Destination: &cfg.Theme,
					},
					&urfave.BoolFlag{
						Name:        "verbose",
						Aliases:     []string{"v"},
						Usage:       "show captures and promotions for every move",
						EnvVars:     []string{"CHECKERS_VERBOSE"},
						Destination: &cfg.Verbose,
					},
				},
				Action: func(cCtx *urfave.Context) error {
					return runPlay(&cfg, interactive)
				},
			},
			{
				Name:    "arena",
				Aliases: []string{"a"},
				Usage:   "Play computer-vs-computer games and report the tally",
				Flags: []urfave.Flag{
					seedFlag(&cfg.Seed),
					&urfave.IntFlag{
						Name:        "games",
						Aliases:     []string{"n"},
						Usage:       "number of games",
						EnvVars:     []string{"CHECKERS_GAMES"},
						Value:       config.DefaultGames,
						Destination: &cfg.Games,
					},
					&urfave.IntFlag{
						Name:        "concurrency",
						Aliases:     []string{"c"},
						Usage:       "games played in parallel",
						EnvVars:     []string{"CHECKERS_CONCURRENCY"},
						Value:       config.DefaultConcurrency,
						Destination: &cfg.Concurrency,
					},
					&urfave.IntFlag{
						Name:        "max-plies",
						Usage:       "plies before a game is scored a draw",
						EnvVars:     []string{"CHECKERS_MAX_PLIES"},
						Value:       config.DefaultMaxPlies,
						Destination: &cfg.MaxPlies,
					},
				},
				Action: func(cCtx *urfave.Context) error {
					return runArena(cCtx.Context, &cfg, cCtx.App.Writer)
				},
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("checkers failed")
		stop()
		os.Exit(1)
	}
}

func seedFlag(dst *int64) urfave.Flag {
	return &urfave.Int64Flag{
		Name:        "seed",
		Usage:       "random seed for computer players (0 uses the clock)",
		EnvVars:     []string{"CHECKERS_SEED"},
		Destination: dst,
	}
}

func runPlay(cfg *config.Config, interactive bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var view *cli.CLI
	if interactive {
		rl, err := cli.NewReadline()
		if err != nil {
			return fmt.Errorf("failed to start line editor: %w", err)
		}
		defer rl.Close()
		view = cli.NewWithReader(rl, rl.Stdout())
	} else {
		view = cli.New(os.Stdin, os.Stdout)
	}

	if err := view.SetTheme(cfg.Theme); err != nil {
		return err
	}
	if cfg.Verbose {
		view.ToggleVerbose()
	}

	handler := clitransport.New(view, engine.NewSeeded(cfg.Seed))
	view.ShowWelcome()

	white, black, err := playerTypes(cfg, handler)
	if err != nil {
		return err
	}

	wp := core.NewPlayer(white, core.ColorWhite)
	bp := core.NewPlayer(black, core.ColorBlack)

	var g *game.Game
	if cfg.Position != "" {
		g, err = game.FromPosition(cfg.Position, wp, bp)
		if err != nil {
			return err
		}
	} else {
		g = game.New(wp, bp)
	}

	_, err = handler.Play(g)
	return err
}

// playerTypes takes the player kinds from flags when given, otherwise asks
// through the menu. Validate has already rejected a flag given alone.
func playerTypes(cfg *config.Config, handler *clitransport.CLIHandler) (core.PlayerType, core.PlayerType, error) {
	if cfg.White == "" && cfg.Black == "" {
		white, black, err := handler.SelectMode()
		if errors.Is(err, io.EOF) {
			return core.PlayerHuman, core.PlayerComputer, nil
		}
		return white, black, err
	}

	white, err := core.ParsePlayerType(cfg.White)
	if err != nil {
		return 0, 0, err
	}
	black, err := core.ParsePlayerType(cfg.Black)
	if err != nil {
		return 0, 0, err
	}
	return white, black, nil
}

func runArena(ctx context.Context, cfg *config.Config, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	summary, err := arena.Run(ctx, arena.Options{
		Games:       cfg.Games,
		Concurrency: cfg.Concurrency,
		MaxPlies:    cfg.MaxPlies,
		Seed:        cfg.Seed,
	}, func(r arena.Result) {
		log.Debug().Int("index", r.Index).Str("result", r.State.String()).Int("plies", r.Plies).Msg("game done")
	})
	if err != nil {
		return fmt.Errorf("arena stopped: %w", err)
	}

	fmt.Fprintf(out, "Games:      %d\n", summary.Games)
	fmt.Fprintf(out, "White wins: %d\n", summary.WhiteWins)
	fmt.Fprintf(out, "Black wins: %d\n", summary.BlackWins)
	fmt.Fprintf(out, "Draws:      %d\n", summary.Draws)
	fmt.Fprintf(out, "Avg plies:  %.1f\n", summary.AveragePlies())
	return nil
}
