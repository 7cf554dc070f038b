package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/game"
	"checkers/internal/transport"

	"github.com/chzyer/readline"
)

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeBrown ColorTheme = "brown"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
)

type themeColors struct {
	lightBg string
	darkBg  string
	white   string
	black   string
	reset   string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeBrown: {
		lightBg: "\033[48;5;230m", // Beige
		darkBg:  "\033[48;5;94m",  // Brown
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGreen: {
		lightBg: "\033[48;5;157m", // Light green
		darkBg:  "\033[48;5;22m",  // Dark green
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGray: {
		lightBg: "\033[48;5;251m", // Light gray
		darkBg:  "\033[48;5;240m", // Dark gray
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
}

// LineReader is the input side of the console. *readline.Instance satisfies
// it directly.
type LineReader interface {
	Readline() (string, error)
}

type prompter interface {
	SetPrompt(prompt string)
}

type scannerReader struct {
	scanner *bufio.Scanner
}

func (s *scannerReader) Readline() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

type CLI struct {
	input   LineReader
	output  io.Writer
	theme   ColorTheme
	verbose bool
}

// New creates a view reading plain lines from input
func New(input io.Reader, output io.Writer) *CLI {
	return NewWithReader(&scannerReader{scanner: bufio.NewScanner(input)}, output)
}

// NewWithReader creates a view over any line reader, such as readline
func NewWithReader(input LineReader, output io.Writer) *CLI {
	return &CLI{
		input:  input,
		output: output,
		theme:  ThemeOff,
	}
}

// NewReadline opens a readline session with in-memory history
func NewReadline() (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
}

// ReadCommand reads and parses one line. End of input and interrupts become
// CmdQuit.
func (c *CLI) ReadCommand() (*transport.Command, error) {
	line, err := c.input.Readline()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return &transport.Command{Type: transport.CmdQuit}, nil
		}
		return nil, err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return &transport.Command{Type: transport.CmdNone}, nil
	}

	return ParseCommand(line), nil
}

// ParseCommand turns an input line into a command. Anything that is not a
// keyword is read as four move coordinates.
func ParseCommand(input string) *transport.Command {
	parts := strings.Fields(strings.ReplaceAll(input, ",", " "))
	if len(parts) == 0 {
		return &transport.Command{Type: transport.CmdNone}
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "history":
		return &transport.Command{Type: transport.CmdHistory}
	case "color":
		return &transport.Command{Type: transport.CmdColor, Args: args}
	case "verbose":
		return &transport.Command{Type: transport.CmdVerbose}
	case "help", "?":
		return &transport.Command{Type: transport.CmdHelp}
	case "quit", "exit":
		return &transport.Command{Type: transport.CmdQuit}
	}

	if len(parts) != 4 {
		return &transport.Command{
			Type: transport.CmdInvalid,
			Args: []string{fmt.Sprintf("expected 4 numbers (from-row from-col to-row to-col), got %d values", len(parts))},
			Raw:  input,
		}
	}

	var coords [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return &transport.Command{
				Type: transport.CmdInvalid,
				Args: []string{fmt.Sprintf("%q is not a number", p)},
				Raw:  input,
			}
		}
		coords[i] = n
	}

	return &transport.Command{
		Type: transport.CmdMove,
		Move: game.NewMove(coords[0], coords[1], coords[2], coords[3]),
		Raw:  input,
	}
}

// ReadLine reads one trimmed line, used for menu choices
func (c *CLI) ReadLine() (string, error) {
	line, err := c.input.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *CLI) SetTheme(theme string) error {
	t := ColorTheme(theme)
	if _, ok := themes[t]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, brown, green, gray)", theme)
	}
	c.theme = t
	return nil
}

func (c *CLI) ToggleVerbose() bool {
	c.verbose = !c.verbose
	return c.verbose
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(fmt.Sprintf("Error: %v", err))
}

// ShowPrompt hands the prompt to readline when available so line editing
// redraws it, otherwise writes it directly
func (c *CLI) ShowPrompt(prompt string) {
	if p, ok := c.input.(prompter); ok {
		p.SetPrompt(prompt)
		return
	}
	fmt.Fprint(c.output, prompt)
}

func (c *CLI) DisplayBoard(b *board.Board) {
	if c.theme == ThemeOff {
		c.ShowMessage("\n" + b.ToASCII() + "\n")
		return
	}

	theme := themes[c.theme]
	var sb strings.Builder

	sb.WriteString("\n  0 1 2 3 4 5 6 7\n")

	for r := 0; r < board.Size; r++ {
		sb.WriteString(fmt.Sprintf("%d ", r))
		for col := 0; col < board.Size; col++ {
			piece := b.At(r, col)

			bg := theme.lightBg
			if board.IsDark(r, col) {
				bg = theme.darkBg
			}

			if piece.IsEmpty() {
				sb.WriteString(fmt.Sprintf("%s  %s", bg, theme.reset))
			} else {
				color := theme.black
				if piece.Color == core.ColorWhite {
					color = theme.white
				}
				sb.WriteString(fmt.Sprintf("%s%s%c %s", bg, color, piece.Rune(), theme.reset))
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", r))
	}
	sb.WriteString("  0 1 2 3 4 5 6 7\n")

	c.ShowMessage(sb.String())
}

func (c *CLI) ShowHelp() {
	help := `Commands:
  <r1> <c1> <r2> <c2> - Move the piece at row r1, column c1 to r2, c2 (e.g. 5 0 4 1)
  history             - Show the moves played so far
  color <theme>       - Set board color theme (off|brown|green|gray)
  verbose             - Toggle detailed move information
  quit/exit           - Leave the game
  help/?              - Show this help message

Pieces: w/b are men, W/B are kings. White moves up the board (toward row 0).`

	c.ShowMessage(help)
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage("Welcome to Checkers!")
	c.ShowMessage("Enter moves as four numbers: from-row from-col to-row to-col.")
	c.ShowMessage("")
}

// ShowMenu prints the game mode menu
func (c *CLI) ShowMenu() {
	c.ShowMessage("=== MENU ===")
	c.ShowMessage("1. Player vs Computer")
	c.ShowMessage("2. Player vs Player")
	c.ShowMessage("3. Computer vs Computer")
}

func (c *CLI) ShowGameHistory(g *game.Game) {
	c.ShowMessage(fmt.Sprintf("Starting position: %s\n", g.InitialPosition()))

	// White's column comes first; a game begun with Black to move leaves it empty
	var cells []string
	moves := g.Moves()
	if len(moves) > 0 && moves[0].PlayerColor == core.ColorBlack {
		cells = append(cells, "...")
	}
	for i := range moves {
		cells = append(cells, formatMove(&moves[i]))
	}
	for i := 0; i < len(cells); i += 2 {
		second := "..."
		if i+1 < len(cells) {
			second = cells[i+1]
		}
		c.ShowMessage(fmt.Sprintf("%d. %s | %s", i/2+1, cells[i], second))
	}
	c.ShowMessage(fmt.Sprintf("\nCurrent position: %s", g.Position()))
	c.ShowMessage(fmt.Sprintf("Game state: %s\n", g.State()))
}

func (c *CLI) ShowMove(result *game.MoveResult, playerType core.PlayerType) {
	who := "Computer"
	if playerType == core.PlayerHuman {
		if !c.verbose {
			return
		}
		who = "Player"
	}

	if c.verbose {
		c.ShowMessage(fmt.Sprintf("%s (%s): %s\n", who, result.PlayerColor.Name(), describeMove(result)))
	} else {
		c.ShowMessage(fmt.Sprintf("%s (%s): %s\n", who, result.PlayerColor.Name(), result.Move))
	}
}

func (c *CLI) ShowGameOver(g *game.Game) {
	c.ShowMessage(fmt.Sprintf("\nGame Over: %s", g.State()))
	c.ShowMessage(fmt.Sprintf("Pieces left - White: %d, Black: %d\n",
		g.PieceCount(core.ColorWhite), g.PieceCount(core.ColorBlack)))
}

// formatMove marks captures with x and promotions with a trailing K
func formatMove(r *game.MoveResult) string {
	m := r.Move
	sep := "-"
	if r.Captured {
		sep = "x"
	}
	s := fmt.Sprintf("%d,%d%s%d,%d", m.FromRow, m.FromCol, sep, m.ToRow, m.ToCol)
	if r.Promoted {
		s += "K"
	}
	return s
}

func describeMove(r *game.MoveResult) string {
	s := formatMove(r)
	if r.Captured {
		s += fmt.Sprintf(" (captured %d,%d)", r.CapturedRow, r.CapturedCol)
	}
	if r.Promoted {
		s += " (crowned)"
	}
	return s
}
