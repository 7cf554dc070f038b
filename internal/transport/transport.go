package transport

import (
	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/game"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdMove
	CmdInvalid
	CmdHistory
	CmdColor
	CmdVerbose
	CmdHelp
	CmdQuit
)

// Command is one line of human input after parsing
type Command struct {
	Type CommandType
	Move game.Move
	Args []string
	Raw  string
}

// Renderer displays game state. It only reads cell colors and king flags.
type Renderer interface {
	DisplayBoard(b *board.Board)
	ShowMessage(msg string)
	ShowError(err error)
	ShowPrompt(prompt string)
	ShowMove(result *game.MoveResult, playerType core.PlayerType)
	ShowGameHistory(g *game.Game)
	ShowGameOver(g *game.Game)
	ShowHelp()
	ShowMenu()
}

// InputCollector reads human input. Move coordinates are returned exactly as
// typed; range checking is left to the rules.
type InputCollector interface {
	ReadCommand() (*Command, error)
	ReadLine() (string, error)
}

// View is the full console surface the game loop drives
type View interface {
	Renderer
	InputCollector
	SetTheme(theme string) error
	ToggleVerbose() bool
}
