// Package console runs an interactive game of Klondike on a terminal: it reads
// commands, applies them to a game.Game and prints the board.
package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/janpfeifer/GoKlondike/internal/game"
)

// ErrUnknownCommand is returned by ParseCommand for input it doesn't understand.
var ErrUnknownCommand = errors.New("unknown command")

// CommandType enumerates what a line of input asks for.
type CommandType int

const (
	CmdDraw         CommandType = iota // Turn the stock.
	CmdShowAll                         // Reveal every card once.
	CmdToFoundation                    // Move a card from pile From to its foundation.
	CmdToTableau                       // Move cards from pile From to tableau To.
	CmdHelp
	CmdQuit
)

// Command is a parsed line of input.
type Command struct {
	Type     CommandType
	From, To int
}

// ParseCommand parses one line of input:
//
//	(empty)  draw from the stock
//	s        show all cards
//	M        move from pile M (0-7, 7 is the stock) to a foundation
//	MN       move from pile M (0-7) to tableau N (0-6)
//	h, help  help
//	q, quit  leave the game
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	switch strings.ToLower(line) {
	case "":
		return Command{Type: CmdDraw}, nil
	case "s":
		return Command{Type: CmdShowAll}, nil
	case "h", "help", "?":
		return Command{Type: CmdHelp}, nil
	case "q", "quit", "exit":
		return Command{Type: CmdQuit}, nil
	}

	switch len(line) {
	case 1:
		if from, ok := digit(line[0], game.StockIndex); ok {
			return Command{Type: CmdToFoundation, From: from}, nil
		}
	case 2:
		from, okFrom := digit(line[0], game.StockIndex)
		to, okTo := digit(line[1], game.Tableaux-1)
		if okFrom && okTo {
			return Command{Type: CmdToTableau, From: from, To: to}, nil
		}
	}
	return Command{}, fmt.Errorf("%q: %w", line, ErrUnknownCommand)
}

// digit parses a single decimal digit no larger than maxValue.
func digit(b byte, maxValue int) (int, bool) {
	if b < '0' || b > '9' {
		return 0, false
	}
	v := int(b - '0')
	return v, v <= maxValue
}
