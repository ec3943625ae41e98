package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/janpfeifer/GoKlondike/internal/config"
	"github.com/janpfeifer/GoKlondike/internal/game"
	"github.com/pterm/pterm"
	"k8s.io/klog/v2"
)

// Prompt printed before reading each command.
const Prompt = "\nRETURN = Draw from Trash, 'M' = move card from stack M to Foundation, " +
	"'MN' = move card from stack M to Tableau N, 's' = show all: "

const helpText = `Commands:
  RETURN   draw from the stock (pile 7)
  M        move the last card of pile M (0-7) to its foundation
  MN       move the exposed cards of pile M (0-7) to tableau N (0-6)
  s        show every card, once
  h        this help
  q        quit`

// Session is one interactive game: it owns the game and the terminal streams.
type Session struct {
	game *game.Game
	in   *bufio.Scanner
	out  io.Writer

	showFoundations, showDeck bool
	palette                   *strings.Replacer
}

// NewSession creates a session playing g, reading commands from in and
// writing the board and messages to out.
func NewSession(g *game.Game, in io.Reader, out io.Writer, cfg *config.Config) *Session {
	s := &Session{
		game:            g,
		in:              bufio.NewScanner(in),
		out:             out,
		showFoundations: cfg.ShowFoundations,
		showDeck:        cfg.ShowDeck,
	}
	if cfg.Colour {
		s.palette = redSuits(pterm.LightRed)
	}
	return s
}

// redSuits builds a replacer painting, with paint, the faces of red cards as
// they appear inside a card box.
func redSuits(paint func(a ...any) string) *strings.Replacer {
	var pairs []string
	for _, suit := range game.Suits {
		if suit.Colour() != game.Red {
			continue
		}
		for _, rank := range game.Ranks {
			face := game.Card{Rank: rank, Suit: suit}.String()
			for _, edge := range []string{"|", ":"} {
				pairs = append(pairs, face+edge, paint(face)+edge)
			}
		}
	}
	return strings.NewReplacer(pairs...)
}

// inputLine is one read from the input: a line, or the end of the input with
// the scanner's error, if any.
type inputLine struct {
	text string
	eof  bool
	err  error
}

// readLines scans the input in the background, handing lines over one at a
// time until the input ends or stop is closed.
func (s *Session) readLines(stop <-chan struct{}) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		for {
			var l inputLine
			if s.in.Scan() {
				l.text = s.in.Text()
			} else {
				l.eof, l.err = true, s.in.Err()
			}
			select {
			case lines <- l:
			case <-stop:
				return
			}
			if l.eof {
				return
			}
		}
	}()
	return lines
}

// Run plays until the game is solved, the player quits or the input ends.
// It returns ctx's error if ctx is done while waiting for a command.
func (s *Session) Run(ctx context.Context) error {
	klog.Infof("Session for game %s started", s.game.ID)
	s.printBoard(false)

	stop := make(chan struct{})
	defer close(stop)
	lines := s.readLines(stop)

	for !s.game.Solved() {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, Prompt)

		var l inputLine
		select {
		case <-ctx.Done():
			klog.Infof("Session for game %s: interrupted", s.game.ID)
			return ctx.Err()
		case l = <-lines:
		}
		if l.eof {
			if l.err != nil {
				return fmt.Errorf("reading command: %w", l.err)
			}
			klog.Infof("Session for game %s: input closed", s.game.ID)
			return nil
		}

		cmd, err := ParseCommand(l.text)
		if err != nil {
			klog.V(1).Infof("Session for game %s: %v", s.game.ID, err)
			pterm.Error.WithWriter(s.out).Println("Invalid input; try again")
			s.printBoard(false)
			continue
		}

		switch cmd.Type {
		case CmdQuit:
			klog.Infof("Session for game %s: player quit", s.game.ID)
			return nil

		case CmdHelp:
			fmt.Fprintln(s.out, helpText)
			continue

		case CmdShowAll:
			pterm.Warning.WithWriter(s.out).Println("Naughty, naughty!")
			s.printBoard(true)
			continue

		case CmdDraw:
			s.game.Draw()
			s.showDeck = true

		default:
			if err := s.move(cmd); err != nil {
				return err
			}
		}
		s.printBoard(false)
	}

	klog.Infof("Session for game %s: solved", s.game.ID)
	pterm.Success.WithWriter(s.out).Println("Solved it ... go you!")
	return nil
}

// move applies a move command. Moves that are not allowed are reported to the
// player; only unexpected failures are returned.
func (s *Session) move(cmd Command) error {
	var (
		moved bool
		err   error
	)
	if cmd.Type == CmdToFoundation {
		moved, err = s.game.MoveToFoundation(cmd.From)
	} else {
		moved, err = s.game.MoveToTableau(cmd.From, cmd.To)
	}
	switch {
	case errors.Is(err, game.ErrNoSuchPile), errors.Is(err, game.ErrNotATableau):
		pterm.Error.WithWriter(s.out).Println(err)
		return nil
	case err != nil:
		klog.Errorf("Session for game %s: move %+v failed: %v", s.game.ID, cmd, err)
		return err
	}
	if !moved {
		pterm.Info.WithWriter(s.out).Println("That move is not allowed")
		return nil
	}
	if cmd.Type == CmdToFoundation {
		s.showFoundations = true
	}
	return nil
}

func (s *Session) printBoard(showAll bool) {
	rows := s.game.Render(game.RenderOptions{
		ShowFoundations: s.showFoundations,
		ShowDeck:        s.showDeck,
		ShowAll:         showAll,
	})
	board := strings.Join(rows, "\n")
	if s.palette != nil {
		board = s.palette.Replace(board)
	}
	fmt.Fprintln(s.out, board)
}
