package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/sweeper/internal/command"
	"github.com/vancomm/sweeper/internal/mines"
	"github.com/vancomm/sweeper/internal/render"
)

const (
	exitCommand = "exit"
	helpCommand = "help"
	prompt      = "> "
)

var helpText = fmt.Sprintf(`moves:
  <row> <column>       reveal a square, e.g. "3 H"
  %[1]s <row> <column>     flag or unflag a square, e.g. "%[1]s 3 H"
  several moves can be given on one line separated by ";"
  %[2]s                 leave the game
`, command.FlagMarker, exitCommand)

type session struct {
	game     *mines.Game
	parser   command.Parser
	renderer *render.Renderer
	out      io.Writer
	log      *logrus.Entry
}

// run plays one game, reading moves from lines until the game ends, the
// player exits, the input is exhausted or ctx is done.
func (s *session) run(ctx context.Context, lines <-chan string) error {
	fmt.Fprint(s.out, s.renderer.Board(s.game))
	for {
		fmt.Fprint(s.out, prompt)
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				s.log.Info("input closed")
				fmt.Fprintln(s.out)
				return nil
			}
			if s.execute(line) {
				return nil
			}
		}
	}
}

// execute applies every move on the line and reports whether the session is
// over. Processing stops at the first rejected move.
func (s *session) execute(line string) (over bool) {
	text := strings.TrimSpace(line)
	switch text {
	case "":
		return false
	case helpCommand:
		fmt.Fprint(s.out, helpText)
		return false
	}

	for _, c := range byPiece(text, ";") {
		if c == "" {
			continue
		}
		if c == exitCommand {
			s.log.WithField("status", s.game.Status()).Info("player left")
			return true
		}
		move, err := s.parser.Parse(c)
		if err != nil {
			s.log.WithField("input", c).Debug(err)
			fmt.Fprintf(s.out, "%s\n", err)
			break
		}
		status, err := s.game.ApplyMove(move)
		if err != nil {
			fmt.Fprintf(s.out, "%q rejected: %s\n", c, err)
			break
		}
		if status != mines.Active {
			break
		}
	}

	switch s.game.Status() {
	case mines.Won:
		fmt.Fprint(s.out, s.renderer.RevealAll(s.game))
		fmt.Fprintln(s.out, "You cleared the board. You win!")
		return true
	case mines.Lost:
		fmt.Fprint(s.out, s.renderer.RevealAll(s.game))
		fmt.Fprintln(s.out, "Boom! You hit a mine. Game over.")
		return true
	}
	fmt.Fprint(s.out, s.renderer.Board(s.game))
	return false
}
