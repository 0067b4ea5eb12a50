package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/vancomm/sweeper/internal/command"
	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/mines"
	"github.com/vancomm/sweeper/internal/render"
)

var log = logrus.New()

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	opts, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	} else if err != nil {
		log.Fatal("unable to load config: ", err)
	}

	if err := setupLogging(opts); err != nil {
		log.Fatal(err)
	}
	log.WithFields(opts.Fields()).Debug("config")

	game, err := mines.NewGame(
		opts.Params, rand.New(rand.NewPCG(opts.Seed, opts.Seed)),
	)
	if err != nil {
		fail("unable to create game", err)
	}

	s := &session{
		game:     game,
		parser:   command.NewParser(opts.Params),
		renderer: render.New(opts.ColorEnabled(term.IsTerminal(int(os.Stdout.Fd())))),
		out:      os.Stdout,
		log:      log.WithField("game", opts.GameID()),
	}

	fmt.Fprintf(os.Stdout, "game %s (replay with --game %s)\n", opts.Params, opts.GameID())

	err = s.run(ctx, scanLines(ctx, os.Stdin))
	if err != nil && !errors.Is(err, context.Canceled) {
		stop()
		fail("session ended", err)
	}
}

// fail reports a fatal error on stderr even when log output is discarded.
func fail(msg string, err error) {
	log.WithError(err).Error(msg)
	fmt.Fprintf(os.Stderr, "%s: %s\n", msg, err)
	os.Exit(1)
}
