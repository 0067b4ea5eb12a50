package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/mines"
)

// setupLogging keeps stdout for the game: logs go to stderr in development
// mode and to the optional rotating log file.
func setupLogging(opts *config.Options) error {
	level, err := logrus.ParseLevel(opts.LogLevel)
	if err != nil {
		return err
	}
	if opts.Dev {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	if opts.Dev {
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	if opts.LogFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   opts.LogFile,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return fmt.Errorf("unable to open log file %s: %w", opts.LogFile, err)
		}
		log.AddHook(hook)
	}

	mines.Log = log
	return nil
}
