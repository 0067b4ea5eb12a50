package config

import (
	"errors"
	"fmt"
	"hash/maphash"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vancomm/sweeper/internal/mines"
)

var ErrInvalidOptions = errors.New("invalid options")

type Options struct {
	Preset   string `mapstructure:"preset"`
	Rows     int    `mapstructure:"rows"`
	Cols     int    `mapstructure:"cols"`
	Mines    int    `mapstructure:"mines"`
	Seed     uint64 `mapstructure:"seed"`
	Game     string `mapstructure:"game"`
	LogFile  string `mapstructure:"log-file"`
	LogLevel string `mapstructure:"log-level"`
	Color    string `mapstructure:"color"`
	Dev      bool   `mapstructure:"dev"`

	// Params is the resolved board size.
	Params mines.Params `mapstructure:"-"`
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("sweeper", pflag.ContinueOnError)
	fs.String("preset", "beginner", "board preset: beginner, intermediate or expert")
	fs.Int("rows", 0, "number of rows (custom board, needs --cols and --mines)")
	fs.Int("cols", 0, fmt.Sprintf("number of columns, at most %d (custom board)", mines.MaxCols))
	fs.Int("mines", 0, "number of mines (custom board)")
	fs.Uint64("seed", 0, "random seed (default random)")
	fs.String("game", "", `replay a game id "rows:cols:mines:seed"`)
	fs.String("log-file", "", "write JSON logs to a rotating file")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.String("color", "auto", "colour output: auto, always or never")
	fs.Bool("dev", false, "development mode, logs go to stderr")
	return fs
}

// Load reads options from command line arguments and SWEEPER_* environment
// variables, flags taking precedence. The board size and seed are resolved
// and validated; nothing out of range is clamped.
func Load(args []string) (*Options, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("SWEEPER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("dev", "SWEEPER_DEVELOPMENT", "DEVELOPMENT"); err != nil {
		return nil, err
	}
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	var o Options
	if err := v.Unmarshal(&o); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	if err := o.check(); err != nil {
		return nil, err
	}
	if err := o.resolve(v); err != nil {
		return nil, err
	}
	return &o, nil
}

func (o *Options) check() error {
	switch o.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: color must be auto, always or never, got %q",
			ErrInvalidOptions, o.Color)
	}
	if _, err := logrus.ParseLevel(o.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	return nil
}

func (o *Options) resolve(v *viper.Viper) error {
	var custom, missing []string
	for _, key := range []string{"rows", "cols", "mines"} {
		if v.IsSet(key) {
			custom = append(custom, key)
		} else {
			missing = append(missing, key)
		}
	}

	if o.Game != "" {
		if len(custom) > 0 || v.IsSet("seed") {
			return fmt.Errorf("%w: game cannot be combined with rows, cols, mines or seed",
				ErrInvalidOptions)
		}
		p, seed, err := mines.ParseSeed(o.Game)
		if err != nil {
			return err
		}
		o.Params, o.Seed = p, seed
		return nil
	}

	if !v.IsSet("seed") {
		o.Seed = new(maphash.Hash).Sum64()
	}

	if len(custom) == 0 {
		p, err := mines.Preset(o.Preset)
		if err != nil {
			return err
		}
		o.Params = p
		return nil
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: rows, cols and mines must be given together (missing %s)",
			ErrInvalidOptions, strings.Join(missing, ", "))
	}
	o.Params = mines.Params{Rows: o.Rows, Cols: o.Cols, Mines: o.Mines}
	return o.Params.Validate()
}

// GameID identifies the board so it can be replayed with --game.
func (o Options) GameID() string {
	return mines.FormatSeed(o.Params, o.Seed)
}

// ColorEnabled decides whether to colour output written to a terminal
// (isTerminal) or elsewhere.
func (o Options) ColorEnabled(isTerminal bool) bool {
	switch o.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal
	}
}

func (o Options) Fields() logrus.Fields {
	return map[string]any{
		"rows":      o.Params.Rows,
		"cols":      o.Params.Cols,
		"mines":     o.Params.Mines,
		"seed":      o.Seed,
		"game":      o.GameID(),
		"log_file":  o.LogFile,
		"log_level": o.LogLevel,
		"color":     o.Color,
		"dev":       o.Dev,
	}
}
