package mines

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// MaxCols is the number of distinct column symbols a board can be drawn with.
const MaxCols = 52

// MaxSquares caps rows*cols so board allocation stays bounded and the
// product never overflows.
const MaxSquares = 1 << 20

var ErrInvalidParams = errors.New("invalid game parameters")

type Params struct {
	Rows  int `mapstructure:"rows"`
	Cols  int `mapstructure:"cols"`
	Mines int `mapstructure:"mines"`
}

var (
	Beginner     = Params{Rows: 9, Cols: 9, Mines: 10}
	Intermediate = Params{Rows: 16, Cols: 16, Mines: 40}
	Expert       = Params{Rows: 16, Cols: 30, Mines: 99}
)

var presets = map[string]Params{
	"beginner":     Beginner,
	"intermediate": Intermediate,
	"expert":       Expert,
}

// Preset looks up a named board size. Names are case-insensitive.
func Preset(name string) (Params, error) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Params{}, fmt.Errorf(
			"%w: unknown preset %q (want beginner, intermediate or expert)",
			ErrInvalidParams, name,
		)
	}
	return p, nil
}

func (p Params) Size() int {
	return p.Rows * p.Cols
}

// SafeSquares is the number of squares that must be revealed to win.
func (p Params) SafeSquares() int {
	return p.Size() - p.Mines
}

func (p Params) InBounds(row, col int) bool {
	return 0 <= row && row < p.Rows && 0 <= col && col < p.Cols
}

func (p Params) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Rows, p.Cols, p.Mines)
}

// Validate reports every violated constraint, not just the first one.
func (p Params) Validate() error {
	var result *multierror.Error
	if p.Rows < 1 {
		result = multierror.Append(result,
			fmt.Errorf("rows must be at least 1, got %d", p.Rows))
	}
	if p.Cols < 1 || p.Cols > MaxCols {
		result = multierror.Append(result,
			fmt.Errorf("cols must be between 1 and %d, got %d", MaxCols, p.Cols))
	}
	sized := p.Rows >= 1 && p.Cols >= 1
	if sized && p.Rows > MaxSquares/p.Cols {
		result = multierror.Append(result,
			fmt.Errorf("rows*cols must not exceed %d, got %d rows of %d", MaxSquares, p.Rows, p.Cols))
		sized = false
	}
	if p.Mines < 0 {
		result = multierror.Append(result,
			fmt.Errorf("mines must not be negative, got %d", p.Mines))
	} else if sized && p.Mines > p.Size() {
		result = multierror.Append(result,
			fmt.Errorf("mines must not exceed rows*cols = %d, got %d", p.Size(), p.Mines))
	}
	if result == nil {
		return nil
	}
	result.ErrorFormat = joinErrors
	return fmt.Errorf("%w: %w", ErrInvalidParams, result)
}

func joinErrors(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// FormatSeed encodes params and a random seed into a replay id.
func FormatSeed(p Params, seed uint64) string {
	return fmt.Sprintf("%d:%d:%d:%d", p.Rows, p.Cols, p.Mines, seed)
}

func ParseSeed(id string) (Params, uint64, error) {
	var (
		p    Params
		seed uint64
	)
	sid := strings.ReplaceAll(strings.TrimSpace(id), ":", " ")
	n, err := fmt.Sscanf(sid, "%d %d %d %d", &p.Rows, &p.Cols, &p.Mines, &seed)
	if n != 4 || err != nil || strings.Count(id, ":") != 3 {
		return Params{}, 0, fmt.Errorf(
			`%w: malformed game id %q (want "rows:cols:mines:seed")`,
			ErrInvalidParams, id,
		)
	}
	if err := p.Validate(); err != nil {
		return Params{}, 0, err
	}
	return p, seed, nil
}
