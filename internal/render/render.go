// Package render draws a game as plain text, optionally coloured.
package render

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vancomm/sweeper/internal/command"
	"github.com/vancomm/sweeper/internal/mines"
)

// View is the part of a game the renderer reads.
type View interface {
	Params() mines.Params
	VisibleCell(row, col int) mines.Square
	TruthCell(row, col int) mines.Truth
	RemainingMines() int
	Exploded() (mines.Point, bool)
}

var countColors = [...]lipgloss.Color{
	"", "12", "10", "9", "4", "1", "6", "8", "7",
}

type styles struct {
	hidden   lipgloss.Style
	flag     lipgloss.Style
	mine     lipgloss.Style
	exploded lipgloss.Style
	header   lipgloss.Style
	counts   [len(countColors)]lipgloss.Style
}

func newStyles(lr *lipgloss.Renderer) styles {
	s := styles{
		hidden:   lr.NewStyle().Foreground(lipgloss.Color("240")),
		flag:     lr.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		mine:     lr.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		exploded: lr.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")).Bold(true),
		header:   lr.NewStyle().Foreground(lipgloss.Color("248")),
	}
	for n, c := range countColors {
		s.counts[n] = lr.NewStyle().Foreground(c)
	}
	return s
}

type Renderer struct {
	color  bool
	styles styles
}

// New returns a renderer that draws plain text, or ANSI colours when color
// is set regardless of what stdout is connected to.
func New(color bool) *Renderer {
	lr := lipgloss.NewRenderer(os.Stdout)
	if color {
		lr.SetColorProfile(termenv.ANSI256)
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{color: color, styles: newStyles(lr)}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

func (r *Renderer) count(n int) string {
	if n == 0 {
		return " "
	}
	return r.style(r.styles.counts[n], strconv.Itoa(n))
}

// Board draws what the player currently sees, followed by the number of
// mines not yet flagged.
func (r *Renderer) Board(v View) string {
	return r.draw(v.Params(), func(row, col int) string {
		s := v.VisibleCell(row, col)
		switch s.Cover {
		case mines.Hidden:
			return r.style(r.styles.hidden, "-")
		case mines.Flagged:
			return r.style(r.styles.flag, "!")
		default:
			return r.count(s.Count)
		}
	}) + fmt.Sprintf("mines left: %d\n", v.RemainingMines())
}

// RevealAll draws the truth board over the player's view once the game is
// over. Flags are shown as correct (F) or wrong (x); the mine that ended the
// game is X.
func (r *Renderer) RevealAll(v View) string {
	exploded, lost := v.Exploded()
	return r.draw(v.Params(), func(row, col int) string {
		t := v.TruthCell(row, col)
		flagged := v.VisibleCell(row, col).Cover == mines.Flagged
		switch {
		case lost && exploded == (mines.Point{Row: row, Col: col}):
			return r.style(r.styles.exploded, "X")
		case flagged && t.Mine:
			return r.style(r.styles.flag, "F")
		case flagged:
			return r.style(r.styles.flag, "x")
		case t.Mine:
			return r.style(r.styles.mine, "*")
		default:
			return r.count(t.Count)
		}
	})
}

func (r *Renderer) draw(p mines.Params, square func(row, col int) string) string {
	var (
		b     strings.Builder
		width = len(strconv.Itoa(p.Rows))
	)

	b.WriteString(strings.Repeat(" ", width+1))
	header := make([]string, p.Cols)
	for col := range p.Cols {
		header[col] = command.ColumnSymbol(col)
	}
	b.WriteString(r.style(r.styles.header, strings.Join(header, " ")))
	b.WriteByte('\n')

	line := make([]string, p.Cols+1)
	for row := range p.Rows {
		line[0] = r.style(r.styles.header, fmt.Sprintf("%*d", width, row+1))
		for col := range p.Cols {
			line[col+1] = square(row, col)
		}
		b.WriteString(strings.Join(line, " "))
		b.WriteByte('\n')
	}
	return b.String()
}
