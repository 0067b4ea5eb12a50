package mines

import (
	"strconv"
	"strings"
)

type Point struct {
	Row, Col int
}

// Cover is what the player currently knows about a square.
type Cover uint8

const (
	Hidden Cover = iota
	Flagged
	Revealed
)

func (c Cover) String() string {
	switch c {
	case Hidden:
		return "hidden"
	case Flagged:
		return "flagged"
	case Revealed:
		return "revealed"
	default:
		return "Cover(" + strconv.Itoa(int(c)) + ")"
	}
}

// Square is one entry of the visible board. Count is only meaningful once the
// square is revealed.
type Square struct {
	Cover Cover
	Count int
}

func (s Square) String() string {
	switch s.Cover {
	case Hidden:
		return "-"
	case Flagged:
		return "!"
	default:
		return strconv.Itoa(s.Count)
	}
}

// Truth is one entry of the truth board: either a mine or the number of
// mines among the up to 8 surrounding squares.
type Truth struct {
	Mine  bool
	Count int
}

// Grid is a row-major view of the visible board.
type Grid []Square

func (g Grid) toString(cols int) string {
	var b strings.Builder
	for i, s := range g {
		b.WriteString(s.String())
		if (i+1)%cols == 0 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
