package mines

import (
	"math/rand/v2"
	"strconv"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Status int

const (
	Active Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "Status(" + strconv.Itoa(int(s)) + ")"
	}
}

// Move is a single 0-indexed player action.
type Move struct {
	Row, Col int
	Flag     bool
}

// Game owns the truth board and everything the player has done to it.
type Game struct {
	board     *Board
	player    Grid
	revealed  int
	remaining int
	status    Status
	exploded  *Point
	log       *logrus.Entry
}

func NewGame(p Params, r *rand.Rand) (*Game, error) {
	board, err := NewBoard(p, r)
	if err != nil {
		return nil, err
	}
	return NewGameFromBoard(board), nil
}

func NewGameFromBoard(b *Board) *Game {
	g := &Game{
		board:     b,
		player:    make(Grid, b.Size()),
		remaining: b.Mines,
		log:       Log.WithField("board", b.Params.String()),
	}
	g.log.Info("new game")
	return g
}

// ApplyMove reveals or flags the target square and returns the resulting
// status. A rejected move returns the unchanged status and the reason.
func (g *Game) ApplyMove(m Move) (Status, error) {
	var err error
	if m.Flag {
		err = g.ToggleFlag(m.Row, m.Col)
	} else {
		_, err = g.Reveal(m.Row, m.Col)
	}
	if err != nil {
		g.log.WithFields(logrus.Fields{
			"row": m.Row, "col": m.Col, "flag": m.Flag,
		}).WithError(err).Debug("move rejected")
	}
	return g.status, err
}

func (g *Game) validate(row, col int) error {
	if g.status != Active {
		return gameOver(g.status)
	}
	if !g.board.InBounds(row, col) {
		return outOfBounds(row, col)
	}
	return nil
}

// Reveal opens a hidden square and returns how many squares were revealed.
// Opening a square with no adjacent mines cascades through the connected
// empty region and its numbered border. Opening a mine loses the game and
// leaves the visible board as it was.
func (g *Game) Reveal(row, col int) (int, error) {
	if err := g.validate(row, col); err != nil {
		return 0, err
	}
	i := g.board.index(row, col)
	if g.player[i].Cover != Hidden {
		return 0, cannotCheck(row, col)
	}

	if g.board.squares[i].Mine {
		g.status = Lost
		g.exploded = &Point{row, col}
		g.log.WithFields(logrus.Fields{
			"row": row, "col": col, "revealed": g.revealed,
		}).Info("mine revealed, game lost")
		return 0, nil
	}

	n := g.flood(i)
	g.log.WithFields(logrus.Fields{
		"row": row, "col": col, "opened": n,
	}).Debug("revealed")
	g.checkWin()
	return n, nil
}

// flood reveals start and, through an explicit FIFO work list, every square
// reachable from it across zero counts. A square is marked revealed before
// it is queued, so it is never queued or counted twice.
func (g *Game) flood(start int) (opened int) {
	var frontier deque.Deque[int]

	open := func(i int) {
		count := g.board.squares[i].Count
		g.player[i] = Square{Cover: Revealed, Count: count}
		g.revealed++
		opened++
		if count == 0 {
			frontier.PushBack(i)
		}
	}

	open(start)
	for frontier.Len() > 0 {
		row, col := g.board.coords(frontier.PopFront())
		g.board.neighbors(row, col, func(j int) {
			if g.player[j].Cover == Hidden {
				open(j)
			}
		})
	}
	return
}

// ToggleFlag marks a hidden square as a suspected mine or clears the mark.
// The remaining-mines counter is informational and goes negative when the
// player places more flags than there are mines.
func (g *Game) ToggleFlag(row, col int) error {
	if err := g.validate(row, col); err != nil {
		return err
	}
	i := g.board.index(row, col)
	switch g.player[i].Cover {
	case Hidden:
		g.player[i].Cover = Flagged
		g.remaining--
	case Flagged:
		g.player[i].Cover = Hidden
		g.remaining++
	default:
		return cannotFlag(row, col)
	}
	g.checkWin()
	return nil
}

func (g *Game) checkWin() {
	if g.status == Active && g.revealed == g.board.SafeSquares() {
		g.status = Won
		g.log.WithField("revealed", g.revealed).Info("all safe squares revealed, game won")
	}
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) Params() Params {
	return g.board.Params
}

func (g *Game) VisibleCell(row, col int) Square {
	return g.player[g.board.index(row, col)]
}

// TruthCell exposes the truth board. Meant for the end-of-game display.
func (g *Game) TruthCell(row, col int) Truth {
	return g.board.At(row, col)
}

func (g *Game) RemainingMines() int {
	return g.remaining
}

func (g *Game) RevealedCount() int {
	return g.revealed
}

// Exploded returns the mine that lost the game, if any.
func (g *Game) Exploded() (Point, bool) {
	if g.exploded == nil {
		return Point{}, false
	}
	return *g.exploded, true
}

// visible returns a copy of the visible board.
func (g *Game) visible() Grid {
	return append(Grid(nil), g.player...)
}
