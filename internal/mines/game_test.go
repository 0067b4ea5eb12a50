package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// layoutGame builds a game from a picture of the mine layout, one string per
// row, '*' for a mine.
func layoutGame(rows ...string) *Game {
	p := Params{Rows: len(rows), Cols: len(rows[0])}
	layout := make([]bool, 0, p.Rows*p.Cols)
	for _, row := range rows {
		for _, c := range row {
			layout = append(layout, c == '*')
			if c == '*' {
				p.Mines++
			}
		}
	}
	return NewGameFromBoard(newBoard(p, layout))
}

func countRevealed(g *Game) (n int) {
	for _, s := range g.player {
		if s.Cover == Revealed {
			n++
		}
	}
	return
}

func TestRevealEmptyBoardWins(t *testing.T) {
	g := layoutGame("...", "...", "...")

	status, err := g.ApplyMove(Move{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, Won, status)
	assert.Equal(t, 9, g.RevealedCount())
	for i, s := range g.player {
		assert.Equal(t, Square{Cover: Revealed}, s, "square %d", i)
	}
}

func TestRevealNumberedSquareDoesNotCascade(t *testing.T) {
	g := layoutGame(
		"*..",
		"...",
		"...",
	)
	n, err := g.Reveal(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, Square{Cover: Revealed, Count: 1}, g.VisibleCell(1, 1))
	assert.Equal(t, Hidden, g.VisibleCell(0, 1).Cover)
	assert.Equal(t, Active, g.Status())
}

func TestRevealCascadeStopsAtShoreline(t *testing.T) {
	g := layoutGame(
		".....",
		".....",
		"...**",
		"...*.",
	)
	n, err := g.Reveal(0, 0)
	require.NoError(t, err)

	want := "0 0 0 0 0\n0 0 1 2 2\n0 0 2 - -\n0 0 2 - -\n"
	assert.Equal(t, want, g.visible().toString(5))
	assert.Equal(t, 16, n)
	assert.Equal(t, 16, g.RevealedCount())
	assert.Equal(t, Active, g.Status())

	// last safe square
	status, err := g.ApplyMove(Move{Row: 3, Col: 4})
	require.NoError(t, err)
	assert.Equal(t, Won, status)
}

func TestRevealCascadeRegionProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for range 200 {
		g, err := NewGame(Params{Rows: 12, Cols: 17, Mines: 20}, r)
		require.NoError(t, err)

		var start *Point
		for i, tr := range g.board.squares {
			if !tr.Mine && tr.Count == 0 {
				row, col := g.board.coords(i)
				start = &Point{row, col}
				break
			}
		}
		if start == nil {
			continue
		}

		n, err := g.Reveal(start.Row, start.Col)
		require.NoError(t, err)
		assert.Equal(t, n, g.RevealedCount())
		assert.Equal(t, countRevealed(g), g.RevealedCount())

		for i, s := range g.player {
			row, col := g.board.coords(i)
			tr := g.board.squares[i]
			if s.Cover != Revealed {
				continue
			}
			assert.False(t, tr.Mine)
			assert.Equal(t, tr.Count, s.Count)
			// every neighbor of a revealed zero is revealed too
			if tr.Count == 0 {
				g.board.neighbors(row, col, func(j int) {
					assert.Equal(t, Revealed, g.player[j].Cover)
				})
			}
		}
	}
}

func TestRevealLargeBoardTerminates(t *testing.T) {
	p := Params{Rows: 1000, Cols: MaxCols, Mines: 0}
	g, err := NewGame(p, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	n, err := g.Reveal(500, 20)
	require.NoError(t, err)
	assert.Equal(t, p.Size(), n)
	assert.Equal(t, Won, g.Status())
}

func TestRevealRejectsRevealedAndFlagged(t *testing.T) {
	g := layoutGame(
		"*..",
		"...",
	)
	_, err := g.Reveal(1, 1)
	require.NoError(t, err)

	before := g.visible()
	n, err := g.Reveal(1, 1)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, ErrIllegalTarget)
	assert.EqualError(t, err, "cannot check this square")

	require.NoError(t, g.ToggleFlag(0, 0))
	_, err = g.Reveal(0, 0)
	assert.EqualError(t, err, "cannot check this square")
	assert.Equal(t, Active, g.Status())
	assert.Equal(t, 1, g.RevealedCount())

	before[0].Cover = Flagged
	assert.Equal(t, before, g.visible())
}

func TestRevealMineLoses(t *testing.T) {
	g := layoutGame(
		"*..",
		"...",
	)
	status, err := g.ApplyMove(Move{Row: 0, Col: 0})
	require.NoError(t, err)
	assert.Equal(t, Lost, status)
	assert.Equal(t, Hidden, g.VisibleCell(0, 0).Cover)
	assert.Zero(t, g.RevealedCount())

	p, ok := g.Exploded()
	assert.True(t, ok)
	assert.Equal(t, Point{0, 0}, p)

	before := g.visible()
	for _, m := range []Move{{Row: 1, Col: 2}, {Row: 1, Col: 2, Flag: true}, {Row: 0, Col: 0}} {
		status, err := g.ApplyMove(m)
		assert.Equal(t, Lost, status)
		assert.ErrorIs(t, err, ErrGameOver)
	}
	assert.Equal(t, before, g.visible())
	assert.Equal(t, 1, g.RemainingMines())
}

func TestWonIsTerminal(t *testing.T) {
	g := layoutGame("*.")
	status, err := g.ApplyMove(Move{Row: 0, Col: 1})
	require.NoError(t, err)
	require.Equal(t, Won, status)

	status, err = g.ApplyMove(Move{Row: 0, Col: 0, Flag: true})
	assert.Equal(t, Won, status)
	assert.ErrorIs(t, err, ErrGameOver)
	assert.Equal(t, Hidden, g.VisibleCell(0, 0).Cover)
	assert.Equal(t, 1, g.RemainingMines())
}

func TestToggleFlag(t *testing.T) {
	g := layoutGame(
		"*..",
		"...",
	)
	require.Equal(t, 1, g.RemainingMines())

	require.NoError(t, g.ToggleFlag(1, 2))
	assert.Equal(t, Flagged, g.VisibleCell(1, 2).Cover)
	assert.Equal(t, 0, g.RemainingMines())

	require.NoError(t, g.ToggleFlag(1, 2))
	assert.Equal(t, Hidden, g.VisibleCell(1, 2).Cover)
	assert.Equal(t, 1, g.RemainingMines())

	// over-flagging is allowed
	for _, col := range []int{0, 1, 2} {
		require.NoError(t, g.ToggleFlag(0, col))
	}
	assert.Equal(t, -2, g.RemainingMines())

	_, err := g.Reveal(1, 0)
	require.NoError(t, err)
	err = g.ToggleFlag(1, 0)
	assert.ErrorIs(t, err, ErrIllegalTarget)
	assert.EqualError(t, err, "cannot flag this square")
	assert.Equal(t, -2, g.RemainingMines())
}

func TestFlaggedSquareSurvivesCascade(t *testing.T) {
	g := layoutGame("...", "...", "...")
	require.NoError(t, g.ToggleFlag(2, 2))

	status, err := g.ApplyMove(Move{Row: 0, Col: 0})
	require.NoError(t, err)
	assert.Equal(t, Active, status)
	assert.Equal(t, Flagged, g.VisibleCell(2, 2).Cover)
	assert.Equal(t, 8, g.RevealedCount())

	require.NoError(t, g.ToggleFlag(2, 2))
	status, err = g.ApplyMove(Move{Row: 2, Col: 2})
	require.NoError(t, err)
	assert.Equal(t, Won, status)
}

func TestApplyMoveOutOfBounds(t *testing.T) {
	g := layoutGame("..")
	for _, m := range []Move{{Row: -1}, {Row: 1}, {Col: 2}, {Col: -1, Flag: true}} {
		status, err := g.ApplyMove(m)
		assert.Equal(t, Active, status)
		var te *TargetError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, Point{m.Row, m.Col}, te.Point)
		assert.EqualError(t, err, "square is out of bounds")
	}
	assert.Zero(t, g.RevealedCount())
}

func TestAllMinesBoard(t *testing.T) {
	g := layoutGame("**")
	status, err := g.ApplyMove(Move{Row: 0, Col: 1, Flag: true})
	require.NoError(t, err)
	assert.Equal(t, Won, status)
}

func TestTruthCell(t *testing.T) {
	g := layoutGame("*.", "..")
	assert.Equal(t, Truth{Mine: true}, g.TruthCell(0, 0))
	assert.Equal(t, Truth{Count: 1}, g.TruthCell(1, 1))
}
