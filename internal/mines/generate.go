package mines

import "math/rand/v2"

// Board is the truth board. It is computed once and never changes afterwards.
type Board struct {
	Params
	squares []Truth
}

// NewBoard places p.Mines mines uniformly at random over the whole grid and
// counts the mines around every other square. No square is kept clear for
// the first move.
func NewBoard(p Params, r *rand.Rand) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	/*
	 * Lay the mines out at the front of a flat sequence and shuffle it;
	 * every permutation is equally likely.
	 */
	layout := make([]bool, p.Size())
	for i := range p.Mines {
		layout[i] = true
	}
	r.Shuffle(len(layout), func(i, j int) {
		layout[i], layout[j] = layout[j], layout[i]
	})

	return newBoard(p, layout), nil
}

// newBoard builds the truth board for a fixed mine layout.
func newBoard(p Params, layout []bool) *Board {
	b := &Board{Params: p, squares: make([]Truth, len(layout))}
	for i, mine := range layout {
		if mine {
			b.squares[i].Mine = true
		}
	}
	b.countAdjacent()
	return b
}

func (b *Board) countAdjacent() {
	for i := range b.squares {
		if b.squares[i].Mine {
			continue
		}
		row, col := b.coords(i)
		count := 0
		b.neighbors(row, col, func(j int) {
			if b.squares[j].Mine {
				count++
			}
		})
		b.squares[i].Count = count
	}
}

func (b *Board) At(row, col int) Truth {
	return b.squares[b.index(row, col)]
}

func (b *Board) mineCount() (n int) {
	for _, t := range b.squares {
		if t.Mine {
			n++
		}
	}
	return
}
