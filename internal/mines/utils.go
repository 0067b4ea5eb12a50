package mines

// neighborRange returns the inclusive bounds of the 3x3 block around
// (row, col) clipped to the grid.
func (p Params) neighborRange(row, col int) (fromRow, toRow, fromCol, toCol int) {
	fromRow, toRow = max(0, row-1), min(row+1, p.Rows-1)
	fromCol, toCol = max(0, col-1), min(col+1, p.Cols-1)
	return
}

// neighbors calls fn with the index of every in-bounds square adjacent to
// (row, col), excluding the square itself.
func (p Params) neighbors(row, col int, fn func(i int)) {
	fromRow, toRow, fromCol, toCol := p.neighborRange(row, col)
	for r := fromRow; r <= toRow; r++ {
		for c := fromCol; c <= toCol; c++ {
			if r != row || c != col {
				fn(r*p.Cols + c)
			}
		}
	}
}

func (p Params) index(row, col int) int {
	return row*p.Cols + col
}

func (p Params) coords(i int) (row, col int) {
	return i / p.Cols, i % p.Cols
}
