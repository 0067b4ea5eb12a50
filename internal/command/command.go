// Package command turns typed moves such as "3 H" or "# 3 H" into
// [mines.Move] values.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/sweeper/internal/mines"
)

const (
	// FlagMarker prefixes a move that toggles a flag instead of revealing.
	FlagMarker = "#"

	// Alphabet holds the column symbols in column order.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

var (
	ErrInvalidMove = errors.New("invalid move")

	ErrTokenCount = fmt.Errorf("%w: expected \"row column\" or \"%s row column\"", ErrInvalidMove, FlagMarker)
	ErrFlagMarker = fmt.Errorf("%w: only %q may precede the row", ErrInvalidMove, FlagMarker)
	ErrRow        = fmt.Errorf("%w: row must be a number", ErrInvalidMove)
	ErrRowRange   = fmt.Errorf("%w: row is out of range", ErrInvalidMove)
	ErrColumn     = fmt.Errorf("%w: unknown column", ErrInvalidMove)
)

// ColumnSymbol returns the symbol for a 0-indexed column.
func ColumnSymbol(col int) string {
	return Alphabet[col : col+1]
}

// ColumnIndex maps a column symbol to its index among the first cols symbols.
func ColumnIndex(symbol string, cols int) (int, bool) {
	if len(symbol) != 1 {
		return 0, false
	}
	i := strings.Index(Alphabet[:min(cols, len(Alphabet))], symbol)
	return i, i >= 0
}

type Parser struct {
	rows, cols int
}

func NewParser(p mines.Params) Parser {
	return Parser{rows: p.Rows, cols: p.Cols}
}

type state int

const (
	expectMarker state = iota
	expectRow
	expectColumn
	done
)

// Parse validates a whole move. On error no part of the move is usable.
func (p Parser) Parse(s string) (mines.Move, error) {
	var (
		move   mines.Move
		tokens = strings.Fields(s)
		st     = expectRow
	)
	switch len(tokens) {
	case 2:
	case 3:
		st = expectMarker
	default:
		return mines.Move{}, fmt.Errorf("%w (got %d tokens)", ErrTokenCount, len(tokens))
	}

	for _, tok := range tokens {
		switch st {
		case expectMarker:
			if tok != FlagMarker {
				return mines.Move{}, fmt.Errorf("%w (got %q)", ErrFlagMarker, tok)
			}
			move.Flag = true
			st = expectRow
		case expectRow:
			row, err := p.parseRow(tok)
			if err != nil {
				return mines.Move{}, err
			}
			move.Row = row
			st = expectColumn
		case expectColumn:
			col, ok := ColumnIndex(tok, p.cols)
			if !ok {
				return mines.Move{}, fmt.Errorf("%w %q (want %s..%s)",
					ErrColumn, tok, ColumnSymbol(0), ColumnSymbol(p.cols-1))
			}
			move.Col = col
			st = done
		}
	}
	return move, nil
}

func (p Parser) parseRow(tok string) (int, error) {
	for _, c := range tok {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w (got %q)", ErrRow, tok)
		}
	}
	row, err := strconv.Atoi(tok)
	if err != nil || row < 1 || row > p.rows {
		return 0, fmt.Errorf("%w (got %s, want 1..%d)", ErrRowRange, tok, p.rows)
	}
	return row - 1, nil
}
