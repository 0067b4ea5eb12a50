package main

import (
	"bufio"
	"context"
	"io"
	"iter"
	"strings"
)

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, strings.TrimSpace(piece)) {
				return
			}
			i += 1
		}
	}
}

// scanLines feeds lines from r into the returned channel until r is
// exhausted or ctx is done. A read that is already blocked is abandoned, not
// interrupted.
func scanLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}
