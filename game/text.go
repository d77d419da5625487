package game

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Render prints the grid, one symbol and a space per column, followed by a
// blank line.
func (b *Board) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < b.size; i++ {
		for j := 0; j < b.size; j++ {
			bw.WriteRune(b.cells[i][j].Symbol.Rune())
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// Encode writes the board in the format read by ParseBoard: the dimension on
// its own line followed by the rendered grid.
func (b *Board) Encode(w io.Writer) error {
	if _, err := fmt.Fprintln(w, b.n); err != nil {
		return err
	}
	return b.Render(w)
}

func (b *Board) String() string {
	var sb strings.Builder
	_ = b.Render(&sb)
	return sb.String()
}

// ParseBoard reads a board description: the dimension n on the first line,
// then 4n-1 rows with one symbol per column separated by spaces.
func ParseBoard(r io.Reader, options ...Option) (*Board, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: missing dimension", ErrMalformedBoard)
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return nil, fmt.Errorf("%w: dimension %q: %v", ErrMalformedBoard, sc.Text(), err)
	}
	b, err := NewBoard(n, options...)
	if err != nil {
		return nil, err
	}

	width := 2*b.size - 1
	for i := 0; i < b.size; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformedBoard, b.size, i)
		}
		line := sc.Text()
		if len(line) != width && !(len(line) == width+1 && line[width] == ' ') {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrMalformedBoard, i, len(line), width)
		}
		for j := 0; j < b.size; j++ {
			symbol, err := b.parseSymbol(i, j, line[2*j])
			if err != nil {
				return nil, err
			}
			b.cells[i][j].Symbol = symbol
			if symbol.IsOwned() {
				b.credit(symbol.Owner(), 1)
			}
		}
	}
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			return nil, fmt.Errorf("%w: unexpected content after row %d", ErrMalformedBoard, b.size-1)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	for _, h := range b.hexes {
		center := &b.cells[h.row+1][h.col+1]
		surrounded := b.surrounded(h)
		if surrounded && center.Symbol == HexUndecided && b.unownedCaptures {
			center.Symbol = HexClosed
			continue
		}
		if surrounded != center.Symbol.IsOwned() {
			return nil, fmt.Errorf("%w: ownership of hexagon (%d,%d) does not match its edges", ErrMalformedBoard, h.row+1, h.col+1)
		}
	}

	b.refresh()
	return b, nil
}

func (b *Board) parseSymbol(row, col int, ch byte) (Symbol, error) {
	current := b.cells[row][col].Symbol
	var symbol Symbol
	switch {
	case current == Free && ch == '+':
		symbol = Free
	case current == Free && ch == 'B':
		symbol = ClaimedByBlue
	case current == Free && ch == 'R':
		symbol = ClaimedByRed
	case current == HexUndecided && ch == '-':
		symbol = HexUndecided
	case current == HexUndecided && ch == 'b':
		symbol = HexOwnedByBlue
	case current == HexUndecided && ch == 'r':
		symbol = HexOwnedByRed
	case current == NotPlayable && ch == '-':
		symbol = NotPlayable
	default:
		return 0, fmt.Errorf("%w: symbol %q not allowed at (%d,%d)", ErrMalformedBoard, ch, row, col)
	}
	return symbol, nil
}
