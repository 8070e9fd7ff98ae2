package model

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

var (
	ErrInvalidSize = errors.New("board size must be positive")
	ErrNotSquare   = errors.New("board is not square")
	ErrInvalidCell = errors.New("cell value outside {0,1}")
	ErrStaleIndex  = errors.New("index does not partition the board")
)

// Board is an immutable n x n snapshot of cell states. Each generation
// produces a new Board; existing boards are never written to.
type Board struct {
	size  int
	cells [][]uint8
}

// NewBoard validates and copies cells into a Board.
func NewBoard(cells [][]uint8) (*Board, error) {
	n := len(cells)
	if n == 0 {
		return nil, errors.Wrap(ErrInvalidSize, "[NewBoard] no rows")
	}

	b := newBoard(n)
	for r, row := range cells {
		if len(row) != n {
			return nil, errors.Wrapf(ErrNotSquare, "[NewBoard] row %d has %d cells, want %d", r, len(row), n)
		}
		for c, v := range row {
			if v != Dead && v != Alive {
				return nil, errors.Wrapf(ErrInvalidCell, "[NewBoard] value %d at (%d,%d)", v, r, c)
			}
		}
		copy(b.cells[r], row)
	}
	return b, nil
}

// EmptyBoard returns an all-dead n x n board.
func EmptyBoard(n int) (*Board, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "[EmptyBoard] size %d", n)
	}
	return newBoard(n), nil
}

func newBoard(n int) *Board {
	cells := make([][]uint8, n)
	backing := make([]uint8, n*n)
	for i := range cells {
		cells[i] = backing[i*n : (i+1)*n : (i+1)*n]
	}
	return &Board{size: n, cells: cells}
}

// Size returns the side length n.
func (b *Board) Size() int {
	return b.size
}

// Contains reports whether p lies on the board.
func (b *Board) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// Get returns the state at p. p must lie on the board.
func (b *Board) Get(p Position) uint8 {
	return b.cells[p.Row][p.Col]
}

// Cells returns a deep copy of the cell matrix.
func (b *Board) Cells() [][]uint8 {
	out := make([][]uint8, b.size)
	for i, row := range b.cells {
		out[i] = append([]uint8(nil), row...)
	}
	return out
}

// CountLivingCells returns the number of live cells
func (b *Board) CountLivingCells() (count int) {
	for _, row := range b.cells {
		for _, v := range row {
			count += int(v)
		}
	}
	return
}

// Hash returns an MD5 fingerprint of the board state.
func (b *Board) Hash() string {
	h := md5.New()
	for _, row := range b.cells {
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Equal reports whether both boards have the same size and cells.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

func (b *Board) String() string {
	var sb strings.Builder
	for _, row := range b.cells {
		for _, v := range row {
			sb.WriteByte('0' + v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
