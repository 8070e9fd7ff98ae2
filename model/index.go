package model

import "github.com/pkg/errors"

// Index partitions every board position into the live and dead lists,
// both in row-major order.
type Index struct {
	Live []Position
	Dead []Position
}

// Refresh rebuilds the index with a single pass over the board.
func Refresh(b *Board) Index {
	live := b.CountLivingCells()
	idx := Index{
		Live: make([]Position, 0, live),
		Dead: make([]Position, 0, b.size*b.size-live),
	}
	for r, row := range b.cells {
		for c, v := range row {
			p := Position{Row: r, Col: c}
			if v == Alive {
				idx.Live = append(idx.Live, p)
			} else {
				idx.Dead = append(idx.Dead, p)
			}
		}
	}
	return idx
}

// validate checks that idx partitions b and agrees with its states.
func (idx Index) validate(b *Board) error {
	if total := len(idx.Live) + len(idx.Dead); total != b.size*b.size {
		return errors.Wrapf(ErrStaleIndex, "[validate] %d positions for %d cells", total, b.size*b.size)
	}
	seen := make([]bool, b.size*b.size)
	if err := checkState(b, idx.Live, Alive, seen); err != nil {
		return err
	}
	return checkState(b, idx.Dead, Dead, seen)
}

func checkState(b *Board, ps []Position, want uint8, seen []bool) error {
	for _, p := range ps {
		if !b.Contains(p) {
			return errors.Wrapf(ErrStaleIndex, "[validate] position %v outside %dx%d board", p, b.size, b.size)
		}
		if b.Get(p) != want {
			return errors.Wrapf(ErrStaleIndex, "[validate] position %v is %d, indexed as %d", p, b.Get(p), want)
		}
		i := p.Row*b.size + p.Col
		if seen[i] {
			return errors.Wrapf(ErrStaleIndex, "[validate] position %v indexed twice", p)
		}
		seen[i] = true
	}
	return nil
}
