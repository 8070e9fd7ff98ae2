package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-bounded/rules"
)

// Step advances b by one generation.
//
// Every live position in idx is evaluated with rule.Survives and every dead
// position with rule.IsBorn, all against b as it was on entry. The results
// are buffered and only then committed into a new board, so no cell ever
// observes a neighbor's next state. b itself is left untouched.
//
// pool may be nil.
func Step(b *Board, idx Index, rule rules.Rule, pool *BufferPool) (*Board, Index, error) {
	if b == nil {
		return nil, Index{}, errors.Wrap(ErrInvalidSize, "[Step] nil board")
	}
	if err := idx.validate(b); err != nil {
		return nil, Index{}, errors.Wrap(err, "[Step] failed to validate index")
	}

	survivors := getBuffer(pool, len(idx.Live))
	births := getBuffer(pool, len(idx.Dead))
	defer putBuffer(pool, survivors)
	defer putBuffer(pool, births)

	for i, p := range idx.Live {
		if rule.Survives(CountLiveNeighbors(b, p)) {
			(*survivors)[i] = Alive
		}
	}
	for i, p := range idx.Dead {
		if rule.IsBorn(CountLiveNeighbors(b, p)) {
			(*births)[i] = Alive
		}
	}

	next := newBoard(b.size)
	commit(next, idx.Live, *survivors)
	commit(next, idx.Dead, *births)

	return next, Refresh(next), nil
}

func commit(b *Board, ps []Position, states []uint8) {
	for i, p := range ps {
		b.cells[p.Row][p.Col] = states[i]
	}
}
