package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-bounded/rules"
)

// Simulation owns the current board and its live/dead index. Step is its
// only transition; there is no terminal state.
type Simulation struct {
	board      *Board
	index      Index
	rule       rules.Rule
	pool       *BufferPool
	generation int
}

// NewSimulation starts a simulation at generation 0. pool may be nil.
func NewSimulation(board *Board, rule rules.Rule, pool *BufferPool) (*Simulation, error) {
	if board == nil {
		return nil, errors.Wrap(ErrInvalidSize, "[NewSimulation] nil board")
	}
	return &Simulation{
		board: board,
		index: Refresh(board),
		rule:  rule,
		pool:  pool,
	}, nil
}

// Step computes and commits the next generation.
func (s *Simulation) Step() error {
	next, idx, err := Step(s.board, s.index, s.rule, s.pool)
	if err != nil {
		return errors.Wrapf(err, "[Simulation.Step] generation %d", s.generation)
	}
	s.board, s.index = next, idx
	s.generation++
	return nil
}

// Board returns the current generation's board.
func (s *Simulation) Board() *Board { return s.board }

// Index returns the live/dead partition of the current board.
func (s *Simulation) Index() Index { return s.index }

// Live returns the live positions of the current board.
func (s *Simulation) Live() []Position { return s.index.Live }

// Generation returns the number of committed steps.
func (s *Simulation) Generation() int { return s.generation }

func (s *Simulation) Size() int { return s.board.size }

func (s *Simulation) Rule() rules.Rule { return s.rule }
