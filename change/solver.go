package change

import (
	"slices"

	"coin-change/internal/common"
)

// Solver solves many targets against one validated denomination set.
// It is immutable and safe for concurrent use; every Solve builds its own table.
type Solver[T Integer] struct {
	denominations []T
}

// NewSolver validates denominations and returns a Solver over the distinct
// values, sorted ascending.
func NewSolver[T Integer](denominations []T) (*Solver[T], error) {
	if err := validateDenominations(denominations); err != nil {
		return nil, err
	}

	distinct := common.Dedup(denominations)
	slices.Sort(distinct)

	return &Solver[T]{denominations: distinct}, nil
}

// Denominations returns a copy of the distinct denominations, ascending.
func (s *Solver[T]) Denominations() []T {
	return slices.Clone(s.denominations)
}

// Solve returns the minimum count for target. See the package-level Solve.
func (s *Solver[T]) Solve(target T) (Result, error) {
	if err := validateTarget(target); err != nil {
		return Unreachable, err
	}

	return fill(int(target), usable(target, s.denominations)).Final(), nil
}
