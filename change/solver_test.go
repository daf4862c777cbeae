package change

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSolver(t *testing.T) {
	t.Parallel()

	s, err := NewSolver([]int{25, 1, 10, 5, 10, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5, 10, 25}, s.Denominations())

	got := s.Denominations()
	got[0] = 100
	assert.Equal(t, []int{1, 5, 10, 25}, s.Denominations())
}

func TestNewSolverRejectsNonPositive(t *testing.T) {
	t.Parallel()

	s, err := NewSolver([]int32{5, 0})
	assert.ErrorIs(t, err, ErrNonPositiveDenomination)
	assert.Nil(t, s)
}

func TestSolverAgreesWithSolve(t *testing.T) {
	t.Parallel()

	denominations := []uint16{9, 4, 6, 4}

	s, err := NewSolver(denominations)
	require.NoError(t, err)

	for target := range uint16(200) {
		want, err := Solve(target, denominations)
		require.NoError(t, err)

		got, err := s.Solve(target)
		require.NoError(t, err)
		assert.Equal(t, want, got, "target %d", target)
	}
}

func TestSolverInvalidTarget(t *testing.T) {
	t.Parallel()

	s, err := NewSolver([]int{1})
	require.NoError(t, err)

	_, err = s.Solve(-3)
	assert.ErrorIs(t, err, ErrNegativeTarget)

	_, err = s.Solve(MaxTarget + 1)
	assert.ErrorIs(t, err, ErrTargetTooLarge)
}

func TestSolverConcurrent(t *testing.T) {
	t.Parallel()

	s, err := NewSolver([]int{1, 5, 10, 25})
	require.NoError(t, err)

	const workers = 8

	results := make([]Result, workers)

	var wg sync.WaitGroup

	for w := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			results[w], _ = s.Solve(239)
		}()
	}

	wg.Wait()

	for _, r := range results {
		assert.Equal(t, Reached(14), r)
	}
}
