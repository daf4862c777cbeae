package change

import "fmt"

// Solve returns the minimum number of denominations summing exactly to
// target, or Unreachable when no multiset of denominations does.
//
// A negative target or a denomination <= 0 is a contract violation and
// yields ErrNegativeTarget or ErrNonPositiveDenomination; no table is built
// in that case. A zero target always yields 0 once the denominations are
// valid. Duplicate denominations are allowed and do not change the result.
func Solve[T Integer](target T, denominations []T) (Result, error) {
	table, err := BuildTable(target, denominations)
	if err != nil {
		return Unreachable, err
	}

	return table.Final(), nil
}

// MustSolve is like Solve but panics on invalid input.
func MustSolve[T Integer](target T, denominations []T) Result {
	res, err := Solve(target, denominations)
	if err != nil {
		panic(err)
	}

	return res
}

// BuildTable validates its input and returns the completed cost table for
// sub-targets 0..target.
func BuildTable[T Integer](target T, denominations []T) (*Table, error) {
	if err := validateDenominations(denominations); err != nil {
		return nil, err
	}

	if err := validateTarget(target); err != nil {
		return nil, err
	}

	return fill(int(target), usable(target, denominations)), nil
}

func validateTarget[T Integer](target T) error {
	if target < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeTarget, target)
	}

	// target is non-negative here, so the widening is exact.
	if uint64(target) > MaxTarget {
		return fmt.Errorf("%w: %d > %d", ErrTargetTooLarge, target, MaxTarget)
	}

	return nil
}

func validateDenominations[T Integer](denominations []T) error {
	for i, d := range denominations {
		if d <= 0 {
			return fmt.Errorf("%w: denominations[%d] = %d", ErrNonPositiveDenomination, i, d)
		}
	}

	return nil
}

// usable converts the denominations that can take part in reaching target.
// Larger ones never fit any sub-target and are dropped before the int
// conversion, so it cannot overflow.
func usable[T Integer](target T, denominations []T) []int {
	res := make([]int, 0, len(denominations))

	for _, d := range denominations {
		if d > target {
			continue
		}

		res = append(res, int(d))
	}

	return res
}

// fill runs the recurrence. Slot i depends only on slots below i, so a single
// ascending pass finalizes every slot before it is read.
func fill(target int, denominations []int) *Table {
	slots := make([]Result, target+1)
	slots[0] = Reached(0)

	for i := 1; i <= target; i++ {
		best := Unreachable

		for _, d := range denominations {
			if d > i {
				continue
			}

			if candidate := slots[i-d].Add1(); candidate.Less(best) {
				best = candidate
			}
		}

		slots[i] = best
	}

	return &Table{slots: slots}
}
