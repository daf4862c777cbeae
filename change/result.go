package change

import (
	"math"
	"strconv"
)

const unreachableStr = "unreachable"

// Result is the outcome of a solve: a finite coin count or Unreachable.
// The zero value is Unreachable.
type Result struct {
	count     int
	reachable bool
}

// Unreachable is the Result for a target no combination of denominations sums to.
var Unreachable = Result{}

// Reached returns a finite Result holding n. It panics if n is negative.
func Reached(n int) Result {
	if n < 0 {
		panic("change: negative count " + strconv.Itoa(n))
	}

	return Result{count: n, reachable: true}
}

// Count returns the coin count and true, or 0 and false when unreachable.
func (r Result) Count() (int, bool) {
	return r.count, r.reachable
}

// Reachable reports whether r holds a finite count.
func (r Result) Reachable() bool {
	return r.reachable
}

// Add1 returns r with one more coin. Unreachable stays Unreachable.
// It panics if the count would overflow int.
func (r Result) Add1() Result {
	if !r.reachable {
		return Unreachable
	}

	if r.count == math.MaxInt {
		panic("change: coin count overflow")
	}

	return Result{count: r.count + 1, reachable: true}
}

// Less reports whether r is strictly better than other.
// Unreachable is worse than every finite count.
func (r Result) Less(other Result) bool {
	switch {
	case !r.reachable:
		return false
	case !other.reachable:
		return true
	default:
		return r.count < other.count
	}
}

// String returns the count in decimal, or "unreachable".
func (r Result) String() string {
	if !r.reachable {
		return unreachableStr
	}

	return strconv.Itoa(r.count)
}
