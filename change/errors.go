package change

import "errors"

// MaxTarget is the largest target the solver accepts. The cost table holds
// MaxTarget+1 slots at most.
//
// A slot is one Result, 16 bytes on 64-bit platforms, so a solve at the cap
// allocates about 1 GiB. Every solve owns its table: concurrent solves near the
// cap, such as the generator's worker pool, need that much memory each.
const MaxTarget = 1 << 26

var (
	// ErrNegativeTarget is returned for a target below zero.
	ErrNegativeTarget = errors.New("change: negative target")
	// ErrNonPositiveDenomination is returned when a denomination is zero or negative.
	ErrNonPositiveDenomination = errors.New("change: non-positive denomination")
	// ErrTargetTooLarge is returned for a target above MaxTarget.
	ErrTargetTooLarge = errors.New("change: target exceeds MaxTarget")
)
