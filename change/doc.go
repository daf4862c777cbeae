// Package change computes the minimum number of denominations ("coins")
// needed to sum exactly to a non-negative target, with unbounded supply of
// every denomination.
//
// The solver is a bottom-up dynamic program over a cost table indexed by
// sub-target 0..target. Slot 0 holds zero; slot i holds one more than the
// cheapest reachable slot i-d over every denomination d <= i, or Unreachable
// when no denomination leads to a reachable predecessor.
//
// # Evaluation modes
//
// Every function in this package is pure: no I/O, no shared state, the same
// output for the same input. The same Solve is therefore used in two call
// contexts:
//
//   - at runtime, over arbitrary inputs;
//   - ahead of time, by cmd/change-generator, which evaluates problems listed
//     in a YAML manifest during go generate and writes the answers as Go
//     constants.
//
// # Results
//
// A Result is either a finite count or Unreachable. The zero Result is
// Unreachable, and incrementing a count is overflow-checked, so a sentinel can
// never turn into a plausible-looking count.
//
// # Limits
//
// Work is proportional to target × len(denominations) and memory to target.
// Targets above MaxTarget are rejected with ErrTargetTooLarge.
package change
