// Package diagnostic provides structured errors, warnings and notes
// produced while validating a problem manifest.
//
// Key capabilities:
//   - Invalid input errors (negative targets, non-positive denominations)
//   - Width overflow errors for typed problems
//   - Wasteful input warnings (duplicate or oversized denominations)
//   - Notes on problems that can never be reached
package diagnostic
