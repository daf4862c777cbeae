// Package gen evaluates coin-change problems ahead of time and renders the
// answers as Go constants.
//
// Generation approach uses text/template + go/format, like any other go
// generate tool: the manifest is validated, every problem is solved with
// change.Solve (the same function callers use at runtime), and one
// deterministic, gofmt'ed file is produced.
//
// For a problem named N the file declares:
//   - N, the minimum coin count (only when the target is reachable)
//   - NReachable, whether the target is reachable
//   - NTarget, the target as a constant of the problem's width
//
// An unreachable problem fails generation unless the manifest sets
// allow_unreachable, and even then no count constant is emitted.
package gen
