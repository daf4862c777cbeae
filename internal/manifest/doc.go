// Package manifest provides the YAML schema, parsing and validation for
// problem manifests: lists of coin-change problems whose inputs are known
// before the program is built.
//
// # Schema Overview
//
//	version: "1"
//	package: coins          # package of the generated file
//	type: int               # default integer width
//	problems:
//	  - name: USCents239    # exported Go identifier, unique
//	    doc: Change for $2.39 in US coins.
//	    type: int32         # overrides the file default
//	    target: 239
//	    denominations: [1, 5, 10, 25]
//	    allow_unreachable: false
//
// Supported widths are the Go integer types int, int8 ... uint64. Numbers
// are decoded as int64, so uint64 problems accept values up to MaxInt64.
//
// # Validation
//
// Validate reports errors for input the solver would reject (negative
// targets, non-positive denominations, targets above change.MaxTarget),
// values outside the problem's width and identifiers that cannot be
// generated. Duplicate denominations and denominations larger than the
// target are reported as warnings; an empty denomination set with a
// positive target is noted as always unreachable.
package manifest
