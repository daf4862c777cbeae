package manifest

import (
	"fmt"
	"go/token"

	"coin-change/change"
	"coin-change/internal/common"
	"coin-change/internal/diagnostic"
	"coin-change/internal/suggest"
	"coin-change/primitive"
)

// Validate checks a manifest before any problem is solved.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("manifest_is_nil", "manifest is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported manifest version %q", f.Version), "", "version")
	}

	if f.Package != "" && !token.IsIdentifier(f.Package) {
		res.AddError("invalid_package", fmt.Sprintf("%q is not a valid package name", f.Package), "", "package")
	}

	if common.IsEmpty(f.Problems) {
		res.AddWarning("no_problems", "manifest lists no problems", "", "problems")
	}

	// Every generated identifier shares one package scope.
	owners := map[string]string{}

	for i := range f.Problems {
		p := &f.Problems[i]

		label := p.Name
		if label == "" {
			label = fmt.Sprintf("problems[%d]", i)
		}

		if validateName(res, p, label) {
			for _, ident := range p.Identifiers() {
				if owner, ok := owners[ident]; ok {
					res.AddError("name_collision",
						fmt.Sprintf("identifier %s is already generated for %s", ident, owner), label, "name")

					continue
				}

				owners[ident] = label
			}
		}

		validateProblem(res, p, label)
	}

	return res
}

func validateName(res *diagnostic.Diagnostics, p *Problem, label string) bool {
	switch {
	case p.Name == "":
		res.AddError("missing_name", "problem has no name", label, "name")
		return false
	case !token.IsIdentifier(p.Name):
		res.AddError("invalid_name", fmt.Sprintf("%q is not a Go identifier", p.Name), label, "name")
		return false
	case !token.IsExported(p.Name):
		res.AddError("invalid_name", fmt.Sprintf("%q must be exported", p.Name), label, "name")
		return false
	}

	return true
}

func validateProblem(res *diagnostic.Diagnostics, p *Problem, label string) {
	kind := p.Kind()
	if !kind.IsValid() {
		msg := fmt.Sprintf("unsupported integer type %q", p.Type)
		if s, ok := suggest.Closest(p.Type, primitive.Names(), 2); ok {
			msg += fmt.Sprintf(", did you mean %q?", s)
		}

		res.AddError("unknown_type", msg, label, "type")

		return
	}

	switch {
	case p.Target < 0:
		res.AddError("negative_target", fmt.Sprintf("target %d is negative", p.Target), label, "target")
	case !kind.Contains(p.Target):
		res.AddError("target_out_of_range",
			fmt.Sprintf("target %d does not fit in %s", p.Target, kind.GoName()), label, "target")
	case p.Target > change.MaxTarget:
		res.AddError("target_too_large",
			fmt.Sprintf("target %d exceeds the maximum of %d", p.Target, change.MaxTarget), label, "target")
	}

	for i, d := range p.Denominations {
		field := fmt.Sprintf("denominations[%d]", i)

		switch {
		case d <= 0:
			res.AddError("non_positive_denomination", fmt.Sprintf("denomination %d is not positive", d), label, field)
		case !kind.Contains(d):
			res.AddError("denomination_out_of_range",
				fmt.Sprintf("denomination %d does not fit in %s", d, kind.GoName()), label, field)
		case d > p.Target && p.Target >= 0:
			res.AddWarning("unused_denomination",
				fmt.Sprintf("denomination %d is larger than the target and is never used", d), label, field)
		}
	}

	for _, d := range common.Duplicates(p.Denominations) {
		res.AddWarning("duplicate_denomination", fmt.Sprintf("denomination %d is listed more than once", d), label,
			"denominations")
	}

	if common.IsEmpty(p.Denominations) && p.Target > 0 {
		res.AddInfo("empty_denominations", "no denominations: a positive target is never reachable", label,
			"denominations")
	}
}
