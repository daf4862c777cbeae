package manifest

import "coin-change/primitive"

// CurrentVersion is the only manifest schema version understood.
const CurrentVersion = "1"

// File represents the root of a YAML problem manifest.
type File struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Package is the package name of the generated file.
	// When empty the generator derives it from the output directory.
	Package string `yaml:"package,omitempty"`

	// Type is the default integer width for problems that do not set one.
	Type string `yaml:"type,omitempty"`

	// Problems is the list of problems to evaluate ahead of time.
	Problems []Problem `yaml:"problems"`
}

// Problem is one statically known coin-change problem.
type Problem struct {
	// Name is the exported Go identifier of the generated constant.
	Name string `yaml:"name"`

	// Doc is an optional comment placed above the generated constants.
	Doc string `yaml:"doc,omitempty"`

	// Type is the integer width of Target and Denominations.
	Type string `yaml:"type,omitempty"`

	// Target is the value to reach exactly.
	Target int64 `yaml:"target"`

	// Denominations are the available coin values, reusable without limit.
	Denominations []int64 `yaml:"denominations,flow"`

	// AllowUnreachable permits a problem whose target cannot be formed.
	// Without it an unreachable problem fails generation.
	AllowUnreachable bool `yaml:"allow_unreachable,omitempty"`
}

// Kind returns the integer width of the problem.
func (p *Problem) Kind() primitive.KindEnum {
	return primitive.FromName(p.Type)
}

// ReachableName is the identifier of the generated reachability constant.
func (p *Problem) ReachableName() string {
	return p.Name + "Reachable"
}

// TargetName is the identifier of the generated target constant.
func (p *Problem) TargetName() string {
	return p.Name + "Target"
}

// Identifiers returns every identifier generated for the problem.
func (p *Problem) Identifiers() []string {
	return []string{p.Name, p.ReachableName(), p.TargetName()}
}
