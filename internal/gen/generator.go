package gen

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"go/token"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"text/template"

	"coin-change/internal/common"
	"coin-change/internal/diagnostic"
	"coin-change/internal/logger"
	"coin-change/internal/manifest"
	"coin-change/primitive"
)

// DefaultFilename is the name of the generated file when none is configured.
const DefaultFilename = "change_gen.go"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName overrides the manifest package. When both are empty the
	// name is derived from OutputDir.
	PackageName string
	// OutputDir is the directory where the generated file is written.
	OutputDir string
	// Filename is the name of the generated file.
	Filename string
	// Workers bounds how many problems are solved concurrently.
	Workers int
	// GenerateComments enables generation of doc comments on constants.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir:        ".",
		Filename:         DefaultFilename,
		Workers:          runtime.GOMAXPROCS(0),
		GenerateComments: true,
	}
}

// Generator generates Go constants from a problem manifest.
type Generator struct {
	config GeneratorConfig
	log    *logger.Logger
}

// NewGenerator creates a new Generator with the given configuration.
// A nil logger discards output.
func NewGenerator(config GeneratorConfig, log *logger.Logger) *Generator {
	if log == nil {
		log = logger.Nop()
	}

	if config.Filename == "" {
		config.Filename = DefaultFilename
	}

	return &Generator{config: config, log: log}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "coins_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// templateData holds all data needed for the constants template.
type templateData struct {
	PackageName      string
	GenerateComments bool
	Problems         []problemData
}

// problemData is one solved problem as the template sees it.
type problemData struct {
	Name          string
	ReachableName string
	TargetName    string
	Doc           []string
	Type          string
	Target        int64
	TargetLiteral string
	Denominations string
	Reachable     bool
	Count         int
}

// Generate validates f, solves every problem and renders the constants file.
func (g *Generator) Generate(ctx context.Context, f *manifest.File) (*GeneratedFile, error) {
	diags := manifest.Validate(f)
	g.report(diags)

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	pkg, err := g.packageName(f)
	if err != nil {
		return nil, err
	}

	evals, err := Evaluate(ctx, f.Problems, g.config.Workers)
	if err != nil {
		return nil, fmt.Errorf("evaluating problems: %w", err)
	}

	data := &templateData{
		PackageName:      pkg,
		GenerateComments: g.config.GenerateComments,
	}

	var solved diagnostic.Diagnostics

	for _, ev := range evals {
		p := ev.Problem
		count, ok := ev.Result.Count()

		g.log.Debug("solved problem", "problem", p.Name, "target", p.Target, "result", ev.Result.String())

		if !ok && !p.AllowUnreachable {
			solved.AddError("unreachable_target",
				fmt.Sprintf("no combination of %s sums to %d; set allow_unreachable to accept this",
					formatDenominations(p.Denominations), p.Target), p.Name, "target")

			continue
		}

		data.Problems = append(data.Problems, problemData{
			Name:          p.Name,
			ReachableName: p.ReachableName(),
			TargetName:    p.TargetName(),
			Doc:           docLines(p.Doc),
			Type:          p.Kind().GoName(),
			Target:        p.Target,
			TargetLiteral: primitive.Literal(p.Kind(), p.Target),
			Denominations: formatDenominations(p.Denominations),
			Reachable:     ok,
			Count:         count,
		})
	}

	diags.Merge(solved)

	if err := diags.Error(); err != nil {
		return nil, err
	}

	file, err := g.render(data)
	if err != nil {
		return nil, err
	}

	g.log.Info("generated constants", "file", file.Filename, "package", pkg, "problems", len(data.Problems))

	return file, nil
}

func (g *Generator) report(diags *diagnostic.Diagnostics) {
	for _, d := range diags.Warnings {
		g.log.Warn(d.String())
	}

	for _, d := range diags.Infos {
		g.log.Info(d.String())
	}
}

func (g *Generator) packageName(f *manifest.File) (string, error) {
	name := g.config.PackageName
	if name == "" {
		name = f.Package
	}

	if name == "" {
		dir, err := filepath.Abs(g.config.OutputDir)
		if err != nil {
			return "", fmt.Errorf("resolving output directory: %w", err)
		}

		name = common.DirPackageName(dir)
	}

	if !token.IsIdentifier(name) {
		return "", fmt.Errorf("invalid package name %q", name)
	}

	return name, nil
}

func (g *Generator) render(data *templateData) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := constantsTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		_ = writeDebugUnformatted(g.config.OutputDir, g.config.Filename, buf.Bytes())

		return &GeneratedFile{
			Filename: g.config.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: g.config.Filename,
		Content:  formatted,
	}, nil
}

func docLines(doc string) []string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return nil
	}

	return strings.Split(doc, "\n")
}

func formatDenominations(ds []int64) string {
	parts := make([]string, 0, len(ds))
	for _, d := range ds {
		parts = append(parts, strconv.FormatInt(d, 10))
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

var constantsTemplate = template.Must(template.New("constants").Parse(`// Code generated by change-generator. DO NOT EDIT.

package {{.PackageName}}
{{range .Problems}}
{{if $.GenerateComments}}{{range .Doc}}// {{.}}
{{end}}{{end}}const (
{{- if .Reachable}}
{{if $.GenerateComments}}	// {{.Name}} is the minimum number of coins from {{.Denominations}} summing to {{.Target}}.
{{end}}	{{.Name}} = {{.Count}}
{{- else if $.GenerateComments}}
	// No combination of {{.Denominations}} sums to {{.Target}}, so {{.Name}} is not declared.
{{end}}
{{if $.GenerateComments}}	// {{.ReachableName}} reports whether {{.Target}} can be formed from {{.Denominations}}.
{{end}}	{{.ReachableName}} = {{.Reachable}}
{{if $.GenerateComments}}	// {{.TargetName}} is the {{.Type}} target the constants above were computed for.
{{end}}	{{.TargetName}} = {{.TargetLiteral}}
)
{{end}}`))
