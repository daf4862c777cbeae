// Package main provides the CLI entrypoint for change-generator.
//
// change-generator evaluates coin-change problems while the program is being
// built. It:
//   - Reads a YAML manifest of problems whose inputs are statically known
//   - Validates them and reports wasteful or impossible inputs
//   - Solves them with the same change.Solve used at runtime
//   - Writes the answers as Go constants
//
// Typical use from a package directory:
//
//	//go:generate go run coin-change/cmd/change-generator -manifest coins.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"coin-change/internal/gen"
	"coin-change/internal/logger"
	"coin-change/internal/manifest"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type options struct {
	manifest    string
	outputDir   string
	filename    string
	packageName string
	workers     int
	logMode     string
	check       bool
	normalize   bool
	noComments  bool
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("change-generator", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.manifest, "manifest", "", "path to the YAML problem manifest (required)")
	fs.StringVar(&opts.outputDir, "out", ".", "output directory")
	fs.StringVar(&opts.filename, "file", "", "output file name (default <manifest>_gen.go)")
	fs.StringVar(&opts.packageName, "package", "", "package name, overrides the manifest")
	fs.IntVar(&opts.workers, "workers", runtime.GOMAXPROCS(0), "problems solved concurrently")
	fs.StringVar(&opts.logMode, "log", "dev", "log mode: dev or prod")
	fs.BoolVar(&opts.check, "check", false, "validate the manifest and print diagnostics without writing")
	fs.BoolVar(&opts.normalize, "normalize", false, "rewrite the manifest with defaults filled in, then exit")
	fs.BoolVar(&opts.noComments, "no-comments", false, "omit doc comments on generated constants")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.manifest == "" {
		fs.Usage()
		return nil, errors.New("-manifest is required")
	}

	if opts.filename == "" {
		base := strings.TrimSuffix(filepath.Base(opts.manifest), filepath.Ext(opts.manifest))
		opts.filename = base + "_gen.go"
	}

	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, "change-generator:", err)
		}

		return exitUsage
	}

	log, err := logger.New(opts.logMode)
	if err != nil {
		fmt.Fprintln(stderr, "change-generator: building logger:", err)
		return exitError
	}
	defer log.Sync()

	log = log.With("manifest", opts.manifest)

	f, err := manifest.LoadFile(opts.manifest)
	if err != nil {
		log.Error("loading manifest failed", "error", err)
		return exitError
	}

	if opts.check {
		return check(f, stdout)
	}

	if opts.normalize {
		return normalize(f, opts.manifest, stdout)
	}

	cfg := gen.DefaultGeneratorConfig()
	cfg.OutputDir = opts.outputDir
	cfg.Filename = opts.filename
	cfg.PackageName = opts.packageName
	cfg.Workers = opts.workers
	cfg.GenerateComments = !opts.noComments

	file, err := gen.NewGenerator(cfg, log).Generate(ctx, f)
	if err != nil {
		log.Error("generation failed", "error", err)
		return exitError
	}

	path, err := gen.WriteFile(file, opts.outputDir)
	if err != nil {
		log.Error("writing output failed", "error", err)
		return exitError
	}

	log.Info("wrote file", "path", path)

	return exitOK
}

// check prints every diagnostic, one per line, and fails on errors.
func check(f *manifest.File, stdout io.Writer) int {
	diags := manifest.Validate(f)

	for _, d := range diags.All() {
		fmt.Fprintf(stdout, "%s: %s\n", d.Severity, d)
	}

	if diags.HasErrors() {
		return exitError
	}

	fmt.Fprintf(stdout, "ok: %d problems\n", len(f.Problems))

	return exitOK
}

// normalize rewrites a valid manifest in place with every default spelled out.
func normalize(f *manifest.File, path string, stdout io.Writer) int {
	if code := check(f, stdout); code != exitOK {
		return code
	}

	if err := manifest.WriteFile(f, path); err != nil {
		fmt.Fprintln(stdout, "error:", err)
		return exitError
	}

	fmt.Fprintf(stdout, "normalized %s\n", path)

	return exitOK
}
