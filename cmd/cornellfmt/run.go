package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/reletz/cornellfmt"
	"github.com/reletz/cornellfmt/internal/config"
	"github.com/reletz/cornellfmt/internal/logger"
)

// Sentinel errors for CLI operations.
var (
	ErrReadInput      = errors.New("failed to read input")
	ErrWriteOutput    = errors.New("failed to write output")
	ErrOutputRequired = errors.New("multiple inputs require --write or --output")
	ErrInvalidNote    = errors.New("note failed validation")
)

// defaultConfigFile is written by --init-config.
const defaultConfigFile = "cornellfmt.yaml"

// run executes one invocation. Side effects go through deps so tests can
// capture them.
func run(f *cliFlags, paths []string, deps *Dependencies) error {
	if f.version {
		fmt.Fprintf(deps.Stdout, "cornellfmt %s\n", Version)
		return nil
	}

	if f.initConfig {
		if err := config.WriteDefault(defaultConfigFile); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "wrote %s\n", defaultConfigFile)
		return nil
	}

	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Level:  logLevel(f, cfg),
		Quiet:  f.quiet,
		JSON:   f.jsonLog,
		Output: deps.Stderr,
	})
	if err != nil {
		return err
	}

	policy := mergePolicy(f, cfg)
	if err := policy.Validate(); err != nil {
		return err
	}
	svc := cornellfmt.New(cornellfmt.WithPolicy(policy))

	if len(paths) == 0 {
		return runStdin(f, svc, deps, log)
	}
	return runFiles(f, cfg, svc, paths, deps, log)
}

// loadConfig resolves the effective configuration.
func loadConfig(f *cliFlags) (*config.Config, error) {
	if f.config == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(f.config)
}

// logLevel picks the diagnostic level: verbose flag beats config.
func logLevel(f *cliFlags, cfg *config.Config) string {
	if f.verbose {
		return "debug"
	}
	return cfg.Log.Level
}

// mergePolicy layers policy flags over the config file.
func mergePolicy(f *cliFlags, cfg *config.Config) cornellfmt.Policy {
	policy := cfg.ToPolicy()
	if f.blankCap != 0 {
		policy.MaxConsecutiveBlankLines = f.blankCap
	}
	if f.distinctSummary {
		policy.DistinctSummarySection = true
	}
	return policy
}

// runStdin treats the process as a filter: one note in, one note out.
func runStdin(f *cliFlags, svc *cornellfmt.Service, deps *Dependencies, log *slog.Logger) error {
	data, err := io.ReadAll(deps.Stdin)
	if err != nil {
		return fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
	}

	if f.check {
		return reportIssues(svc, "<stdin>", string(data), deps.Stdout)
	}

	log.Debug("normalizing stdin", "bytes", len(data))
	return writeNote(deps.Stdout, svc.Normalize(string(data)))
}

// runFiles normalizes or validates each input file.
func runFiles(f *cliFlags, cfg *config.Config, svc *cornellfmt.Service, paths []string, deps *Dependencies, log *slog.Logger) error {
	outDir := f.output
	if outDir == "" {
		outDir = cfg.Output.DefaultDir
	}
	if len(paths) > 1 && !f.write && outDir == "" && !f.check {
		return ErrOutputRequired
	}

	contents := make([]string, len(paths))
	for i, path := range paths {
		data, err := os.ReadFile(path) // #nosec G304 -- input paths are user-provided
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrReadInput, path, err)
		}
		contents[i] = string(data)
	}

	if f.check {
		var invalid error
		for i, path := range paths {
			if err := reportIssues(svc, path, contents[i], deps.Stdout); err != nil {
				invalid = err
			}
		}
		return invalid
	}

	log.Debug("normalizing files", "count", len(paths), "workers", cornellfmt.ResolveWorkerCount(f.workers))
	fixed := svc.NormalizeAll(context.Background(), contents, f.workers)

	for i, path := range paths {
		if err := writeResult(f, outDir, path, fixed[i], deps.Stdout); err != nil {
			return err
		}
		log.Debug("normalized", "path", path)
	}
	return nil
}

// reportIssues prints validation findings for one note.
func reportIssues(svc *cornellfmt.Service, name, content string, w io.Writer) error {
	report := svc.Validate(content)
	for _, issue := range report.Issues {
		fmt.Fprintf(w, "%s: %s\n", name, issue)
	}
	if !report.Valid {
		return fmt.Errorf("%w: %s", ErrInvalidNote, name)
	}
	return nil
}

// writeResult routes one normalized note to its destination.
func writeResult(f *cliFlags, outDir, path, fixed string, stdout io.Writer) error {
	switch {
	case f.write:
		if err := os.WriteFile(path, []byte(ensureTrailingNewline(fixed)), 0o644); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWriteOutput, path, err)
		}
		return nil
	case outDir != "":
		dest := filepath.Join(outDir, filepath.Base(path))
		if err := os.WriteFile(dest, []byte(ensureTrailingNewline(fixed)), 0o644); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWriteOutput, dest, err)
		}
		return nil
	default:
		return writeNote(stdout, fixed)
	}
}

// writeNote writes a note to a stream with a final newline.
func writeNote(w io.Writer, note string) error {
	if _, err := io.WriteString(w, ensureTrailingNewline(note)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// ensureTrailingNewline guarantees POSIX-friendly output files.
func ensureTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
