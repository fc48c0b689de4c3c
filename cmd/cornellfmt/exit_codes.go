package main

import (
	"errors"
	"os"

	"github.com/reletz/cornellfmt"
	"github.com/reletz/cornellfmt/internal/config"
)

// Exit codes for the cornellfmt CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or policy
	ExitIO      = 3 // File not found, permission denied
	ExitInvalid = 4 // --check found structural issues
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Validation findings (exit 4)
	if errors.Is(err, ErrInvalidNote) {
		return ExitInvalid
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/policy errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, cornellfmt.ErrInvalidBlankLineCap) ||
		errors.Is(err, ErrOutputRequired) {
		return ExitUsage
	}

	return ExitGeneral
}
