// Package model defines the shared value types for the gof-patterns CLI.
//
// This package contains pure data structures with no external dependencies.
// The catalog describes each demonstration with a PatternInfo, grouped by
// the Gang-of-Four Category it belongs to.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
