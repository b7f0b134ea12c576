// Package model defines the domain types and value objects for the
// chaffgen CLI.
//
// This package contains pure data structures with no external dependencies
// beyond yaml struct tags. All entities (GeneratedFile, BundleInfo,
// Manifest, etc.) are transient — the only cross-run state is the
// generation manifest, which is written and read by internal/emit.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
