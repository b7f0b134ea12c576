package model

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DecoyKind identifies which template shape produced a decoy class.
// Each kind corresponds to exactly one skeleton in internal/decoy.
type DecoyKind string

const (
	// KindNetworkService mimics a URLSession-based network layer class.
	KindNetworkService DecoyKind = "network-service"

	// KindDataManager mimics a local persistence class backed by
	// UserDefaults and a serial dispatch queue.
	KindDataManager DecoyKind = "data-manager"

	// KindUIHelper mimics a singleton UI factory (labels, buttons, alerts).
	KindUIHelper DecoyKind = "ui-helper"

	// KindJSONParser mimics a JSON transcoding utility class.
	KindJSONParser DecoyKind = "json-parser"

	// KindValidator mimics an input validation utility class.
	KindValidator DecoyKind = "validator"

	// KindCacheManager mimics an NSCache-backed memory/disk cache class.
	KindCacheManager DecoyKind = "cache-manager"
)

// String returns the string representation of DecoyKind.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI commands.
func (k DecoyKind) String() string {
	return string(k)
}

// IsValid checks whether the DecoyKind value is one of the
// predefined template kinds.
func (k DecoyKind) IsValid() bool {
	switch k {
	case KindNetworkService, KindDataManager, KindUIHelper,
		KindJSONParser, KindValidator, KindCacheManager:
		return true
	default:
		return false
	}
}

// ParseDecoyKind converts a string to a DecoyKind.
// Returns an error if the string does not match any valid kind.
func ParseDecoyKind(s string) (DecoyKind, error) {
	kind := DecoyKind(strings.ToLower(s))
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid decoy kind: %q (valid: network-service, data-manager, ui-helper, json-parser, validator, cache-manager)", s)
	}
	return kind, nil
}

// AllDecoyKinds returns every template kind in fixed declaration order.
// The order matters for deterministic template selection under a seeded
// random source: the template registry in internal/decoy is built in
// this order.
func AllDecoyKinds() []DecoyKind {
	return []DecoyKind{
		KindNetworkService,
		KindDataManager,
		KindUIHelper,
		KindJSONParser,
		KindValidator,
		KindCacheManager,
	}
}

// GeneratedFile describes one decoy source file written to the target
// directory. The content is not retained after writing — only the
// metadata needed for reporting and the manifest.
type GeneratedFile struct {
	// Name is the bare filename (no directory component), e.g.
	// "NetworkManagerHelper.swift".
	Name string `json:"name"`

	// Kind is the template shape that produced the file.
	Kind DecoyKind `json:"kind"`

	// Bytes is the size of the written content.
	Bytes int `json:"bytes"`
}

// BundleInfo describes the concatenated bundle artifact produced by a
// generation run. The bundle is always written under a fixed filename
// and overwrites any previous bundle.
type BundleInfo struct {
	// Path is the absolute path of the written bundle file.
	Path string `json:"path"`

	// ClassCount is the number of decoy classes concatenated into the bundle.
	ClassCount int `json:"classCount"`

	// Bytes is the total size of the bundle content.
	Bytes int `json:"bytes"`

	// GeneratedAt is the timestamp embedded in the bundle header.
	GeneratedAt time.Time `json:"generatedAt"`
}

// Manifest records what a generation run wrote, so that a later `clean
// --all` can remove exactly the generated artifacts and `list` can report
// them. It is serialized as YAML to a well-known filename in the target
// directory (see internal/emit).
type Manifest struct {
	// GeneratedAt is the wall-clock time of the run that wrote this manifest.
	GeneratedAt time.Time `yaml:"generatedAt"`

	// Tool identifies the producer, for humans reading the file.
	Tool string `yaml:"tool"`

	// Files lists every standalone decoy file written by the run.
	Files []ManifestEntry `yaml:"files"`

	// Bundle is the bundle filename written by the run, empty if the
	// bundle step was skipped.
	Bundle string `yaml:"bundle,omitempty"`
}

// ManifestEntry is one standalone decoy file recorded in the manifest.
type ManifestEntry struct {
	Name string    `yaml:"name"`
	Kind DecoyKind `yaml:"kind"`
}

// fileNameRegex validates generated filenames: an identifier-shaped stem
// followed by the .swift extension. Generated names are built from pool
// words, so anything outside this shape indicates a synthesis bug.
var fileNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*\.swift$`)

// ValidateFileName checks that a generated filename is identifier-shaped
// with the expected extension.
func ValidateFileName(name string) error {
	if name == "" {
		return fmt.Errorf("generated filename must not be empty")
	}
	if !fileNameRegex.MatchString(name) {
		return fmt.Errorf("invalid generated filename %q: must be an identifier followed by .swift", name)
	}
	return nil
}

// ExitCode defines standard CLI exit codes. These codes allow scripts and
// CI systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitTargetNotFound indicates the target directory does not exist.
	// Generation performs no writes in this case.
	ExitTargetNotFound ExitCode = 2

	// ExitConfigInvalid indicates the configuration file could not be
	// parsed or contained out-of-range values.
	ExitConfigInvalid ExitCode = 3

	// ExitWriteFailed indicates a decoy file or the bundle could not be
	// written. Earlier writes in the same run are not rolled back.
	ExitWriteFailed ExitCode = 4
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
