package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/mmr-tortoise/chaffgen/internal/model"
)

// Config holds every tunable of the generator. JSON tags define the
// chaffgen.json schema; fields absent from the file keep their defaults.
type Config struct {
	// TargetDir is the directory decoy files are written to. Relative
	// paths are resolved against the current working directory. The
	// directory must already exist — chaffgen never creates it, to avoid
	// spraying generated files into a mistyped location.
	TargetDir string `json:"targetDir"`

	// BundleName is the fixed filename of the concatenated bundle inside
	// TargetDir. The bundle is overwritten unconditionally on every run.
	BundleName string `json:"bundleName"`

	// JunkPrefix identifies stale decoy files from earlier generation
	// schemes. Cleanup removes TargetDir entries matching
	// JunkPrefix*<FileExtension>.
	JunkPrefix string `json:"junkPrefix"`

	// FileExtension is the extension (with leading dot) of generated files.
	FileExtension string `json:"fileExtension"`

	// MinFiles and MaxFiles bound the random per-file decoy count.
	MinFiles int `json:"minFiles"`
	MaxFiles int `json:"maxFiles"`

	// MinBundleClasses and MaxBundleClasses bound the random class count
	// for the bundle. The bundle draw is independent of the per-file draw.
	MinBundleClasses int `json:"minBundleClasses"`
	MaxBundleClasses int `json:"maxBundleClasses"`

	// QualifierProbability is the chance a class name gains an adjective
	// qualifier prefix.
	QualifierProbability float64 `json:"qualifierProbability"`

	// CompletionProbability is the chance a method name gains the
	// WithCompletion suffix.
	CompletionProbability float64 `json:"completionProbability"`

	// FilenameQualifierProbability is the chance a filename gains a
	// qualifier word before the extension.
	FilenameQualifierProbability float64 `json:"filenameQualifierProbability"`

	// ExtraClassPrefixes and ExtraClassSuffixes extend the naming pools
	// with project-specific vocabulary so generated names blend in.
	ExtraClassPrefixes []string `json:"extraClassPrefixes,omitempty"`
	ExtraClassSuffixes []string `json:"extraClassSuffixes,omitempty"`
}

// Default returns the compiled-in configuration. The values mirror the
// original generator: a sibling Sources directory, 12–20 files per run,
// 12–20 bundle classes, and the 0.3/0.5/0.4 augmentation probabilities.
func Default() Config {
	return Config{
		TargetDir:                    filepath.Join("..", "Sources"),
		BundleName:                   "ChaffBundle.swift",
		JunkPrefix:                   "Junk",
		FileExtension:                ".swift",
		MinFiles:                     12,
		MaxFiles:                     20,
		MinBundleClasses:             12,
		MaxBundleClasses:             20,
		QualifierProbability:         0.3,
		CompletionProbability:        0.5,
		FilenameQualifierProbability: 0.4,
	}
}

// Load reads a JSONC config file and merges it over the defaults.
// Returns a CLIError with ExitConfigInvalid if the file cannot be read,
// parsed, or fails validation.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, model.WrapCLIError(model.ExitConfigInvalid,
			fmt.Sprintf("failed to read config file %s", path), err)
	}

	// Strip JSONC comments (// and /* */) and trailing commas before
	// parsing. Config files live next to hand-edited project files, so
	// comments are expected.
	cleanJSON := jsonc.ToJSON(data)

	// Unmarshal over the defaults struct: fields present in the file
	// replace defaults, absent fields keep them.
	if err := json.Unmarshal(cleanJSON, &cfg); err != nil {
		return cfg, model.WrapCLIError(model.ExitConfigInvalid,
			fmt.Sprintf("failed to parse config file %s", path), err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, model.WrapCLIError(model.ExitConfigInvalid,
			fmt.Sprintf("invalid config file %s", path), err)
	}
	return cfg, nil
}

// Validate checks range and shape constraints on the configuration.
func (c Config) Validate() error {
	if c.TargetDir == "" {
		return fmt.Errorf("targetDir must not be empty")
	}
	if c.BundleName == "" {
		return fmt.Errorf("bundleName must not be empty")
	}
	if c.JunkPrefix == "" {
		// An empty junk prefix would make cleanup match EVERY file with
		// the configured extension, deleting real project sources.
		return fmt.Errorf("junkPrefix must not be empty")
	}
	if c.FileExtension == "" || c.FileExtension[0] != '.' {
		return fmt.Errorf("fileExtension must start with a dot, got %q", c.FileExtension)
	}
	if c.MinFiles < 1 || c.MaxFiles < c.MinFiles {
		return fmt.Errorf("file count range [%d, %d] is invalid", c.MinFiles, c.MaxFiles)
	}
	if c.MinBundleClasses < 1 || c.MaxBundleClasses < c.MinBundleClasses {
		return fmt.Errorf("bundle class range [%d, %d] is invalid", c.MinBundleClasses, c.MaxBundleClasses)
	}
	for name, p := range map[string]float64{
		"qualifierProbability":         c.QualifierProbability,
		"completionProbability":        c.CompletionProbability,
		"filenameQualifierProbability": c.FilenameQualifierProbability,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %g", name, p)
		}
	}
	return nil
}

// FindConfig searches for a config file in the standard locations within
// startDir, in priority order:
//
//  1. <startDir>/chaffgen.json
//  2. <startDir>/.chaffgen.json
//
// Returns the path of the first file found, or "" if none exists.
// A missing config file is not an error — defaults apply.
func FindConfig(startDir string) string {
	candidates := []string{
		filepath.Join(startDir, "chaffgen.json"),
		filepath.Join(startDir, ".chaffgen.json"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
