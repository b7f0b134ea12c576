// Package cli — generate.go implements the "chaffgen generate" command.
//
// The generate command is the primary operation. It runs the full
// four-step sequence against the target directory:
//  1. Remove stale junk-prefixed decoy files (unless --skip-clean)
//  2. Write a random number of standalone decoy files
//  3. Assemble and write the bundle file (unless --no-bundle)
//  4. Write the generation manifest and print a summary
//
// All randomness funnels through a single rand.Rand seeded from --seed
// (or the current time), so a fixed seed reproduces a run byte for byte.
package cli

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/chaffgen/internal/config"
	"github.com/mmr-tortoise/chaffgen/internal/emit"
	"github.com/mmr-tortoise/chaffgen/internal/model"
	"github.com/mmr-tortoise/chaffgen/internal/naming"
)

// generateFlags holds the flag values for the generate command.
// These are bound to cobra flags in NewGenerateCommand.
type generateFlags struct {
	target      string // --target: override the configured target directory
	count       int    // --count: fixed per-file decoy count (0 = random in range)
	bundleCount int    // --bundle-count: fixed bundle class count (0 = random in range)
	seed        int64  // --seed: random seed
	seedSet     bool   // whether --seed was given, so seed 0 stays usable
	skipClean   bool   // --skip-clean: skip the junk cleanup step
	noBundle    bool   // --no-bundle: skip the bundle assembly step
}

// NewGenerateCommand creates the "generate" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewGenerateCommand() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate decoy source files and the bundle",
		Long: `Generate decoy Swift classes into the target directory.

The command removes stale junk-prefixed files, writes a random number of
standalone decoy files with realistic names, writes one concatenated
bundle under a fixed filename, and records everything in a manifest.

Examples:
  chaffgen generate
  chaffgen generate --target ./App/Sources
  chaffgen generate --seed 42 --count 15
  chaffgen generate --no-bundle --skip-clean`,

		// No positional arguments — everything is flags and config.
		Args: cobra.NoArgs,

		// RunE is used instead of Run so we can return errors. Cobra will
		// pass them to the Execute error handler in root.go.
		RunE: func(cmd *cobra.Command, args []string) error {
			// Changed distinguishes an explicit --seed 0 from an absent
			// flag, so seed 0 remains usable for reproduction.
			flags.seedSet = cmd.Flags().Changed("seed")
			return runGenerate(flags)
		},
	}

	// Register command-specific flags.
	cmd.Flags().StringVar(&flags.target, "target", "", "Target directory (default: from config)")
	cmd.Flags().IntVar(&flags.count, "count", 0, "Exact number of decoy files (default: random within configured range)")
	cmd.Flags().IntVar(&flags.bundleCount, "bundle-count", 0, "Exact number of bundle classes (default: random within configured range)")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "Random seed for reproducible output (default: time-based)")
	cmd.Flags().BoolVar(&flags.skipClean, "skip-clean", false, "Skip stale junk file cleanup")
	cmd.Flags().BoolVar(&flags.noBundle, "no-bundle", false, "Skip bundle file assembly")

	return cmd
}

// runGenerate is the main orchestration function for the generate command.
func runGenerate(flags *generateFlags) error {
	// Step 1: Validate flags, load configuration, and resolve the target
	// directory. Negative counts are rejected here so they can never reach
	// the generation loop.
	if flags.count < 0 {
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("--count must not be negative, got %d", flags.count))
	}
	if flags.bundleCount < 0 {
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("--bundle-count must not be negative, got %d", flags.bundleCount))
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	targetDir := cfg.TargetDir
	if flags.target != "" {
		targetDir = flags.target
	}
	VerboseLog("Target directory: %s", targetDir)

	// Step 2: Build the seeded random source and synthesizer.
	// A single rand.Rand is shared by template selection, identifier
	// synthesis, and count draws, so one seed pins the whole run.
	seed := flags.seed
	if !flags.seedSet {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	VerboseLog("Random seed: %d", seed)

	synth := naming.NewSynthesizer(rng).
		WithProbabilities(cfg.QualifierProbability, cfg.CompletionProbability).
		WithExtraPools(cfg.ExtraClassPrefixes, cfg.ExtraClassSuffixes)

	// Step 3: Stale junk cleanup.
	removed := 0
	if !flags.skipClean {
		VerboseLog("Cleaning junk files (%s*%s)...", cfg.JunkPrefix, cfg.FileExtension)
		cleanResult, cleanErr := emit.CleanJunk(targetDir, cfg.JunkPrefix, cfg.FileExtension)
		if cleanErr != nil {
			return cleanErr
		}
		removed = len(cleanResult.Removed)
		for name, fileErr := range cleanResult.Failed {
			// A per-file failure is a soft skip: report and move on.
			VerboseLog("Warning: could not remove %s: %v", name, fileErr)
		}
		VerboseLog("Removed %d junk file(s), %d failed", removed, len(cleanResult.Failed))
	} else {
		VerboseLog("Skipping junk cleanup (--skip-clean)")
	}

	// Step 4: Per-file decoy generation.
	n := flags.count
	if n == 0 {
		n = emit.CountInRange(rng, cfg.MinFiles, cfg.MaxFiles)
	}
	VerboseLog("Generating %d decoy file(s)...", n)

	files, err := emit.WriteDecoys(targetDir, n, rng, synth, emit.WriteOptions{
		Extension:          cfg.FileExtension,
		FilenameQualifierP: cfg.FilenameQualifierProbability,
	})
	if err != nil {
		return err
	}
	for _, f := range files {
		VerboseLog("Created %s (%s, %d bytes)", f.Name, f.Kind, f.Bytes)
	}

	// Step 5: Bundle assembly. The class count is an independent draw —
	// the bundle does not reuse the per-file classes.
	var bundle *model.BundleInfo
	if !flags.noBundle {
		m := flags.bundleCount
		if m == 0 {
			m = emit.CountInRange(rng, cfg.MinBundleClasses, cfg.MaxBundleClasses)
		}
		VerboseLog("Assembling bundle with %d class(es)...", m)

		info, bundleErr := emit.WriteBundle(targetDir, m, rng, synth, cfg.BundleName, nil)
		if bundleErr != nil {
			return bundleErr
		}
		bundle = &info
		VerboseLog("Bundle written: %s (%d bytes)", info.Path, info.Bytes)
	} else {
		VerboseLog("Skipping bundle assembly (--no-bundle)")
	}

	// Step 6: Record the run in the manifest, merged with any previous
	// manifest so decoys from earlier runs stay tracked and `clean --all`
	// can still remove them.
	previous, err := emit.ReadManifest(targetDir)
	if err != nil {
		return err
	}

	manifest := model.Manifest{
		GeneratedAt: time.Now().UTC(),
		Tool:        "chaffgen " + Version,
	}
	for _, f := range files {
		manifest.Files = append(manifest.Files, model.ManifestEntry{Name: f.Name, Kind: f.Kind})
	}
	if bundle != nil {
		manifest.Bundle = cfg.BundleName
	}
	if err := emit.WriteManifest(targetDir, emit.MergeManifests(previous, manifest)); err != nil {
		return err
	}

	// Step 7: Output the summary.
	printGenerateResult(targetDir, files, removed, bundle, seed)
	return nil
}

// loadConfig loads the configuration from --config, the standard search
// locations, or defaults when no file exists.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return config.Config{}, model.WrapCLIError(model.ExitGeneralError, "failed to get current directory", err)
		}
		path = config.FindConfig(cwd)
	}

	if path == "" {
		VerboseLog("No config file found, using defaults")
		return config.Default(), nil
	}

	VerboseLog("Loading config: %s", path)
	return config.Load(path)
}

// printGenerateResult outputs the generate command results in text or
// JSON format.
func printGenerateResult(targetDir string, files []model.GeneratedFile, removed int, bundle *model.BundleInfo, seed int64) {
	if IsJSONOutput() {
		printGenerateResultJSON(targetDir, files, removed, bundle, seed)
	} else {
		printGenerateResultText(targetDir, files, removed, bundle)
	}
}

// printGenerateResultJSON outputs the generate result as structured JSON.
func printGenerateResultJSON(targetDir string, files []model.GeneratedFile, removed int, bundle *model.BundleInfo, seed int64) {
	type bundleJSON struct {
		Name       string `json:"name"`
		ClassCount int    `json:"classCount"`
		Bytes      int    `json:"bytes"`
	}

	type resultJSON struct {
		TargetDir   string                `json:"targetDir"`
		Seed        int64                 `json:"seed"`
		JunkRemoved int                   `json:"junkRemoved"`
		Files       []model.GeneratedFile `json:"files"`
		Bundle      *bundleJSON           `json:"bundle,omitempty"`
	}

	result := resultJSON{
		TargetDir:   targetDir,
		Seed:        seed,
		JunkRemoved: removed,
		// Use an empty slice instead of nil to ensure JSON output shows []
		// instead of null when no files were generated.
		Files: append([]model.GeneratedFile{}, files...),
	}
	if bundle != nil {
		result.Bundle = &bundleJSON{
			Name:       bundleBaseName(bundle),
			ClassCount: bundle.ClassCount,
			Bytes:      bundle.Bytes,
		}
	}

	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(data))
}

// printGenerateResultText outputs the generate result as human-readable text.
func printGenerateResultText(targetDir string, files []model.GeneratedFile, removed int, bundle *model.BundleInfo) {
	fmt.Printf("Generated %d decoy file(s) in %s\n", len(files), targetDir)
	fmt.Printf("  Junk removed: %d\n", removed)
	fmt.Printf("  By kind:      %s\n", FormatKindSummary(files))
	if bundle != nil {
		fmt.Printf("  Bundle:       %s (%d classes, %d bytes)\n",
			bundleBaseName(bundle), bundle.ClassCount, bundle.Bytes)
	}
}

// bundleBaseName extracts the bare filename from a BundleInfo path.
func bundleBaseName(bundle *model.BundleInfo) string {
	if bundle == nil {
		return ""
	}
	return filepath.Base(bundle.Path)
}
