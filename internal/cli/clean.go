// Package cli — clean.go implements the "chaffgen clean" command.
//
// The clean command removes stale junk-prefixed decoy files from the
// target directory. With --all it additionally removes every file listed
// in the generation manifest, the bundle, and the manifest itself,
// returning the directory to its pre-generation state.
//
// Per-file deletion failures are soft: each is reported and counted, and
// cleanup continues with the remaining candidates.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/chaffgen/internal/emit"
)

// cleanFlags holds the flag values for the clean command.
type cleanFlags struct {
	// target overrides the configured target directory.
	target string

	// all removes manifest-listed decoys and the bundle in addition to
	// junk-prefixed files.
	all bool
}

// NewCleanCommand creates the "clean" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewCleanCommand() *cobra.Command {
	flags := &cleanFlags{}

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove stale decoy files",
		Long: `Remove stale junk-prefixed decoy files from the target directory.

With --all, also remove every file recorded in the generation manifest,
the bundle file, and the manifest itself.

Examples:
  chaffgen clean
  chaffgen clean --all
  chaffgen clean --target ./App/Sources`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(flags)
		},
	}

	// Register command-specific flags.
	cmd.Flags().StringVar(&flags.target, "target", "", "Target directory (default: from config)")
	cmd.Flags().BoolVar(&flags.all, "all", false, "Also remove manifest-listed decoys, the bundle, and the manifest")

	return cmd
}

// runClean is the main logic function for the clean command.
func runClean(flags *cleanFlags) error {
	// Step 1: Load configuration and resolve the target directory.
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	targetDir := cfg.TargetDir
	if flags.target != "" {
		targetDir = flags.target
	}
	VerboseLog("Target directory: %s", targetDir)

	// Step 2: Junk-prefixed cleanup.
	junkResult, err := emit.CleanJunk(targetDir, cfg.JunkPrefix, cfg.FileExtension)
	if err != nil {
		return err
	}
	for name, fileErr := range junkResult.Failed {
		VerboseLog("Warning: could not remove %s: %v", name, fileErr)
	}

	removed := len(junkResult.Removed)
	failed := len(junkResult.Failed)

	// Step 3: Manifest-driven removal when --all is set.
	if flags.all {
		manifest, readErr := emit.ReadManifest(targetDir)
		if readErr != nil {
			return readErr
		}

		names := make([]string, 0, len(manifest.Files)+1)
		for _, entry := range manifest.Files {
			names = append(names, entry.Name)
		}
		if manifest.Bundle != "" {
			names = append(names, manifest.Bundle)
		}

		VerboseLog("Removing %d manifest-listed file(s)...", len(names))
		listedResult := emit.RemoveListed(targetDir, names)
		for name, fileErr := range listedResult.Failed {
			VerboseLog("Warning: could not remove %s: %v", name, fileErr)
		}
		removed += len(listedResult.Removed)
		failed += len(listedResult.Failed)

		// The manifest goes last: if removals above partially failed, a
		// re-run of clean --all can still find the remaining entries.
		if failed == 0 {
			if delErr := emit.DeleteManifest(targetDir); delErr != nil {
				return delErr
			}
			VerboseLog("Manifest removed")
		} else {
			VerboseLog("Keeping manifest because %d removal(s) failed", failed)
		}
	}

	// Step 4: Output the result.
	printCleanResult(targetDir, removed, failed, flags.all)
	return nil
}

// printCleanResult outputs the clean command result in text or JSON format.
func printCleanResult(targetDir string, removed, failed int, all bool) {
	if IsJSONOutput() {
		result := map[string]interface{}{
			"targetDir": targetDir,
			"removed":   removed,
			"failed":    failed,
			"all":       all,
		}
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Removed %d file(s) from %s\n", removed, targetDir)
	if failed > 0 {
		fmt.Printf("  %d file(s) could not be removed (see --verbose)\n", failed)
	}
}
