// Package cli — list.go implements the "chaffgen list" command.
//
// The list command reports the decoy files recorded in the generation
// manifest, cross-checked against the target directory: entries whose
// file has since disappeared are flagged as missing. Output is a text
// table or JSON, depending on the --json flag.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/chaffgen/internal/emit"
	"github.com/mmr-tortoise/chaffgen/internal/model"
)

// listFlags holds the flag values for the list command.
type listFlags struct {
	// target overrides the configured target directory.
	target string
}

// listEntry is one row of list output: a manifest entry plus its
// on-disk presence.
type listEntry struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Present bool   `json:"present"`
}

// NewListCommand creates the "list" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List generated decoy files",
		Long: `List the decoy files recorded in the generation manifest.

Each entry is shown with its template kind and whether the file still
exists in the target directory. The bundle file is listed last.

Examples:
  chaffgen list
  chaffgen list --json
  chaffgen list --target ./App/Sources`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(flags)
		},
	}

	cmd.Flags().StringVar(&flags.target, "target", "", "Target directory (default: from config)")

	return cmd
}

// runList is the main logic function for the list command.
func runList(flags *listFlags) error {
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

	// Step 2: Read the manifest. An absent manifest reads as empty,
	// which renders as "no decoys recorded".
	manifest, err := emit.ReadManifest(targetDir)
	if err != nil {
		return err
	}
	VerboseLog("Manifest lists %d file(s)", len(manifest.Files))

	// Step 3: Cross-check each entry against the directory.
	entries := make([]listEntry, 0, len(manifest.Files)+1)
	for _, f := range manifest.Files {
		entries = append(entries, listEntry{
			Name:    f.Name,
			Kind:    f.Kind.String(),
			Present: fileExists(filepath.Join(targetDir, f.Name)),
		})
	}
	if manifest.Bundle != "" {
		entries = append(entries, listEntry{
			Name:    manifest.Bundle,
			Kind:    "bundle",
			Present: fileExists(filepath.Join(targetDir, manifest.Bundle)),
		})
	}

	// Step 4: Output results in the appropriate format.
	printListResult(targetDir, entries)
	return nil
}

// fileExists reports whether a regular file exists at path.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// printListResult outputs the list of entries in text or JSON format,
// depending on the global --json flag.
func printListResult(targetDir string, entries []listEntry) {
	if IsJSONOutput() {
		printListResultJSON(targetDir, entries)
	} else {
		printListResultText(entries)
	}
}

// printListResultJSON outputs the entries as structured JSON.
func printListResultJSON(targetDir string, entries []listEntry) {
	type resultJSON struct {
		TargetDir string      `json:"targetDir"`
		Decoys    []listEntry `json:"decoys"`
	}

	result := resultJSON{
		TargetDir: targetDir,
		// Use an empty slice instead of nil to ensure JSON output shows []
		// instead of null when no decoys are recorded.
		Decoys: append([]listEntry{}, entries...),
	}

	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(data))
}

// printListResultText outputs the entries as a human-readable text table
// with aligned columns.
//
// The table format is:
//
//	NAME                           KIND             STATUS
//	NetworkManagerHelper.swift     network-service  present
//	CacheStore.swift               cache-manager    missing
func printListResultText(entries []listEntry) {
	if len(entries) == 0 {
		fmt.Println("No decoy files recorded. Run `chaffgen generate` first.")
		return
	}

	fmt.Printf("%-40s %-18s %s\n", "NAME", "KIND", "STATUS")
	for _, e := range entries {
		status := "present"
		if !e.Present {
			status = "missing"
		}
		fmt.Printf("%-40s %-18s %s\n", e.Name, e.Kind, status)
	}
}

// FormatKindSummary converts generated files into a compact per-kind
// count string for the generate summary, e.g.
//
//	"cache-manager:2, network-service:3, validator:1"
//
// Kinds are sorted alphabetically for stable output. Returns "-" when
// no files were generated.
//
// This function is exported for testing purposes (tested in list_test.go).
func FormatKindSummary(files []model.GeneratedFile) string {
	if len(files) == 0 {
		return "-"
	}

	counts := make(map[string]int)
	for _, f := range files {
		counts[f.Kind.String()]++
	}

	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	parts := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		parts = append(parts, fmt.Sprintf("%s:%d", kind, counts[kind]))
	}
	return strings.Join(parts, ", ")
}
