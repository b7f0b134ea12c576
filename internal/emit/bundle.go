package emit

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mmr-tortoise/chaffgen/internal/decoy"
	"github.com/mmr-tortoise/chaffgen/internal/model"
	"github.com/mmr-tortoise/chaffgen/internal/naming"
)

// BundleTimestampLayout is the human-readable timestamp format embedded
// in the bundle header. Tests parse the header back with this layout.
const BundleTimestampLayout = "2006-01-02 15:04:05"

// WriteBundle generates m fresh decoy classes — an independent draw, not
// a reuse of the per-file step's output — and writes them concatenated
// into a single bundle file in dir.
//
// The bundle begins with a fixed header block containing the bundle
// filename, a human-readable generation timestamp, and an explanatory
// comment, followed by the shared imports. Each class is preceded by a
// numbered "// MARK: - Decoy Class N" separator.
//
// The bundle is written under its fixed name unconditionally, overwriting
// any previous bundle — it is meant to be regenerated on every run.
func WriteBundle(dir string, m int, rng *rand.Rand, synth *naming.Synthesizer, bundleName string, now func() time.Time) (model.BundleInfo, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return model.BundleInfo{}, model.WrapCLIError(model.ExitTargetNotFound,
			fmt.Sprintf("target directory does not exist: %s", dir), err)
	}

	if now == nil {
		now = time.Now
	}
	generatedAt := now()

	var b strings.Builder
	writeBundleHeader(&b, bundleName, generatedAt)

	for i := 0; i < m; i++ {
		text, _, err := decoy.RenderRandom(rng, synth)
		if err != nil {
			return model.BundleInfo{}, model.WrapCLIError(model.ExitGeneralError, "failed to render bundle class", err)
		}

		// Section separators are 1-based to read naturally in the file.
		fmt.Fprintf(&b, "\n// MARK: - Decoy Class %d\n", i+1)
		b.WriteString(text)
		b.WriteString("\n")
	}

	content := b.String()
	path := filepath.Join(dir, bundleName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return model.BundleInfo{}, model.WrapCLIError(model.ExitWriteFailed,
			fmt.Sprintf("failed to write bundle file %s", bundleName), err)
	}

	return model.BundleInfo{
		Path:        path,
		ClassCount:  m,
		Bytes:       len(content),
		GeneratedAt: generatedAt,
	}, nil
}

// writeBundleHeader emits the fixed comment block and shared imports that
// open every bundle file.
func writeBundleHeader(b *strings.Builder, bundleName string, generatedAt time.Time) {
	fmt.Fprintf(b, "//\n")
	fmt.Fprintf(b, "//  %s\n", bundleName)
	fmt.Fprintf(b, "//  Auto-generated decoy code\n")
	fmt.Fprintf(b, "//\n")
	fmt.Fprintf(b, "//  Generated at: %s\n", generatedAt.Format(BundleTimestampLayout))
	fmt.Fprintf(b, "//  This file contains realistic-looking code patterns to make\n")
	fmt.Fprintf(b, "//  binary analysis harder. None of it is reachable at runtime.\n")
	fmt.Fprintf(b, "//\n")
	fmt.Fprintf(b, "\nimport Foundation\nimport UIKit\n")
}
