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

// WriteOptions tunes the per-file generation step.
type WriteOptions struct {
	// Extension is the generated filename extension, with leading dot.
	Extension string

	// FilenameQualifierP is the probability a filename gains a qualifier
	// word before the extension.
	FilenameQualifierP float64

	// Now supplies the clock used to derive collision tokens. Nil means
	// time.Now. Injectable so tests can force token collisions.
	Now func() time.Time
}

// CountInRange draws a uniform random count in [min, max] inclusive.
// Both the per-file count and the bundle class count are drawn through
// this, as two independent draws.
func CountInRange(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}

// WriteDecoys generates n decoy classes and writes each to its own file
// in dir. Filenames are synthesized from the naming pools; a collision
// with an existing directory entry is resolved by inserting a
// timestamp-derived numeric token before the extension. A pre-existing
// file is never overwritten.
//
// Precondition: dir must already exist. If it does not, the whole step
// aborts with ExitTargetNotFound and no files are written.
func WriteDecoys(dir string, n int, rng *rand.Rand, synth *naming.Synthesizer, opts WriteOptions) ([]model.GeneratedFile, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, model.WrapCLIError(model.ExitTargetNotFound,
			fmt.Sprintf("target directory does not exist: %s", dir), err)
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	files := make([]model.GeneratedFile, 0, n)
	for i := 0; i < n; i++ {
		text, kind, err := decoy.RenderRandom(rng, synth)
		if err != nil {
			return files, model.WrapCLIError(model.ExitGeneralError, "failed to render decoy class", err)
		}

		name := synth.FileName(opts.FilenameQualifierP, opts.Extension)
		name = resolveCollision(dir, name, opts.Extension, now)

		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			return files, model.WrapCLIError(model.ExitWriteFailed,
				fmt.Sprintf("failed to write decoy file %s", name), err)
		}

		files = append(files, model.GeneratedFile{
			Name:  name,
			Kind:  kind,
			Bytes: len(text),
		})
	}

	return files, nil
}

// resolveCollision returns a filename that does not collide with an
// existing entry in dir. If name is free it is returned unchanged;
// otherwise the extension is stripped, a numeric token derived from the
// current time (milliseconds modulo 10000) is appended, and the
// extension re-appended. The token is incremented until a free name is
// found, so even a run generating many files within one millisecond
// cannot overwrite anything.
func resolveCollision(dir, name, ext string, now func() time.Time) string {
	if !exists(filepath.Join(dir, name)) {
		return name
	}

	stem := strings.TrimSuffix(name, ext)
	token := now().UnixMilli() % 10000
	for {
		candidate := fmt.Sprintf("%s_%d%s", stem, token, ext)
		if !exists(filepath.Join(dir, candidate)) {
			return candidate
		}
		token++
	}
}

// exists reports whether a path exists. Stat errors other than not-exist
// are treated as existing, which errs on the side of never overwriting.
func exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
