package emit

import (
	"crypto/sha256"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/chaffgen/internal/model"
	"github.com/mmr-tortoise/chaffgen/internal/naming"
)

// testOptions returns WriteOptions with a fixed clock so collision tokens
// are predictable.
func testOptions() WriteOptions {
	return WriteOptions{
		Extension:          ".swift",
		FilenameQualifierP: naming.DefaultFileQualifierProbability,
		Now: func() time.Time {
			return time.UnixMilli(1724491234567) // token: 4567
		},
	}
}

// newRig builds a seeded rng/synthesizer pair sharing one source, the
// same wiring the CLI uses.
func newRig(seed int64) (*rand.Rand, *naming.Synthesizer) {
	rng := rand.New(rand.NewSource(seed))
	return rng, naming.NewSynthesizer(rng)
}

// TestCountInRange verifies bounds are inclusive on both ends.
func TestCountInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		n := CountInRange(rng, 12, 20)
		require.GreaterOrEqual(t, n, 12)
		require.LessOrEqual(t, n, 20)
		seen[n] = true
	}
	// All nine values should appear over 500 draws.
	assert.Len(t, seen, 9)

	// Degenerate range draws the single value.
	assert.Equal(t, 5, CountInRange(rng, 5, 5))
}

// TestWriteDecoys verifies the basic contract: n files written, each with
// a valid filename and non-empty plausible content.
func TestWriteDecoys(t *testing.T) {
	dir := t.TempDir()
	rng, synth := newRig(42)

	files, err := WriteDecoys(dir, 7, rng, synth, testOptions())
	require.NoError(t, err)
	require.Len(t, files, 7)

	for _, f := range files {
		assert.NoError(t, model.ValidateFileName(f.Name))
		assert.True(t, f.Kind.IsValid())

		content, readErr := os.ReadFile(filepath.Join(dir, f.Name))
		require.NoError(t, readErr)
		assert.Equal(t, f.Bytes, len(content))
		assert.Contains(t, string(content), "class ")
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 7, "no extra files should appear")
}

// TestWriteDecoys_MissingDir verifies the precondition hard stop: a
// nonexistent target produces zero files and a single structured error.
func TestWriteDecoys_MissingDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	rng, synth := newRig(1)

	files, err := WriteDecoys(missing, 5, rng, synth, testOptions())
	require.Error(t, err)
	assert.Empty(t, files)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitTargetNotFound, cliErr.Code)
}

// TestWriteDecoys_CollisionPreservesExisting pre-creates files at every
// name the seeded run would choose, then verifies none of them are
// overwritten: the run must produce differently named files instead, and
// the originals' content hashes must be unchanged.
func TestWriteDecoys_CollisionPreservesExisting(t *testing.T) {
	opts := testOptions()

	// Dry run in a scratch dir to learn which names this seed produces.
	scratch := t.TempDir()
	rng, synth := newRig(77)
	planned, err := WriteDecoys(scratch, 5, rng, synth, opts)
	require.NoError(t, err)

	// Pre-create those exact names with sentinel content in the real dir.
	dir := t.TempDir()
	sentinel := []byte("// REAL PROJECT FILE — DO NOT TOUCH\n")
	hashes := make(map[string][32]byte)
	for _, f := range planned {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f.Name), sentinel, 0644))
		hashes[f.Name] = sha256.Sum256(sentinel)
	}

	// Same seed, same clock: every filename draw collides.
	rng2, synth2 := newRig(77)
	written, err := WriteDecoys(dir, 5, rng2, synth2, opts)
	require.NoError(t, err)
	require.Len(t, written, 5)

	for _, f := range written {
		// Each written file must carry the collision token.
		assert.Contains(t, f.Name, "_", "colliding name %q should gain a token", f.Name)
		_, wasPlanned := hashes[f.Name]
		assert.False(t, wasPlanned, "written file %q must not reuse a colliding name", f.Name)
	}

	// The pre-existing files are byte-identical to before.
	for name, want := range hashes {
		content, readErr := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, readErr)
		assert.Equal(t, want, sha256.Sum256(content), "pre-existing %q was modified", name)
	}
}

// TestWriteDecoys_CollisionTokenIncrements verifies that repeated
// collisions under a frozen clock still produce unique names rather than
// overwriting the first disambiguated file.
func TestWriteDecoys_CollisionTokenIncrements(t *testing.T) {
	dir := t.TempDir()
	opts := testOptions() // frozen clock — every token starts at 4567

	// Occupy a name and its first token candidate.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "DataManager.swift"), []byte("a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "DataManager_4567.swift"), []byte("b"), 0644))

	name := resolveCollision(dir, "DataManager.swift", ".swift", opts.Now)
	assert.Equal(t, "DataManager_4568.swift", name)
}

// TestWriteDecoys_Deterministic verifies byte-identical output across two
// runs with the same seed and clock — the determinism property the whole
// generator is built around.
func TestWriteDecoys_Deterministic(t *testing.T) {
	opts := testOptions()

	run := func() map[string]string {
		dir := t.TempDir()
		rng, synth := newRig(123)
		files, err := WriteDecoys(dir, 10, rng, synth, opts)
		require.NoError(t, err)

		out := make(map[string]string)
		for _, f := range files {
			content, readErr := os.ReadFile(filepath.Join(dir, f.Name))
			require.NoError(t, readErr)
			out[f.Name] = string(content)
		}
		return out
	}

	assert.Equal(t, run(), run())
}

// TestWriteDecoys_FilenameShape samples generated filenames and verifies
// the Prefix Suffix (Qualifier)? <ext> grammar over the pools.
func TestWriteDecoys_FilenameShape(t *testing.T) {
	dir := t.TempDir()
	rng, synth := newRig(9)

	files, err := WriteDecoys(dir, 15, rng, synth, testOptions())
	require.NoError(t, err)

	for _, f := range files {
		stem := strings.TrimSuffix(f.Name, ".swift")
		require.NotEqual(t, stem, f.Name, "filename %q must end in .swift", f.Name)

		// Optional trailing qualifier word.
		for _, q := range naming.FileQualifiers {
			if strings.HasSuffix(stem, q) && len(stem) > len(q) {
				trimmed := strings.TrimSuffix(stem, q)
				// Guard against the suffix pool word itself (e.g. "Helper")
				// being mistaken for a qualifier: only trim when the
				// remainder still decomposes into prefix+suffix.
				if decomposes(trimmed) {
					stem = trimmed
				}
				break
			}
		}

		assert.True(t, decomposes(stem), "filename stem %q does not decompose into pool words", stem)
	}
}

// decomposes reports whether stem is exactly one class prefix followed by
// one class suffix.
func decomposes(stem string) bool {
	for _, p := range naming.ClassPrefixes {
		if !strings.HasPrefix(stem, p) {
			continue
		}
		rest := strings.TrimPrefix(stem, p)
		for _, s := range naming.ClassSuffixes {
			if rest == s {
				return true
			}
		}
	}
	return false
}
