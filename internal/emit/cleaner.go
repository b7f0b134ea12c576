package emit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmr-tortoise/chaffgen/internal/model"
)

// CleanResult reports the outcome of a junk cleanup pass.
type CleanResult struct {
	// Removed lists the filenames that were deleted.
	Removed []string

	// Failed maps filenames that matched the junk pattern but could not
	// be deleted to their errors. A per-file failure does not abort the
	// cleanup of remaining candidates.
	Failed map[string]error
}

// CleanJunk scans dir's immediate entries and deletes every regular file
// whose name starts with prefix and ends with ext. Subdirectories are
// never descended into or removed.
//
// The operation is idempotent: a second pass with no new junk created in
// between removes nothing.
//
// Returns a CLIError with ExitTargetNotFound if dir does not exist.
func CleanJunk(dir, prefix, ext string) (CleanResult, error) {
	result := CleanResult{Failed: make(map[string]error)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return result, model.WrapCLIError(model.ExitTargetNotFound,
				fmt.Sprintf("target directory does not exist: %s", dir), err)
		}
		return result, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to read target directory %s", dir), err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ext) {
			continue
		}

		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			// Record and continue — one undeletable file must not stop
			// the cleanup of the rest.
			result.Failed[name] = err
			continue
		}
		result.Removed = append(result.Removed, name)
	}

	return result, nil
}

// RemoveListed deletes the named files from dir, skipping entries that no
// longer exist. It is used by `clean --all` to remove manifest-listed
// decoys and the bundle. Like CleanJunk, per-file failures are collected
// rather than aborting.
func RemoveListed(dir string, names []string) CleanResult {
	result := CleanResult{Failed: make(map[string]error)}

	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				// Already gone — deleting it was the goal, so not a failure.
				continue
			}
			result.Failed[name] = err
			continue
		}
		result.Removed = append(result.Removed, name)
	}

	return result
}
