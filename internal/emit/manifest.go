package emit

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/chaffgen/internal/model"
)

// ManifestFileName is the well-known manifest filename inside the target
// directory. The leading dot keeps it out of Xcode's file pickers.
const ManifestFileName = ".chaffgen-manifest.yml"

// WriteManifest serializes the manifest as YAML into dir, overwriting any
// previous manifest. The manifest makes later runs precise: `clean --all`
// removes exactly what was generated, and `list` can report files that
// have since disappeared.
func WriteManifest(dir string, m model.Manifest) error {
	data, err := yaml.Marshal(&m)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to serialize manifest", err)
	}

	path := filepath.Join(dir, ManifestFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return model.WrapCLIError(model.ExitWriteFailed,
			fmt.Sprintf("failed to write manifest %s", path), err)
	}
	return nil
}

// ReadManifest loads the manifest from dir. A missing manifest is not an
// error — it reads as an empty manifest, which is the state before the
// first generation run (or after `clean --all`).
func ReadManifest(dir string) (model.Manifest, error) {
	path := filepath.Join(dir, ManifestFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Manifest{}, nil
		}
		return model.Manifest{}, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to read manifest %s", path), err)
	}

	var m model.Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return model.Manifest{}, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to parse manifest %s", path), err)
	}
	return m, nil
}

// MergeManifests combines a previous run's manifest with the one produced
// by the current run. File entries are deduplicated by name with the
// current run winning; entries unique to the previous manifest survive,
// so repeated generation runs keep every written decoy tracked. The
// bundle name carries over from the previous manifest when the current
// run skipped bundle assembly, since the bundle file itself is still on
// disk in that case.
func MergeManifests(prev, next model.Manifest) model.Manifest {
	merged := next
	if merged.Bundle == "" {
		merged.Bundle = prev.Bundle
	}

	current := make(map[string]bool, len(next.Files))
	for _, f := range next.Files {
		current[f.Name] = true
	}

	files := make([]model.ManifestEntry, 0, len(prev.Files)+len(next.Files))
	for _, f := range prev.Files {
		if !current[f.Name] {
			files = append(files, f)
		}
	}
	merged.Files = append(files, next.Files...)
	return merged
}

// DeleteManifest removes the manifest file from dir. Used by
// `clean --all` after the listed files have been removed. A missing
// manifest is not an error.
func DeleteManifest(dir string) error {
	path := filepath.Join(dir, ManifestFileName)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to remove manifest %s", path), err)
	}
	return nil
}
