// Package emit is the file orchestrator: it removes stale junk decoys,
// writes freshly generated decoy files with collision-safe names, writes
// the concatenated bundle, and records the run in a YAML manifest.
//
// The orchestration is a straight-line sequence with no rollback — a
// failure mid-run can leave earlier artifacts in place, which is
// acceptable because every artifact is regenerable and the next run
// overwrites the bundle and cleans recognizable junk.
//
// All functions take the target directory and random source explicitly;
// nothing in this package reads global state.
package emit
