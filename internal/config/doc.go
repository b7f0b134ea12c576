// Package config handles loading and validation of the optional
// chaffgen.json configuration file.
//
// The file uses JSONC (JSON with Comments), so this package uses
// github.com/tidwall/jsonc to strip comments before parsing with the
// standard encoding/json library. Every setting has a compiled-in
// default mirroring the original tool; the config file overrides
// defaults, and command-line flags override the config file.
package config
