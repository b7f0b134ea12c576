package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecoyKind_String verifies that DecoyKind values produce the expected
// string representations for CLI output and manifest serialization.
func TestDecoyKind_String(t *testing.T) {
	tests := []struct {
		kind     DecoyKind
		expected string
	}{
		{KindNetworkService, "network-service"},
		{KindDataManager, "data-manager"},
		{KindUIHelper, "ui-helper"},
		{KindJSONParser, "json-parser"},
		{KindValidator, "validator"},
		{KindCacheManager, "cache-manager"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

// TestDecoyKind_IsValid checks that only defined kinds pass validation.
func TestDecoyKind_IsValid(t *testing.T) {
	for _, kind := range AllDecoyKinds() {
		assert.True(t, kind.IsValid(), "kind %q should be valid", kind)
	}
	assert.False(t, DecoyKind("invalid").IsValid())
	assert.False(t, DecoyKind("").IsValid())
}

// TestParseDecoyKind verifies string-to-kind conversion, including case
// normalization and error cases.
func TestParseDecoyKind(t *testing.T) {
	tests := []struct {
		input    string
		expected DecoyKind
		hasError bool
	}{
		{"network-service", KindNetworkService, false},
		{"data-manager", KindDataManager, false},
		{"ui-helper", KindUIHelper, false},
		{"json-parser", KindJSONParser, false},
		{"validator", KindValidator, false},
		{"cache-manager", KindCacheManager, false},
		{"Validator", KindValidator, false}, // case insensitive
		{"invalid", "", true},               // unknown value
		{"", "", true},                      // empty string
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseDecoyKind(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

// TestAllDecoyKinds verifies the registry order is stable. Template
// selection under a seeded random source depends on this order, so a
// reordering would silently change deterministic output.
func TestAllDecoyKinds(t *testing.T) {
	kinds := AllDecoyKinds()
	require.Len(t, kinds, 6)
	assert.Equal(t, KindNetworkService, kinds[0])
	assert.Equal(t, KindCacheManager, kinds[5])
}

// TestValidateFileName checks the generated-filename validation rules.
func TestValidateFileName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		hasError bool
	}{
		{"simple", "NetworkManager.swift", false},
		{"with qualifier", "SecureDataServiceHelper.swift", false},
		{"with collision token", "CacheStore_4821.swift", false},
		{"empty", "", true},
		{"missing extension", "NetworkManager", true},
		{"wrong extension", "NetworkManager.go", true},
		{"leading digit", "1Manager.swift", true},
		{"path traversal", "../NetworkManager.swift", true},
		{"space", "Network Manager.swift", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFileName(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestCLIError verifies error message formatting and unwrapping behavior.
func TestCLIError(t *testing.T) {
	t.Run("without underlying error", func(t *testing.T) {
		err := NewCLIError(ExitTargetNotFound, "target directory not found")
		assert.Equal(t, "target directory not found", err.Error())
		assert.Equal(t, ExitTargetNotFound, err.Code)
		assert.Nil(t, err.Unwrap())
	})

	t.Run("with underlying error", func(t *testing.T) {
		underlying := errors.New("permission denied")
		err := WrapCLIError(ExitWriteFailed, "failed to write decoy file", underlying)
		assert.Equal(t, "failed to write decoy file: permission denied", err.Error())
		assert.Equal(t, ExitWriteFailed, err.Code)

		// errors.Is should find the underlying error through Unwrap.
		assert.True(t, errors.Is(err, underlying))
	})
}

// TestExitCodes verifies the numeric values of exit codes, which are part
// of the CLI contract and must not drift.
func TestExitCodes(t *testing.T) {
	assert.Equal(t, ExitCode(0), ExitSuccess)
	assert.Equal(t, ExitCode(1), ExitGeneralError)
	assert.Equal(t, ExitCode(2), ExitTargetNotFound)
	assert.Equal(t, ExitCode(3), ExitConfigInvalid)
	assert.Equal(t, ExitCode(4), ExitWriteFailed)
}
