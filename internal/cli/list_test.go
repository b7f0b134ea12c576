package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmr-tortoise/chaffgen/internal/model"
)

// TestFormatKindSummary verifies the per-kind count formatting used in
// the generate summary, including stable alphabetical ordering and the
// empty placeholder.
func TestFormatKindSummary(t *testing.T) {
	tests := []struct {
		name     string
		files    []model.GeneratedFile
		expected string
	}{
		{
			name:     "empty",
			files:    nil,
			expected: "-",
		},
		{
			name: "single kind",
			files: []model.GeneratedFile{
				{Name: "A.swift", Kind: model.KindValidator},
			},
			expected: "validator:1",
		},
		{
			name: "multiple kinds sorted alphabetically",
			files: []model.GeneratedFile{
				{Name: "A.swift", Kind: model.KindNetworkService},
				{Name: "B.swift", Kind: model.KindCacheManager},
				{Name: "C.swift", Kind: model.KindNetworkService},
				{Name: "D.swift", Kind: model.KindUIHelper},
			},
			expected: "cache-manager:1, network-service:2, ui-helper:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatKindSummary(tt.files))
		})
	}
}
