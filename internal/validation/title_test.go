package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr error
	}{
		{
			name:  "valid title",
			title: "Buy milk",
		},
		{
			name:  "valid title with surrounding spaces",
			title: "  Buy milk  ",
		},
		{
			name:    "empty title",
			title:   "",
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "whitespace-only title",
			title:   "   \t\n  ",
			wantErr: ErrEmptyTitle,
		},
		{
			name:  "title at max length",
			title: strings.Repeat("a", MaxTitleLen),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateTitle_TooLong(t *testing.T) {
	err := ValidateTitle(strings.Repeat("a", MaxTitleLen+1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not exceed")
}
