package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lotledger/internal/shared/errors"
)

func TestNewEntry(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		e, err := NewEntry("jdoe", ActionReceipt, "received lot L-2025-0001")
		require.NoError(t, err)
		assert.Equal(t, "jdoe", e.Actor())
		assert.Equal(t, ActionReceipt, e.Action())
		assert.False(t, e.CreatedAt().IsZero())
	})

	t.Run("requires actor", func(t *testing.T) {
		_, err := NewEntry("  ", ActionReceipt, "detail")
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("requires detail", func(t *testing.T) {
		_, err := NewEntry("jdoe", ActionReceipt, "")
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rejects free-typed action", func(t *testing.T) {
		_, err := NewEntry("jdoe", Action("DELETED_EVERYTHING"), "detail")
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		input   string
		want    Action
		wantErr bool
	}{
		{"RECEIPT", ActionReceipt, false},
		{"sampling", ActionSampling, false},
		{" lab_release ", ActionLabRelease, false},
		{"CORRECTION", ActionCorrection, false},
		{"DELETE", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAction(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
