package value_objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		expected string
	}{
		{"quarantine status", StatusQuarantine, "QUARANTINE"},
		{"sampled status", StatusSampled, "SAMPLED"},
		{"released status", StatusReleased, "RELEASED"},
		{"rejected status", StatusRejected, "REJECTED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name     string
		from     Status
		to       Status
		expected bool
	}{
		{"quarantine to sampled", StatusQuarantine, StatusSampled, true},
		{"quarantine to released skips sampling", StatusQuarantine, StatusReleased, false},
		{"quarantine to rejected skips sampling", StatusQuarantine, StatusRejected, false},
		{"sampled to released", StatusSampled, StatusReleased, true},
		{"sampled to rejected", StatusSampled, StatusRejected, true},
		{"sampled back to quarantine", StatusSampled, StatusQuarantine, false},
		{"sampled to sampled", StatusSampled, StatusSampled, false},
		{"released is terminal", StatusReleased, StatusSampled, false},
		{"released cannot flip to rejected", StatusReleased, StatusRejected, false},
		{"rejected is terminal", StatusRejected, StatusReleased, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("legal transition mutates", func(t *testing.T) {
		s := StatusQuarantine
		err := s.TransitionTo(StatusSampled)
		assert.NoError(t, err)
		assert.Equal(t, StatusSampled, s)
	})

	t.Run("illegal transition leaves status unchanged", func(t *testing.T) {
		s := StatusQuarantine
		err := s.TransitionTo(StatusReleased)
		assert.Error(t, err)
		assert.Equal(t, StatusQuarantine, s)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusQuarantine.IsTerminal())
	assert.False(t, StatusSampled.IsTerminal())
	assert.True(t, StatusReleased.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{"exact match", "QUARANTINE", StatusQuarantine, false},
		{"lowercase normalized", "released", StatusReleased, false},
		{"whitespace trimmed", "  SAMPLED ", StatusSampled, false},
		{"empty rejected", "", "", true},
		{"unknown rejected", "ON_HOLD", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewStatus_DefaultsToQuarantine(t *testing.T) {
	s, err := NewStatus("")
	assert.NoError(t, err)
	assert.Equal(t, StatusQuarantine, *s)
}
