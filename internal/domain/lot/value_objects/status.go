package value_objects

import (
	"fmt"
	"strings"
)

// Status represents the lifecycle status of an inventory lot.
type Status string

// Status constants. A lot is received into quarantine, moves to sampled after
// a sampling operation, and ends released or rejected by the lab conclusion.
const (
	StatusQuarantine Status = "QUARANTINE"
	StatusSampled    Status = "SAMPLED"
	StatusReleased   Status = "RELEASED"
	StatusRejected   Status = "REJECTED"
)

// ValidStatuses contains all valid status values
var ValidStatuses = map[Status]bool{
	StatusQuarantine: true,
	StatusSampled:    true,
	StatusReleased:   true,
	StatusRejected:   true,
}

// StatusTransitions defines allowed status transitions. No transition skips a
// state and no backward transition exists; only the correction engine may
// overwrite status outside this table.
var StatusTransitions = map[Status][]Status{
	StatusQuarantine: {
		StatusSampled,
	},
	StatusSampled: {
		StatusReleased,
		StatusRejected,
	},
	StatusReleased: {
		// Terminal
	},
	StatusRejected: {
		// Terminal
	},
}

// NewStatus creates a new Status value object with validation
func NewStatus(value string) (*Status, error) {
	status := Status(value)

	if value == "" {
		// Lots are received into quarantine
		status = StatusQuarantine
		return &status, nil
	}

	if !ValidStatuses[status] {
		return nil, fmt.Errorf("invalid lot status: %s", value)
	}

	return &status, nil
}

// ParseStatus parses a string to Status (case-insensitive)
func ParseStatus(value string) (Status, error) {
	normalized := Status(strings.ToUpper(strings.TrimSpace(value)))

	if normalized == "" {
		return "", fmt.Errorf("lot status cannot be empty")
	}

	if !ValidStatuses[normalized] {
		return "", fmt.Errorf("invalid lot status: %s", value)
	}

	return normalized, nil
}

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}

// Equals checks if two status objects are equal
func (s Status) Equals(other Status) bool {
	return s == other
}

// IsQuarantine checks if the lot is still in quarantine
func (s Status) IsQuarantine() bool {
	return s == StatusQuarantine
}

// IsSampled checks if the lot has been sampled
func (s Status) IsSampled() bool {
	return s == StatusSampled
}

// IsReleased checks if the lot has been released
func (s Status) IsReleased() bool {
	return s == StatusReleased
}

// IsRejected checks if the lot has been rejected
func (s Status) IsRejected() bool {
	return s == StatusRejected
}

// IsTerminal checks if the status is terminal (no further transitions possible)
func (s Status) IsTerminal() bool {
	return s == StatusReleased || s == StatusRejected
}

// CanTransitionTo checks if the current status can transition to the target status
func (s Status) CanTransitionTo(target Status) bool {
	allowedTransitions, exists := StatusTransitions[s]
	if !exists {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == target {
			return true
		}
	}

	return false
}

// TransitionTo attempts to transition to a new status
func (s *Status) TransitionTo(target Status) error {
	if !s.CanTransitionTo(target) {
		return fmt.Errorf("cannot transition from %s to %s", s.String(), target.String())
	}

	*s = target
	return nil
}

// GetAllowedTransitions returns all allowed transitions from the current status
func (s Status) GetAllowedTransitions() []Status {
	transitions, exists := StatusTransitions[s]
	if !exists {
		return []Status{}
	}
	return transitions
}

// MarshalJSON implements json.Marshaler interface
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler interface
func (s *Status) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	status, err := NewStatus(str)
	if err != nil {
		return err
	}

	*s = *status
	return nil
}
