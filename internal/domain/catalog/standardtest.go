package catalog

import (
	"fmt"
	"strings"
	"time"

	"lotledger/internal/shared/errors"
)

// StandardTest is a reusable laboratory test definition (name plus reference
// method). Once a test is bound into a material's profile it is never
// deleted; profiles only add and remove bindings.
type StandardTest struct {
	id        uint
	name      string
	method    string
	createdAt time.Time
}

// NewStandardTest creates a test definition.
func NewStandardTest(name, method string) (*StandardTest, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.NewValidationError("test name is required")
	}

	return &StandardTest{
		name:      strings.TrimSpace(name),
		method:    strings.TrimSpace(method),
		createdAt: time.Now(),
	}, nil
}

// ReconstructStandardTest rebuilds a test definition from persistence.
func ReconstructStandardTest(id uint, name, method string, createdAt time.Time) (*StandardTest, error) {
	if id == 0 {
		return nil, fmt.Errorf("standard test ID cannot be zero")
	}
	return &StandardTest{
		id:        id,
		name:      name,
		method:    method,
		createdAt: createdAt,
	}, nil
}

func (t *StandardTest) ID() uint             { return t.id }
func (t *StandardTest) Name() string         { return t.name }
func (t *StandardTest) Method() string       { return t.method }
func (t *StandardTest) CreatedAt() time.Time { return t.createdAt }

// SetID sets the test ID (only for persistence layer use)
func (t *StandardTest) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("standard test ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("standard test ID cannot be zero")
	}
	t.id = id
	return nil
}
