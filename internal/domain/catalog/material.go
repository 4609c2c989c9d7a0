package catalog

import (
	"fmt"
	"strings"
	"time"

	"lotledger/internal/shared/errors"
)

// Material categories used by the catalog. The set follows the receiving
// paperwork; anything else is recorded as-is.
const (
	CategoryAPI       = "API"
	CategoryExcipient = "EXCIPIENT"
)

// Material is a raw material definition in the catalog. Deactivating a
// material only hides it from new-lot selection; existing lots and their
// history are untouched.
type Material struct {
	id        uint
	sid       string
	code      string
	name      string
	category  string
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

// NewMaterial creates an active catalog material.
func NewMaterial(code, name, category string, sidGenerator func() (string, error)) (*Material, error) {
	if strings.TrimSpace(code) == "" {
		return nil, errors.NewValidationError("material code is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.NewValidationError("material name is required")
	}

	sid, err := sidGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to generate material identifier: %w", err)
	}

	now := time.Now()
	return &Material{
		sid:       sid,
		code:      strings.TrimSpace(code),
		name:      strings.TrimSpace(name),
		category:  strings.TrimSpace(category),
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructMaterial rebuilds a material from persistence.
func ReconstructMaterial(id uint, sid, code, name, category string, active bool, createdAt, updatedAt time.Time) (*Material, error) {
	if id == 0 {
		return nil, fmt.Errorf("material ID cannot be zero")
	}
	return &Material{
		id:        id,
		sid:       sid,
		code:      code,
		name:      name,
		category:  category,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (m *Material) ID() uint             { return m.id }
func (m *Material) SID() string          { return m.sid }
func (m *Material) Code() string         { return m.code }
func (m *Material) Name() string         { return m.name }
func (m *Material) Category() string     { return m.category }
func (m *Material) IsActive() bool       { return m.active }
func (m *Material) CreatedAt() time.Time { return m.createdAt }
func (m *Material) UpdatedAt() time.Time { return m.updatedAt }

// SetID sets the material ID (only for persistence layer use)
func (m *Material) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("material ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("material ID cannot be zero")
	}
	m.id = id
	return nil
}

// Rename updates the display name, returning a change descriptor for the
// audit trail or "" when nothing changed.
func (m *Material) Rename(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.NewValidationError("material name is required")
	}
	if name == m.name {
		return "", nil
	}

	change := fmt.Sprintf("name: %s -> %s", m.name, name)
	m.name = name
	m.updatedAt = time.Now()
	return change, nil
}

// ToggleActive flips the active flag and returns a change descriptor.
func (m *Material) ToggleActive() string {
	m.active = !m.active
	m.updatedAt = time.Now()
	if m.active {
		return "material reactivated"
	}
	return "material deactivated"
}
