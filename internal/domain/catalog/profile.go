package catalog

import (
	"fmt"
	"strings"
	"time"

	"lotledger/internal/shared/errors"
)

// TestProfileEntry binds a standard test to a material with a human-readable
// specification (acceptance limit). The set of entries for a material is the
// contract the analysis engine binds to: it determines exactly which result
// fields an analyst must supply.
type TestProfileEntry struct {
	id            uint
	materialID    uint
	testID        uint
	testName      string
	specification string
	createdAt     time.Time
}

// NewTestProfileEntry binds a test to a material.
func NewTestProfileEntry(materialID, testID uint, testName, specification string) (*TestProfileEntry, error) {
	if materialID == 0 {
		return nil, errors.NewValidationError("material is required")
	}
	if testID == 0 {
		return nil, errors.NewValidationError("standard test is required")
	}
	if strings.TrimSpace(specification) == "" {
		return nil, errors.NewValidationError("specification is required")
	}

	return &TestProfileEntry{
		materialID:    materialID,
		testID:        testID,
		testName:      testName,
		specification: strings.TrimSpace(specification),
		createdAt:     time.Now(),
	}, nil
}

// ReconstructTestProfileEntry rebuilds a profile entry from persistence.
func ReconstructTestProfileEntry(id, materialID, testID uint, testName, specification string, createdAt time.Time) (*TestProfileEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("profile entry ID cannot be zero")
	}
	return &TestProfileEntry{
		id:            id,
		materialID:    materialID,
		testID:        testID,
		testName:      testName,
		specification: specification,
		createdAt:     createdAt,
	}, nil
}

func (e *TestProfileEntry) ID() uint              { return e.id }
func (e *TestProfileEntry) MaterialID() uint      { return e.materialID }
func (e *TestProfileEntry) TestID() uint          { return e.testID }
func (e *TestProfileEntry) TestName() string      { return e.testName }
func (e *TestProfileEntry) Specification() string { return e.specification }
func (e *TestProfileEntry) CreatedAt() time.Time  { return e.createdAt }

// SetID sets the entry ID (only for persistence layer use)
func (e *TestProfileEntry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("profile entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("profile entry ID cannot be zero")
	}
	e.id = id
	return nil
}
