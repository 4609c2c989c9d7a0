package dto

import (
	"time"

	"lotledger/internal/domain/catalog"
)

// MaterialResponse is the API shape of a catalog material.
type MaterialResponse struct {
	ID        uint      `json:"id"`
	SID       string    `json:"sid"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StandardTestResponse is the API shape of a standard test definition.
type StandardTestResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Method    string    `json:"method"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileEntryResponse is the API shape of a test profile binding.
type ProfileEntryResponse struct {
	ID            uint   `json:"id"`
	MaterialID    uint   `json:"material_id"`
	TestID        uint   `json:"test_id"`
	TestName      string `json:"test_name"`
	Specification string `json:"specification"`
}

// MaterialToResponse converts a domain material.
func MaterialToResponse(m *catalog.Material) *MaterialResponse {
	return &MaterialResponse{
		ID:        m.ID(),
		SID:       m.SID(),
		Code:      m.Code(),
		Name:      m.Name(),
		Category:  m.Category(),
		Active:    m.IsActive(),
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	}
}

// MaterialsToResponse converts a slice of domain materials.
func MaterialsToResponse(materials []*catalog.Material) []*MaterialResponse {
	out := make([]*MaterialResponse, len(materials))
	for i, m := range materials {
		out[i] = MaterialToResponse(m)
	}
	return out
}

// StandardTestToResponse converts a domain test definition.
func StandardTestToResponse(t *catalog.StandardTest) *StandardTestResponse {
	return &StandardTestResponse{
		ID:        t.ID(),
		Name:      t.Name(),
		Method:    t.Method(),
		CreatedAt: t.CreatedAt(),
	}
}

// StandardTestsToResponse converts a slice of domain test definitions.
func StandardTestsToResponse(tests []*catalog.StandardTest) []*StandardTestResponse {
	out := make([]*StandardTestResponse, len(tests))
	for i, t := range tests {
		out[i] = StandardTestToResponse(t)
	}
	return out
}

// ProfileEntryToResponse converts a domain profile entry.
func ProfileEntryToResponse(e *catalog.TestProfileEntry) *ProfileEntryResponse {
	return &ProfileEntryResponse{
		ID:            e.ID(),
		MaterialID:    e.MaterialID(),
		TestID:        e.TestID(),
		TestName:      e.TestName(),
		Specification: e.Specification(),
	}
}

// ProfileEntriesToResponse converts a slice of domain profile entries.
func ProfileEntriesToResponse(entries []*catalog.TestProfileEntry) []*ProfileEntryResponse {
	out := make([]*ProfileEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = ProfileEntryToResponse(e)
	}
	return out
}
