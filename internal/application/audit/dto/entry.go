package dto

import (
	"time"

	"lotledger/internal/domain/audit"
)

// EntryResponse is the API shape of one audit trail line.
type EntryResponse struct {
	ID        uint      `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

// EntryToResponse converts a domain audit entry.
func EntryToResponse(e *audit.Entry) *EntryResponse {
	return &EntryResponse{
		ID:        e.ID(),
		Actor:     e.Actor(),
		Action:    e.Action().String(),
		Detail:    e.Detail(),
		CreatedAt: e.CreatedAt(),
	}
}

// EntriesToResponse converts a slice of domain audit entries.
func EntriesToResponse(entries []*audit.Entry) []*EntryResponse {
	out := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		out[i] = EntryToResponse(e)
	}
	return out
}
