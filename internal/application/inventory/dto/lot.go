package dto

import (
	"time"

	"lotledger/internal/domain/lot"
)

// LotResponse is the API shape of a lot.
type LotResponse struct {
	ID           uint      `json:"id"`
	SID          string    `json:"sid"`
	MaterialID   uint      `json:"material_id"`
	InternalLot  string    `json:"internal_lot"`
	VendorLot    string    `json:"vendor_lot"`
	Manufacturer string    `json:"manufacturer"`
	Supplier     string    `json:"supplier,omitempty"`
	ExpiryDate   time.Time `json:"expiry_date"`
	Quantity     float64   `json:"quantity"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SamplingResponse reports the outcome of a sampling operation.
type SamplingResponse struct {
	Lot              *LotResponse `json:"lot"`
	ContainersOpened int          `json:"containers_opened"`
	MassRemoved      float64      `json:"mass_removed"`
}

// LotToResponse converts a domain lot.
func LotToResponse(l *lot.Lot) *LotResponse {
	return &LotResponse{
		ID:           l.ID(),
		SID:          l.SID(),
		MaterialID:   l.MaterialID(),
		InternalLot:  l.InternalLot(),
		VendorLot:    l.VendorLot(),
		Manufacturer: l.Manufacturer(),
		Supplier:     l.Supplier(),
		ExpiryDate:   l.ExpiryDate(),
		Quantity:     l.Quantity(),
		Status:       l.Status().String(),
		CreatedAt:    l.CreatedAt(),
		UpdatedAt:    l.UpdatedAt(),
	}
}

// LotsToResponse converts a slice of domain lots.
func LotsToResponse(lots []*lot.Lot) []*LotResponse {
	out := make([]*LotResponse, len(lots))
	for i, l := range lots {
		out[i] = LotToResponse(l)
	}
	return out
}
