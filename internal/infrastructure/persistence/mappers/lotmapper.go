package mappers

import (
	"fmt"

	"lotledger/internal/domain/lot"
	vo "lotledger/internal/domain/lot/value_objects"
	"lotledger/internal/infrastructure/persistence/models"
)

// LotMapper handles the conversion between Lot domain entities and persistence models.
type LotMapper interface {
	ToModel(l *lot.Lot) *models.LotModel
	ToDomain(model *models.LotModel) (*lot.Lot, error)
}

type LotMapperImpl struct{}

func NewLotMapper() LotMapper {
	return &LotMapperImpl{}
}

func (mp *LotMapperImpl) ToModel(l *lot.Lot) *models.LotModel {
	return &models.LotModel{
		ID:           l.ID(),
		SID:          l.SID(),
		MaterialID:   l.MaterialID(),
		InternalLot:  l.InternalLot(),
		VendorLot:    l.VendorLot(),
		Manufacturer: l.Manufacturer(),
		Supplier:     l.Supplier(),
		ExpiryDate:   timeToMillis(l.ExpiryDate()),
		Quantity:     l.Quantity(),
		Status:       l.Status().String(),
		Version:      l.Version(),
		CreatedAt:    timeToMillis(l.CreatedAt()),
		UpdatedAt:    timeToMillis(l.UpdatedAt()),
	}
}

func (mp *LotMapperImpl) ToDomain(model *models.LotModel) (*lot.Lot, error) {
	status, err := vo.ParseStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct lot (id=%d): %w", model.ID, err)
	}

	l, err := lot.ReconstructLot(
		model.ID,
		model.SID,
		model.MaterialID,
		model.InternalLot,
		model.VendorLot,
		model.Manufacturer,
		model.Supplier,
		millisToTime(model.ExpiryDate),
		model.Quantity,
		status,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
		model.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct lot (id=%d): %w", model.ID, err)
	}
	return l, nil
}
