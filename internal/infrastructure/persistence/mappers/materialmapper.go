package mappers

import (
	"fmt"

	"lotledger/internal/domain/catalog"
	"lotledger/internal/infrastructure/persistence/models"
)

// MaterialMapper handles the conversion between Material domain entities and persistence models.
type MaterialMapper interface {
	ToModel(m *catalog.Material) *models.MaterialModel
	ToDomain(model *models.MaterialModel) (*catalog.Material, error)
}

type MaterialMapperImpl struct{}

func NewMaterialMapper() MaterialMapper {
	return &MaterialMapperImpl{}
}

func (mp *MaterialMapperImpl) ToModel(m *catalog.Material) *models.MaterialModel {
	return &models.MaterialModel{
		ID:        m.ID(),
		SID:       m.SID(),
		Code:      m.Code(),
		Name:      m.Name(),
		Category:  m.Category(),
		Active:    m.IsActive(),
		CreatedAt: timeToMillis(m.CreatedAt()),
		UpdatedAt: timeToMillis(m.UpdatedAt()),
	}
}

func (mp *MaterialMapperImpl) ToDomain(model *models.MaterialModel) (*catalog.Material, error) {
	m, err := catalog.ReconstructMaterial(
		model.ID,
		model.SID,
		model.Code,
		model.Name,
		model.Category,
		model.Active,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct material (id=%d): %w", model.ID, err)
	}
	return m, nil
}
