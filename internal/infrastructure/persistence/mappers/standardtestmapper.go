package mappers

import (
	"fmt"

	"lotledger/internal/domain/catalog"
	"lotledger/internal/infrastructure/persistence/models"
)

// StandardTestMapper handles the conversion between StandardTest domain entities and persistence models.
type StandardTestMapper interface {
	ToModel(t *catalog.StandardTest) *models.StandardTestModel
	ToDomain(model *models.StandardTestModel) (*catalog.StandardTest, error)
}

type StandardTestMapperImpl struct{}

func NewStandardTestMapper() StandardTestMapper {
	return &StandardTestMapperImpl{}
}

func (mp *StandardTestMapperImpl) ToModel(t *catalog.StandardTest) *models.StandardTestModel {
	return &models.StandardTestModel{
		ID:        t.ID(),
		Name:      t.Name(),
		Method:    t.Method(),
		CreatedAt: timeToMillis(t.CreatedAt()),
	}
}

func (mp *StandardTestMapperImpl) ToDomain(model *models.StandardTestModel) (*catalog.StandardTest, error) {
	t, err := catalog.ReconstructStandardTest(
		model.ID,
		model.Name,
		model.Method,
		millisToTime(model.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct standard test (id=%d): %w", model.ID, err)
	}
	return t, nil
}
