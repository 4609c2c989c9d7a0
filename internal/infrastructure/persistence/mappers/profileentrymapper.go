package mappers

import (
	"fmt"

	"lotledger/internal/domain/catalog"
	"lotledger/internal/infrastructure/persistence/models"
)

// ProfileEntryMapper handles the conversion between TestProfileEntry domain entities and persistence models.
type ProfileEntryMapper interface {
	ToModel(e *catalog.TestProfileEntry) *models.TestProfileEntryModel
	ToDomain(model *models.TestProfileEntryModel) (*catalog.TestProfileEntry, error)
}

type ProfileEntryMapperImpl struct{}

func NewProfileEntryMapper() ProfileEntryMapper {
	return &ProfileEntryMapperImpl{}
}

func (mp *ProfileEntryMapperImpl) ToModel(e *catalog.TestProfileEntry) *models.TestProfileEntryModel {
	return &models.TestProfileEntryModel{
		ID:            e.ID(),
		MaterialID:    e.MaterialID(),
		TestID:        e.TestID(),
		TestName:      e.TestName(),
		Specification: e.Specification(),
		CreatedAt:     timeToMillis(e.CreatedAt()),
	}
}

func (mp *ProfileEntryMapperImpl) ToDomain(model *models.TestProfileEntryModel) (*catalog.TestProfileEntry, error) {
	e, err := catalog.ReconstructTestProfileEntry(
		model.ID,
		model.MaterialID,
		model.TestID,
		model.TestName,
		model.Specification,
		millisToTime(model.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct profile entry (id=%d): %w", model.ID, err)
	}
	return e, nil
}
