package mappers

import (
	"fmt"

	"lotledger/internal/domain/audit"
	"lotledger/internal/infrastructure/persistence/models"
)

// AuditEntryMapper handles the conversion between audit Entry domain entities and persistence models.
type AuditEntryMapper interface {
	ToModel(e *audit.Entry) *models.AuditEntryModel
	ToDomain(model *models.AuditEntryModel) (*audit.Entry, error)
}

type AuditEntryMapperImpl struct{}

func NewAuditEntryMapper() AuditEntryMapper {
	return &AuditEntryMapperImpl{}
}

func (mp *AuditEntryMapperImpl) ToModel(e *audit.Entry) *models.AuditEntryModel {
	return &models.AuditEntryModel{
		ID:        e.ID(),
		Actor:     e.Actor(),
		Action:    e.Action().String(),
		Detail:    e.Detail(),
		CreatedAt: timeToMillis(e.CreatedAt()),
	}
}

func (mp *AuditEntryMapperImpl) ToDomain(model *models.AuditEntryModel) (*audit.Entry, error) {
	action, err := audit.ParseAction(model.Action)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct audit entry (id=%d): %w", model.ID, err)
	}

	e, err := audit.ReconstructEntry(
		model.ID,
		model.Actor,
		action,
		model.Detail,
		millisToTime(model.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct audit entry (id=%d): %w", model.ID, err)
	}
	return e, nil
}
