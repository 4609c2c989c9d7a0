package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"lotledger/internal/domain/audit"
	"lotledger/internal/infrastructure/persistence/mappers"
	"lotledger/internal/infrastructure/persistence/models"
	"lotledger/internal/shared/db"
	"lotledger/internal/shared/logger"
	"lotledger/internal/shared/utils"
)

// AuditRepository implements audit.Repository on gorm. There is no update or
// delete method on purpose; the trail only grows.
type AuditRepository struct {
	db     *gorm.DB
	mapper mappers.AuditEntryMapper
	logger logger.Interface
}

func NewAuditRepository(db *gorm.DB, logger logger.Interface) audit.Repository {
	return &AuditRepository{
		db:     db,
		mapper: mappers.NewAuditEntryMapper(),
		logger: logger,
	}
}

func (r *AuditRepository) Append(ctx context.Context, entry *audit.Entry) error {
	model := r.mapper.ToModel(entry)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to append audit entry", "action", entry.Action().String(), "error", err)
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	return entry.SetID(model.ID)
}

func (r *AuditRepository) List(ctx context.Context, filter audit.Filter) ([]*audit.Entry, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.AuditEntryModel{})

	if filter.Actor != "" {
		query = query.Where("actor = ?", filter.Actor)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	p := utils.ValidatePagination(filter.Page, filter.PageSize)

	var entryModels []*models.AuditEntryModel
	if err := query.
		Order("created_at DESC").
		Offset(p.Offset()).
		Limit(p.PageSize).
		Find(&entryModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries := make([]*audit.Entry, 0, len(entryModels))
	for _, model := range entryModels {
		e, err := r.mapper.ToDomain(model)
		if err != nil {
			r.logger.Warnw("failed to map audit entry model, skipping", "id", model.ID, "error", err)
			continue
		}
		entries = append(entries, e)
	}

	return entries, total, nil
}
