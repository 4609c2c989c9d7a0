package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"lotledger/internal/domain/catalog"
	"lotledger/internal/infrastructure/persistence/mappers"
	"lotledger/internal/infrastructure/persistence/models"
	"lotledger/internal/shared/db"
	"lotledger/internal/shared/errors"
	"lotledger/internal/shared/logger"
)

// TestProfileRepository implements catalog.TestProfileRepository on gorm.
type TestProfileRepository struct {
	db     *gorm.DB
	mapper mappers.ProfileEntryMapper
	logger logger.Interface
}

func NewTestProfileRepository(db *gorm.DB, logger logger.Interface) catalog.TestProfileRepository {
	return &TestProfileRepository{
		db:     db,
		mapper: mappers.NewProfileEntryMapper(),
		logger: logger,
	}
}

func (r *TestProfileRepository) Add(ctx context.Context, entry *catalog.TestProfileEntry) error {
	model := r.mapper.ToModel(entry)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError(fmt.Sprintf("test %s is already in the profile", entry.TestName()))
		}
		r.logger.Errorw("failed to add profile entry",
			"material_id", entry.MaterialID(), "test_id", entry.TestID(), "error", err)
		return fmt.Errorf("failed to add profile entry: %w", err)
	}

	return entry.SetID(model.ID)
}

func (r *TestProfileRepository) Remove(ctx context.Context, materialID, testID uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("material_id = ? AND test_id = ?", materialID, testID).
		Delete(&models.TestProfileEntryModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to remove profile entry",
			"material_id", materialID, "test_id", testID, "error", result.Error)
		return fmt.Errorf("failed to remove profile entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("test %d is not in the profile of material %d", testID, materialID))
	}
	return nil
}

func (r *TestProfileRepository) ListByMaterial(ctx context.Context, materialID uint) ([]*catalog.TestProfileEntry, error) {
	var entryModels []*models.TestProfileEntryModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("material_id = ?", materialID).
		Order("test_name ASC").
		Find(&entryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list profile entries: %w", err)
	}

	entries := make([]*catalog.TestProfileEntry, 0, len(entryModels))
	for _, model := range entryModels {
		e, err := r.mapper.ToDomain(model)
		if err != nil {
			r.logger.Warnw("failed to map profile entry model, skipping", "id", model.ID, "error", err)
			continue
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (r *TestProfileRepository) ExistsPair(ctx context.Context, materialID, testID uint) (bool, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TestProfileEntryModel{}).
		Where("material_id = ? AND test_id = ?", materialID, testID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check profile entry: %w", err)
	}

	return count > 0, nil
}
