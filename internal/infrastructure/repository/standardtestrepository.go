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

// StandardTestRepository implements catalog.StandardTestRepository on gorm.
type StandardTestRepository struct {
	db     *gorm.DB
	mapper mappers.StandardTestMapper
	logger logger.Interface
}

func NewStandardTestRepository(db *gorm.DB, logger logger.Interface) catalog.StandardTestRepository {
	return &StandardTestRepository{
		db:     db,
		mapper: mappers.NewStandardTestMapper(),
		logger: logger,
	}
}

func (r *StandardTestRepository) Save(ctx context.Context, test *catalog.StandardTest) error {
	model := r.mapper.ToModel(test)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError(fmt.Sprintf("standard test %s already exists", test.Name()))
		}
		r.logger.Errorw("failed to create standard test", "name", test.Name(), "error", err)
		return fmt.Errorf("failed to create standard test: %w", err)
	}

	return test.SetID(model.ID)
}

func (r *StandardTestRepository) FindByID(ctx context.Context, id uint) (*catalog.StandardTest, error) {
	var model models.StandardTestModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("standard test %d not found", id))
		}
		return nil, fmt.Errorf("failed to get standard test: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *StandardTestRepository) FindByName(ctx context.Context, name string) (*catalog.StandardTest, error) {
	var model models.StandardTestModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("name = ?", name).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("standard test %s not found", name))
		}
		return nil, fmt.Errorf("failed to get standard test by name: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *StandardTestRepository) List(ctx context.Context) ([]*catalog.StandardTest, error) {
	var testModels []*models.StandardTestModel

	if err := db.GetTxFromContext(ctx, r.db).
		Order("name ASC").
		Find(&testModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list standard tests: %w", err)
	}

	tests := make([]*catalog.StandardTest, 0, len(testModels))
	for _, model := range testModels {
		t, err := r.mapper.ToDomain(model)
		if err != nil {
			r.logger.Warnw("failed to map standard test model, skipping", "id", model.ID, "error", err)
			continue
		}
		tests = append(tests, t)
	}

	return tests, nil
}
