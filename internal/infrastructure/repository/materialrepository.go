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
	"lotledger/internal/shared/utils"
)

// MaterialRepository implements catalog.MaterialRepository on gorm.
type MaterialRepository struct {
	db     *gorm.DB
	mapper mappers.MaterialMapper
	logger logger.Interface
}

func NewMaterialRepository(db *gorm.DB, logger logger.Interface) catalog.MaterialRepository {
	return &MaterialRepository{
		db:     db,
		mapper: mappers.NewMaterialMapper(),
		logger: logger,
	}
}

func (r *MaterialRepository) Save(ctx context.Context, material *catalog.Material) error {
	model := r.mapper.ToModel(material)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError(fmt.Sprintf("material code %s already exists", material.Code()))
		}
		r.logger.Errorw("failed to create material", "code", material.Code(), "error", err)
		return fmt.Errorf("failed to create material: %w", err)
	}

	// Write back the auto-generated ID to the domain object
	return material.SetID(model.ID)
}

func (r *MaterialRepository) Update(ctx context.Context, material *catalog.Material) error {
	model := r.mapper.ToModel(material)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.MaterialModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"category":   model.Category,
			"active":     model.Active,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update material", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update material: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("material %d not found", model.ID))
	}
	return nil
}

func (r *MaterialRepository) FindByID(ctx context.Context, id uint) (*catalog.Material, error) {
	var model models.MaterialModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("material %d not found", id))
		}
		return nil, fmt.Errorf("failed to get material: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *MaterialRepository) FindByCode(ctx context.Context, code string) (*catalog.Material, error) {
	var model models.MaterialModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("code = ?", code).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("material %s not found", code))
		}
		return nil, fmt.Errorf("failed to get material by code: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *MaterialRepository) List(ctx context.Context, filter catalog.MaterialFilter) ([]*catalog.Material, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.MaterialModel{})

	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count materials: %w", err)
	}

	p := utils.ValidatePagination(filter.Page, filter.PageSize)

	var materialModels []*models.MaterialModel
	if err := query.
		Order("code ASC").
		Offset(p.Offset()).
		Limit(p.PageSize).
		Find(&materialModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list materials: %w", err)
	}

	materials := make([]*catalog.Material, 0, len(materialModels))
	for _, model := range materialModels {
		m, err := r.mapper.ToDomain(model)
		if err != nil {
			r.logger.Warnw("failed to map material model, skipping", "id", model.ID, "error", err)
			continue
		}
		materials = append(materials, m)
	}

	return materials, total, nil
}
