package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"lotledger/internal/domain/analysis"
	"lotledger/internal/infrastructure/persistence/mappers"
	"lotledger/internal/infrastructure/persistence/models"
	"lotledger/internal/shared/db"
	"lotledger/internal/shared/errors"
	"lotledger/internal/shared/logger"
	"lotledger/internal/shared/utils"
)

// AnalysisRepository implements analysis.Repository on gorm.
type AnalysisRepository struct {
	db     *gorm.DB
	mapper mappers.AnalysisMapper
	logger logger.Interface
}

func NewAnalysisRepository(db *gorm.DB, logger logger.Interface) analysis.Repository {
	return &AnalysisRepository{
		db:     db,
		mapper: mappers.NewAnalysisMapper(),
		logger: logger,
	}
}

func (r *AnalysisRepository) Save(ctx context.Context, result *analysis.AnalysisResult) error {
	model := r.mapper.ToModel(result)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError(fmt.Sprintf("analysis %s already exists", result.AnalysisNumber()))
		}
		r.logger.Errorw("failed to create analysis", "analysis_number", result.AnalysisNumber(), "error", err)
		return fmt.Errorf("failed to create analysis: %w", err)
	}

	return result.SetID(model.ID)
}

// Update persists the correctable fields of an analysis record. The analysis
// number, lot and analyst never change after creation.
func (r *AnalysisRepository) Update(ctx context.Context, result *analysis.AnalysisResult) error {
	model := r.mapper.ToModel(result)

	res := db.GetTxFromContext(ctx, r.db).
		Model(&models.AnalysisResultModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"results":           model.Results,
			"conclusion":        model.Conclusion,
			"bibliographic_ref": model.BibliographicRef,
			"reanalysis_date":   model.ReanalysisDate,
			"observations":      model.Observations,
			"updated_at":        model.UpdatedAt,
		})
	if res.Error != nil {
		r.logger.Errorw("failed to update analysis", "id", model.ID, "error", res.Error)
		return fmt.Errorf("failed to update analysis: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("analysis %d not found", model.ID))
	}
	return nil
}

func (r *AnalysisRepository) FindByID(ctx context.Context, id uint) (*analysis.AnalysisResult, error) {
	var model models.AnalysisResultModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("analysis %d not found", id))
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AnalysisRepository) FindByNumber(ctx context.Context, analysisNumber string) (*analysis.AnalysisResult, error) {
	var model models.AnalysisResultModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("analysis_number = ?", analysisNumber).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("analysis %s not found", analysisNumber))
		}
		return nil, fmt.Errorf("failed to get analysis by number: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AnalysisRepository) FindLatestByLotID(ctx context.Context, lotID uint) (*analysis.AnalysisResult, error) {
	var model models.AnalysisResultModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("lot_id = ?", lotID).
		Order("analyzed_at DESC").
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("no analysis recorded for lot %d", lotID))
		}
		return nil, fmt.Errorf("failed to get latest analysis: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AnalysisRepository) List(ctx context.Context, filter analysis.Filter) ([]*analysis.AnalysisResult, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.AnalysisResultModel{})

	if filter.LotID != 0 {
		query = query.Where("lot_id = ?", filter.LotID)
	}
	if filter.Analyst != "" {
		query = query.Where("analyst = ?", filter.Analyst)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count analyses: %w", err)
	}

	p := utils.ValidatePagination(filter.Page, filter.PageSize)

	var analysisModels []*models.AnalysisResultModel
	if err := query.
		Order("analyzed_at DESC").
		Offset(p.Offset()).
		Limit(p.PageSize).
		Find(&analysisModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list analyses: %w", err)
	}

	results := make([]*analysis.AnalysisResult, 0, len(analysisModels))
	for _, model := range analysisModels {
		a, err := r.mapper.ToDomain(model)
		if err != nil {
			r.logger.Warnw("failed to map analysis model, skipping", "id", model.ID, "error", err)
			continue
		}
		results = append(results, a)
	}

	return results, total, nil
}
