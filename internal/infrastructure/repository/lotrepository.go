package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"lotledger/internal/domain/lot"
	vo "lotledger/internal/domain/lot/value_objects"
	"lotledger/internal/infrastructure/persistence/mappers"
	"lotledger/internal/infrastructure/persistence/models"
	"lotledger/internal/shared/db"
	"lotledger/internal/shared/errors"
	"lotledger/internal/shared/logger"
	"lotledger/internal/shared/utils"
)

// LotRepository implements lot.Repository on gorm. The lifecycle writes
// (ApplySampling, ApplyConclusion) are single conditional UPDATEs so that
// concurrent writers cannot both succeed on the same lot.
type LotRepository struct {
	db     *gorm.DB
	mapper mappers.LotMapper
	logger logger.Interface
}

func NewLotRepository(db *gorm.DB, logger logger.Interface) lot.Repository {
	return &LotRepository{
		db:     db,
		mapper: mappers.NewLotMapper(),
		logger: logger,
	}
}

func (r *LotRepository) Save(ctx context.Context, l *lot.Lot) error {
	model := r.mapper.ToModel(l)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError(fmt.Sprintf("internal lot %s already exists", l.InternalLot()))
		}
		r.logger.Errorw("failed to create lot", "internal_lot", l.InternalLot(), "error", err)
		return fmt.Errorf("failed to create lot: %w", err)
	}

	// Write back the auto-generated ID to the domain object
	return l.SetID(model.ID)
}

// Update persists the correctable fields plus status and version. It is the
// correction engine's write path; lifecycle moves use the conditional updates
// below instead.
func (r *LotRepository) Update(ctx context.Context, l *lot.Lot) error {
	model := r.mapper.ToModel(l)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.LotModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"vendor_lot":   model.VendorLot,
			"manufacturer": model.Manufacturer,
			"supplier":     model.Supplier,
			"expiry_date":  model.ExpiryDate,
			"quantity":     model.Quantity,
			"status":       model.Status,
			"version":      model.Version,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update lot", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update lot: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("lot %d not found", model.ID))
	}
	return nil
}

func (r *LotRepository) FindByID(ctx context.Context, id uint) (*lot.Lot, error) {
	var model models.LotModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("lot %d not found", id))
		}
		return nil, fmt.Errorf("failed to get lot: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *LotRepository) FindBySID(ctx context.Context, sid string) (*lot.Lot, error) {
	var model models.LotModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("lot %s not found", sid))
		}
		return nil, fmt.Errorf("failed to get lot by sid: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *LotRepository) List(ctx context.Context, filter lot.Filter) ([]*lot.Lot, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.LotModel{})

	if filter.MaterialID != nil {
		query = query.Where("material_id = ?", *filter.MaterialID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.InStock {
		query = query.Where("quantity > 0")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count lots: %w", err)
	}

	p := utils.ValidatePagination(filter.Page, filter.PageSize)

	var lotModels []*models.LotModel
	if err := query.
		Order("created_at DESC").
		Offset(p.Offset()).
		Limit(p.PageSize).
		Find(&lotModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list lots: %w", err)
	}

	lots := make([]*lot.Lot, 0, len(lotModels))
	for _, model := range lotModels {
		l, err := r.mapper.ToDomain(model)
		if err != nil {
			r.logger.Warnw("failed to map lot model, skipping", "id", model.ID, "error", err)
			continue
		}
		lots = append(lots, l)
	}

	return lots, total, nil
}

// ApplySampling decrements stock and moves the lot out of quarantine in one
// conditional UPDATE. Zero rows affected means the precondition no longer
// held when the write landed.
func (r *LotRepository) ApplySampling(ctx context.Context, lotID uint, massRemoved float64) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.LotModel{}).
		Where("id = ? AND status = ? AND quantity >= ?", lotID, vo.StatusQuarantine.String(), massRemoved).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity - ?", massRemoved),
			"status":     vo.StatusSampled.String(),
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now().UnixMilli(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to apply sampling", "lot_id", lotID, "error", result.Error)
		return fmt.Errorf("failed to apply sampling: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewInvalidTransitionError(
			fmt.Sprintf("lot %d is no longer in quarantine with enough stock", lotID))
	}
	return nil
}

// ApplyConclusion moves a sampled lot to its terminal status, guarded by the
// expected source status.
func (r *LotRepository) ApplyConclusion(ctx context.Context, lotID uint, from, to vo.Status) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.LotModel{}).
		Where("id = ? AND status = ?", lotID, from.String()).
		Updates(map[string]interface{}{
			"status":     to.String(),
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now().UnixMilli(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to apply conclusion", "lot_id", lotID, "to", to.String(), "error", result.Error)
		return fmt.Errorf("failed to apply conclusion: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewInvalidTransitionError(
			fmt.Sprintf("lot %d is no longer in status %s", lotID, from))
	}
	return nil
}
