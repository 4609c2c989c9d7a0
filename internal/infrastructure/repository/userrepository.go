package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"lotledger/internal/domain/user"
	"lotledger/internal/infrastructure/persistence/mappers"
	"lotledger/internal/infrastructure/persistence/models"
	"lotledger/internal/shared/db"
	"lotledger/internal/shared/errors"
	"lotledger/internal/shared/logger"
	"lotledger/internal/shared/utils"
)

// UserRepository implements user.Repository on gorm.
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError(fmt.Sprintf("username %s already exists", u.Username()))
		}
		r.logger.Errorw("failed to create user", "username", u.Username(), "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"full_name":     model.FullName,
			"password_hash": model.PasswordHash,
			"role":          model.Role,
			"locked":        model.Locked,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update user", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("user %d not found", model.ID))
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", id))
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var model models.UserModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("username = ?", strings.ToLower(strings.TrimSpace(username))).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("user %s not found", username))
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) List(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	p := utils.ValidatePagination(page, pageSize)

	var userModels []*models.UserModel
	if err := query.
		Order("username ASC").
		Offset(p.Offset()).
		Limit(p.PageSize).
		Find(&userModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, 0, len(userModels))
	for _, model := range userModels {
		u, err := r.mapper.ToDomain(model)
		if err != nil {
			r.logger.Warnw("failed to map user model, skipping", "id", model.ID, "error", err)
			continue
		}
		users = append(users, u)
	}

	return users, total, nil
}
