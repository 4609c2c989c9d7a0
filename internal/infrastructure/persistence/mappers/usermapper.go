package mappers

import (
	"fmt"

	"lotledger/internal/domain/user"
	"lotledger/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (mp *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		FullName:     u.FullName(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Locked:       u.IsLocked(),
		CreatedAt:    timeToMillis(u.CreatedAt()),
		UpdatedAt:    timeToMillis(u.UpdatedAt()),
	}
}

func (mp *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	role, err := user.ParseRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user (id=%d): %w", model.ID, err)
	}

	u, err := user.ReconstructUser(
		model.ID,
		model.Username,
		model.FullName,
		model.PasswordHash,
		role,
		model.Locked,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user (id=%d): %w", model.ID, err)
	}
	return u, nil
}
