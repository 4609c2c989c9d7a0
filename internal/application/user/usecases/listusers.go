package usecases

import (
	"context"

	"lotledger/internal/application/user/dto"
	"lotledger/internal/domain/user"
	"lotledger/internal/shared/constants"
	"lotledger/internal/shared/logger"
)

type ListUsersQuery struct {
	Page      int
	PageSize  int
	ActorRole string
}

type ListUsersResult struct {
	Users []*dto.UserResponse
	Total int64
}

type ListUsersUseCase struct {
	userRepo user.Repository
	policy   PolicyChecker
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, policy PolicyChecker, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, policy: policy, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	if err := requireUsersAccess(uc.policy, query.ActorRole, constants.ActionRead); err != nil {
		return nil, err
	}

	users, total, err := uc.userRepo.List(ctx, query.Page, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	return &ListUsersResult{
		Users: dto.UsersToResponse(users),
		Total: total,
	}, nil
}
