package usecases

import (
	"context"
	"fmt"

	"lotledger/internal/application/user/dto"
	"lotledger/internal/domain/audit"
	"lotledger/internal/domain/user"
	"lotledger/internal/shared/constants"
	"lotledger/internal/shared/logger"
)

type AssignRoleCommand struct {
	UserID    uint
	Role      string
	Actor     string
	ActorRole string
}

type AssignRoleUseCase struct {
	userRepo  user.Repository
	auditRepo audit.Repository
	policy    PolicyChecker
	txManager TransactionManager
	logger    logger.Interface
}

func NewAssignRoleUseCase(
	userRepo user.Repository,
	auditRepo audit.Repository,
	policy PolicyChecker,
	txManager TransactionManager,
	logger logger.Interface,
) *AssignRoleUseCase {
	return &AssignRoleUseCase{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		policy:    policy,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *AssignRoleUseCase) Execute(ctx context.Context, cmd AssignRoleCommand) (*dto.UserResponse, error) {
	if err := requireUsersAccess(uc.policy, cmd.ActorRole, constants.ActionWrite); err != nil {
		uc.logger.Warnw("role change refused by policy", "actor", cmd.Actor, "role", cmd.ActorRole)
		return nil, err
	}

	account, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	change, err := account.AssignRole(user.Role(cmd.Role))
	if err != nil {
		return nil, err
	}
	if change == "" {
		return dto.UserToResponse(account), nil
	}

	entry, err := audit.NewEntry(cmd.Actor, audit.ActionEditUser,
		fmt.Sprintf("user %s: %s", account.Username(), change))
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Update(txCtx, account); err != nil {
			return err
		}
		return uc.auditRepo.Append(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to assign role", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("role assigned",
		"user_id", account.ID(), "role", account.Role().String(), "actor", cmd.Actor)
	return dto.UserToResponse(account), nil
}
