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

type SetUserLockCommand struct {
	UserID    uint
	Locked    bool
	Actor     string
	ActorRole string
}

// SetUserLockUseCase locks or unlocks an account. Locking takes effect at
// the next login attempt; existing tokens expire on their own.
type SetUserLockUseCase struct {
	userRepo  user.Repository
	auditRepo audit.Repository
	policy    PolicyChecker
	txManager TransactionManager
	logger    logger.Interface
}

func NewSetUserLockUseCase(
	userRepo user.Repository,
	auditRepo audit.Repository,
	policy PolicyChecker,
	txManager TransactionManager,
	logger logger.Interface,
) *SetUserLockUseCase {
	return &SetUserLockUseCase{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		policy:    policy,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *SetUserLockUseCase) Execute(ctx context.Context, cmd SetUserLockCommand) (*dto.UserResponse, error) {
	if err := requireUsersAccess(uc.policy, cmd.ActorRole, constants.ActionWrite); err != nil {
		uc.logger.Warnw("lock change refused by policy", "actor", cmd.Actor, "role", cmd.ActorRole)
		return nil, err
	}

	account, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	var change string
	if cmd.Locked {
		change = account.Lock()
	} else {
		change = account.Unlock()
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
		uc.logger.Errorw("failed to update user lock", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("user lock changed",
		"user_id", account.ID(), "locked", account.IsLocked(), "actor", cmd.Actor)
	return dto.UserToResponse(account), nil
}
