package usecases

import (
	"context"
	"fmt"

	"lotledger/internal/application/user/dto"
	"lotledger/internal/domain/audit"
	"lotledger/internal/domain/user"
	"lotledger/internal/shared/constants"
	"lotledger/internal/shared/errors"
	"lotledger/internal/shared/logger"
)

const minPasswordLen = 8

type CreateUserCommand struct {
	Username  string
	FullName  string
	Password  string
	Role      string
	Actor     string
	ActorRole string
}

type CreateUserUseCase struct {
	userRepo  user.Repository
	hasher    PasswordHasher
	auditRepo audit.Repository
	policy    PolicyChecker
	txManager TransactionManager
	logger    logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	auditRepo audit.Repository,
	policy PolicyChecker,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:  userRepo,
		hasher:    hasher,
		auditRepo: auditRepo,
		policy:    policy,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserResponse, error) {
	if err := requireUsersAccess(uc.policy, cmd.ActorRole, constants.ActionWrite); err != nil {
		uc.logger.Warnw("user creation refused by policy", "actor", cmd.Actor, "role", cmd.ActorRole)
		return nil, err
	}

	if len(cmd.Password) < minPasswordLen {
		return nil, errors.NewValidationError(
			fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}

	role, err := user.ParseRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.userRepo.FindByUsername(ctx, cmd.Username)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError(fmt.Sprintf("username %s already exists", cmd.Username))
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	account, err := user.NewUser(cmd.Username, cmd.FullName, hash, role)
	if err != nil {
		return nil, err
	}

	entry, err := audit.NewEntry(cmd.Actor, audit.ActionCreateUser,
		fmt.Sprintf("created user %s with role %s", account.Username(), account.Role()))
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Save(txCtx, account); err != nil {
			return err
		}
		return uc.auditRepo.Append(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to save user", "username", cmd.Username, "error", err)
		return nil, err
	}

	uc.logger.Infow("user created", "user_id", account.ID(), "username", account.Username())
	return dto.UserToResponse(account), nil
}
