package usecases

import (
	"context"

	"lotledger/internal/application/user/dto"
	"lotledger/internal/domain/user"
	"lotledger/internal/shared/errors"
	"lotledger/internal/shared/logger"
)

type AuthenticateCommand struct {
	Username string
	Password string
}

// AuthenticateUseCase validates login credentials and issues a session
// token. The locked check runs before password verification so the refusal
// does not reveal whether the password was right. Failed attempts count
// against a per-username rate limit.
type AuthenticateUseCase struct {
	userRepo       user.Repository
	hasher         PasswordHasher
	tokens         TokenService
	rateLimiter    LoginRateLimiter
	moduleResolver ModuleResolver
	logger         logger.Interface
}

func NewAuthenticateUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenService,
	rateLimiter LoginRateLimiter,
	moduleResolver ModuleResolver,
	logger logger.Interface,
) *AuthenticateUseCase {
	return &AuthenticateUseCase{
		userRepo:       userRepo,
		hasher:         hasher,
		tokens:         tokens,
		rateLimiter:    rateLimiter,
		moduleResolver: moduleResolver,
		logger:         logger,
	}
}

func (uc *AuthenticateUseCase) Execute(ctx context.Context, cmd AuthenticateCommand) (*dto.LoginResponse, error) {
	allowed, err := uc.rateLimiter.Allow(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("rate limiter unavailable", "username", cmd.Username, "error", err)
		return nil, errors.NewInternalError("login temporarily unavailable")
	}
	if !allowed {
		uc.logger.Warnw("login throttled", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("too many failed login attempts, try again later")
	}

	account, err := uc.userRepo.FindByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.recordFailure(ctx, cmd.Username)
			return nil, errors.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}

	if account.IsLocked() {
		uc.logger.Warnw("login refused for locked account", "username", cmd.Username)
		return nil, errors.NewForbiddenError("account is locked")
	}

	if err := uc.hasher.Verify(account.PasswordHash(), cmd.Password); err != nil {
		uc.recordFailure(ctx, cmd.Username)
		uc.logger.Warnw("login failed", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if err := uc.rateLimiter.Reset(ctx, cmd.Username); err != nil {
		uc.logger.Warnw("failed to reset login counter", "username", cmd.Username, "error", err)
	}

	token, expiresAt, err := uc.tokens.Generate(account.ID(), account.Username(), account.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "username", cmd.Username, "error", err)
		return nil, errors.NewInternalError("failed to issue session token")
	}

	uc.logger.Infow("login succeeded", "username", account.Username(), "role", account.Role().String())

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.UserToResponse(account),
		Modules:   uc.moduleResolver.ModulesFor(account.Role().String()),
	}, nil
}

func (uc *AuthenticateUseCase) recordFailure(ctx context.Context, username string) {
	if err := uc.rateLimiter.RecordFailure(ctx, username); err != nil {
		uc.logger.Warnw("failed to record login failure", "username", username, "error", err)
	}
}
