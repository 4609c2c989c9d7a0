package usecases

import (
	"context"
	"time"

	"lotledger/internal/domain/audit"
	"lotledger/internal/domain/user"
	"lotledger/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc           func(ctx context.Context, u *user.User) error
	UpdateFunc         func(ctx context.Context, u *user.User) error
	FindByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*user.User, error)
	ListFunc           func(ctx context.Context, page, pageSize int) ([]*user.User, int64, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(hashedPassword, password string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	return nil
}

type mockTokenService struct {
	GenerateFunc func(userID uint, username, role string) (string, time.Time, error)
}

func (m *mockTokenService) Generate(userID uint, username, role string) (string, time.Time, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, username, role)
	}
	return "token", time.Now().Add(time.Hour), nil
}

type mockRateLimiter struct {
	AllowFunc func(ctx context.Context, username string) (bool, error)

	Failures []string
	Resets   []string
}

func (m *mockRateLimiter) Allow(ctx context.Context, username string) (bool, error) {
	if m.AllowFunc != nil {
		return m.AllowFunc(ctx, username)
	}
	return true, nil
}

func (m *mockRateLimiter) RecordFailure(ctx context.Context, username string) error {
	m.Failures = append(m.Failures, username)
	return nil
}

func (m *mockRateLimiter) Reset(ctx context.Context, username string) error {
	m.Resets = append(m.Resets, username)
	return nil
}

type mockModuleResolver struct {
	Modules []string
}

func (m *mockModuleResolver) ModulesFor(role string) []string {
	return m.Modules
}

type mockPolicyChecker struct {
	EnforceFunc func(role, module, action string) (bool, error)
}

func (m *mockPolicyChecker) Enforce(role, module, action string) (bool, error) {
	if m.EnforceFunc != nil {
		return m.EnforceFunc(role, module, action)
	}
	return true, nil
}

type mockAuditRepository struct {
	AppendFunc func(ctx context.Context, e *audit.Entry) error

	Appended []*audit.Entry
}

func (m *mockAuditRepository) Append(ctx context.Context, e *audit.Entry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, e)
	}
	m.Appended = append(m.Appended, e)
	return nil
}

func (m *mockAuditRepository) List(ctx context.Context, filter audit.Filter) ([]*audit.Entry, int64, error) {
	return nil, 0, nil
}

type mockTxManager struct{}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
