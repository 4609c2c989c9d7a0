package usecases

import (
	"context"

	"lotledger/internal/domain/analysis"
	"lotledger/internal/domain/audit"
	"lotledger/internal/domain/lot"
	vo "lotledger/internal/domain/lot/value_objects"
	"lotledger/internal/shared/logger"
)

type mockLotRepository struct {
	UpdateFunc   func(ctx context.Context, l *lot.Lot) error
	FindByIDFunc func(ctx context.Context, id uint) (*lot.Lot, error)
}

func (m *mockLotRepository) Save(ctx context.Context, l *lot.Lot) error { return nil }

func (m *mockLotRepository) Update(ctx context.Context, l *lot.Lot) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, l)
	}
	return nil
}

func (m *mockLotRepository) FindByID(ctx context.Context, id uint) (*lot.Lot, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockLotRepository) FindBySID(ctx context.Context, sid string) (*lot.Lot, error) {
	return nil, nil
}

func (m *mockLotRepository) List(ctx context.Context, filter lot.Filter) ([]*lot.Lot, int64, error) {
	return nil, 0, nil
}

func (m *mockLotRepository) ApplySampling(ctx context.Context, lotID uint, massRemoved float64) error {
	return nil
}

func (m *mockLotRepository) ApplyConclusion(ctx context.Context, lotID uint, from, to vo.Status) error {
	return nil
}

type mockAnalysisRepository struct {
	UpdateFunc   func(ctx context.Context, a *analysis.AnalysisResult) error
	FindByIDFunc func(ctx context.Context, id uint) (*analysis.AnalysisResult, error)
}

func (m *mockAnalysisRepository) Save(ctx context.Context, a *analysis.AnalysisResult) error {
	return nil
}

func (m *mockAnalysisRepository) Update(ctx context.Context, a *analysis.AnalysisResult) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAnalysisRepository) FindByID(ctx context.Context, id uint) (*analysis.AnalysisResult, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAnalysisRepository) FindByNumber(ctx context.Context, number string) (*analysis.AnalysisResult, error) {
	return nil, nil
}

func (m *mockAnalysisRepository) FindLatestByLotID(ctx context.Context, lotID uint) (*analysis.AnalysisResult, error) {
	return nil, nil
}

func (m *mockAnalysisRepository) List(ctx context.Context, filter analysis.Filter) ([]*analysis.AnalysisResult, int64, error) {
	return nil, 0, nil
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

type mockPolicyChecker struct {
	EnforceFunc func(role, module, action string) (bool, error)
}

func (m *mockPolicyChecker) Enforce(role, module, action string) (bool, error) {
	if m.EnforceFunc != nil {
		return m.EnforceFunc(role, module, action)
	}
	return true, nil
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
