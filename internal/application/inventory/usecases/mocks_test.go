package usecases

import (
	"context"

	"lotledger/internal/domain/audit"
	"lotledger/internal/domain/catalog"
	"lotledger/internal/domain/lot"
	vo "lotledger/internal/domain/lot/value_objects"
	"lotledger/internal/shared/logger"
)

type mockLotRepository struct {
	SaveFunc            func(ctx context.Context, l *lot.Lot) error
	UpdateFunc          func(ctx context.Context, l *lot.Lot) error
	FindByIDFunc        func(ctx context.Context, id uint) (*lot.Lot, error)
	FindBySIDFunc       func(ctx context.Context, sid string) (*lot.Lot, error)
	ListFunc            func(ctx context.Context, filter lot.Filter) ([]*lot.Lot, int64, error)
	ApplySamplingFunc   func(ctx context.Context, lotID uint, massRemoved float64) error
	ApplyConclusionFunc func(ctx context.Context, lotID uint, from, to vo.Status) error
}

func (m *mockLotRepository) Save(ctx context.Context, l *lot.Lot) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, l)
	}
	return nil
}

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
	if m.FindBySIDFunc != nil {
		return m.FindBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockLotRepository) List(ctx context.Context, filter lot.Filter) ([]*lot.Lot, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockLotRepository) ApplySampling(ctx context.Context, lotID uint, massRemoved float64) error {
	if m.ApplySamplingFunc != nil {
		return m.ApplySamplingFunc(ctx, lotID, massRemoved)
	}
	return nil
}

func (m *mockLotRepository) ApplyConclusion(ctx context.Context, lotID uint, from, to vo.Status) error {
	if m.ApplyConclusionFunc != nil {
		return m.ApplyConclusionFunc(ctx, lotID, from, to)
	}
	return nil
}

type mockMaterialRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*catalog.Material, error)
}

func (m *mockMaterialRepository) Save(ctx context.Context, material *catalog.Material) error {
	return nil
}

func (m *mockMaterialRepository) Update(ctx context.Context, material *catalog.Material) error {
	return nil
}

func (m *mockMaterialRepository) FindByID(ctx context.Context, id uint) (*catalog.Material, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockMaterialRepository) FindByCode(ctx context.Context, code string) (*catalog.Material, error) {
	return nil, nil
}

func (m *mockMaterialRepository) List(ctx context.Context, filter catalog.MaterialFilter) ([]*catalog.Material, int64, error) {
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
