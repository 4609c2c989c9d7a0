package usecases

import (
	"context"

	"lotledger/internal/domain/audit"
	"lotledger/internal/domain/catalog"
	"lotledger/internal/shared/logger"
)

type mockMaterialRepository struct {
	SaveFunc       func(ctx context.Context, m *catalog.Material) error
	UpdateFunc     func(ctx context.Context, m *catalog.Material) error
	FindByIDFunc   func(ctx context.Context, id uint) (*catalog.Material, error)
	FindByCodeFunc func(ctx context.Context, code string) (*catalog.Material, error)
	ListFunc       func(ctx context.Context, filter catalog.MaterialFilter) ([]*catalog.Material, int64, error)
}

func (m *mockMaterialRepository) Save(ctx context.Context, material *catalog.Material) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, material)
	}
	return nil
}

func (m *mockMaterialRepository) Update(ctx context.Context, material *catalog.Material) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, material)
	}
	return nil
}

func (m *mockMaterialRepository) FindByID(ctx context.Context, id uint) (*catalog.Material, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockMaterialRepository) FindByCode(ctx context.Context, code string) (*catalog.Material, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockMaterialRepository) List(ctx context.Context, filter catalog.MaterialFilter) ([]*catalog.Material, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockStandardTestRepository struct {
	SaveFunc       func(ctx context.Context, t *catalog.StandardTest) error
	FindByIDFunc   func(ctx context.Context, id uint) (*catalog.StandardTest, error)
	FindByNameFunc func(ctx context.Context, name string) (*catalog.StandardTest, error)
	ListFunc       func(ctx context.Context) ([]*catalog.StandardTest, error)
}

func (m *mockStandardTestRepository) Save(ctx context.Context, t *catalog.StandardTest) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockStandardTestRepository) FindByID(ctx context.Context, id uint) (*catalog.StandardTest, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStandardTestRepository) FindByName(ctx context.Context, name string) (*catalog.StandardTest, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockStandardTestRepository) List(ctx context.Context) ([]*catalog.StandardTest, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockTestProfileRepository struct {
	AddFunc            func(ctx context.Context, e *catalog.TestProfileEntry) error
	RemoveFunc         func(ctx context.Context, materialID, testID uint) error
	ListByMaterialFunc func(ctx context.Context, materialID uint) ([]*catalog.TestProfileEntry, error)
	ExistsPairFunc     func(ctx context.Context, materialID, testID uint) (bool, error)
}

func (m *mockTestProfileRepository) Add(ctx context.Context, e *catalog.TestProfileEntry) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, e)
	}
	return nil
}

func (m *mockTestProfileRepository) Remove(ctx context.Context, materialID, testID uint) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, materialID, testID)
	}
	return nil
}

func (m *mockTestProfileRepository) ListByMaterial(ctx context.Context, materialID uint) ([]*catalog.TestProfileEntry, error) {
	if m.ListByMaterialFunc != nil {
		return m.ListByMaterialFunc(ctx, materialID)
	}
	return nil, nil
}

func (m *mockTestProfileRepository) ExistsPair(ctx context.Context, materialID, testID uint) (bool, error) {
	if m.ExistsPairFunc != nil {
		return m.ExistsPairFunc(ctx, materialID, testID)
	}
	return false, nil
}

type mockAuditRepository struct {
	AppendFunc func(ctx context.Context, e *audit.Entry) error
	ListFunc   func(ctx context.Context, filter audit.Filter) ([]*audit.Entry, int64, error)

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
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
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
