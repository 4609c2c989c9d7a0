package usecases

import (
	"context"

	"lotledger/internal/domain/analysis"
	"lotledger/internal/domain/audit"
	"lotledger/internal/domain/catalog"
	"lotledger/internal/domain/lot"
	vo "lotledger/internal/domain/lot/value_objects"
	"lotledger/internal/shared/logger"
)

type mockLotRepository struct {
	FindByIDFunc        func(ctx context.Context, id uint) (*lot.Lot, error)
	ApplyConclusionFunc func(ctx context.Context, lotID uint, from, to vo.Status) error
}

func (m *mockLotRepository) Save(ctx context.Context, l *lot.Lot) error   { return nil }
func (m *mockLotRepository) Update(ctx context.Context, l *lot.Lot) error { return nil }

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

type mockTestProfileRepository struct {
	ListByMaterialFunc func(ctx context.Context, materialID uint) ([]*catalog.TestProfileEntry, error)
}

func (m *mockTestProfileRepository) Add(ctx context.Context, e *catalog.TestProfileEntry) error {
	return nil
}

func (m *mockTestProfileRepository) Remove(ctx context.Context, materialID, testID uint) error {
	return nil
}

func (m *mockTestProfileRepository) ListByMaterial(ctx context.Context, materialID uint) ([]*catalog.TestProfileEntry, error) {
	if m.ListByMaterialFunc != nil {
		return m.ListByMaterialFunc(ctx, materialID)
	}
	return nil, nil
}

func (m *mockTestProfileRepository) ExistsPair(ctx context.Context, materialID, testID uint) (bool, error) {
	return false, nil
}

type mockAnalysisRepository struct {
	SaveFunc              func(ctx context.Context, a *analysis.AnalysisResult) error
	UpdateFunc            func(ctx context.Context, a *analysis.AnalysisResult) error
	FindByIDFunc          func(ctx context.Context, id uint) (*analysis.AnalysisResult, error)
	FindByNumberFunc      func(ctx context.Context, number string) (*analysis.AnalysisResult, error)
	FindLatestByLotIDFunc func(ctx context.Context, lotID uint) (*analysis.AnalysisResult, error)
	ListFunc              func(ctx context.Context, filter analysis.Filter) ([]*analysis.AnalysisResult, int64, error)
}

func (m *mockAnalysisRepository) Save(ctx context.Context, a *analysis.AnalysisResult) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
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
	if m.FindByNumberFunc != nil {
		return m.FindByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockAnalysisRepository) FindLatestByLotID(ctx context.Context, lotID uint) (*analysis.AnalysisResult, error) {
	if m.FindLatestByLotIDFunc != nil {
		return m.FindLatestByLotIDFunc(ctx, lotID)
	}
	return nil, nil
}

func (m *mockAnalysisRepository) List(ctx context.Context, filter analysis.Filter) ([]*analysis.AnalysisResult, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
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

type mockRenderer struct {
	RenderFunc func(ctx context.Context, data *CertificateData) (string, error)

	Rendered []*CertificateData
}

func (m *mockRenderer) Render(ctx context.Context, data *CertificateData) (string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(ctx, data)
	}
	m.Rendered = append(m.Rendered, data)
	return "/tmp/certificates/" + data.AnalysisNumber + ".pdf", nil
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
