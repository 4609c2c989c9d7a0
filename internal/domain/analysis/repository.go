package analysis

import "context"

// Filter narrows analysis listings.
type Filter struct {
	LotID    uint
	Analyst  string
	Page     int
	PageSize int
}

// Repository defines persistence for analysis records.
type Repository interface {
	Save(ctx context.Context, result *AnalysisResult) error
	Update(ctx context.Context, result *AnalysisResult) error
	FindByID(ctx context.Context, id uint) (*AnalysisResult, error)
	FindByNumber(ctx context.Context, analysisNumber string) (*AnalysisResult, error)
	FindLatestByLotID(ctx context.Context, lotID uint) (*AnalysisResult, error)
	List(ctx context.Context, filter Filter) ([]*AnalysisResult, int64, error)
}
