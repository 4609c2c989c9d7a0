package usecases

import (
	"context"

	"lotledger/internal/application/lab/dto"
	"lotledger/internal/domain/analysis"
	"lotledger/internal/shared/logger"
)

type ListAnalysesQuery struct {
	LotID    uint
	Analyst  string
	Page     int
	PageSize int
}

type ListAnalysesResult struct {
	Analyses []*dto.AnalysisResponse
	Total    int64
}

type ListAnalysesUseCase struct {
	analysisRepo analysis.Repository
	logger       logger.Interface
}

func NewListAnalysesUseCase(analysisRepo analysis.Repository, logger logger.Interface) *ListAnalysesUseCase {
	return &ListAnalysesUseCase{analysisRepo: analysisRepo, logger: logger}
}

func (uc *ListAnalysesUseCase) Execute(ctx context.Context, query ListAnalysesQuery) (*ListAnalysesResult, error) {
	records, total, err := uc.analysisRepo.List(ctx, analysis.Filter{
		LotID:    query.LotID,
		Analyst:  query.Analyst,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list analyses", "error", err)
		return nil, err
	}

	return &ListAnalysesResult{
		Analyses: dto.AnalysesToResponse(records),
		Total:    total,
	}, nil
}
