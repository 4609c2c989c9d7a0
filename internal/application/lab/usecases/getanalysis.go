package usecases

import (
	"context"

	"lotledger/internal/application/lab/dto"
	"lotledger/internal/domain/analysis"
	"lotledger/internal/shared/logger"
)

type GetAnalysisUseCase struct {
	analysisRepo analysis.Repository
	logger       logger.Interface
}

func NewGetAnalysisUseCase(analysisRepo analysis.Repository, logger logger.Interface) *GetAnalysisUseCase {
	return &GetAnalysisUseCase{analysisRepo: analysisRepo, logger: logger}
}

func (uc *GetAnalysisUseCase) Execute(ctx context.Context, analysisID uint) (*dto.AnalysisResponse, error) {
	record, err := uc.analysisRepo.FindByID(ctx, analysisID)
	if err != nil {
		return nil, err
	}
	return dto.AnalysisToResponse(record), nil
}
