package usecases

import (
	"context"

	"lotledger/internal/application/catalog/dto"
	"lotledger/internal/domain/catalog"
	"lotledger/internal/shared/logger"
)

type ListStandardTestsUseCase struct {
	testRepo catalog.StandardTestRepository
	logger   logger.Interface
}

func NewListStandardTestsUseCase(testRepo catalog.StandardTestRepository, logger logger.Interface) *ListStandardTestsUseCase {
	return &ListStandardTestsUseCase{testRepo: testRepo, logger: logger}
}

func (uc *ListStandardTestsUseCase) Execute(ctx context.Context) ([]*dto.StandardTestResponse, error) {
	tests, err := uc.testRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list standard tests", "error", err)
		return nil, err
	}
	return dto.StandardTestsToResponse(tests), nil
}
