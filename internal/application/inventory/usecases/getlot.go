package usecases

import (
	"context"

	"lotledger/internal/application/inventory/dto"
	"lotledger/internal/domain/lot"
	"lotledger/internal/shared/logger"
)

type GetLotUseCase struct {
	lotRepo lot.Repository
	logger  logger.Interface
}

func NewGetLotUseCase(lotRepo lot.Repository, logger logger.Interface) *GetLotUseCase {
	return &GetLotUseCase{lotRepo: lotRepo, logger: logger}
}

func (uc *GetLotUseCase) Execute(ctx context.Context, lotID uint) (*dto.LotResponse, error) {
	found, err := uc.lotRepo.FindByID(ctx, lotID)
	if err != nil {
		return nil, err
	}
	return dto.LotToResponse(found), nil
}

// ExecuteBySID resolves a lot by its public short identifier.
func (uc *GetLotUseCase) ExecuteBySID(ctx context.Context, sid string) (*dto.LotResponse, error) {
	found, err := uc.lotRepo.FindBySID(ctx, sid)
	if err != nil {
		return nil, err
	}
	return dto.LotToResponse(found), nil
}
