package usecases

import (
	"context"

	"lotledger/internal/application/inventory/dto"
	"lotledger/internal/domain/lot"
	vo "lotledger/internal/domain/lot/value_objects"
	"lotledger/internal/shared/errors"
	"lotledger/internal/shared/logger"
)

type ListLotsQuery struct {
	MaterialID uint
	Status     string
	InStock    bool
	Page       int
	PageSize   int
}

type ListLotsResult struct {
	Lots  []*dto.LotResponse
	Total int64
}

type ListLotsUseCase struct {
	lotRepo lot.Repository
	logger  logger.Interface
}

func NewListLotsUseCase(lotRepo lot.Repository, logger logger.Interface) *ListLotsUseCase {
	return &ListLotsUseCase{lotRepo: lotRepo, logger: logger}
}

func (uc *ListLotsUseCase) Execute(ctx context.Context, query ListLotsQuery) (*ListLotsResult, error) {
	filter := lot.Filter{
		InStock:  query.InStock,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.MaterialID != 0 {
		filter.MaterialID = &query.MaterialID
	}
	if query.Status != "" {
		status, err := vo.ParseStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	lots, total, err := uc.lotRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list lots", "error", err)
		return nil, err
	}

	return &ListLotsResult{
		Lots:  dto.LotsToResponse(lots),
		Total: total,
	}, nil
}
