package usecases

import (
	"context"

	"lotledger/internal/application/catalog/dto"
	"lotledger/internal/domain/catalog"
	"lotledger/internal/shared/logger"
)

type ListMaterialsQuery struct {
	ActiveOnly bool
	Category   string
	Page       int
	PageSize   int
}

type ListMaterialsResult struct {
	Materials []*dto.MaterialResponse
	Total     int64
}

type ListMaterialsUseCase struct {
	materialRepo catalog.MaterialRepository
	logger       logger.Interface
}

func NewListMaterialsUseCase(materialRepo catalog.MaterialRepository, logger logger.Interface) *ListMaterialsUseCase {
	return &ListMaterialsUseCase{materialRepo: materialRepo, logger: logger}
}

func (uc *ListMaterialsUseCase) Execute(ctx context.Context, query ListMaterialsQuery) (*ListMaterialsResult, error) {
	filter := catalog.MaterialFilter{
		ActiveOnly: query.ActiveOnly,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}
	if query.Category != "" {
		filter.Category = &query.Category
	}

	materials, total, err := uc.materialRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list materials", "error", err)
		return nil, err
	}

	return &ListMaterialsResult{
		Materials: dto.MaterialsToResponse(materials),
		Total:     total,
	}, nil
}
