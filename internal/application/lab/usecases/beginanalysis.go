package usecases

import (
	"context"
	"fmt"

	"lotledger/internal/application/lab/dto"
	"lotledger/internal/domain/catalog"
	"lotledger/internal/domain/lot"
	"lotledger/internal/shared/errors"
	"lotledger/internal/shared/logger"
)

// BeginAnalysisUseCase hands the laboratory the result form for a sampled
// lot: the material's test profile frozen into the set of fields the analyst
// must fill in.
type BeginAnalysisUseCase struct {
	lotRepo      lot.Repository
	materialRepo catalog.MaterialRepository
	profileRepo  catalog.TestProfileRepository
	logger       logger.Interface
}

func NewBeginAnalysisUseCase(
	lotRepo lot.Repository,
	materialRepo catalog.MaterialRepository,
	profileRepo catalog.TestProfileRepository,
	logger logger.Interface,
) *BeginAnalysisUseCase {
	return &BeginAnalysisUseCase{
		lotRepo:      lotRepo,
		materialRepo: materialRepo,
		profileRepo:  profileRepo,
		logger:       logger,
	}
}

func (uc *BeginAnalysisUseCase) Execute(ctx context.Context, lotID uint) (*dto.BeginAnalysisResponse, error) {
	current, err := uc.lotRepo.FindByID(ctx, lotID)
	if err != nil {
		return nil, err
	}
	if !current.Status().IsSampled() {
		return nil, errors.NewInvalidTransitionError(
			fmt.Sprintf("lot %s cannot be analyzed in status %s", current.InternalLot(), current.Status()))
	}

	material, err := uc.materialRepo.FindByID(ctx, current.MaterialID())
	if err != nil {
		return nil, err
	}

	entries, err := uc.profileRepo.ListByMaterial(ctx, material.ID())
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.NewValidationError(
			fmt.Sprintf("material %s has no test profile; nothing to analyze", material.Code()))
	}

	fields := make([]dto.RequiredFieldResponse, len(entries))
	for i, e := range entries {
		fields[i] = dto.RequiredFieldResponse{
			TestName:      e.TestName(),
			Specification: e.Specification(),
		}
	}

	return &dto.BeginAnalysisResponse{
		LotID:          current.ID(),
		InternalLot:    current.InternalLot(),
		MaterialCode:   material.Code(),
		MaterialName:   material.Name(),
		RequiredFields: fields,
	}, nil
}
