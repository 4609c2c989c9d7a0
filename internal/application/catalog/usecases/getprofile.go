package usecases

import (
	"context"

	"lotledger/internal/application/catalog/dto"
	"lotledger/internal/domain/catalog"
	"lotledger/internal/shared/logger"
)

type GetProfileUseCase struct {
	materialRepo catalog.MaterialRepository
	profileRepo  catalog.TestProfileRepository
	logger       logger.Interface
}

func NewGetProfileUseCase(
	materialRepo catalog.MaterialRepository,
	profileRepo catalog.TestProfileRepository,
	logger logger.Interface,
) *GetProfileUseCase {
	return &GetProfileUseCase{
		materialRepo: materialRepo,
		profileRepo:  profileRepo,
		logger:       logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, materialID uint) ([]*dto.ProfileEntryResponse, error) {
	if _, err := uc.materialRepo.FindByID(ctx, materialID); err != nil {
		return nil, err
	}

	entries, err := uc.profileRepo.ListByMaterial(ctx, materialID)
	if err != nil {
		uc.logger.Errorw("failed to list profile entries", "material_id", materialID, "error", err)
		return nil, err
	}
	return dto.ProfileEntriesToResponse(entries), nil
}
