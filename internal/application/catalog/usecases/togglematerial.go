package usecases

import (
	"context"
	"fmt"

	"lotledger/internal/application/catalog/dto"
	"lotledger/internal/domain/audit"
	"lotledger/internal/domain/catalog"
	"lotledger/internal/shared/logger"
)

type ToggleMaterialCommand struct {
	MaterialID uint
	Actor      string
}

// ToggleMaterialUseCase flips a material between active and inactive.
// Inactive materials are hidden from new-lot selection but keep their
// lots and audit history.
type ToggleMaterialUseCase struct {
	materialRepo catalog.MaterialRepository
	auditRepo    audit.Repository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewToggleMaterialUseCase(
	materialRepo catalog.MaterialRepository,
	auditRepo audit.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *ToggleMaterialUseCase {
	return &ToggleMaterialUseCase{
		materialRepo: materialRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *ToggleMaterialUseCase) Execute(ctx context.Context, cmd ToggleMaterialCommand) (*dto.MaterialResponse, error) {
	material, err := uc.materialRepo.FindByID(ctx, cmd.MaterialID)
	if err != nil {
		return nil, err
	}

	change := material.ToggleActive()

	entry, err := audit.NewEntry(cmd.Actor, audit.ActionEditMaterial,
		fmt.Sprintf("material %s: %s", material.Code(), change))
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.materialRepo.Update(txCtx, material); err != nil {
			return err
		}
		return uc.auditRepo.Append(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to toggle material", "material_id", cmd.MaterialID, "error", err)
		return nil, err
	}

	uc.logger.Infow("material toggled", "material_id", material.ID(), "active", material.IsActive())
	return dto.MaterialToResponse(material), nil
}
