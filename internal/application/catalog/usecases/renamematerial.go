package usecases

import (
	"context"
	"fmt"

	"lotledger/internal/application/catalog/dto"
	"lotledger/internal/domain/audit"
	"lotledger/internal/domain/catalog"
	"lotledger/internal/shared/logger"
)

type RenameMaterialCommand struct {
	MaterialID uint
	Name       string
	Actor      string
}

type RenameMaterialUseCase struct {
	materialRepo catalog.MaterialRepository
	auditRepo    audit.Repository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewRenameMaterialUseCase(
	materialRepo catalog.MaterialRepository,
	auditRepo audit.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *RenameMaterialUseCase {
	return &RenameMaterialUseCase{
		materialRepo: materialRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *RenameMaterialUseCase) Execute(ctx context.Context, cmd RenameMaterialCommand) (*dto.MaterialResponse, error) {
	material, err := uc.materialRepo.FindByID(ctx, cmd.MaterialID)
	if err != nil {
		return nil, err
	}

	change, err := material.Rename(cmd.Name)
	if err != nil {
		return nil, err
	}
	if change == "" {
		return dto.MaterialToResponse(material), nil
	}

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
		uc.logger.Errorw("failed to rename material", "material_id", cmd.MaterialID, "error", err)
		return nil, err
	}

	uc.logger.Infow("material renamed", "material_id", material.ID(), "change", change)
	return dto.MaterialToResponse(material), nil
}
