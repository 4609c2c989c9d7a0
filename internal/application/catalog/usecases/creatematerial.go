package usecases

import (
	"context"
	"fmt"

	"lotledger/internal/application/catalog/dto"
	"lotledger/internal/domain/audit"
	"lotledger/internal/domain/catalog"
	"lotledger/internal/shared/errors"
	"lotledger/internal/shared/id"
	"lotledger/internal/shared/logger"
)

type CreateMaterialCommand struct {
	Code     string
	Name     string
	Category string
	Actor    string
}

type CreateMaterialUseCase struct {
	materialRepo catalog.MaterialRepository
	auditRepo    audit.Repository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewCreateMaterialUseCase(
	materialRepo catalog.MaterialRepository,
	auditRepo audit.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateMaterialUseCase {
	return &CreateMaterialUseCase{
		materialRepo: materialRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *CreateMaterialUseCase) Execute(ctx context.Context, cmd CreateMaterialCommand) (*dto.MaterialResponse, error) {
	uc.logger.Infow("creating material", "code", cmd.Code, "actor", cmd.Actor)

	existing, err := uc.materialRepo.FindByCode(ctx, cmd.Code)
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to check material code", "code", cmd.Code, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError(fmt.Sprintf("material code %s already exists", cmd.Code))
	}

	material, err := catalog.NewMaterial(cmd.Code, cmd.Name, cmd.Category, id.NewMaterialSID)
	if err != nil {
		return nil, err
	}

	entry, err := audit.NewEntry(cmd.Actor, audit.ActionCreateMaterial,
		fmt.Sprintf("created material %s (%s)", material.Code(), material.Name()))
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.materialRepo.Save(txCtx, material); err != nil {
			return err
		}
		return uc.auditRepo.Append(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to save material", "code", cmd.Code, "error", err)
		return nil, err
	}

	uc.logger.Infow("material created", "material_id", material.ID(), "code", material.Code())
	return dto.MaterialToResponse(material), nil
}
