package usecases

import (
	"context"
	"fmt"

	"lotledger/internal/domain/audit"
	"lotledger/internal/domain/catalog"
	"lotledger/internal/shared/errors"
	"lotledger/internal/shared/logger"
)

type RemoveProfileEntryCommand struct {
	MaterialID uint
	TestID     uint
	Actor      string
}

type RemoveProfileEntryUseCase struct {
	materialRepo catalog.MaterialRepository
	testRepo     catalog.StandardTestRepository
	profileRepo  catalog.TestProfileRepository
	auditRepo    audit.Repository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewRemoveProfileEntryUseCase(
	materialRepo catalog.MaterialRepository,
	testRepo catalog.StandardTestRepository,
	profileRepo catalog.TestProfileRepository,
	auditRepo audit.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *RemoveProfileEntryUseCase {
	return &RemoveProfileEntryUseCase{
		materialRepo: materialRepo,
		testRepo:     testRepo,
		profileRepo:  profileRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *RemoveProfileEntryUseCase) Execute(ctx context.Context, cmd RemoveProfileEntryCommand) error {
	material, err := uc.materialRepo.FindByID(ctx, cmd.MaterialID)
	if err != nil {
		return err
	}

	test, err := uc.testRepo.FindByID(ctx, cmd.TestID)
	if err != nil {
		return err
	}

	exists, err := uc.profileRepo.ExistsPair(ctx, cmd.MaterialID, cmd.TestID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewNotFoundError(
			fmt.Sprintf("test %s is not in the profile of material %s", test.Name(), material.Code()))
	}

	auditEntry, err := audit.NewEntry(cmd.Actor, audit.ActionProfileChange,
		fmt.Sprintf("removed %s from profile of material %s", test.Name(), material.Code()))
	if err != nil {
		return err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.profileRepo.Remove(txCtx, cmd.MaterialID, cmd.TestID); err != nil {
			return err
		}
		return uc.auditRepo.Append(txCtx, auditEntry)
	})
	if err != nil {
		uc.logger.Errorw("failed to remove profile entry",
			"material_id", cmd.MaterialID, "test_id", cmd.TestID, "error", err)
		return err
	}

	uc.logger.Infow("profile entry removed",
		"material_id", cmd.MaterialID, "test", test.Name())
	return nil
}
