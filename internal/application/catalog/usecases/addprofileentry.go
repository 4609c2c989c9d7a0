package usecases

import (
	"context"
	"fmt"

	"lotledger/internal/application/catalog/dto"
	"lotledger/internal/domain/audit"
	"lotledger/internal/domain/catalog"
	"lotledger/internal/shared/errors"
	"lotledger/internal/shared/logger"
)

type AddProfileEntryCommand struct {
	MaterialID    uint
	TestID        uint
	Specification string
	Actor         string
}

// AddProfileEntryUseCase binds a standard test to a material's profile.
// Profile changes never touch analyses already on record; they only shape
// future submissions.
type AddProfileEntryUseCase struct {
	materialRepo catalog.MaterialRepository
	testRepo     catalog.StandardTestRepository
	profileRepo  catalog.TestProfileRepository
	auditRepo    audit.Repository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewAddProfileEntryUseCase(
	materialRepo catalog.MaterialRepository,
	testRepo catalog.StandardTestRepository,
	profileRepo catalog.TestProfileRepository,
	auditRepo audit.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *AddProfileEntryUseCase {
	return &AddProfileEntryUseCase{
		materialRepo: materialRepo,
		testRepo:     testRepo,
		profileRepo:  profileRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *AddProfileEntryUseCase) Execute(ctx context.Context, cmd AddProfileEntryCommand) (*dto.ProfileEntryResponse, error) {
	material, err := uc.materialRepo.FindByID(ctx, cmd.MaterialID)
	if err != nil {
		return nil, err
	}

	test, err := uc.testRepo.FindByID(ctx, cmd.TestID)
	if err != nil {
		return nil, err
	}

	exists, err := uc.profileRepo.ExistsPair(ctx, cmd.MaterialID, cmd.TestID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError(
			fmt.Sprintf("test %s is already in the profile of material %s", test.Name(), material.Code()))
	}

	profileEntry, err := catalog.NewTestProfileEntry(cmd.MaterialID, cmd.TestID, test.Name(), cmd.Specification)
	if err != nil {
		return nil, err
	}

	auditEntry, err := audit.NewEntry(cmd.Actor, audit.ActionProfileChange,
		fmt.Sprintf("added %s (%s) to profile of material %s",
			test.Name(), profileEntry.Specification(), material.Code()))
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.profileRepo.Add(txCtx, profileEntry); err != nil {
			return err
		}
		return uc.auditRepo.Append(txCtx, auditEntry)
	})
	if err != nil {
		uc.logger.Errorw("failed to add profile entry",
			"material_id", cmd.MaterialID, "test_id", cmd.TestID, "error", err)
		return nil, err
	}

	uc.logger.Infow("profile entry added",
		"material_id", cmd.MaterialID, "test", test.Name())
	return dto.ProfileEntryToResponse(profileEntry), nil
}
