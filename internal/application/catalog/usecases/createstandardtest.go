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

type CreateStandardTestCommand struct {
	Name   string
	Method string
	Actor  string
}

type CreateStandardTestUseCase struct {
	testRepo  catalog.StandardTestRepository
	auditRepo audit.Repository
	txManager TransactionManager
	logger    logger.Interface
}

func NewCreateStandardTestUseCase(
	testRepo catalog.StandardTestRepository,
	auditRepo audit.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateStandardTestUseCase {
	return &CreateStandardTestUseCase{
		testRepo:  testRepo,
		auditRepo: auditRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *CreateStandardTestUseCase) Execute(ctx context.Context, cmd CreateStandardTestCommand) (*dto.StandardTestResponse, error) {
	existing, err := uc.testRepo.FindByName(ctx, cmd.Name)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError(fmt.Sprintf("standard test %s already exists", cmd.Name))
	}

	test, err := catalog.NewStandardTest(cmd.Name, cmd.Method)
	if err != nil {
		return nil, err
	}

	entry, err := audit.NewEntry(cmd.Actor, audit.ActionProfileChange,
		fmt.Sprintf("defined standard test %s (%s)", test.Name(), test.Method()))
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.testRepo.Save(txCtx, test); err != nil {
			return err
		}
		return uc.auditRepo.Append(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to save standard test", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("standard test created", "test_id", test.ID(), "name", test.Name())
	return dto.StandardTestToResponse(test), nil
}
