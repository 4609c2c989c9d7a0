package usecases

import (
	"context"
	"fmt"

	"lotledger/internal/application/inventory/dto"
	"lotledger/internal/domain/audit"
	"lotledger/internal/domain/lot"
	vo "lotledger/internal/domain/lot/value_objects"
	"lotledger/internal/shared/logger"
)

type SampleLotCommand struct {
	LotID          uint
	ContainerCount int
	MassRemoved    float64
	Actor          string
}

// SampleLotUseCase executes the sampling plan on a quarantined lot. The
// domain validates the state and mass, but the durable write is a guarded
// conditional update so a concurrent sampler cannot double-decrement stock.
type SampleLotUseCase struct {
	lotRepo   lot.Repository
	auditRepo audit.Repository
	txManager TransactionManager
	logger    logger.Interface
}

func NewSampleLotUseCase(
	lotRepo lot.Repository,
	auditRepo audit.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *SampleLotUseCase {
	return &SampleLotUseCase{
		lotRepo:   lotRepo,
		auditRepo: auditRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *SampleLotUseCase) Execute(ctx context.Context, cmd SampleLotCommand) (*dto.SamplingResponse, error) {
	uc.logger.Infow("sampling lot",
		"lot_id", cmd.LotID, "containers", cmd.ContainerCount, "mass", cmd.MassRemoved, "actor", cmd.Actor)

	current, err := uc.lotRepo.FindByID(ctx, cmd.LotID)
	if err != nil {
		return nil, err
	}

	containersOpened, err := current.Sample(cmd.ContainerCount, cmd.MassRemoved)
	if err != nil {
		uc.logger.Warnw("sampling refused",
			"lot_id", cmd.LotID, "status", current.Status().String(), "error", err)
		return nil, err
	}

	samplingEntry, err := audit.NewEntry(cmd.Actor, audit.ActionSampling,
		fmt.Sprintf("sampled lot %s: opened %d of %d containers, removed %.3f kg, %.3f kg remaining; %s -> %s",
			current.InternalLot(), containersOpened, cmd.ContainerCount, cmd.MassRemoved,
			current.Quantity(), vo.StatusQuarantine, vo.StatusSampled))
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.lotRepo.ApplySampling(txCtx, cmd.LotID, cmd.MassRemoved); err != nil {
			return err
		}
		return uc.auditRepo.Append(txCtx, samplingEntry)
	})
	if err != nil {
		uc.logger.Errorw("failed to apply sampling", "lot_id", cmd.LotID, "error", err)
		return nil, err
	}

	uc.logger.Infow("lot sampled",
		"lot_id", cmd.LotID, "containers_opened", containersOpened, "remaining", current.Quantity())

	return &dto.SamplingResponse{
		Lot:              dto.LotToResponse(current),
		ContainersOpened: containersOpened,
		MassRemoved:      cmd.MassRemoved,
	}, nil
}
