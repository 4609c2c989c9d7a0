package usecases

import (
	"context"
	"fmt"
	"time"

	"lotledger/internal/application/inventory/dto"
	"lotledger/internal/domain/audit"
	"lotledger/internal/domain/catalog"
	"lotledger/internal/domain/lot"
	"lotledger/internal/shared/errors"
	"lotledger/internal/shared/id"
	"lotledger/internal/shared/logger"
)

type ReceiveLotCommand struct {
	MaterialID   uint
	InternalLot  string
	VendorLot    string
	Manufacturer string
	Supplier     string
	ExpiryDate   time.Time
	Quantity     float64
	Actor        string
}

// ReceiveLotUseCase books a delivered lot into stock. New lots always enter
// in quarantine; nothing can ship until the laboratory releases them.
type ReceiveLotUseCase struct {
	lotRepo      lot.Repository
	materialRepo catalog.MaterialRepository
	auditRepo    audit.Repository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewReceiveLotUseCase(
	lotRepo lot.Repository,
	materialRepo catalog.MaterialRepository,
	auditRepo audit.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *ReceiveLotUseCase {
	return &ReceiveLotUseCase{
		lotRepo:      lotRepo,
		materialRepo: materialRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *ReceiveLotUseCase) Execute(ctx context.Context, cmd ReceiveLotCommand) (*dto.LotResponse, error) {
	uc.logger.Infow("receiving lot",
		"material_id", cmd.MaterialID, "internal_lot", cmd.InternalLot, "actor", cmd.Actor)

	material, err := uc.materialRepo.FindByID(ctx, cmd.MaterialID)
	if err != nil {
		return nil, err
	}
	if !material.IsActive() {
		return nil, errors.NewValidationError(
			fmt.Sprintf("material %s is deactivated and cannot receive new lots", material.Code()))
	}

	newLot, err := lot.NewLot(
		cmd.MaterialID,
		cmd.InternalLot,
		cmd.VendorLot,
		cmd.Manufacturer,
		cmd.Supplier,
		cmd.ExpiryDate,
		cmd.Quantity,
		id.NewLotSID,
	)
	if err != nil {
		return nil, err
	}

	entry, err := audit.NewEntry(cmd.Actor, audit.ActionReceipt,
		fmt.Sprintf("received lot %s of material %s: %.3f kg from %s",
			newLot.InternalLot(), material.Code(), newLot.Quantity(), newLot.Manufacturer()))
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.lotRepo.Save(txCtx, newLot); err != nil {
			return err
		}
		return uc.auditRepo.Append(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to save lot", "internal_lot", cmd.InternalLot, "error", err)
		return nil, err
	}

	uc.logger.Infow("lot received",
		"lot_id", newLot.ID(), "internal_lot", newLot.InternalLot(), "status", newLot.Status().String())
	return dto.LotToResponse(newLot), nil
}
