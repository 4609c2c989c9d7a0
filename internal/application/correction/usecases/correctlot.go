package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lotledger/internal/application/inventory/dto"
	"lotledger/internal/domain/audit"
	"lotledger/internal/domain/lot"
	vo "lotledger/internal/domain/lot/value_objects"
	"lotledger/internal/shared/constants"
	"lotledger/internal/shared/errors"
	"lotledger/internal/shared/logger"
)

type CorrectLotCommand struct {
	LotID         uint
	Justification string
	VendorLot     *string
	Manufacturer  *string
	Supplier      *string
	Quantity      *float64
	ExpiryDate    *time.Time
	Status        *string
	Actor         string
	ActorRole     string
}

// CorrectLotUseCase amends lot data under a mandatory justification. The
// stored record changes, but every old value survives in the audit trail as
// a field-by-field diff. Status corrections bypass the normal transition
// table; that is the whole point of a supervised correction.
type CorrectLotUseCase struct {
	lotRepo   lot.Repository
	auditRepo audit.Repository
	policy    PolicyChecker
	txManager TransactionManager
	logger    logger.Interface
}

func NewCorrectLotUseCase(
	lotRepo lot.Repository,
	auditRepo audit.Repository,
	policy PolicyChecker,
	txManager TransactionManager,
	logger logger.Interface,
) *CorrectLotUseCase {
	return &CorrectLotUseCase{
		lotRepo:   lotRepo,
		auditRepo: auditRepo,
		policy:    policy,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *CorrectLotUseCase) Execute(ctx context.Context, cmd CorrectLotCommand) (*dto.LotResponse, error) {
	if err := requireModuleWrite(uc.policy, cmd.ActorRole, constants.ModuleCorrection); err != nil {
		uc.logger.Warnw("correction refused by policy", "actor", cmd.Actor, "role", cmd.ActorRole)
		return nil, err
	}

	justification := strings.TrimSpace(cmd.Justification)
	if len(justification) < constants.MinJustificationLen {
		return nil, errors.NewValidationError(
			fmt.Sprintf("justification must be at least %d characters", constants.MinJustificationLen))
	}

	current, err := uc.lotRepo.FindByID(ctx, cmd.LotID)
	if err != nil {
		return nil, err
	}

	if cmd.Quantity != nil && *cmd.Quantity < 0 {
		return nil, errors.NewInvalidQuantityError("corrected quantity cannot be negative")
	}

	changes := current.ApplyCorrection(lot.Correction{
		VendorLot:    cmd.VendorLot,
		Manufacturer: cmd.Manufacturer,
		Supplier:     cmd.Supplier,
		Quantity:     cmd.Quantity,
		ExpiryDate:   cmd.ExpiryDate,
	})

	if cmd.Status != nil {
		target, err := vo.ParseStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		statusChange, err := current.CorrectStatus(target)
		if err != nil {
			return nil, err
		}
		if statusChange != "" {
			changes = append(changes, statusChange)
		}
	}

	if len(changes) == 0 {
		uc.logger.Infow("correction changes nothing", "lot_id", cmd.LotID, "actor", cmd.Actor)
		return dto.LotToResponse(current), nil
	}

	entry, err := audit.NewEntry(cmd.Actor, audit.ActionCorrection,
		fmt.Sprintf("correction on lot %s: %s (justification: %s)",
			current.InternalLot(), strings.Join(changes, "; "), justification))
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.lotRepo.Update(txCtx, current); err != nil {
			return err
		}
		return uc.auditRepo.Append(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to correct lot", "lot_id", cmd.LotID, "error", err)
		return nil, err
	}

	uc.logger.Infow("lot corrected",
		"lot_id", cmd.LotID, "changes", len(changes), "actor", cmd.Actor)
	return dto.LotToResponse(current), nil
}
