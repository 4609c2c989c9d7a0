package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lotledger/internal/application/lab/dto"
	"lotledger/internal/domain/analysis"
	"lotledger/internal/domain/audit"
	"lotledger/internal/domain/lot"
	vo "lotledger/internal/domain/lot/value_objects"
	"lotledger/internal/shared/constants"
	"lotledger/internal/shared/errors"
	"lotledger/internal/shared/logger"
)

type CorrectAnalysisCommand struct {
	AnalysisID       uint
	Justification    string
	Results          map[string]string
	Conclusion       *string
	BibliographicRef *string
	Observations     *string
	ReanalysisDate   *time.Time
	Actor            string
	ActorRole        string
}

// CorrectAnalysisUseCase amends a finished analysis under justification.
// When the conclusion flips, the lot status is cascaded in the same
// transaction so the record and the stock view never disagree.
type CorrectAnalysisUseCase struct {
	analysisRepo analysis.Repository
	lotRepo      lot.Repository
	auditRepo    audit.Repository
	policy       PolicyChecker
	txManager    TransactionManager
	logger       logger.Interface
}

func NewCorrectAnalysisUseCase(
	analysisRepo analysis.Repository,
	lotRepo lot.Repository,
	auditRepo audit.Repository,
	policy PolicyChecker,
	txManager TransactionManager,
	logger logger.Interface,
) *CorrectAnalysisUseCase {
	return &CorrectAnalysisUseCase{
		analysisRepo: analysisRepo,
		lotRepo:      lotRepo,
		auditRepo:    auditRepo,
		policy:       policy,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *CorrectAnalysisUseCase) Execute(ctx context.Context, cmd CorrectAnalysisCommand) (*dto.AnalysisResponse, error) {
	if err := requireModuleWrite(uc.policy, cmd.ActorRole, constants.ModuleCorrection); err != nil {
		uc.logger.Warnw("correction refused by policy", "actor", cmd.Actor, "role", cmd.ActorRole)
		return nil, err
	}

	justification := strings.TrimSpace(cmd.Justification)
	if len(justification) < constants.MinJustificationLen {
		return nil, errors.NewValidationError(
			fmt.Sprintf("justification must be at least %d characters", constants.MinJustificationLen))
	}

	record, err := uc.analysisRepo.FindByID(ctx, cmd.AnalysisID)
	if err != nil {
		return nil, err
	}

	changes, conclusionChanged, err := record.ApplyCorrection(analysis.Correction{
		Results:          cmd.Results,
		Conclusion:       cmd.Conclusion,
		BibliographicRef: cmd.BibliographicRef,
		Observations:     cmd.Observations,
		ReanalysisDate:   cmd.ReanalysisDate,
	})
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		uc.logger.Infow("correction changes nothing",
			"analysis_id", cmd.AnalysisID, "actor", cmd.Actor)
		return dto.AnalysisToResponse(record), nil
	}

	var correctedLot *lot.Lot
	if conclusionChanged {
		correctedLot, err = uc.lotRepo.FindByID(ctx, record.LotID())
		if err != nil {
			return nil, err
		}

		target := vo.StatusRejected
		if record.Conclusion().IsApproved() {
			target = vo.StatusReleased
		}
		statusChange, err := correctedLot.CorrectStatus(target)
		if err != nil {
			return nil, err
		}
		// The cascade rides in the same audit entry as the conclusion
		// change that caused it.
		if statusChange != "" {
			changes = append(changes, fmt.Sprintf("lot %s %s",
				correctedLot.InternalLot(), statusChange))
		}
	}

	entry, err := audit.NewEntry(cmd.Actor, audit.ActionCorrection,
		fmt.Sprintf("correction on analysis %s: %s (justification: %s)",
			record.AnalysisNumber(), strings.Join(changes, "; "), justification))
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.analysisRepo.Update(txCtx, record); err != nil {
			return err
		}
		if correctedLot != nil {
			if err := uc.lotRepo.Update(txCtx, correctedLot); err != nil {
				return err
			}
		}
		return uc.auditRepo.Append(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to correct analysis", "analysis_id", cmd.AnalysisID, "error", err)
		return nil, err
	}

	uc.logger.Infow("analysis corrected",
		"analysis_id", cmd.AnalysisID, "changes", len(changes),
		"conclusion_changed", conclusionChanged, "actor", cmd.Actor)
	return dto.AnalysisToResponse(record), nil
}
