package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lotledger/internal/application/lab/dto"
	"lotledger/internal/domain/analysis"
	"lotledger/internal/domain/audit"
	"lotledger/internal/domain/catalog"
	"lotledger/internal/domain/lot"
	vo "lotledger/internal/domain/lot/value_objects"
	"lotledger/internal/shared/errors"
	"lotledger/internal/shared/id"
	"lotledger/internal/shared/logger"
)

type SubmitAnalysisCommand struct {
	LotID            uint
	AnalysisNumber   string
	Results          map[string]string
	Conclusion       string
	BibliographicRef string
	ReanalysisDate   *time.Time
	Observations     string
	Actor            string
}

// SubmitAnalysisUseCase records a completed lab analysis and concludes the
// lot in the same transaction: APPROVED releases it, REJECTED rejects it.
// The certificate is rendered after commit; a renderer failure leaves the
// record intact and is reported as a warning.
type SubmitAnalysisUseCase struct {
	lotRepo      lot.Repository
	materialRepo catalog.MaterialRepository
	profileRepo  catalog.TestProfileRepository
	analysisRepo analysis.Repository
	auditRepo    audit.Repository
	renderer     CertificateRenderer
	txManager    TransactionManager
	logger       logger.Interface
}

func NewSubmitAnalysisUseCase(
	lotRepo lot.Repository,
	materialRepo catalog.MaterialRepository,
	profileRepo catalog.TestProfileRepository,
	analysisRepo analysis.Repository,
	auditRepo audit.Repository,
	renderer CertificateRenderer,
	txManager TransactionManager,
	logger logger.Interface,
) *SubmitAnalysisUseCase {
	return &SubmitAnalysisUseCase{
		lotRepo:      lotRepo,
		materialRepo: materialRepo,
		profileRepo:  profileRepo,
		analysisRepo: analysisRepo,
		auditRepo:    auditRepo,
		renderer:     renderer,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *SubmitAnalysisUseCase) Execute(ctx context.Context, cmd SubmitAnalysisCommand) (*dto.SubmitAnalysisResponse, error) {
	uc.logger.Infow("submitting analysis", "lot_id", cmd.LotID, "actor", cmd.Actor)

	current, err := uc.lotRepo.FindByID(ctx, cmd.LotID)
	if err != nil {
		return nil, err
	}
	if !current.Status().IsSampled() {
		return nil, errors.NewInvalidTransitionError(
			fmt.Sprintf("lot %s cannot be analyzed in status %s", current.InternalLot(), current.Status()))
	}

	material, err := uc.materialRepo.FindByID(ctx, current.MaterialID())
	if err != nil {
		return nil, err
	}

	entries, err := uc.profileRepo.ListByMaterial(ctx, material.ID())
	if err != nil {
		return nil, err
	}
	requiredFields := make([]string, len(entries))
	for i, e := range entries {
		requiredFields[i] = e.TestName()
	}

	// Labs with their own numbering scheme supply the analysis number;
	// everyone else gets a generated one.
	numberGen := id.NewAnalysisNumber
	if number := strings.TrimSpace(cmd.AnalysisNumber); number != "" {
		numberGen = func() (string, error) { return number, nil }
	}

	record, err := analysis.NewAnalysisResult(
		cmd.LotID,
		cmd.Actor,
		requiredFields,
		cmd.Results,
		cmd.Conclusion,
		cmd.BibliographicRef,
		cmd.ReanalysisDate,
		cmd.Observations,
		numberGen,
	)
	if err != nil {
		return nil, err
	}

	if err := current.ApplyConclusion(record.Conclusion().IsApproved()); err != nil {
		return nil, err
	}

	entry, err := audit.NewEntry(cmd.Actor, audit.ActionLabRelease,
		fmt.Sprintf("analysis %s for lot %s: %s; lot %s -> %s",
			record.AnalysisNumber(), current.InternalLot(), record.Conclusion(),
			vo.StatusSampled, current.Status()))
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.analysisRepo.Save(txCtx, record); err != nil {
			return err
		}
		if err := uc.lotRepo.ApplyConclusion(txCtx, cmd.LotID, vo.StatusSampled, current.Status()); err != nil {
			return err
		}
		return uc.auditRepo.Append(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to store analysis", "lot_id", cmd.LotID, "error", err)
		return nil, err
	}

	uc.logger.Infow("analysis stored",
		"analysis_number", record.AnalysisNumber(), "lot_id", cmd.LotID,
		"conclusion", record.Conclusion().String(), "lot_status", current.Status().String())

	response := &dto.SubmitAnalysisResponse{
		Analysis:  dto.AnalysisToResponse(record),
		LotStatus: current.Status().String(),
	}

	path, err := uc.renderer.Render(ctx, buildCertificateData(material, current, record, entries))
	if err != nil {
		// The record is already committed; losing the document is
		// recoverable via reprint.
		uc.logger.Warnw("certificate rendering failed",
			"analysis_number", record.AnalysisNumber(), "error", err)
		return response, nil
	}
	response.CertificatePath = path

	return response, nil
}

func buildCertificateData(
	material *catalog.Material,
	current *lot.Lot,
	record *analysis.AnalysisResult,
	entries []*catalog.TestProfileEntry,
) *CertificateData {
	results := record.Results()
	lines := make([]CertificateLine, len(entries))
	for i, e := range entries {
		lines[i] = CertificateLine{
			TestName:      e.TestName(),
			Specification: e.Specification(),
			Result:        results[e.TestName()],
		}
	}

	return &CertificateData{
		AnalysisNumber:   record.AnalysisNumber(),
		MaterialCode:     material.Code(),
		MaterialName:     material.Name(),
		InternalLot:      current.InternalLot(),
		VendorLot:        current.VendorLot(),
		Manufacturer:     current.Manufacturer(),
		Supplier:         current.Supplier(),
		ExpiryDate:       current.ExpiryDate(),
		Analyst:          record.Analyst(),
		Conclusion:       record.Conclusion().String(),
		AnalyzedAt:       record.AnalyzedAt(),
		BibliographicRef: record.BibliographicRef(),
		ReanalysisDate:   record.ReanalysisDate(),
		Observations:     record.Observations(),
		Lines:            lines,
	}
}
