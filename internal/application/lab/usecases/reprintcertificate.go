package usecases

import (
	"context"

	"lotledger/internal/domain/analysis"
	"lotledger/internal/domain/catalog"
	"lotledger/internal/domain/lot"
	"lotledger/internal/shared/logger"
)

// ReprintCertificateUseCase regenerates the certificate document for an
// analysis already on record. Nothing is mutated, so no audit entry.
type ReprintCertificateUseCase struct {
	analysisRepo analysis.Repository
	lotRepo      lot.Repository
	materialRepo catalog.MaterialRepository
	profileRepo  catalog.TestProfileRepository
	renderer     CertificateRenderer
	logger       logger.Interface
}

func NewReprintCertificateUseCase(
	analysisRepo analysis.Repository,
	lotRepo lot.Repository,
	materialRepo catalog.MaterialRepository,
	profileRepo catalog.TestProfileRepository,
	renderer CertificateRenderer,
	logger logger.Interface,
) *ReprintCertificateUseCase {
	return &ReprintCertificateUseCase{
		analysisRepo: analysisRepo,
		lotRepo:      lotRepo,
		materialRepo: materialRepo,
		profileRepo:  profileRepo,
		renderer:     renderer,
		logger:       logger,
	}
}

func (uc *ReprintCertificateUseCase) Execute(ctx context.Context, analysisID uint) (string, error) {
	record, err := uc.analysisRepo.FindByID(ctx, analysisID)
	if err != nil {
		return "", err
	}

	current, err := uc.lotRepo.FindByID(ctx, record.LotID())
	if err != nil {
		return "", err
	}

	material, err := uc.materialRepo.FindByID(ctx, current.MaterialID())
	if err != nil {
		return "", err
	}

	// The profile may have changed since submission; certificate lines for
	// tests no longer in the profile fall back to the recorded result keys.
	entries, err := uc.profileRepo.ListByMaterial(ctx, material.ID())
	if err != nil {
		return "", err
	}

	path, err := uc.renderer.Render(ctx, buildCertificateData(material, current, record, entries))
	if err != nil {
		uc.logger.Errorw("certificate reprint failed",
			"analysis_id", analysisID, "error", err)
		return "", err
	}

	uc.logger.Infow("certificate reprinted",
		"analysis_number", record.AnalysisNumber(), "path", path)
	return path, nil
}
