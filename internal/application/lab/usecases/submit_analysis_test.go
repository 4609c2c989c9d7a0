package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lotledger/internal/domain/audit"
	"lotledger/internal/domain/catalog"
	"lotledger/internal/domain/lot"
	vo "lotledger/internal/domain/lot/value_objects"
	"lotledger/internal/shared/errors"
)

func sampledLot() *lot.Lot {
	l, _ := lot.ReconstructLot(42, "lot_x", 1, "L-2025-0001", "VND-881",
		"Acme Chemical", "Distribuidora Norte", time.Now().AddDate(2, 0, 0),
		9.0, vo.StatusSampled, time.Now(), time.Now(), 2)
	return l
}

func labMaterial() *catalog.Material {
	m, _ := catalog.ReconstructMaterial(1, "mat_x", "MP-001", "Lactose",
		catalog.CategoryExcipient, true, time.Now(), time.Now())
	return m
}

func labProfile() []*catalog.TestProfileEntry {
	assay, _ := catalog.ReconstructTestProfileEntry(1, 1, 10, "Assay", "98.0 - 102.0 %", time.Now())
	lod, _ := catalog.ReconstructTestProfileEntry(2, 1, 11, "Loss on Drying", "max 0.5 %", time.Now())
	return []*catalog.TestProfileEntry{assay, lod}
}

func submitCommand(conclusion string) SubmitAnalysisCommand {
	return SubmitAnalysisCommand{
		LotID: 42,
		Results: map[string]string{
			"Assay":          "99.2 %",
			"Loss on Drying": "0.3 %",
		},
		Conclusion:       conclusion,
		BibliographicRef: "USP 43",
		Actor:            "analyst1",
	}
}

func newSubmitUseCase(
	lotRepo *mockLotRepository,
	analysisRepo *mockAnalysisRepository,
	auditRepo *mockAuditRepository,
	renderer *mockRenderer,
) *SubmitAnalysisUseCase {
	materialRepo := &mockMaterialRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*catalog.Material, error) {
			return labMaterial(), nil
		},
	}
	profileRepo := &mockTestProfileRepository{
		ListByMaterialFunc: func(ctx context.Context, materialID uint) ([]*catalog.TestProfileEntry, error) {
			return labProfile(), nil
		},
	}
	return NewSubmitAnalysisUseCase(lotRepo, materialRepo, profileRepo,
		analysisRepo, auditRepo, renderer, &mockTxManager{}, &mockLogger{})
}

func TestSubmitAnalysisUseCase_Execute(t *testing.T) {
	t.Run("approval releases the lot", func(t *testing.T) {
		var concludedFrom, concludedTo vo.Status
		lotRepo := &mockLotRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*lot.Lot, error) {
				return sampledLot(), nil
			},
			ApplyConclusionFunc: func(ctx context.Context, lotID uint, from, to vo.Status) error {
				concludedFrom, concludedTo = from, to
				return nil
			},
		}
		analysisRepo := &mockAnalysisRepository{}
		auditRepo := &mockAuditRepository{}
		renderer := &mockRenderer{}

		uc := newSubmitUseCase(lotRepo, analysisRepo, auditRepo, renderer)
		resp, err := uc.Execute(context.Background(), submitCommand("APPROVED"))

		require.NoError(t, err)
		assert.Equal(t, "RELEASED", resp.LotStatus)
		assert.Equal(t, "APPROVED", resp.Analysis.Conclusion)
		assert.NotEmpty(t, resp.CertificatePath)
		assert.Equal(t, vo.StatusSampled, concludedFrom)
		assert.Equal(t, vo.StatusReleased, concludedTo)

		require.Len(t, auditRepo.Appended, 1)
		assert.Equal(t, audit.ActionLabRelease, auditRepo.Appended[0].Action())
		assert.Contains(t, auditRepo.Appended[0].Detail(), "SAMPLED -> RELEASED")

		require.Len(t, renderer.Rendered, 1)
		assert.Equal(t, "MP-001", renderer.Rendered[0].MaterialCode)
		require.Len(t, renderer.Rendered[0].Lines, 2)
		assert.Equal(t, "99.2 %", renderer.Rendered[0].Lines[0].Result)
	})

	t.Run("rejection rejects the lot", func(t *testing.T) {
		var concludedTo vo.Status
		lotRepo := &mockLotRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*lot.Lot, error) {
				return sampledLot(), nil
			},
			ApplyConclusionFunc: func(ctx context.Context, lotID uint, from, to vo.Status) error {
				concludedTo = to
				return nil
			},
		}

		uc := newSubmitUseCase(lotRepo, &mockAnalysisRepository{}, &mockAuditRepository{}, &mockRenderer{})
		resp, err := uc.Execute(context.Background(), submitCommand("REJECTED"))

		require.NoError(t, err)
		assert.Equal(t, "REJECTED", resp.LotStatus)
		assert.Equal(t, vo.StatusRejected, concludedTo)
	})

	t.Run("renderer failure keeps the record", func(t *testing.T) {
		lotRepo := &mockLotRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*lot.Lot, error) {
				return sampledLot(), nil
			},
		}
		renderer := &mockRenderer{
			RenderFunc: func(ctx context.Context, data *CertificateData) (string, error) {
				return "", fmt.Errorf("disk full")
			},
		}

		uc := newSubmitUseCase(lotRepo, &mockAnalysisRepository{}, &mockAuditRepository{}, renderer)
		resp, err := uc.Execute(context.Background(), submitCommand("APPROVED"))

		require.NoError(t, err)
		assert.Empty(t, resp.CertificatePath)
		assert.Equal(t, "RELEASED", resp.LotStatus)
	})

	t.Run("partial result map is accepted", func(t *testing.T) {
		lotRepo := &mockLotRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*lot.Lot, error) {
				return sampledLot(), nil
			},
		}
		renderer := &mockRenderer{}

		cmd := submitCommand("APPROVED")
		delete(cmd.Results, "Loss on Drying")

		uc := newSubmitUseCase(lotRepo, &mockAnalysisRepository{}, &mockAuditRepository{}, renderer)
		resp, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, "RELEASED", resp.LotStatus)
		_, recorded := resp.Analysis.Results["Loss on Drying"]
		assert.False(t, recorded)

		// The certificate still carries the full profile, with a blank
		// where no result was entered.
		require.Len(t, renderer.Rendered, 1)
		require.Len(t, renderer.Rendered[0].Lines, 2)
		assert.Equal(t, "Loss on Drying", renderer.Rendered[0].Lines[1].TestName)
		assert.Equal(t, "", renderer.Rendered[0].Lines[1].Result)
	})

	t.Run("caller-supplied analysis number is kept", func(t *testing.T) {
		lotRepo := &mockLotRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*lot.Lot, error) {
				return sampledLot(), nil
			},
		}

		cmd := submitCommand("APPROVED")
		cmd.AnalysisNumber = "AN-2026-0042"

		uc := newSubmitUseCase(lotRepo, &mockAnalysisRepository{}, &mockAuditRepository{}, &mockRenderer{})
		resp, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, "AN-2026-0042", resp.Analysis.AnalysisNumber)
	})

	t.Run("quarantined lot cannot be analyzed", func(t *testing.T) {
		lotRepo := &mockLotRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*lot.Lot, error) {
				l, err := lot.ReconstructLot(42, "lot_x", 1, "L-2025-0001", "VND-881",
					"Acme Chemical", "", time.Now().AddDate(2, 0, 0),
					10.0, vo.StatusQuarantine, time.Now(), time.Now(), 1)
				require.NoError(t, err)
				return l, nil
			},
		}

		uc := newSubmitUseCase(lotRepo, &mockAnalysisRepository{}, &mockAuditRepository{}, &mockRenderer{})
		_, err := uc.Execute(context.Background(), submitCommand("APPROVED"))
		assert.True(t, errors.IsInvalidTransitionError(err))
	})

	t.Run("conditional conclusion conflict bubbles up", func(t *testing.T) {
		lotRepo := &mockLotRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*lot.Lot, error) {
				return sampledLot(), nil
			},
			ApplyConclusionFunc: func(ctx context.Context, lotID uint, from, to vo.Status) error {
				return errors.NewInvalidTransitionError("lot was modified by another operation")
			},
		}

		uc := newSubmitUseCase(lotRepo, &mockAnalysisRepository{}, &mockAuditRepository{}, &mockRenderer{})
		_, err := uc.Execute(context.Background(), submitCommand("APPROVED"))
		assert.True(t, errors.IsInvalidTransitionError(err))
	})
}

func TestBeginAnalysisUseCase_Execute(t *testing.T) {
	t.Run("returns the result form for a sampled lot", func(t *testing.T) {
		lotRepo := &mockLotRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*lot.Lot, error) {
				return sampledLot(), nil
			},
		}
		materialRepo := &mockMaterialRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*catalog.Material, error) {
				return labMaterial(), nil
			},
		}
		profileRepo := &mockTestProfileRepository{
			ListByMaterialFunc: func(ctx context.Context, materialID uint) ([]*catalog.TestProfileEntry, error) {
				return labProfile(), nil
			},
		}

		uc := NewBeginAnalysisUseCase(lotRepo, materialRepo, profileRepo, &mockLogger{})
		resp, err := uc.Execute(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, "MP-001", resp.MaterialCode)
		require.Len(t, resp.RequiredFields, 2)
		assert.Equal(t, "Assay", resp.RequiredFields[0].TestName)
		assert.Equal(t, "98.0 - 102.0 %", resp.RequiredFields[0].Specification)
	})

	t.Run("quarantined lot refused", func(t *testing.T) {
		lotRepo := &mockLotRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*lot.Lot, error) {
				l, err := lot.ReconstructLot(42, "lot_x", 1, "L-2025-0001", "VND-881",
					"Acme Chemical", "", time.Now().AddDate(2, 0, 0),
					10.0, vo.StatusQuarantine, time.Now(), time.Now(), 1)
				require.NoError(t, err)
				return l, nil
			},
		}

		uc := NewBeginAnalysisUseCase(lotRepo, &mockMaterialRepository{},
			&mockTestProfileRepository{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), 42)
		assert.True(t, errors.IsInvalidTransitionError(err))
	})

	t.Run("empty profile refused", func(t *testing.T) {
		lotRepo := &mockLotRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*lot.Lot, error) {
				return sampledLot(), nil
			},
		}
		materialRepo := &mockMaterialRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*catalog.Material, error) {
				return labMaterial(), nil
			},
		}

		uc := NewBeginAnalysisUseCase(lotRepo, materialRepo,
			&mockTestProfileRepository{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), 42)
		assert.True(t, errors.IsValidationError(err))
	})
}
