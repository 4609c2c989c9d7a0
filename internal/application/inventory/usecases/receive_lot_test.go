package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lotledger/internal/domain/audit"
	"lotledger/internal/domain/catalog"
	"lotledger/internal/domain/lot"
	"lotledger/internal/shared/errors"
)

func activeMaterial(t *testing.T) *catalog.Material {
	m, err := catalog.ReconstructMaterial(1, "mat_x", "MP-001", "Lactose",
		catalog.CategoryExcipient, true, time.Now(), time.Now())
	require.NoError(t, err)
	return m
}

func inactiveMaterial(t *testing.T) *catalog.Material {
	m, err := catalog.ReconstructMaterial(1, "mat_x", "MP-001", "Lactose",
		catalog.CategoryExcipient, false, time.Now(), time.Now())
	require.NoError(t, err)
	return m
}

func receiveCommand() ReceiveLotCommand {
	return ReceiveLotCommand{
		MaterialID:   1,
		InternalLot:  "L-2025-0001",
		VendorLot:    "VND-881",
		Manufacturer: "Acme Chemical",
		Supplier:     "Distribuidora Norte",
		ExpiryDate:   time.Now().AddDate(2, 0, 0),
		Quantity:     25.0,
		Actor:        "operator1",
	}
}

func TestReceiveLotUseCase_Execute(t *testing.T) {
	t.Run("books lot into quarantine and audits", func(t *testing.T) {
		var saved *lot.Lot
		lotRepo := &mockLotRepository{
			SaveFunc: func(ctx context.Context, l *lot.Lot) error {
				if err := l.SetID(42); err != nil {
					return err
				}
				saved = l
				return nil
			},
		}
		materialRepo := &mockMaterialRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*catalog.Material, error) {
				return activeMaterial(t), nil
			},
		}
		auditRepo := &mockAuditRepository{}

		uc := NewReceiveLotUseCase(lotRepo, materialRepo, auditRepo, &mockTxManager{}, &mockLogger{})
		resp, err := uc.Execute(context.Background(), receiveCommand())

		require.NoError(t, err)
		assert.Equal(t, uint(42), resp.ID)
		assert.Equal(t, "QUARANTINE", resp.Status)
		assert.Equal(t, 25.0, resp.Quantity)
		require.NotNil(t, saved)

		require.Len(t, auditRepo.Appended, 1)
		assert.Equal(t, audit.ActionReceipt, auditRepo.Appended[0].Action())
		assert.Contains(t, auditRepo.Appended[0].Detail(), "L-2025-0001")
		assert.Contains(t, auditRepo.Appended[0].Detail(), "25.000 kg")
	})

	t.Run("deactivated material refused", func(t *testing.T) {
		materialRepo := &mockMaterialRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*catalog.Material, error) {
				return inactiveMaterial(t), nil
			},
		}

		uc := NewReceiveLotUseCase(&mockLotRepository{}, materialRepo,
			&mockAuditRepository{}, &mockTxManager{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), receiveCommand())
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("non-positive quantity refused", func(t *testing.T) {
		materialRepo := &mockMaterialRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*catalog.Material, error) {
				return activeMaterial(t), nil
			},
		}

		cmd := receiveCommand()
		cmd.Quantity = 0

		uc := NewReceiveLotUseCase(&mockLotRepository{}, materialRepo,
			&mockAuditRepository{}, &mockTxManager{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), cmd)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unknown material refused", func(t *testing.T) {
		materialRepo := &mockMaterialRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*catalog.Material, error) {
				return nil, errors.NewNotFoundError("material not found")
			},
		}

		uc := NewReceiveLotUseCase(&mockLotRepository{}, materialRepo,
			&mockAuditRepository{}, &mockTxManager{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), receiveCommand())
		assert.True(t, errors.IsNotFoundError(err))
	})
}
