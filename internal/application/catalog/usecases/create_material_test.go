package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lotledger/internal/domain/audit"
	"lotledger/internal/domain/catalog"
	"lotledger/internal/shared/errors"
)

func TestCreateMaterialUseCase_Execute(t *testing.T) {
	t.Run("creates material and audits it", func(t *testing.T) {
		var saved *catalog.Material
		materialRepo := &mockMaterialRepository{
			FindByCodeFunc: func(ctx context.Context, code string) (*catalog.Material, error) {
				return nil, errors.NewNotFoundError("material not found")
			},
			SaveFunc: func(ctx context.Context, m *catalog.Material) error {
				if err := m.SetID(7); err != nil {
					return err
				}
				saved = m
				return nil
			},
		}
		auditRepo := &mockAuditRepository{}

		uc := NewCreateMaterialUseCase(materialRepo, auditRepo, &mockTxManager{}, &mockLogger{})
		resp, err := uc.Execute(context.Background(), CreateMaterialCommand{
			Code:     "MP-001",
			Name:     "Lactose Monohydrate",
			Category: catalog.CategoryExcipient,
			Actor:    "admin",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(7), resp.ID)
		assert.Equal(t, "MP-001", resp.Code)
		assert.True(t, resp.Active)
		require.NotNil(t, saved)

		require.Len(t, auditRepo.Appended, 1)
		assert.Equal(t, audit.ActionCreateMaterial, auditRepo.Appended[0].Action())
		assert.Equal(t, "admin", auditRepo.Appended[0].Actor())
		assert.Contains(t, auditRepo.Appended[0].Detail(), "MP-001")
	})

	t.Run("duplicate code rejected", func(t *testing.T) {
		existing, err := catalog.NewMaterial("MP-001", "Lactose", catalog.CategoryExcipient,
			func() (string, error) { return "mat_x", nil })
		require.NoError(t, err)

		materialRepo := &mockMaterialRepository{
			FindByCodeFunc: func(ctx context.Context, code string) (*catalog.Material, error) {
				return existing, nil
			},
		}

		uc := NewCreateMaterialUseCase(materialRepo, &mockAuditRepository{}, &mockTxManager{}, &mockLogger{})
		_, err = uc.Execute(context.Background(), CreateMaterialCommand{
			Code: "MP-001", Name: "Lactose", Actor: "admin",
		})
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("validation error bubbles up", func(t *testing.T) {
		materialRepo := &mockMaterialRepository{
			FindByCodeFunc: func(ctx context.Context, code string) (*catalog.Material, error) {
				return nil, errors.NewNotFoundError("material not found")
			},
		}

		uc := NewCreateMaterialUseCase(materialRepo, &mockAuditRepository{}, &mockTxManager{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateMaterialCommand{
			Code: "", Name: "Lactose", Actor: "admin",
		})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestRenameMaterialUseCase_Execute(t *testing.T) {
	newStored := func(t *testing.T) *catalog.Material {
		m, err := catalog.NewMaterial("MP-001", "Lactose", catalog.CategoryExcipient,
			func() (string, error) { return "mat_x", nil })
		require.NoError(t, err)
		require.NoError(t, m.SetID(7))
		return m
	}

	t.Run("rename audits the diff", func(t *testing.T) {
		materialRepo := &mockMaterialRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*catalog.Material, error) {
				return newStored(t), nil
			},
		}
		auditRepo := &mockAuditRepository{}

		uc := NewRenameMaterialUseCase(materialRepo, auditRepo, &mockTxManager{}, &mockLogger{})
		resp, err := uc.Execute(context.Background(), RenameMaterialCommand{
			MaterialID: 7, Name: "Lactose Monohydrate", Actor: "admin",
		})
		require.NoError(t, err)
		assert.Equal(t, "Lactose Monohydrate", resp.Name)

		require.Len(t, auditRepo.Appended, 1)
		assert.Equal(t, audit.ActionEditMaterial, auditRepo.Appended[0].Action())
		assert.Contains(t, auditRepo.Appended[0].Detail(), "name: Lactose -> Lactose Monohydrate")
	})

	t.Run("same name writes no audit entry", func(t *testing.T) {
		var updated bool
		materialRepo := &mockMaterialRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*catalog.Material, error) {
				return newStored(t), nil
			},
			UpdateFunc: func(ctx context.Context, m *catalog.Material) error {
				updated = true
				return nil
			},
		}
		auditRepo := &mockAuditRepository{}

		uc := NewRenameMaterialUseCase(materialRepo, auditRepo, &mockTxManager{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), RenameMaterialCommand{
			MaterialID: 7, Name: "Lactose", Actor: "admin",
		})
		require.NoError(t, err)
		assert.False(t, updated)
		assert.Empty(t, auditRepo.Appended)
	})
}

func TestToggleMaterialUseCase_Execute(t *testing.T) {
	m, err := catalog.NewMaterial("MP-001", "Lactose", catalog.CategoryExcipient,
		func() (string, error) { return "mat_x", nil })
	require.NoError(t, err)
	require.NoError(t, m.SetID(7))

	materialRepo := &mockMaterialRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*catalog.Material, error) {
			return m, nil
		},
	}
	auditRepo := &mockAuditRepository{}

	uc := NewToggleMaterialUseCase(materialRepo, auditRepo, &mockTxManager{}, &mockLogger{})
	resp, err := uc.Execute(context.Background(), ToggleMaterialCommand{MaterialID: 7, Actor: "admin"})
	require.NoError(t, err)
	assert.False(t, resp.Active)

	require.Len(t, auditRepo.Appended, 1)
	assert.Contains(t, auditRepo.Appended[0].Detail(), "material deactivated")
}
