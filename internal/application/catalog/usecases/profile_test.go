package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lotledger/internal/domain/audit"
	"lotledger/internal/domain/catalog"
	"lotledger/internal/shared/errors"
)

func storedMaterial(t *testing.T) *catalog.Material {
	m, err := catalog.ReconstructMaterial(7, "mat_x", "MP-001", "Lactose",
		catalog.CategoryExcipient, true, time.Now(), time.Now())
	require.NoError(t, err)
	return m
}

func storedTest(t *testing.T) *catalog.StandardTest {
	st, err := catalog.ReconstructStandardTest(3, "Assay", "USP <905>", time.Now())
	require.NoError(t, err)
	return st
}

func TestAddProfileEntryUseCase_Execute(t *testing.T) {
	t.Run("binds test and audits", func(t *testing.T) {
		materialRepo := &mockMaterialRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*catalog.Material, error) {
				return storedMaterial(t), nil
			},
		}
		testRepo := &mockStandardTestRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*catalog.StandardTest, error) {
				return storedTest(t), nil
			},
		}
		var added *catalog.TestProfileEntry
		profileRepo := &mockTestProfileRepository{
			AddFunc: func(ctx context.Context, e *catalog.TestProfileEntry) error {
				if err := e.SetID(11); err != nil {
					return err
				}
				added = e
				return nil
			},
		}
		auditRepo := &mockAuditRepository{}

		uc := NewAddProfileEntryUseCase(materialRepo, testRepo, profileRepo, auditRepo,
			&mockTxManager{}, &mockLogger{})
		resp, err := uc.Execute(context.Background(), AddProfileEntryCommand{
			MaterialID: 7, TestID: 3, Specification: "98.0 - 102.0 %", Actor: "admin",
		})

		require.NoError(t, err)
		assert.Equal(t, "Assay", resp.TestName)
		require.NotNil(t, added)

		require.Len(t, auditRepo.Appended, 1)
		assert.Equal(t, audit.ActionProfileChange, auditRepo.Appended[0].Action())
		assert.Contains(t, auditRepo.Appended[0].Detail(), "Assay")
		assert.Contains(t, auditRepo.Appended[0].Detail(), "MP-001")
	})

	t.Run("duplicate pair rejected", func(t *testing.T) {
		materialRepo := &mockMaterialRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*catalog.Material, error) {
				return storedMaterial(t), nil
			},
		}
		testRepo := &mockStandardTestRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*catalog.StandardTest, error) {
				return storedTest(t), nil
			},
		}
		profileRepo := &mockTestProfileRepository{
			ExistsPairFunc: func(ctx context.Context, materialID, testID uint) (bool, error) {
				return true, nil
			},
		}

		uc := NewAddProfileEntryUseCase(materialRepo, testRepo, profileRepo,
			&mockAuditRepository{}, &mockTxManager{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), AddProfileEntryCommand{
			MaterialID: 7, TestID: 3, Specification: "98.0 - 102.0 %", Actor: "admin",
		})
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("unknown material rejected", func(t *testing.T) {
		materialRepo := &mockMaterialRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*catalog.Material, error) {
				return nil, errors.NewNotFoundError("material not found")
			},
		}

		uc := NewAddProfileEntryUseCase(materialRepo, &mockStandardTestRepository{},
			&mockTestProfileRepository{}, &mockAuditRepository{}, &mockTxManager{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), AddProfileEntryCommand{
			MaterialID: 99, TestID: 3, Specification: "x", Actor: "admin",
		})
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestRemoveProfileEntryUseCase_Execute(t *testing.T) {
	t.Run("removes binding and audits", func(t *testing.T) {
		materialRepo := &mockMaterialRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*catalog.Material, error) {
				return storedMaterial(t), nil
			},
		}
		testRepo := &mockStandardTestRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*catalog.StandardTest, error) {
				return storedTest(t), nil
			},
		}
		var removed bool
		profileRepo := &mockTestProfileRepository{
			ExistsPairFunc: func(ctx context.Context, materialID, testID uint) (bool, error) {
				return true, nil
			},
			RemoveFunc: func(ctx context.Context, materialID, testID uint) error {
				removed = true
				return nil
			},
		}
		auditRepo := &mockAuditRepository{}

		uc := NewRemoveProfileEntryUseCase(materialRepo, testRepo, profileRepo, auditRepo,
			&mockTxManager{}, &mockLogger{})
		err := uc.Execute(context.Background(), RemoveProfileEntryCommand{
			MaterialID: 7, TestID: 3, Actor: "admin",
		})

		require.NoError(t, err)
		assert.True(t, removed)
		require.Len(t, auditRepo.Appended, 1)
		assert.Contains(t, auditRepo.Appended[0].Detail(), "removed Assay")
	})

	t.Run("missing binding is not found", func(t *testing.T) {
		materialRepo := &mockMaterialRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*catalog.Material, error) {
				return storedMaterial(t), nil
			},
		}
		testRepo := &mockStandardTestRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*catalog.StandardTest, error) {
				return storedTest(t), nil
			},
		}

		uc := NewRemoveProfileEntryUseCase(materialRepo, testRepo, &mockTestProfileRepository{},
			&mockAuditRepository{}, &mockTxManager{}, &mockLogger{})
		err := uc.Execute(context.Background(), RemoveProfileEntryCommand{
			MaterialID: 7, TestID: 3, Actor: "admin",
		})
		assert.True(t, errors.IsNotFoundError(err))
	})
}
