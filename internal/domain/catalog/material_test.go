package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lotledger/internal/shared/errors"
)

func testMaterialSID() (string, error) { return "mat_test00000001", nil }

func TestNewMaterial(t *testing.T) {
	t.Run("creates active material", func(t *testing.T) {
		m, err := NewMaterial("MP-001", "Lactose Monohydrate", CategoryExcipient, testMaterialSID)
		require.NoError(t, err)
		assert.True(t, m.IsActive())
		assert.Equal(t, "MP-001", m.Code())
		assert.Equal(t, "Lactose Monohydrate", m.Name())
	})

	t.Run("trims identifying fields", func(t *testing.T) {
		m, err := NewMaterial("  MP-002 ", " Paracetamol ", CategoryAPI, testMaterialSID)
		require.NoError(t, err)
		assert.Equal(t, "MP-002", m.Code())
		assert.Equal(t, "Paracetamol", m.Name())
	})

	t.Run("rejects missing code", func(t *testing.T) {
		_, err := NewMaterial("", "Lactose", CategoryExcipient, testMaterialSID)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rejects missing name", func(t *testing.T) {
		_, err := NewMaterial("MP-001", "  ", CategoryExcipient, testMaterialSID)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestMaterial_Rename(t *testing.T) {
	m, err := NewMaterial("MP-001", "Lactose", CategoryExcipient, testMaterialSID)
	require.NoError(t, err)

	t.Run("same name is a no-op", func(t *testing.T) {
		change, err := m.Rename("Lactose")
		require.NoError(t, err)
		assert.Empty(t, change)
	})

	t.Run("new name produces descriptor", func(t *testing.T) {
		change, err := m.Rename("Lactose Monohydrate")
		require.NoError(t, err)
		assert.Equal(t, "name: Lactose -> Lactose Monohydrate", change)
		assert.Equal(t, "Lactose Monohydrate", m.Name())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := m.Rename("")
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestMaterial_ToggleActive(t *testing.T) {
	m, err := NewMaterial("MP-001", "Lactose", CategoryExcipient, testMaterialSID)
	require.NoError(t, err)

	change := m.ToggleActive()
	assert.Equal(t, "material deactivated", change)
	assert.False(t, m.IsActive())

	change = m.ToggleActive()
	assert.Equal(t, "material reactivated", change)
	assert.True(t, m.IsActive())
}

func TestNewTestProfileEntry(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		e, err := NewTestProfileEntry(1, 2, "Assay", "98.0 - 102.0 %")
		require.NoError(t, err)
		assert.Equal(t, uint(1), e.MaterialID())
		assert.Equal(t, uint(2), e.TestID())
		assert.Equal(t, "98.0 - 102.0 %", e.Specification())
	})

	t.Run("requires specification", func(t *testing.T) {
		_, err := NewTestProfileEntry(1, 2, "Assay", "  ")
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("requires material and test", func(t *testing.T) {
		_, err := NewTestProfileEntry(0, 2, "Assay", "spec")
		assert.True(t, errors.IsValidationError(err))

		_, err = NewTestProfileEntry(1, 0, "Assay", "spec")
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestNewStandardTest(t *testing.T) {
	st, err := NewStandardTest("Loss on Drying", "USP <731>")
	require.NoError(t, err)
	assert.Equal(t, "Loss on Drying", st.Name())
	assert.Equal(t, "USP <731>", st.Method())

	_, err = NewStandardTest("", "USP <731>")
	assert.True(t, errors.IsValidationError(err))
}
