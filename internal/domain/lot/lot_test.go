package lot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "lotledger/internal/domain/lot/value_objects"
	"lotledger/internal/shared/errors"
)

func testSID() (string, error) { return "lot_test00000001", nil }

func newTestLot(t *testing.T, quantity float64) *Lot {
	t.Helper()
	l, err := NewLot(1, "MP-2024-001", "VND-881", "Acme Chemical", "Acme Distribution",
		time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC), quantity, testSID)
	require.NoError(t, err)
	return l
}

func TestNewLot(t *testing.T) {
	t.Run("creates lot in quarantine", func(t *testing.T) {
		l := newTestLot(t, 10)
		assert.Equal(t, vo.StatusQuarantine, l.Status())
		assert.Equal(t, 10.0, l.Quantity())
		assert.Equal(t, "lot_test00000001", l.SID())
		assert.Equal(t, 1, l.Version())
	})

	tests := []struct {
		name         string
		materialID   uint
		internalLot  string
		vendorLot    string
		manufacturer string
		quantity     float64
	}{
		{"missing material", 0, "MP-01", "V-01", "Acme", 1},
		{"missing internal lot", 1, "", "V-01", "Acme", 1},
		{"blank internal lot", 1, "   ", "V-01", "Acme", 1},
		{"missing vendor lot", 1, "MP-01", "", "Acme", 1},
		{"missing manufacturer", 1, "MP-01", "V-01", "", 1},
		{"zero quantity", 1, "MP-01", "V-01", "Acme", 0},
		{"negative quantity", 1, "MP-01", "V-01", "Acme", -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLot(tt.materialID, tt.internalLot, tt.vendorLot, tt.manufacturer, "",
				time.Now(), tt.quantity, testSID)
			assert.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestLot_Sample(t *testing.T) {
	t.Run("decrements stock and moves to sampled", func(t *testing.T) {
		l := newTestLot(t, 10)

		opened, err := l.Sample(9, 1)
		require.NoError(t, err)
		assert.Equal(t, 4, opened)
		assert.Equal(t, 9.0, l.Quantity())
		assert.Equal(t, vo.StatusSampled, l.Status())
	})

	t.Run("rejects non-positive mass", func(t *testing.T) {
		l := newTestLot(t, 10)

		_, err := l.Sample(4, 0)
		assert.True(t, errors.IsInvalidQuantityError(err))
		assert.Equal(t, 10.0, l.Quantity())
		assert.Equal(t, vo.StatusQuarantine, l.Status())
	})

	t.Run("rejects mass exceeding stock without clamping", func(t *testing.T) {
		l := newTestLot(t, 2)

		_, err := l.Sample(4, 2.5)
		assert.True(t, errors.IsInvalidQuantityError(err))
		assert.Equal(t, 2.0, l.Quantity())
		assert.Equal(t, vo.StatusQuarantine, l.Status())
	})

	t.Run("allows draining exactly to zero", func(t *testing.T) {
		l := newTestLot(t, 2)

		_, err := l.Sample(1, 2)
		require.NoError(t, err)
		assert.Equal(t, 0.0, l.Quantity())
	})

	t.Run("rejects sampling a sampled lot", func(t *testing.T) {
		l := newTestLot(t, 10)
		_, err := l.Sample(4, 1)
		require.NoError(t, err)

		_, err = l.Sample(4, 1)
		assert.True(t, errors.IsInvalidTransitionError(err))
		assert.Equal(t, 9.0, l.Quantity())
	})

	t.Run("rejects sampling a released lot", func(t *testing.T) {
		l := newTestLot(t, 10)
		_, err := l.Sample(4, 1)
		require.NoError(t, err)
		require.NoError(t, l.ApplyConclusion(true))

		_, err = l.Sample(4, 1)
		assert.True(t, errors.IsInvalidTransitionError(err))
	})
}

func TestLot_ApplyConclusion(t *testing.T) {
	t.Run("approved releases", func(t *testing.T) {
		l := newTestLot(t, 10)
		_, err := l.Sample(4, 1)
		require.NoError(t, err)

		require.NoError(t, l.ApplyConclusion(true))
		assert.Equal(t, vo.StatusReleased, l.Status())
	})

	t.Run("rejected rejects", func(t *testing.T) {
		l := newTestLot(t, 10)
		_, err := l.Sample(4, 1)
		require.NoError(t, err)

		require.NoError(t, l.ApplyConclusion(false))
		assert.Equal(t, vo.StatusRejected, l.Status())
	})

	t.Run("cannot conclude a quarantined lot", func(t *testing.T) {
		l := newTestLot(t, 10)

		err := l.ApplyConclusion(true)
		assert.True(t, errors.IsInvalidTransitionError(err))
		assert.Equal(t, vo.StatusQuarantine, l.Status())
	})
}

func TestLot_ApplyCorrection(t *testing.T) {
	t.Run("identical values produce no changes", func(t *testing.T) {
		l := newTestLot(t, 10)
		vendor := l.VendorLot()
		qty := l.Quantity()

		changes := l.ApplyCorrection(Correction{VendorLot: &vendor, Quantity: &qty})
		assert.Empty(t, changes)
		assert.Equal(t, 1, l.Version())
	})

	t.Run("nil fields are ignored", func(t *testing.T) {
		l := newTestLot(t, 10)

		changes := l.ApplyCorrection(Correction{})
		assert.Empty(t, changes)
	})

	t.Run("changed fields produce descriptors", func(t *testing.T) {
		l := newTestLot(t, 10)
		newVendor := "VND-992"
		newQty := 8.5

		changes := l.ApplyCorrection(Correction{VendorLot: &newVendor, Quantity: &newQty})
		require.Len(t, changes, 2)
		assert.Equal(t, "vendor lot: VND-881 -> VND-992", changes[0])
		assert.Equal(t, "quantity: 10.000 -> 8.500", changes[1])
		assert.Equal(t, "VND-992", l.VendorLot())
		assert.Equal(t, 8.5, l.Quantity())
		assert.Equal(t, 2, l.Version())
	})

	t.Run("expiry compared by date", func(t *testing.T) {
		l := newTestLot(t, 10)
		sameExpiry := l.ExpiryDate()

		changes := l.ApplyCorrection(Correction{ExpiryDate: &sameExpiry})
		assert.Empty(t, changes)

		newExpiry := time.Date(2028, 1, 15, 0, 0, 0, 0, time.UTC)
		changes = l.ApplyCorrection(Correction{ExpiryDate: &newExpiry})
		require.Len(t, changes, 1)
		assert.Equal(t, "expiry date: 2027-06-30 -> 2028-01-15", changes[0])
	})
}

func TestLot_CorrectStatus(t *testing.T) {
	t.Run("overwrites outside transition table", func(t *testing.T) {
		l := newTestLot(t, 10)
		_, err := l.Sample(4, 1)
		require.NoError(t, err)
		require.NoError(t, l.ApplyConclusion(true))

		change, err := l.CorrectStatus(vo.StatusRejected)
		require.NoError(t, err)
		assert.Equal(t, "status: RELEASED -> REJECTED", change)
		assert.Equal(t, vo.StatusRejected, l.Status())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		l := newTestLot(t, 10)

		change, err := l.CorrectStatus(vo.StatusQuarantine)
		require.NoError(t, err)
		assert.Empty(t, change)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		l := newTestLot(t, 10)

		_, err := l.CorrectStatus(vo.Status("DESTROYED"))
		assert.Error(t, err)
	})
}
