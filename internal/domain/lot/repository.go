package lot

import (
	"context"

	vo "lotledger/internal/domain/lot/value_objects"
)

// Repository persists lot aggregates. The sampling and status writes are
// conditional updates guarded by the expected current state, so two
// principals racing on the same lot cannot both win.
type Repository interface {
	Save(ctx context.Context, lot *Lot) error
	Update(ctx context.Context, lot *Lot) error
	FindByID(ctx context.Context, id uint) (*Lot, error)
	FindBySID(ctx context.Context, sid string) (*Lot, error)
	List(ctx context.Context, filter Filter) ([]*Lot, int64, error)

	// ApplySampling issues a single conditional update: decrement quantity
	// and move QUARANTINE -> SAMPLED only while the lot is still in
	// quarantine with enough stock. Zero rows affected means another writer
	// got there first (or the precondition no longer holds) and surfaces as
	// a conflict; nothing is written in that case.
	ApplySampling(ctx context.Context, lotID uint, massRemoved float64) error

	// ApplyConclusion issues a single conditional update moving
	// SAMPLED -> RELEASED/REJECTED, guarded by the expected source status.
	ApplyConclusion(ctx context.Context, lotID uint, from, to vo.Status) error
}

// Filter narrows lot listings.
type Filter struct {
	MaterialID *uint
	Status     *vo.Status
	// InStock filters to lots with remaining quantity, the sampling module's
	// working set.
	InStock  bool
	Page     int
	PageSize int
}
