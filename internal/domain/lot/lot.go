package lot

import (
	"fmt"
	"strings"
	"time"

	vo "lotledger/internal/domain/lot/value_objects"
	"lotledger/internal/shared/errors"
)

// Lot is the inventory record aggregate: one received batch of a raw
// material, tracked through the quality lifecycle. Quantity only moves down
// through sampling; any other change goes through the correction engine with
// a justification.
type Lot struct {
	id           uint
	sid          string
	materialID   uint
	internalLot  string
	vendorLot    string
	manufacturer string
	supplier     string
	expiryDate   time.Time
	quantity     float64
	status       vo.Status
	createdAt    time.Time
	updatedAt    time.Time
	version      int
}

// NewLot creates a lot at receipt time. The lot starts in quarantine.
func NewLot(
	materialID uint,
	internalLot string,
	vendorLot string,
	manufacturer string,
	supplier string,
	expiryDate time.Time,
	quantity float64,
	sidGenerator func() (string, error),
) (*Lot, error) {
	if materialID == 0 {
		return nil, errors.NewValidationError("material is required")
	}
	if strings.TrimSpace(internalLot) == "" {
		return nil, errors.NewValidationError("internal lot code is required")
	}
	if strings.TrimSpace(vendorLot) == "" {
		return nil, errors.NewValidationError("vendor lot code is required")
	}
	if strings.TrimSpace(manufacturer) == "" {
		return nil, errors.NewValidationError("manufacturer is required")
	}
	if quantity <= 0 {
		return nil, errors.NewValidationError("received quantity must be greater than zero")
	}

	sid, err := sidGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to generate lot identifier: %w", err)
	}

	now := time.Now()
	return &Lot{
		sid:          sid,
		materialID:   materialID,
		internalLot:  strings.TrimSpace(internalLot),
		vendorLot:    strings.TrimSpace(vendorLot),
		manufacturer: strings.TrimSpace(manufacturer),
		supplier:     strings.TrimSpace(supplier),
		expiryDate:   expiryDate,
		quantity:     quantity,
		status:       vo.StatusQuarantine,
		createdAt:    now,
		updatedAt:    now,
		version:      1,
	}, nil
}

// ReconstructLot rebuilds a lot from persistence.
func ReconstructLot(
	id uint,
	sid string,
	materialID uint,
	internalLot string,
	vendorLot string,
	manufacturer string,
	supplier string,
	expiryDate time.Time,
	quantity float64,
	status vo.Status,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Lot, error) {
	if id == 0 {
		return nil, fmt.Errorf("lot ID cannot be zero")
	}
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid lot status: %s", status)
	}

	return &Lot{
		id:           id,
		sid:          sid,
		materialID:   materialID,
		internalLot:  internalLot,
		vendorLot:    vendorLot,
		manufacturer: manufacturer,
		supplier:     supplier,
		expiryDate:   expiryDate,
		quantity:     quantity,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		version:      version,
	}, nil
}

func (l *Lot) ID() uint                { return l.id }
func (l *Lot) SID() string             { return l.sid }
func (l *Lot) MaterialID() uint        { return l.materialID }
func (l *Lot) InternalLot() string     { return l.internalLot }
func (l *Lot) VendorLot() string       { return l.vendorLot }
func (l *Lot) Manufacturer() string    { return l.manufacturer }
func (l *Lot) Supplier() string        { return l.supplier }
func (l *Lot) ExpiryDate() time.Time   { return l.expiryDate }
func (l *Lot) Quantity() float64       { return l.quantity }
func (l *Lot) Status() vo.Status       { return l.status }
func (l *Lot) CreatedAt() time.Time    { return l.createdAt }
func (l *Lot) UpdatedAt() time.Time    { return l.updatedAt }
func (l *Lot) Version() int            { return l.version }

// SetID sets the lot ID (only for persistence layer use)
func (l *Lot) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("lot ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("lot ID cannot be zero")
	}
	l.id = id
	return nil
}

// Sample applies a sampling operation: the lot must still be in quarantine
// and the removed mass must fit within available stock. Returns the number of
// containers the sampling plan requires to be opened.
func (l *Lot) Sample(containerCount int, massRemoved float64) (int, error) {
	if !l.status.IsQuarantine() {
		return 0, errors.NewInvalidTransitionError(
			fmt.Sprintf("lot %s cannot be sampled in status %s", l.internalLot, l.status),
		)
	}
	if massRemoved <= 0 {
		return 0, errors.NewInvalidQuantityError("sampled mass must be greater than zero")
	}
	if massRemoved > l.quantity {
		return 0, errors.NewInvalidQuantityError(
			fmt.Sprintf("sampled mass %.3f exceeds available stock %.3f", massRemoved, l.quantity),
		)
	}

	l.quantity -= massRemoved
	l.status = vo.StatusSampled
	l.updatedAt = time.Now()
	l.version++

	return RequiredContainers(containerCount), nil
}

// ApplyConclusion moves a sampled lot to its terminal status based on the
// laboratory conclusion. approved=true releases the lot, otherwise rejects it.
func (l *Lot) ApplyConclusion(approved bool) error {
	target := vo.StatusRejected
	if approved {
		target = vo.StatusReleased
	}

	if !l.status.CanTransitionTo(target) {
		return errors.NewInvalidTransitionError(
			fmt.Sprintf("lot %s cannot move from %s to %s", l.internalLot, l.status, target),
		)
	}

	l.status = target
	l.updatedAt = time.Now()
	l.version++
	return nil
}

// Correction carries proposed replacement values for the correctable fields
// of a lot. Nil fields are left untouched.
type Correction struct {
	VendorLot    *string
	Manufacturer *string
	Supplier     *string
	Quantity     *float64
	ExpiryDate   *time.Time
}

// ApplyCorrection compares each proposed value against the current one,
// mutates the changed fields, and returns human-readable "field: old -> new"
// descriptors for the audit trail. An empty slice means nothing changed and
// nothing was written.
func (l *Lot) ApplyCorrection(c Correction) []string {
	var changes []string

	if c.VendorLot != nil && *c.VendorLot != l.vendorLot {
		changes = append(changes, fmt.Sprintf("vendor lot: %s -> %s", l.vendorLot, *c.VendorLot))
		l.vendorLot = *c.VendorLot
	}
	if c.Manufacturer != nil && *c.Manufacturer != l.manufacturer {
		changes = append(changes, fmt.Sprintf("manufacturer: %s -> %s", l.manufacturer, *c.Manufacturer))
		l.manufacturer = *c.Manufacturer
	}
	if c.Supplier != nil && *c.Supplier != l.supplier {
		changes = append(changes, fmt.Sprintf("supplier: %s -> %s", l.supplier, *c.Supplier))
		l.supplier = *c.Supplier
	}
	if c.Quantity != nil && *c.Quantity != l.quantity {
		changes = append(changes, fmt.Sprintf("quantity: %.3f -> %.3f", l.quantity, *c.Quantity))
		l.quantity = *c.Quantity
	}
	if c.ExpiryDate != nil && !c.ExpiryDate.Equal(l.expiryDate) {
		changes = append(changes, fmt.Sprintf("expiry date: %s -> %s",
			l.expiryDate.Format("2006-01-02"), c.ExpiryDate.Format("2006-01-02")))
		l.expiryDate = *c.ExpiryDate
	}

	if len(changes) > 0 {
		l.updatedAt = time.Now()
		l.version++
	}

	return changes
}

// CorrectStatus overwrites the lifecycle status outside the normal transition
// table. Only the correction engine calls this, as a cascade of amending an
// analysis conclusion; the caller records the change in the audit trail.
func (l *Lot) CorrectStatus(target vo.Status) (string, error) {
	if !vo.ValidStatuses[target] {
		return "", fmt.Errorf("invalid lot status: %s", target)
	}
	if l.status == target {
		return "", nil
	}

	change := fmt.Sprintf("status: %s -> %s", l.status, target)
	l.status = target
	l.updatedAt = time.Now()
	l.version++
	return change, nil
}
