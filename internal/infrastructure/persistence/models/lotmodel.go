package models

import "lotledger/internal/shared/constants"

type LotModel struct {
	ID           uint    `gorm:"primaryKey"`
	SID          string  `gorm:"uniqueIndex;size:32;not null"`
	MaterialID   uint    `gorm:"index;not null"`
	InternalLot  string  `gorm:"uniqueIndex;size:50;not null"`
	VendorLot    string  `gorm:"size:50;not null"`
	Manufacturer string  `gorm:"size:200"`
	Supplier     string  `gorm:"size:200"`
	ExpiryDate   int64   `gorm:"not null"`
	Quantity     float64 `gorm:"not null"`
	Status       string  `gorm:"size:20;index;not null"`
	Version      int     `gorm:"not null;default:1"`
	CreatedAt    int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (LotModel) TableName() string {
	return constants.TableLots
}
