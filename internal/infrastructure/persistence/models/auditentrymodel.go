package models

import "lotledger/internal/shared/constants"

// AuditEntryModel rows are append-only. There is no update or delete path
// anywhere in the codebase; corrections produce new rows.
type AuditEntryModel struct {
	ID        uint   `gorm:"primaryKey"`
	Actor     string `gorm:"size:100;index;not null"`
	Action    string `gorm:"size:30;index;not null"`
	Detail    string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (AuditEntryModel) TableName() string {
	return constants.TableAuditTrail
}
