package models

import "lotledger/internal/shared/constants"

type MaterialModel struct {
	ID        uint   `gorm:"primaryKey"`
	SID       string `gorm:"uniqueIndex;size:32;not null"`
	Code      string `gorm:"uniqueIndex;size:50;not null"`
	Name      string `gorm:"size:200;not null"`
	Category  string `gorm:"size:30;index"`
	Active    bool   `gorm:"not null;default:true;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (MaterialModel) TableName() string {
	return constants.TableMaterials
}

type StandardTestModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:100;not null"`
	Method    string `gorm:"size:100"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (StandardTestModel) TableName() string {
	return constants.TableStandardTests
}

type TestProfileEntryModel struct {
	ID            uint   `gorm:"primaryKey"`
	MaterialID    uint   `gorm:"not null;uniqueIndex:idx_profile_material_test"`
	TestID        uint   `gorm:"not null;uniqueIndex:idx_profile_material_test"`
	TestName      string `gorm:"size:100;not null"`
	Specification string `gorm:"size:200;not null"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TestProfileEntryModel) TableName() string {
	return constants.TableTestProfileEntries
}
