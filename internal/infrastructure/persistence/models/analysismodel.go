package models

import (
	"gorm.io/datatypes"

	"lotledger/internal/shared/constants"
)

type AnalysisResultModel struct {
	ID               uint              `gorm:"primaryKey"`
	LotID            uint              `gorm:"index;not null"`
	AnalysisNumber   string            `gorm:"uniqueIndex;size:30;not null"`
	Analyst          string            `gorm:"size:100;not null"`
	Results          datatypes.JSONMap `gorm:"type:json;not null"`
	Conclusion       string            `gorm:"size:20;not null"`
	BibliographicRef string            `gorm:"size:200"`
	ReanalysisDate   *int64
	Observations     string            `gorm:"type:text"`
	AnalyzedAt       int64             `gorm:"not null"`
	CreatedAt        int64             `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt        int64             `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (AnalysisResultModel) TableName() string {
	return constants.TableAnalysisResults
}
