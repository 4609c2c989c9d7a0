package migration

import (
	"lotledger/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model in schema order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.MaterialModel{},
		&models.StandardTestModel{},
		&models.TestProfileEntryModel{},
		&models.LotModel{},
		&models.AnalysisResultModel{},
		&models.AuditEntryModel{},
	}
}
