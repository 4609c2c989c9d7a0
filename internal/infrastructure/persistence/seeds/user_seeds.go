package seeds

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lotledger/internal/infrastructure/persistence/models"
	"lotledger/internal/shared/constants"
)

// SeedDefaultAdmin creates the bootstrap administrator account when the users
// table is empty. The password must be rotated after first login.
func SeedDefaultAdmin(db *gorm.DB, bcryptCost int) error {
	var count int64
	if err := db.Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme!"), bcryptCost)
	if err != nil {
		return err
	}

	now := time.Now().UnixMilli()
	admin := models.UserModel{
		Username:     "admin",
		FullName:     "System Administrator",
		PasswordHash: string(hash),
		Role:         constants.RoleAdmin,
		Locked:       false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return db.Create(&admin).Error
}
