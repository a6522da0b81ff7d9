package database

import (
	"gorm.io/gorm"

	"github.com/Kingcxp/auth-service/internal/domain"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
	)
}
