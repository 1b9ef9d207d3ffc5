package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/resenia/reviews-backend/internal/models"
)

func Init(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Needed so the (product_id, user_id) unique index surfaces as
		// gorm.ErrDuplicatedKey instead of a raw pg error.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Auto migrate schemas
	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Review{},
		&models.RefreshToken{},
		&models.PasswordResetToken{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
