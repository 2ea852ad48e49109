package database

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Wizz677/applysmart/internal/models"
)

// Connect opens the database and runs migrations. TranslateError lets the
// workflow detect unique-constraint rejections as gorm.ErrDuplicatedKey
// regardless of driver.
func Connect(dsn string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	log.Info("database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema for all portal entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Account{}, &models.Job{}, &models.Application{})
}
