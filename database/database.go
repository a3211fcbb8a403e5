package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/themut001/timecard-web-v3/config"
	"github.com/themut001/timecard-web-v3/models"
)

// Connect opens the connection pool and migrates the schema. The handle is
// returned to the caller and passed down explicitly; nothing holds it as a
// package global.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true, // surface unique violations as gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Department{},
		&models.User{},
		&models.AttendanceRecord{},
		&models.Tag{},
		&models.DailyReport{},
		&models.TagEffort{},
		&models.Request{},
		&models.Setting{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return db, nil
}
