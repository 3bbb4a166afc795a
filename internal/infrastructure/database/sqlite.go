package database

import (
	"fmt"

	"clinic-booking/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewSQLiteConnection opens an embedded database for local development and tests.
func NewSQLiteConnection(dsn string, gormConfig *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// SQLite serialises writers; a single connection avoids "database is locked"
	sqlDB.SetMaxOpenConns(1)

	logrus.Infof("Successfully opened SQLite database %s", dsn)

	return db, nil
}

// AutoMigrate creates the schema from the entity definitions.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.DoctorProfile{},
		&entity.Appointment{},
		&entity.Prescription{},
		&entity.AuditLog{},
	)
}
