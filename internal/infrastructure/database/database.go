package database

import (
	"fmt"
	"time"

	"clinic-booking/config"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the configured database and brings its schema up to date.
func NewConnection(cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	gormConfig := NewGormConfig(log, cfg.IsProduction())

	switch cfg.DB.Driver {
	case config.DBDriverPostgres:
		if cfg.DB.AutoMigrate {
			if err := RunPostgresMigrations(cfg.DB.URL); err != nil {
				return nil, err
			}
		}
		return NewPostgresConnection(cfg.DB, gormConfig)
	case config.DBDriverSQLite:
		db, err := NewSQLiteConnection(cfg.DB.SQLitePath, gormConfig)
		if err != nil {
			return nil, err
		}
		if cfg.DB.AutoMigrate {
			if err := AutoMigrate(db); err != nil {
				return nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
			}
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
}

// NewGormConfig routes gorm's query log through logrus and translates driver
// constraint errors into gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
func NewGormConfig(log *logrus.Logger, production bool) *gorm.Config {
	level := logger.Info
	if production {
		level = logger.Warn
	}

	return &gorm.Config{
		Logger: logger.New(log, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}
