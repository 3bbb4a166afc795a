package database

import (
	"io"
	"path/filepath"
	"testing"

	"clinic-booking/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@db:5432/clinic?sslmode=disable", migrationURL("postgres://u:p@db:5432/clinic?sslmode=disable"))
	assert.Equal(t, "pgx5://db/clinic", migrationURL("postgresql://db/clinic"))
	assert.Equal(t, "pgx5://db/clinic", migrationURL("pgx5://db/clinic"))
}

func TestNewConnectionSQLite(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{DB: config.DBConfig{
		Driver:      config.DBDriverSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "clinic.db"),
		AutoMigrate: true,
	}}

	db, err := NewConnection(cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	for _, table := range []string{"users", "doctor_profiles", "appointments", "prescriptions", "audit_logs"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestNewConnectionRejectsUnknownDriver(t *testing.T) {
	_, err := NewConnection(&config.Config{DB: config.DBConfig{Driver: "mysql"}}, logrus.New())
	assert.Error(t, err)
}
