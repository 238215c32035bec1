package database

import (
	"io"
	"testing"

	"hospital-api/config"
	"hospital-api/migrations"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DBConfig{
		Host:     "db",
		Port:     "5433",
		User:     "clinic",
		Password: "secret",
		Name:     "hospital",
		SSLMode:  "disable",
		TimeZone: "UTC",
	})

	assert.Equal(t, "host=db user=clinic password=secret dbname=hospital port=5433 sslmode=disable TimeZone=UTC", dsn)
}

func TestEmbeddedMigrations(t *testing.T) {
	source, err := iofs.New(migrations.FS, ".")
	require.NoError(t, err)
	defer source.Close()

	version, err := source.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	up, identifier, err := source.ReadUp(version)
	require.NoError(t, err)
	defer up.Close()
	assert.Equal(t, "init_schema", identifier)

	body, err := io.ReadAll(up)
	require.NoError(t, err)
	for _, table := range []string{"rooms", "specializations", "sections", "doctors", "patients", "audit_logs"} {
		assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS "+table)
	}
}
