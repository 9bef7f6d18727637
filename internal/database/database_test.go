package database

import (
	"testing"

	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestDB_MigratesDatasetTables(t *testing.T) {
	db := SetupTestDB(t)

	assert.True(t, db.Migrator().HasTable("datasets"))
	assert.True(t, db.Migrator().HasTable("dataset_records"))
	assert.NoError(t, db.HealthCheck())
	assert.Equal(t, config.DriverSQLite, db.Driver())
}

func TestOpenDialector(t *testing.T) {
	dialector, err := openDialector(&config.DatabaseConfig{Driver: config.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", dialector.Name())

	dialector, err = openDialector(&config.DatabaseConfig{Driver: config.DriverPostgres, DSN: "host=localhost"})
	require.NoError(t, err)
	assert.Equal(t, "postgres", dialector.Name())

	_, err = openDialector(&config.DatabaseConfig{Driver: "mysql"})
	assert.Error(t, err)
}
