package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pageza/devconnector/backend/config"
	"github.com/pageza/devconnector/backend/internal/database"
	"github.com/pageza/devconnector/backend/internal/models"
	"github.com/pageza/devconnector/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLite(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "devconnector.db"),
	}}

	db, err := database.New(cfg, testhelpers.Logger())
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	require.NoError(t, database.RunMigrations(db))
	assert.NoError(t, database.HealthCheck(context.Background(), db))

	for _, table := range []string{"users", "profiles", "experiences", "educations"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestNewUnsupportedDriver(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{Driver: "mongo"}}
	_, err := database.New(cfg, testhelpers.Logger())
	assert.Error(t, err)
}

func TestPostgresMigrations(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	db := testhelpers.SetupPostgresContainer(t)

	user := models.User{Name: "Test User", Email: "test@example.com", PasswordHash: "hashedpassword"}
	require.NoError(t, db.Create(&user).Error)
	assert.NotZero(t, user.ID)

	dup := models.User{Name: "Other", Email: "test@example.com", PasswordHash: "x"}
	assert.Error(t, db.Create(&dup).Error)

	assert.NoError(t, database.HealthCheck(context.Background(), db))
}

func TestNewRedisClient(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	client := testhelpers.SetupRedisContainer(t)

	cfg := config.RedisConfig{URL: "redis://" + client.Options().Addr}
	rc, err := database.NewRedisClient(cfg, testhelpers.Logger())
	require.NoError(t, err)
	defer rc.Close()

	_, err = database.NewRedisClient(config.RedisConfig{URL: "://bad"}, testhelpers.Logger())
	assert.Error(t, err)
}
