package psql

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Wa1tonGan/food-decider/decider/config"

	"github.com/stretchr/testify/require"
)

func TestNewDatabaseSqliteFile(t *testing.T) {
	cfg := config.Config{DBDriver: "sqlite", DBPath: filepath.Join(t.TempDir(), "store.db")}
	db, err := NewDatabase(context.Background(), cfg)
	require.NoError(t, err)
	defer db.Close()
	require.True(t, db.DB.Migrator().HasTable("local_entries"))
}

func TestNewDatabaseRejectsUnknownDriver(t *testing.T) {
	_, err := NewDatabase(context.Background(), config.Config{DBDriver: "oracle"})
	require.ErrorContains(t, err, "unsupported DB_DRIVER")
}
