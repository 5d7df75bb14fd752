package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnect_SQLite(t *testing.T) {
	db, err := Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Ping())
}
