package infra

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLiteConnection(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "test-sqlite")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	testCases := []struct {
		name string
		path string
	}{
		{name: "in memory", path: ":memory:"},
		{name: "file in new directory", path: filepath.Join(tempDir, "data", "keys.db")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, e := NewSQLiteConnection(tc.path)
			require.NoError(t, e)
			assert.NoError(t, db.Exec("SELECT 1").Error)
			sqlDB, e := db.DB()
			require.NoError(t, e)
			assert.NoError(t, sqlDB.Close())
		})
	}
}
