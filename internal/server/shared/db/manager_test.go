package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmarques/despesas/internal/server/shared/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepositoryManager_SQLite(t *testing.T) {
	manager, err := db.NewRepositoryManager(filepath.Join(t.TempDir(), "manager.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = manager.Close() })

	require.NotNil(t, manager.Users())
	require.NotNil(t, manager.Expenses())

	// Migrations must have created both tables.
	for _, table := range []string{"users", "expenses"} {
		var name string
		err := manager.Conn().QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s must exist", table)
		assert.Equal(t, table, name)
	}

	var notNull int
	err = manager.Conn().QueryRow(
		`SELECT "notnull" FROM pragma_table_info('expenses') WHERE name='owner_id'`).Scan(&notNull)
	require.NoError(t, err)
	assert.Equal(t, 1, notNull, "owner_id must be NOT NULL")
}

func TestRunMigrations_Idempotent(t *testing.T) {
	manager, err := db.NewRepositoryManager(filepath.Join(t.TempDir(), "manager.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = manager.Close() })

	// NewRepositoryManager already ran them once; a second run is a no-op.
	require.NoError(t, manager.RunMigrations(context.Background()))
}
