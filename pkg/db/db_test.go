package db

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "welcome.db")

	d, err := Open(path)
	require.NoError(t, err)
	defer d.Close()

	assert.Equal(t, path, d.Path())

	for _, table := range []string{"users", "user_meta", "notification_events"} {
		var name string
		err := d.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoErrorf(t, err, "table %s missing", table)
	}

	// migrations are idempotent
	require.NoError(t, d.Migrate())
}

func TestSqliteAcceptable(t *testing.T) {
	assert.True(t, sqliteAcceptable(nil))
	assert.True(t, sqliteAcceptable(errors.New("database is locked (5) (SQLITE_BUSY)")))
	assert.False(t, sqliteAcceptable(assert.AnError))
}
