// Package testdb opens throwaway statement stores for tests.
package testdb

import (
	"fmt"
	"strings"
	"testing"

	"fundamentals/core"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New returns a migrated in-memory SQLite store private to t.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := core.OpenDB(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), true)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)

	// The database lives as long as its only connection.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, core.Migrate(db))

	return db
}
