// Package dbtest はテスト用のインメモリSQLiteデータベースを提供します。
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"stockwatch/internal/platform/db"
)

// New はテスト用のインメモリSQLiteデータベースを準備し、modelsをマイグレートします。
// ":memory:" は接続ごとに別のDBになるため、接続数を1に制限します。
func New(t *testing.T, models ...any) *gorm.DB {
	t.Helper()

	gdb, err := db.OpenerFor(db.DriverSQLite)(":memory:")
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if len(models) > 0 {
		require.NoError(t, gdb.AutoMigrate(models...), "failed to migrate tables")
	}
	return gdb
}
