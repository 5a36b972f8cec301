package repomanager

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/unspoken/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestDialectFromDSN(t *testing.T) {
	tests := map[string]dbx.Dialect{
		"letters.db":                           dbx.DialectSQLite,
		"file:letters.db?cache=shared":         dbx.DialectSQLite,
		":memory:":                             dbx.DialectSQLite,
		"postgres://u:p@localhost:5432/db":     dbx.DialectPostgres,
		"PostgreSQL://u:p@localhost/db?x=1":    dbx.DialectPostgres,
		"  postgres://u:p@localhost:5432/db  ": dbx.DialectPostgres,
	}
	for dsn, want := range tests {
		assert.Equal(t, want, DialectFromDSN(dsn), dsn)
	}
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "a.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", sqliteDSN("a.db"))
	assert.Equal(t, "file:a.db?cache=shared&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", sqliteDSN("file:a.db?cache=shared"))
	assert.Equal(t, "a.db?_pragma=foreign_keys(1)", sqliteDSN("a.db?_pragma=foreign_keys(1)"))
}

func TestOpen_CreatesSchema(t *testing.T) {
	ctx := context.Background()
	m, err := Open(ctx, filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.Ping(ctx))
	assert.Equal(t, dbx.DialectSQLite, m.Dialect())
	assert.True(t, tableExists(t, m.Conn(), "letters"))
	assert.True(t, tableExists(t, m.Conn(), "goose_db_version"))
}

func TestOpen_IsIdempotentAndKeepsData(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "app.db")

	m, err := Open(ctx, dsn)
	require.NoError(t, err)
	_, err = m.Letters().Insert(ctx, "Love", "survive a restart")
	require.NoError(t, err)
	require.NoError(t, m.RunMigrations(ctx))
	require.NoError(t, m.Close())

	m, err = Open(ctx, dsn)
	require.NoError(t, err)
	defer m.Close()

	all, err := m.Letters().ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "survive a restart", all[0].Message)
}

func TestOpen_AdoptsPreexistingTable(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "legacy.db")

	raw, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	_, err = raw.Exec(`CREATE TABLE letters (id INTEGER PRIMARY KEY AUTOINCREMENT, feeling TEXT, message TEXT, timestamp TEXT)`)
	require.NoError(t, err)
	_, err = raw.Exec(`INSERT INTO letters (feeling, message, timestamp) VALUES ('Regret', 'old letter', '2025-01-02 03:04:05')`)
	require.NoError(t, err)
	require.NoError(t, raw.Close())

	m, err := Open(ctx, dsn)
	require.NoError(t, err)
	defer m.Close()

	all, err := m.Letters().ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "old letter", all[0].Message)
}

func TestOpen_InMemory(t *testing.T) {
	ctx := context.Background()
	m, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	defer m.Close()

	_, err = m.Letters().Insert(ctx, "Hope", "in memory")
	require.NoError(t, err)

	all, err := m.Letters().ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPing_ClosedDB(t *testing.T) {
	ctx := context.Background()
	m, err := Open(ctx, filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	require.NoError(t, m.Close())

	assert.Error(t, m.Ping(ctx))
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "dir", "letters.db")

	m, err := Open(ctx, dsn)
	require.NoError(t, err)
	defer m.Close()

	assert.True(t, tableExists(t, m.Conn(), "letters"))
}
