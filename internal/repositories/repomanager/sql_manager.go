package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/unspoken/internal/common"
	"github.com/dmitrijs2005/unspoken/internal/dbx"
	"github.com/dmitrijs2005/unspoken/internal/filex"
	"github.com/dmitrijs2005/unspoken/internal/migrations"
	"github.com/dmitrijs2005/unspoken/internal/repositories/letters"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLRepositoryManager implements RepositoryManager for SQLite and Postgres.
type SQLRepositoryManager struct {
	db      *sql.DB
	dialect dbx.Dialect
	letters *letters.SQLRepository
}

// DialectFromDSN picks Postgres for postgres:// and postgresql:// URLs and
// SQLite for everything else (a file path, "file:" URI or ":memory:").
func DialectFromDSN(dsn string) dbx.Dialect {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return dbx.DialectPostgres
	}
	return dbx.DialectSQLite
}

// sqliteDSN adds a busy timeout and WAL journaling unless the caller already
// set pragmas.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}


// Open connects to dsn and ensures the schema exists. It is safe to call on
// every start; existing letters are preserved.
func Open(ctx context.Context, dsn string) (*SQLRepositoryManager, error) {
	dialect := DialectFromDSN(dsn)

	var (
		db  *sql.DB
		err error
	)
	switch dialect {
	case dbx.DialectPostgres:
		db, err = sql.Open("pgx", dsn)
	default:
		path := filex.SQLiteFilePath(dsn)
		if path != "" {
			if _, err := filex.EnsureParentDir(path); err != nil {
				return nil, fmt.Errorf("%w: db dir: %w", common.ErrStorage, err)
			}
		}
		db, err = sql.Open("sqlite", sqliteDSN(dsn))
		if err == nil && path == "" {
			// every new connection to :memory: would see an empty database
			db.SetMaxOpenConns(1)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: db open: %w", common.ErrStorage, err)
	}

	m := &SQLRepositoryManager{
		db:      db,
		dialect: dialect,
		letters: letters.NewSQLRepository(db, dialect),
	}

	if err := m.RunMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return m, nil
}

func (m *SQLRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *SQLRepositoryManager) Dialect() dbx.Dialect {
	return m.dialect
}

func (m *SQLRepositoryManager) Letters() letters.Repository {
	return m.letters
}

func (m *SQLRepositoryManager) Ping(ctx context.Context) error {
	if err := m.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: ping: %w", common.ErrStorage, err)
	}
	return nil
}

func (m *SQLRepositoryManager) Close() error {
	return m.db.Close()
}

// RunMigrations applies pending migrations for the manager's dialect.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context) error {
	fsys, err := migrations.For(m.dialect)
	if err != nil {
		return err
	}

	gooseDialect := goose.DialectSQLite3
	if m.dialect == dbx.DialectPostgres {
		gooseDialect = goose.DialectPostgres
	}

	provider, err := goose.NewProvider(gooseDialect, m.db, fsys)
	if err != nil {
		return fmt.Errorf("%w: migration setup: %w", common.ErrStorage, err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("%w: migrate: %w", common.ErrStorage, err)
	}
	return nil
}
