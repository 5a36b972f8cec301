// Package repomanager opens the database behind a DSN, applies migrations and
// hands out repositories bound to it.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/unspoken/internal/dbx"
	"github.com/dmitrijs2005/unspoken/internal/repositories/letters"
)

// RepositoryManager owns the database handle for the process lifetime.
// Close it on shutdown.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Conn() *sql.DB
	Dialect() dbx.Dialect
	Letters() letters.Repository
	Ping(ctx context.Context) error
	Close() error
}
