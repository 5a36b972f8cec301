package letters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/unspoken/internal/common"
	"github.com/dmitrijs2005/unspoken/internal/dbx"
	"github.com/dmitrijs2005/unspoken/internal/models"
)

const selectColumns = `SELECT id, feeling, message, timestamp FROM letters`

const newestFirst = ` ORDER BY timestamp DESC, id DESC`

// SQLRepository implements Repository over a dbx.DBTX for SQLite or Postgres.
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
	now     func() time.Time
	loc     *time.Location

	mu   sync.Mutex
	last time.Time
}

// NewSQLRepository returns a repository bound to db, speaking dialect.
func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{
		db:      db,
		dialect: dialect,
		now:     time.Now,
		loc:     time.Local,
	}
}

// WithClock replaces the time source used to stamp new letters.
func (r *SQLRepository) WithClock(now func() time.Time) *SQLRepository {
	r.now = now
	return r
}

// WithLocation sets the zone timestamps are written and read in.
func (r *SQLRepository) WithLocation(loc *time.Location) *SQLRepository {
	r.loc = loc
	return r
}

func (r *SQLRepository) q(query string) string {
	return dbx.Rebind(r.dialect, query)
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", common.ErrStorage, op, err)
}

// Insert stores a new letter. See Repository.Insert.
func (r *SQLRepository) Insert(ctx context.Context, feeling, message string) (*models.Letter, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is empty", common.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ts := r.now().In(r.loc).Truncate(time.Second)
	// never step back behind a letter this process already wrote
	if ts.Before(r.last) {
		ts = r.last
	}
	stamp := ts.Format(common.TimestampLayout)

	query := `INSERT INTO letters (feeling, message, timestamp) VALUES (?, ?, ?) RETURNING id`

	var id int64
	if err := r.db.QueryRowContext(ctx, r.q(query), feeling, message, stamp).Scan(&id); err != nil {
		return nil, storageErr("insert letter", err)
	}
	r.last = ts

	created, err := r.parseTimestamp(stamp)
	if err != nil {
		return nil, err
	}

	return &models.Letter{
		ID:        id,
		Feeling:   feeling,
		Message:   message,
		Timestamp: created,
	}, nil
}

// ListAll returns every letter, newest first.
func (r *SQLRepository) ListAll(ctx context.Context) ([]models.Letter, error) {
	return r.list(ctx, "list letters", selectColumns+newestFirst)
}

// ListByFeeling returns letters tagged exactly with feeling, newest first.
func (r *SQLRepository) ListByFeeling(ctx context.Context, feeling string) ([]models.Letter, error) {
	return r.list(ctx, "list letters by feeling", selectColumns+` WHERE feeling = ?`+newestFirst, feeling)
}

func (r *SQLRepository) list(ctx context.Context, op, query string, args ...any) ([]models.Letter, error) {
	rows, err := r.db.QueryContext(ctx, r.q(query), args...)
	if err != nil {
		return nil, storageErr(op, err)
	}
	defer rows.Close()

	result := make([]models.Letter, 0)
	for rows.Next() {
		var (
			item    models.Letter
			feeling sql.NullString
			message sql.NullString
			stamp   string
		)
		if err := rows.Scan(&item.ID, &feeling, &message, &stamp); err != nil {
			return nil, storageErr(op, err)
		}
		item.Feeling = feeling.String
		item.Message = message.String
		if item.Timestamp, err = r.parseTimestamp(stamp); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(op, err)
	}
	return result, nil
}

// LatestTimestamp returns the timestamp of the first letter in ListAll order.
func (r *SQLRepository) LatestTimestamp(ctx context.Context) (time.Time, bool, error) {
	query := `SELECT timestamp FROM letters` + newestFirst + ` LIMIT 1`

	var stamp string
	err := r.db.QueryRowContext(ctx, r.q(query)).Scan(&stamp)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, storageErr("latest timestamp", err)
	}

	ts, err := r.parseTimestamp(stamp)
	if err != nil {
		return time.Time{}, false, err
	}
	return ts, true, nil
}

// CountByFeeling aggregates letters per distinct feeling.
func (r *SQLRepository) CountByFeeling(ctx context.Context) ([]models.FeelingCount, error) {
	query := `SELECT feeling, COUNT(*) FROM letters GROUP BY feeling ORDER BY feeling`

	rows, err := r.db.QueryContext(ctx, r.q(query))
	if err != nil {
		return nil, storageErr("count letters by feeling", err)
	}
	defer rows.Close()

	result := make([]models.FeelingCount, 0)
	for rows.Next() {
		var (
			feeling sql.NullString
			count   int
		)
		if err := rows.Scan(&feeling, &count); err != nil {
			return nil, storageErr("count letters by feeling", err)
		}
		result = append(result, models.FeelingCount{Feeling: feeling.String, Count: count})
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("count letters by feeling", err)
	}
	return result, nil
}

func (r *SQLRepository) parseTimestamp(stamp string) (time.Time, error) {
	ts, err := time.ParseInLocation(common.TimestampLayout, stamp, r.loc)
	if err != nil {
		return time.Time{}, storageErr("parse timestamp", err)
	}
	return ts, nil
}
