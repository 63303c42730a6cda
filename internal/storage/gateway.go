package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Error wraps any failure coming back from the database. The underlying
// message is forwarded to callers as-is.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// ErrDuplicateEmail is returned by stores when an insert hits the UNIQUE
// constraint on correo.
var ErrDuplicateEmail = errors.New("correo ya registrado")

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// failure (duplicate key).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// Gateway is the single access point to the clinic database. Every call
// runs under the configured timeout so a stalled connection surfaces as an
// error instead of hanging the request.
type Gateway struct {
	db      *sql.DB
	timeout time.Duration
}

func New(db *sql.DB, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Gateway{db: db, timeout: timeout}
}

func (g *Gateway) deadline(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, g.timeout)
}

// QueryRow runs a single-row query and hands the row to scan before the
// deadline is released.
func (g *Gateway) QueryRow(ctx context.Context, op, query string, args []any, scan func(*sql.Row) error) error {
	ctx, cancel := g.deadline(ctx)
	defer cancel()
	if err := scan(g.db.QueryRowContext(ctx, query, args...)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return wrap(op, err)
	}
	return nil
}

// Query runs a multi-row query, calling each once per row.
func (g *Gateway) Query(ctx context.Context, op, query string, args []any, each func(*sql.Rows) error) error {
	ctx, cancel := g.deadline(ctx)
	defer cancel()
	rows, err := g.db.QueryContext(ctx, query, args...)
	if err != nil {
		return wrap(op, err)
	}
	defer rows.Close()
	for rows.Next() {
		if err := each(rows); err != nil {
			return wrap(op, err)
		}
	}
	return wrap(op, rows.Err())
}

// Exec runs a statement and returns the number of affected rows.
func (g *Gateway) Exec(ctx context.Context, op, query string, args ...any) (int64, error) {
	ctx, cancel := g.deadline(ctx)
	defer cancel()
	res, err := g.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, wrap(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, wrap(op, err)
	}
	return n, nil
}

// SelectAll reads every row of a table into generic maps. The table name is
// interpolated, not parameterized, so callers must validate it against a
// known-table list first.
func (g *Gateway) SelectAll(ctx context.Context, table string) ([]map[string]any, error) {
	ctx, cancel := g.deadline(ctx)
	defer cancel()
	rows, err := g.db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM %s`, pq.QuoteIdentifier(table)))
	if err != nil {
		return nil, wrap("select "+table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, wrap("select "+table, err)
	}
	result := []map[string]any{}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, wrap("select "+table, err)
		}
		rec := make(map[string]any, len(cols))
		for i, c := range cols {
			v := vals[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			rec[c] = v
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("select "+table, err)
	}
	return result, nil
}
