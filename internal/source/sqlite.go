package source

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	apperrors "dropdown/internal/errors"
)

// DefaultTable is the table read when none is configured.
const DefaultTable = "options"

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Table holds the value column of a SQLite table in rowid order. It
// exposes the counted protocol (Count/Get) rather than Len/At.
type Table struct {
	values []string
}

// Count returns the number of rows.
func (t *Table) Count() int { return len(t.values) }

// Get returns the value of row i.
func (t *Table) Get(i int) string { return t.values[i] }

// OpenTable reads `SELECT value FROM <table> ORDER BY rowid` from the
// database at dbPath, opened read-only. NULL values are skipped.
func OpenTable(ctx context.Context, dbPath, table string) (*Table, error) {
	if strings.TrimSpace(table) == "" {
		table = DefaultTable
	}
	if !identifierPattern.MatchString(table) {
		return nil, apperrors.New(apperrors.CodeSourceUnsupported,
			fmt.Sprintf("invalid table name %q", table), nil)
	}

	db, err := sql.Open("sqlite", buildReadOnlyDSN(dbPath))
	if err != nil {
		return nil, apperrors.New(apperrors.CodeSourceReadFailed, "open sqlite db", err)
	}
	defer func() {
		_ = db.Close()
	}()
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		return nil, apperrors.New(apperrors.CodeSourceReadFailed, "ping sqlite db", err)
	}

	//nolint:gosec // G202: table is validated against identifierPattern
	rows, err := db.QueryContext(ctx, `SELECT value FROM "`+table+`" ORDER BY rowid`)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeSourceReadFailed, "query "+table, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	t := &Table{}
	for rows.Next() {
		var v sql.NullString
		if err := rows.Scan(&v); err != nil {
			return nil, apperrors.New(apperrors.CodeSourceParseFailed, "scan "+table, err)
		}
		if v.Valid {
			t.values = append(t.values, v.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.New(apperrors.CodeSourceReadFailed, "iterate "+table, err)
	}
	return t, nil
}

// buildReadOnlyDSN creates a read-only DSN for the given path.
func buildReadOnlyDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("mode", "ro")
	q.Set("_busy_timeout", "3000")
	u.RawQuery = q.Encode()
	return u.String()
}
