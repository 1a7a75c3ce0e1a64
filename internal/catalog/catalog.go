// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog keeps a queryable SQLite copy of a built dataset. Each
// save rebuilds the records table from scratch, mirroring the overwrite
// semantics of the JSONL output.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/viant/afs/url"

	"github.com/pdiddy/dataset-builder/pkg/types"
)

// Row is one stored record.
type Row struct {
	Seq    int
	Source string
	Format types.Format
	Body   string
}

// Catalog is an open SQLite catalog database.
type Catalog struct {
	db *sql.DB
}

// LocalPath returns the filesystem path for location. The driver opens
// local files only, so file:// URLs are accepted and any other scheme is
// rejected.
func LocalPath(location string) (string, error) {
	switch url.Scheme(location, "") {
	case "":
		return location, nil
	case "file":
		return url.Path(location), nil
	default:
		return "", fmt.Errorf("catalog %s: only local paths are supported", location)
	}
}

// Open opens or creates the catalog database at path and ensures its
// schema exists.
func Open(location string) (*Catalog, error) {
	path, err := LocalPath(location)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", path, err)
	}

	c := &Catalog{db: db}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return c, nil
}

// Close releases the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS records (
			seq INTEGER PRIMARY KEY,
			source TEXT NOT NULL,
			format TEXT NOT NULL,
			body TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_format ON records(format)`,
		`CREATE INDEX IF NOT EXISTS idx_records_source ON records(source)`,
	}
	for _, stmt := range statements {
		if _, err := c.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Replace deletes every stored record and inserts d in order, in a single
// transaction.
func (c *Catalog) Replace(ctx context.Context, d types.Dataset) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("clearing records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO records (seq, source, format, body) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range d {
		body, err := r.JSON()
		if err != nil {
			return fmt.Errorf("encoding record %d from %s: %w", i, r.Source, err)
		}
		if _, err := stmt.ExecContext(ctx, i, r.Source, string(r.Format), string(body)); err != nil {
			return fmt.Errorf("inserting record %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// Count returns the number of stored records, optionally restricted to one
// format. An empty format counts everything.
func (c *Catalog) Count(ctx context.Context, format types.Format) (int, error) {
	query := `SELECT count(*) FROM records`
	var args []any
	if format != "" {
		query += ` WHERE format = ?`
		args = append(args, string(format))
	}
	var n int
	if err := c.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}

// Records returns every stored record in dataset order.
func (c *Catalog) Records(ctx context.Context) ([]Row, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT seq, source, format, body FROM records ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		var format string
		if err := rows.Scan(&r.Seq, &r.Source, &format, &r.Body); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		r.Format = types.Format(format)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Save opens the catalog at path, replaces its contents with d, and closes it.
func Save(ctx context.Context, path string, d types.Dataset) error {
	c, err := Open(path)
	if err != nil {
		return err
	}
	defer c.Close()
	return c.Replace(ctx, d)
}
