package datarecording

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/fatih/structs"
)

// A Page selects the rows of a read. The zero Page reads every row in
// insertion order.
type Page struct {
	// OrderBy names the field to sort by.
	OrderBy    string
	Descending bool

	// Limit caps the number of rows. Zero means no cap.
	Limit  int
	Offset int
}

// A TableReader reads the rows of one recorded table back as values of T.
// T must be the struct type the table was created from.
type TableReader[T any] struct {
	db     *sql.DB
	table  string
	fields []string
}

// OpenTable opens a table of a recording database file.
func OpenTable[T any](dbFilename, table string) (*TableReader[T], error) {
	db, err := sql.Open("sqlite3", dbFilename)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", dbFilename, err)
	}

	r, err := NewTableReader[T](db, table)
	if err != nil {
		db.Close()
		return nil, err
	}

	return r, nil
}

// NewTableReader reads a table of an open database. Closing the reader
// closes db.
func NewTableReader[T any](db *sql.DB, table string) (*TableReader[T], error) {
	var sample T
	if reflect.TypeOf((*T)(nil)).Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("table %s: %T is not a struct", table, sample)
	}

	return &TableReader[T]{
		db:     db,
		table:  table,
		fields: structs.Names(sample),
	}, nil
}

// Count returns the number of rows in the table.
func (r *TableReader[T]) Count(ctx context.Context) (int, error) {
	var n int

	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+r.table).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", r.table, err)
	}

	return n, nil
}

// Read returns the rows a page selects.
func (r *TableReader[T]) Read(ctx context.Context, page Page) ([]T, error) {
	query, err := r.selectQuery(page)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", r.table, err)
	}
	defer rows.Close()

	var results []T

	for rows.Next() {
		var entry T

		v := reflect.ValueOf(&entry).Elem()
		targets := make([]any, len(r.fields))
		for i, name := range r.fields {
			targets[i] = v.FieldByName(name).Addr().Interface()
		}

		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("reading %s: %w", r.table, err)
		}

		results = append(results, entry)
	}

	return results, rows.Err()
}

func (r *TableReader[T]) selectQuery(page Page) (string, error) {
	query := fmt.Sprintf("SELECT %s FROM %s",
		strings.Join(r.fields, ", "), r.table)

	if page.OrderBy != "" {
		if !slices.Contains(r.fields, page.OrderBy) {
			return "", fmt.Errorf("table %s has no field %q",
				r.table, page.OrderBy)
		}

		query += " ORDER BY " + page.OrderBy
		if page.Descending {
			query += " DESC"
		}
	}

	switch {
	case page.Limit > 0:
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", page.Limit, page.Offset)
	case page.Offset > 0:
		query += fmt.Sprintf(" LIMIT -1 OFFSET %d", page.Offset)
	}

	return query, nil
}

// Close closes the database.
func (r *TableReader[T]) Close() error {
	return r.db.Close()
}
