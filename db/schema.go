// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Database types accepted by Open
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open connects to a sqlite or postgres database and verifies the connection
func Open(dbType, url string) (*sqlx.DB, error) {
	switch dbType {
	case TypeSQLite, TypePostgres:
	default:
		return nil, fmt.Errorf("unsupported database type %q (use sqlite or postgres)", dbType)
	}

	conn, err := sqlx.Open(dbType, url)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// ReplaceSheet stores rows as the full contents of sheet, replacing whatever was
// there. Row i of rows is stored as sheet row i+1.
func ReplaceSheet(ctx context.Context, db *sqlx.DB, sheet string, rows [][]string) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM sheet_row WHERE sheet = ?`), sheet); err != nil {
		return fmt.Errorf("failed to clear sheet %s: %w", sheet, err)
	}

	insert := tx.Rebind(`INSERT INTO sheet_row (sheet, row_index, cells) VALUES (?, ?, ?)`)
	for i, row := range rows {
		if row == nil {
			row = []string{}
		}
		cells, err := json.Marshal(row)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, insert, sheet, i+1, string(cells)); err != nil {
			return fmt.Errorf("failed to insert row %d of %s: %w", i+1, sheet, err)
		}
	}

	return tx.Commit()
}

const schema = `
-- Sheet mirror: one row per spreadsheet row, cells as a JSON array of strings
CREATE TABLE IF NOT EXISTS sheet_row (
    sheet TEXT NOT NULL,
    row_index INTEGER NOT NULL,
    cells TEXT NOT NULL,
    PRIMARY KEY (sheet, row_index)
);
`
