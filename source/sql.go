// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package source

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SQLSource reads ranges from sheets mirrored into the sheet_row table
type SQLSource struct {
	db *sqlx.DB
}

func NewSQLSource(db *sqlx.DB) *SQLSource {
	return &SQLSource{db: db}
}

type sheetRow struct {
	RowIndex int    `db:"row_index"`
	Cells    string `db:"cells"`
}

func (s *SQLSource) Values(ctx context.Context, rng string) ([][]string, error) {
	r, err := ParseRange(rng)
	if err != nil {
		return nil, err
	}

	query := s.db.Rebind(`
		SELECT row_index, cells
		FROM sheet_row
		WHERE sheet = ?
		ORDER BY row_index
	`)

	var stored []sheetRow
	if err := s.db.SelectContext(ctx, &stored, query, r.Sheet); err != nil {
		return nil, fmt.Errorf("failed to query sheet rows: %w", err)
	}

	// row_index is the 1-based sheet row; gaps are empty rows
	var rows [][]string
	for _, sr := range stored {
		if sr.RowIndex < 1 {
			continue
		}
		for len(rows) < sr.RowIndex-1 {
			rows = append(rows, []string{})
		}

		var cells []string
		if err := json.Unmarshal([]byte(sr.Cells), &cells); err != nil {
			return nil, fmt.Errorf("sheet %s row %d: invalid cells: %w", r.Sheet, sr.RowIndex, err)
		}
		rows = append(rows, cells)
	}

	return r.Crop(rows), nil
}
