// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package source

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheets map[string][][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for name, rows := range sheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			row := row
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	path := filepath.Join(t.TempDir(), "scores.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestWorkbookSourceValues(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		"Groups": {
			{"مجموعة", "مجموع الدرجات", "ملاحظات"},
			{"", "100"},
			{"الأولى", 80},
			{"الثانية", "96", "متأخرة"},
		},
	})
	src := NewWorkbookSource(path)

	rows, err := src.Values(context.Background(), "Groups!A1:X5")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"مجموعة", "مجموع الدرجات", "ملاحظات"},
		{"", "100"},
		{"الأولى", "80"},
		{"الثانية", "96", "متأخرة"},
	}, rows)

	rows, err = src.Values(context.Background(), "Groups!A1:B")
	require.NoError(t, err)
	assert.Equal(t, []string{"الثانية", "96"}, rows[3])
}

func TestWorkbookSourceMissingSheet(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{"Groups": {{"a"}}})

	_, err := NewWorkbookSource(path).Values(context.Background(), "Individual!A1:B2")
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestWorkbookSourceMissingFile(t *testing.T) {
	_, err := NewWorkbookSource(filepath.Join(t.TempDir(), "none.xlsx")).Values(context.Background(), "Groups")
	assert.Error(t, err)
}

func TestWorkbookSourceCanceled(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{"Groups": {{"a"}}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewWorkbookSource(path).Values(ctx, "Groups")
	assert.ErrorIs(t, err, context.Canceled)
}
