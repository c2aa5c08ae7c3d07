// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package source

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	ErrInvalidRange  = errors.New("invalid range")
	ErrSheetNotFound = errors.New("sheet not found")
)

// Source returns the cell values of an A1 range as rows of strings.
// Rows carry no trailing empty cells and the grid has no trailing empty rows.
type Source interface {
	Values(ctx context.Context, rng string) ([][]string, error)
}

// Range is a parsed A1 range. Coordinates are 1-based; a zero end is unbounded.
type Range struct {
	Sheet    string
	StartCol int
	StartRow int
	EndCol   int
	EndRow   int
}

// ParseRange parses "Sheet!A1:X5", "Sheet!A1:X", "Sheet!A:X", "Sheet!B2",
// "'My Sheet'!A1:B2" or a bare sheet name.
func ParseRange(rng string) (Range, error) {
	sheet, cells, err := splitSheet(rng)
	if err != nil {
		return Range{}, err
	}

	r := Range{Sheet: sheet, StartCol: 1, StartRow: 1}
	if cells == "" {
		return r, nil
	}

	from, to, isSpan := strings.Cut(cells, ":")
	startCol, startRow, err := parseCell(from)
	if err != nil {
		return Range{}, fmt.Errorf("%w %q: %v", ErrInvalidRange, rng, err)
	}
	if startCol > 0 {
		r.StartCol = startCol
	}
	if startRow > 0 {
		r.StartRow = startRow
	}

	if !isSpan {
		// A single cell
		if startCol == 0 || startRow == 0 {
			return Range{}, fmt.Errorf("%w %q: single cell needs a column and a row", ErrInvalidRange, rng)
		}
		r.EndCol, r.EndRow = startCol, startRow
		return r, nil
	}

	r.EndCol, r.EndRow, err = parseCell(to)
	if err != nil {
		return Range{}, fmt.Errorf("%w %q: %v", ErrInvalidRange, rng, err)
	}
	if (r.EndCol > 0 && r.EndCol < r.StartCol) || (r.EndRow > 0 && r.EndRow < r.StartRow) {
		return Range{}, fmt.Errorf("%w %q: end before start", ErrInvalidRange, rng)
	}
	return r, nil
}

func splitSheet(rng string) (sheet, cells string, err error) {
	rng = strings.TrimSpace(rng)
	if rng == "" {
		return "", "", fmt.Errorf("%w: empty", ErrInvalidRange)
	}

	if strings.HasPrefix(rng, "'") {
		// Quoted name; '' is an escaped quote
		var b strings.Builder
		for i := 1; i < len(rng); i++ {
			if rng[i] != '\'' {
				b.WriteByte(rng[i])
				continue
			}
			if i+1 < len(rng) && rng[i+1] == '\'' {
				b.WriteByte('\'')
				i++
				continue
			}
			rest := rng[i+1:]
			if rest == "" {
				return b.String(), "", nil
			}
			if !strings.HasPrefix(rest, "!") {
				return "", "", fmt.Errorf("%w %q: expected ! after sheet name", ErrInvalidRange, rng)
			}
			return b.String(), rest[1:], nil
		}
		return "", "", fmt.Errorf("%w %q: unterminated sheet name", ErrInvalidRange, rng)
	}

	i := strings.LastIndex(rng, "!")
	if i < 0 {
		return rng, "", nil
	}
	if i == 0 {
		return "", "", fmt.Errorf("%w %q: missing sheet name", ErrInvalidRange, rng)
	}
	return rng[:i], rng[i+1:], nil
}

// parseCell parses "AB12", "AB" or "12". Missing parts are returned as 0.
func parseCell(cell string) (col, row int, err error) {
	cell = strings.ReplaceAll(cell, "$", "")
	if cell == "" {
		return 0, 0, errors.New("empty cell reference")
	}

	i := 0
	for i < len(cell) && isLetter(cell[i]) {
		i++
	}
	letters, digits := cell[:i], cell[i:]

	if letters != "" {
		col, err = excelize.ColumnNameToNumber(letters)
		if err != nil {
			return 0, 0, err
		}
	}
	if digits != "" {
		row, err = strconv.Atoi(digits)
		if err != nil || row < 1 {
			return 0, 0, fmt.Errorf("bad row %q", digits)
		}
	}
	return col, row, nil
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// Crop cuts a full-sheet grid down to the range, in the shape the Sheets API
// returns: trailing empty cells and trailing empty rows removed.
func (r Range) Crop(rows [][]string) [][]string {
	out := [][]string{}
	for i := r.StartRow; r.EndRow == 0 || i <= r.EndRow; i++ {
		if i > len(rows) {
			break
		}
		row := rows[i-1]

		var cells []string
		if r.StartCol <= len(row) {
			end := len(row)
			if r.EndCol > 0 && r.EndCol < end {
				end = r.EndCol
			}
			cells = append([]string{}, row[r.StartCol-1:end]...)
		}
		out = append(out, trimRow(cells))
	}

	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return out
}

func trimRow(cells []string) []string {
	n := len(cells)
	for n > 0 && cells[n-1] == "" {
		n--
	}
	if n == 0 {
		return []string{}
	}
	return cells[:n]
}
