// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package leaderboard

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Grid is raw tabular data: row 0 is the header, rows may be ragged
type Grid [][]string

// Direction orders a sort rule
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Typing selects how cells are compared
type Typing string

const (
	Numeric       Typing = "numeric"
	Lexicographic Typing = "lexicographic"
)

// SortRule ranks records by one field
type SortRule struct {
	Key       string    `yaml:"key" json:"key"`
	Direction Direction `yaml:"direction" json:"direction"`
	Typing    Typing    `yaml:"typing" json:"typing"`
}

// Project converts a grid into records restricted to keys, drops the record built
// from the first row below the header, and orders the rest by rules.
func Project(grid Grid, keys []string, rules []SortRule) []Record {
	if len(grid) == 0 {
		return []Record{}
	}

	header := grid[0]

	records := make([]Record, 0, len(grid)-1)
	for _, row := range grid[1:] {
		// Zip against the header; extra cells are ignored, missing ones are ""
		full := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				full[name] = row[i]
			} else {
				full[name] = ""
			}
		}

		rec := Record{Fields: make([]Field, len(keys))}
		for i, k := range keys {
			rec.Fields[i] = Field{Key: k, Value: full[k]}
		}
		records = append(records, rec)
	}

	// Second header row in the source sheets
	if len(records) > 0 {
		records = records[1:]
	}

	sortRecords(records, rules)
	return records
}

// sortRecords applies rules in priority order. Ties after the last rule keep
// their original relative order.
func sortRecords(records []Record, rules []SortRule) {
	if len(rules) == 0 {
		return
	}

	// Precompute sort keys so coercion runs once per cell
	type sortKey struct {
		num int
		str string
	}
	keys := make([][]sortKey, len(records))
	for i, rec := range records {
		keys[i] = make([]sortKey, len(rules))
		for j, rule := range rules {
			v := rec.Get(rule.Key)
			if rule.Typing == Numeric {
				keys[i][j] = sortKey{num: ParseScore(v)}
			} else {
				keys[i][j] = sortKey{str: v}
			}
		}
	}

	idx := make([]int, len(records))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		ka, kb := keys[idx[a]], keys[idx[b]]
		for j, rule := range rules {
			c := 0
			if rule.Typing == Numeric {
				c = compareInt(ka[j].num, kb[j].num)
			} else {
				// Byte order of UTF-8 is code point order
				c = strings.Compare(ka[j].str, kb[j].str)
			}
			if rule.Direction == Descending {
				c = -c
			}
			if c != 0 {
				return c < 0
			}
		}
		return false
	})

	sorted := make([]Record, len(records))
	for i, j := range idx {
		sorted[i] = records[j]
	}
	copy(records, sorted)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// ParseScore parses a score cell as an integer. Surrounding whitespace, a
// leading sign, any Unicode decimal digits and single underscores between
// digits are accepted. Values beyond the int range clamp to math.MaxInt or
// math.MinInt. Anything else yields 0.
func ParseScore(s string) int {
	s = strings.TrimSpace(s)

	var b strings.Builder
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		b.WriteByte(s[0])
		s = s[1:]
	}

	afterDigit := false
	for _, r := range s {
		switch {
		case r == '_':
			if !afterDigit {
				return 0
			}
			afterDigit = false
		case unicode.IsDigit(r):
			b.WriteByte(byte('0' + digitValue(r)))
			afterDigit = true
		default:
			return 0
		}
	}
	// Empty, sign only, or a trailing underscore
	if !afterDigit {
		return 0
	}

	n, err := strconv.Atoi(b.String())
	if errors.Is(err, strconv.ErrRange) {
		if neg {
			return math.MinInt
		}
		return math.MaxInt
	}
	if err != nil {
		return 0
	}
	return n
}

// digitValue returns the value of a decimal digit rune. Decimal digits come in
// contiguous runs of whole 0-9 sets, so the offset from the start of the run
// gives the value.
func digitValue(r rune) int {
	zero := r
	for unicode.IsDigit(zero - 1) {
		zero--
	}
	return int(r-zero) % 10
}
