// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package leaderboard

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nameScoreRules = []SortRule{
	{Key: "score", Direction: Descending, Typing: Numeric},
	{Key: "name", Direction: Ascending, Typing: Lexicographic},
}

func names(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Get("name")
	}
	return out
}

func TestProjectScenario(t *testing.T) {
	grid := Grid{
		{"name", "score"},
		{"x", "1"},
		{"Bob", "10"},
		{"Alice", "10"},
		{"Carl", "abc"},
	}

	got := Project(grid, []string{"name", "score"}, nameScoreRules)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"Alice", "Bob", "Carl"}, names(got))
	assert.Equal(t, "abc", got[2].Get("score"), "coercion must not leak into output values")
}

func TestProjectEmptyInputs(t *testing.T) {
	testCases := []struct {
		name string
		grid Grid
	}{
		{"nil grid", nil},
		{"empty grid", Grid{}},
		{"header only", Grid{{"name", "score"}}},
		{"header and discarded row", Grid{{"name", "score"}, {"x", "1"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Project(tc.grid, []string{"name", "score"}, nameScoreRules)
			require.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestProjectCount(t *testing.T) {
	for n := 2; n < 12; n++ {
		grid := Grid{{"name", "score"}}
		for i := 1; i < n; i++ {
			grid = append(grid, []string{fmt.Sprintf("p%d", i), fmt.Sprint(i)})
		}

		got := Project(grid, []string{"name"}, nil)
		assert.Len(t, got, n-2, "grid with %d rows", n)
	}
}

func TestProjectFieldSet(t *testing.T) {
	grid := Grid{
		{"a", "b", "c"},
		{"skip"},
		{"1", "2", "3", "extra"},
		{"4"},
		{},
	}
	keys := []string{"c", "missing", "a"}

	got := Project(grid, keys, nil)

	require.Len(t, got, 3)
	for _, rec := range got {
		assert.Equal(t, keys, rec.Keys())
	}

	// No sort rules: original order
	assert.Equal(t, []Field{{"c", "3"}, {"missing", ""}, {"a", "1"}}, got[0].Fields)
	assert.Equal(t, []Field{{"c", ""}, {"missing", ""}, {"a", "4"}}, got[1].Fields)
	assert.Equal(t, []Field{{"c", ""}, {"missing", ""}, {"a", ""}}, got[2].Fields)
}

func TestProjectDiscardIsPositional(t *testing.T) {
	// The row below the header is dropped even when it looks like real data
	grid := Grid{
		{"name", "score"},
		{"Winner", "100"},
		{"Other", "5"},
	}

	got := Project(grid, []string{"name", "score"}, nameScoreRules)

	require.Len(t, got, 1)
	assert.Equal(t, "Other", got[0].Get("name"))
}

func TestProjectNumericFallback(t *testing.T) {
	grid := Grid{
		{"name", "score"},
		{"skip", "0"},
		{"neg", "-1"},
		{"empty", ""},
		{"text", "N/A"},
		{"absent"},
		{"pos", "1"},
	}

	got := Project(grid, []string{"name", "score"}, []SortRule{
		{Key: "score", Direction: Descending, Typing: Numeric},
	})

	// The three zero-valued rows keep their relative order
	assert.Equal(t, []string{"pos", "empty", "text", "absent", "neg"}, names(got))
}

func TestProjectMissingSortColumn(t *testing.T) {
	grid := Grid{
		{"name"},
		{"skip"},
		{"b"},
		{"a"},
	}

	got := Project(grid, []string{"name"}, []SortRule{
		{Key: "score", Direction: Descending, Typing: Numeric},
	})

	assert.Equal(t, []string{"b", "a"}, names(got))
}

func TestProjectStableTieBreak(t *testing.T) {
	grid := Grid{
		{"name", "score", "tag"},
		{"skip", "", ""},
		{"Sam", "7", "first"},
		{"Ann", "7", ""},
		{"Sam", "7", "second"},
		{"Zed", "9", ""},
		{"Sam", "7", "third"},
	}

	got := Project(grid, []string{"name", "score", "tag"}, nameScoreRules)

	require.Len(t, got, 5)
	assert.Equal(t, []string{"Zed", "Ann", "Sam", "Sam", "Sam"}, names(got))
	assert.Equal(t, "first", got[2].Get("tag"))
	assert.Equal(t, "second", got[3].Get("tag"))
	assert.Equal(t, "third", got[4].Get("tag"))
}

func TestProjectDescendingIsNonIncreasing(t *testing.T) {
	grid := Grid{{"g", "score"}, {"skip", "0"}}
	values := []string{"3", "17", "x", "-4", "17", "", "250", "8", " 12 "}
	for i, v := range values {
		grid = append(grid, []string{fmt.Sprintf("g%d", i), v})
	}

	got := Project(grid, []string{"g", "score"}, []SortRule{
		{Key: "score", Direction: Descending, Typing: Numeric},
	})

	require.Len(t, got, len(values))
	for i := 1; i < len(got); i++ {
		prev := ParseScore(got[i-1].Get("score"))
		cur := ParseScore(got[i].Get("score"))
		assert.GreaterOrEqual(t, prev, cur, "position %d", i)
	}
}

func TestProjectLexicographicCodePointOrder(t *testing.T) {
	grid := Grid{
		{"name", "score"},
		{"skip", ""},
		{"علي", "5"},
		{"Zoe", "5"},
		{"adam", "5"},
		{"أحمد", "5"},
	}

	got := Project(grid, []string{"name"}, nameScoreRules)

	// Uppercase ASCII < lowercase ASCII < Arabic; أ (U+0623) < ع (U+0639)
	assert.Equal(t, []string{"Zoe", "adam", "أحمد", "علي"}, names(got))
}

func TestProjectDoesNotMutateGrid(t *testing.T) {
	grid := Grid{
		{"name", "score"},
		{"skip", "0"},
		{"a", "1"},
		{"b", "2"},
	}

	Project(grid, []string{"name", "score"}, nameScoreRules)

	assert.Equal(t, Grid{
		{"name", "score"},
		{"skip", "0"},
		{"a", "1"},
		{"b", "2"},
	}, grid)
}

func TestProjectDuplicateHeaderLastWins(t *testing.T) {
	grid := Grid{
		{"name", "name"},
		{"skip", "skip"},
		{"first", "second"},
	}

	got := Project(grid, []string{"name"}, nil)

	require.Len(t, got, 1)
	assert.Equal(t, "second", got[0].Get("name"))
}

func TestProjectHugeScoreRanksFirst(t *testing.T) {
	grid := Grid{
		{"name", "score"},
		{"skip", "0"},
		{"small", "100"},
		{"huge", "99999999999999999999"},
		{"tiny", "-99999999999999999999"},
	}

	got := Project(grid, []string{"name", "score"}, []SortRule{
		{Key: "score", Direction: Descending, Typing: Numeric},
	})

	assert.Equal(t, []string{"huge", "small", "tiny"}, names(got))
	assert.Equal(t, "99999999999999999999", got[0].Get("score"))
}

func TestParseScore(t *testing.T) {
	testCases := []struct {
		in   string
		want int
	}{
		{"10", 10},
		{"0", 0},
		{"-3", -3},
		{"+7", 7},
		{" 42 ", 42},
		{"\t5\n", 5},
		{"", 0},
		{"N/A", 0},
		{"abc", 0},
		{"9.5", 0},
		{"1e3", 0},
		{"12abc", 0},
		{"١٢", 12},
		{"۳۴", 34},
		{"１２", 12},
		{"𝟙𝟘", 10},
		{"٣۴5", 345},
		{"²", 0},
		{"1_000", 1000},
		{"-1_2_3", -123},
		{"_1", 0},
		{"1_", 0},
		{"1__0", 0},
		{"+_1", 0},
		{"-", 0},
		{"99999999999999999999999", math.MaxInt},
		{"-99999999999999999999999", math.MinInt},
		{" 1_000_000_000_000_000_000_000 ", math.MaxInt},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseScore(tc.in))
		})
	}
}
