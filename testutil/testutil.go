// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"encoding/csv"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/sheetboard/cliparse"
	"github.com/danielhkuo/sheetboard/db"
	"github.com/danielhkuo/sheetboard/leaderboard"
	"github.com/danielhkuo/sheetboard/models"
)

// SetupTestDB opens a private in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Every new connection to :memory: is a different database
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn.DB); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            8000,
		SourceType:      models.SourceCSV,
		CSVDir:          "testdata",
		GroupsRange:     "Groups!A1:X5",
		IndividualRange: "Individual!A1:AP26",
		AllowedOrigins:  []string{"http://localhost:5173"},
		FetchTimeout:    2 * time.Second,
	}
}

// GroupsGrid is a groups sheet shaped like the real one: a second header row
// under the header and an unprojected column.
func GroupsGrid() leaderboard.Grid {
	return leaderboard.Grid{
		{"مجموعة", "ملاحظات", "مجموع الحضور", "مجموع المشاركة", "مشروع جماعي", "كتاب 1", "كتاب 2", "مجموع الدرجات"},
		{"", "", "20", "20", "30", "15", "15", "100"},
		{"الأولى", "", "18", "15", "25", "10", "12", "80"},
		{"الثانية", "متأخرة", "20", "19", "28", "14", "15", "96"},
		{"الثالثة", "", "10", "9"},
	}
}

// IndividualGrid is an individual sheet with a score tie and a non-numeric score
func IndividualGrid() leaderboard.Grid {
	return leaderboard.Grid{
		{"الأسم", "المجموعة", "مجموع الحضور", "مجموع المشاركة", "مشروع فردي", "الإبداع في المشروع", "كتاب 1", "كتاب 2", "مجموع الدرجات"},
		{"", "", "", "", "", "", "", "", ""},
		{"مريم", "الأولى", "5", "5", "10", "5", "8", "7", "40"},
		{"خالد", "الثانية", "5", "4", "10", "5", "9", "9", "42"},
		{"أمل", "الأولى", "5", "5", "9", "6", "8", "7", "40"},
		{"يوسف", "الثالثة", "3", "", "", "", "", "", "غائب"},
	}
}

// WriteCSVDir writes each grid to <dir>/<sheet>.csv in a temp dir and returns the dir
func WriteCSVDir(t *testing.T, sheets map[string]leaderboard.Grid) string {
	t.Helper()

	dir := t.TempDir()
	for sheet, grid := range sheets {
		f, err := os.Create(filepath.Join(dir, sheet+".csv"))
		if err != nil {
			t.Fatalf("Failed to create CSV: %v", err)
		}
		w := csv.NewWriter(f)
		if err := w.WriteAll(grid); err != nil {
			t.Fatalf("Failed to write CSV: %v", err)
		}
		f.Close()
	}
	return dir
}

// WriteStaticDir creates a frontend directory holding only index.html
func WriteStaticDir(t *testing.T, index string) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(index), 0o644); err != nil {
		t.Fatalf("Failed to write index.html: %v", err)
	}
	return dir
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
