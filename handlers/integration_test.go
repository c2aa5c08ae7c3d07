// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/danielhkuo/sheetboard/db"
	"github.com/danielhkuo/sheetboard/leaderboard"
	"github.com/danielhkuo/sheetboard/source"
	"github.com/danielhkuo/sheetboard/testutil"
)

// TestDatabaseWorkflow covers the database deployment end to end:
// 1. Load both sheets into sheet_row
// 2. Serve the boards from the SQL source
// 3. Replace a sheet and verify the new ranking is served
func TestDatabaseWorkflow(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	ctx := context.Background()

	cfg := testutil.GetTestConfig()
	cfg.SourceType = "database"

	// Step 1: load sheets
	if err := db.ReplaceSheet(ctx, conn, "Groups", testutil.GroupsGrid()); err != nil {
		t.Fatalf("Failed to load groups: %v", err)
	}
	if err := db.ReplaceSheet(ctx, conn, "Individual", testutil.IndividualGrid()); err != nil {
		t.Fatalf("Failed to load individual: %v", err)
	}

	src := source.WithLogging(cfg.SourceType, source.NewSQLSource(conn))
	h := NewLeaderboardHandler(src, leaderboard.DefaultBoards(cfg.GroupsRange, cfg.IndividualRange), cfg)

	fetch := func(t *testing.T, name, key string) []string {
		t.Helper()
		w := httptest.NewRecorder()
		h.GetBoard(name)(w, httptest.NewRequest("GET", "/api/"+name, nil))
		testutil.AssertStatus(t, w, http.StatusOK)

		var records []leaderboard.Record
		testutil.AssertJSON(t, w, &records)
		values := make([]string, len(records))
		for i, rec := range records {
			values[i] = rec.Get(key)
		}
		return values
	}

	// Step 2: serve
	groups := fetch(t, leaderboard.BoardGroups, leaderboard.ColGroup)
	if len(groups) != 3 || groups[0] != "الثانية" {
		t.Errorf("Unexpected groups ranking: %v", groups)
	}
	names := fetch(t, leaderboard.BoardIndividual, leaderboard.ColName)
	if len(names) != 4 || names[0] != "خالد" {
		t.Errorf("Unexpected individual ranking: %v", names)
	}

	// Step 3: replace the groups sheet; الثالثة now leads
	updated := testutil.GroupsGrid()
	updated[4] = []string{"الثالثة", "", "20", "20", "30", "15", "15", "100"}
	if err := db.ReplaceSheet(ctx, conn, "Groups", updated); err != nil {
		t.Fatalf("Failed to replace groups: %v", err)
	}

	groups = fetch(t, leaderboard.BoardGroups, leaderboard.ColGroup)
	expected := []string{"الثالثة", "الثانية", "الأولى"}
	for i := range expected {
		if i >= len(groups) || groups[i] != expected[i] {
			t.Fatalf("Expected %v, got %v", expected, groups)
		}
	}
}

// TestConcurrentBoardRequests serves both boards from many goroutines at once
func TestConcurrentBoardRequests(t *testing.T) {
	cfg := testutil.GetTestConfig()
	cfg.CSVDir = testutil.WriteCSVDir(t, map[string]leaderboard.Grid{
		"Groups":     testutil.GroupsGrid(),
		"Individual": testutil.IndividualGrid(),
	})
	h := NewLeaderboardHandler(source.NewCSVSource(cfg.CSVDir), leaderboard.DefaultBoards(cfg.GroupsRange, cfg.IndividualRange), cfg)

	const workers = 20
	var wg sync.WaitGroup
	codes := make(chan int, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := leaderboard.BoardGroups
			if i%2 == 1 {
				name = leaderboard.BoardIndividual
			}
			w := httptest.NewRecorder()
			h.GetBoard(name)(w, httptest.NewRequest("GET", "/api/"+name, nil))
			codes <- w.Code
		}(i)
	}

	wg.Wait()
	close(codes)

	for code := range codes {
		if code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", code)
		}
	}
}
