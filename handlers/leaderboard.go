// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/sheetboard/cliparse"
	"github.com/danielhkuo/sheetboard/leaderboard"
	"github.com/danielhkuo/sheetboard/middleware"
	"github.com/danielhkuo/sheetboard/models"
	"github.com/danielhkuo/sheetboard/source"
)

type LeaderboardHandler struct {
	src    source.Source
	boards leaderboard.Boards
	cfg    cliparse.Config
}

func NewLeaderboardHandler(src source.Source, boards leaderboard.Boards, cfg cliparse.Config) *LeaderboardHandler {
	return &LeaderboardHandler{src: src, boards: boards, cfg: cfg}
}

// GetBoard returns the handler for a fixed endpoint such as GET /api/groups
func (h *LeaderboardHandler) GetBoard(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.serveBoard(w, r, name)
	}
}

// GetBoardByName handles GET /api/boards/{name}
func (h *LeaderboardHandler) GetBoardByName(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "board name is required")
		return
	}
	h.serveBoard(w, r, name)
}

func (h *LeaderboardHandler) serveBoard(w http.ResponseWriter, r *http.Request, name string) {
	board, err := h.boards.Lookup(name)
	if errors.Is(err, leaderboard.ErrUnknownBoard) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Board not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.FetchTimeout)
	defer cancel()

	grid, err := h.src.Values(ctx, board.Range)
	if err != nil {
		slog.Error("failed to fetch sheet data", "board", board.Name, "range", board.Range, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to fetch sheet data")
		return
	}

	records := board.Rank(grid)
	middleware.JSONResponse(w, http.StatusOK, records)
}

// ListBoards handles GET /api/boards
// Describes every configured board without fetching any data
func (h *LeaderboardHandler) ListBoards(w http.ResponseWriter, r *http.Request) {
	infos := make([]models.BoardInfo, 0, len(h.boards))
	for _, b := range h.boards {
		sortRules := b.Sort
		if sortRules == nil {
			sortRules = []leaderboard.SortRule{}
		}
		infos = append(infos, models.BoardInfo{
			Name: b.Name,
			Keys: b.Keys,
			Sort: sortRules,
			Path: BoardPath(b.Name),
		})
	}
	middleware.JSONResponse(w, http.StatusOK, infos)
}

// Health handles GET /health
func (h *LeaderboardHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status: "ok",
		Source: h.cfg.SourceType,
		Boards: len(h.boards),
	})
}

// BoardPath is the URL a board is served at. The two default boards keep
// their short paths.
func BoardPath(name string) string {
	switch name {
	case leaderboard.BoardGroups, leaderboard.BoardIndividual:
		return "/api/" + name
	}
	return "/api/boards/" + name
}
