// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/sheetboard/cliparse"
	"github.com/danielhkuo/sheetboard/handlers"
	"github.com/danielhkuo/sheetboard/leaderboard"
	"github.com/danielhkuo/sheetboard/middleware"
	"github.com/danielhkuo/sheetboard/source"
)

func NewRouter(src source.Source, boards leaderboard.Boards, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	lbHandler := handlers.NewLeaderboardHandler(src, boards, cfg)

	// Health check
	mux.HandleFunc("GET /health", lbHandler.Health)

	// Leaderboards
	mux.HandleFunc("GET /api/groups", middleware.WithLogging(lbHandler.GetBoard(leaderboard.BoardGroups)))
	mux.HandleFunc("GET /api/individual", middleware.WithLogging(lbHandler.GetBoard(leaderboard.BoardIndividual)))
	mux.HandleFunc("GET /api/boards", middleware.WithLogging(lbHandler.ListBoards))
	mux.HandleFunc("GET /api/boards/{name}", middleware.WithLogging(lbHandler.GetBoardByName))

	// Frontend
	if cfg.StaticDir != "" {
		mux.Handle("GET /", handlers.NewStaticHandler(cfg.StaticDir))
	} else {
		mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/" {
				middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
				return
			}
			w.Write([]byte("sheetboard API v1"))
		})
	}

	return mux
}
