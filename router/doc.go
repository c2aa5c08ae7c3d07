// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Sheetboard API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(src, boards, cfg)

# Endpoints

Health:

	GET /health

Leaderboards (read-only):

	GET /api/groups        - Groups board
	GET /api/individual    - Individual board
	GET /api/boards        - Configured boards
	GET /api/boards/{name} - Any configured board

Frontend:

	GET / - Built SPA from the static directory, or a banner when disabled

All API routes are wrapped with middleware.WithLogging. CORS is applied
around the whole mux by the caller.
*/
package router
