// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Sheetboard API.

# Handler Types

  - LeaderboardHandler: fetches a board's range from the data source and
    returns the ranked records
  - StaticHandler: serves the built frontend with index.html fallback

Handlers are created via constructor functions that take their collaborators:

	lb := handlers.NewLeaderboardHandler(src, boards, cfg)

# Boards

Every board is a range, a list of keys and sort rules (see package
leaderboard). The two default boards have fixed endpoints; any configured
board is also served by name:

	GET /api/groups        → GetBoard("groups")
	GET /api/individual    → GetBoard("individual")
	GET /api/boards/{name} → GetBoardByName
	GET /api/boards        → ListBoards

A board response is always a JSON array of objects whose keys appear in the
board's key order. An empty sheet yields []. A failed fetch yields 502 with
"Failed to fetch sheet data"; an unknown board yields 404.

Each fetch runs under the configured fetch timeout.
*/
package handlers
