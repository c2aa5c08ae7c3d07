// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Sheetboard API server.

Sheetboard turns spreadsheet ranges into ranked leaderboards: a groups
board and an individual board, served as JSON arrays for a small frontend.

# Starting the Server

The server reads CLI flags, environment variables and an optional .env file:

	SHEET_ID=1AbC... GOOGLE_APPLICATION_CREDENTIALS=keys.json go run .

Or from a local export:

	go run . -s csv -csv-dir ./exports
	go run . -s workbook -workbook scores.xlsx
	go run . -s database -t postgres -d "postgres://..."

# Configuration

  - SOURCE_TYPE (-s): sheets, workbook, csv or database (default: sheets)
  - SHEET_ID (-sheet-id), GOOGLE_APPLICATION_CREDENTIALS (-credentials)
  - WORKBOOK_PATH (-workbook), CSV_DIR (-csv-dir)
  - DATABASE_URL (-d), DATABASE_TYPE (-t)
  - GROUPS_RANGE, INDIVIDUAL_RANGE: A1 ranges of the two boards
  - BOARDS_FILE (-boards): extra boards in YAML
  - ALLOWED_ORIGINS (-origins), STATIC_DIR (-static), FETCH_TIMEOUT, PORT (-p)

# Architecture

  - leaderboard: projection and ranking of grids, board definitions
  - source: data sources (Sheets API, xlsx, CSV, SQL)
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Response types
  - db: Schema and sheet mirroring for the database source
  - cliparse: Configuration parsing

The sheetload command (cmd/sheetload) fills the database source.
*/
package main
