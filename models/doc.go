// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines response types and constants for the API.

Board endpoints respond with []leaderboard.Record directly; the types here cover
everything else.

# Response Types

  - BoardInfo: name, keys, sort rules and path of a configured board
  - HealthResponse: status, source, board count
  - ErrorResponse: error, message

# Constants

Data sources:

	SourceSheets   = "sheets"
	SourceWorkbook = "workbook"
	SourceCSV      = "csv"
	SourceDatabase = "database"
*/
package models
