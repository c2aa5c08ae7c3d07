// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package source fetches raw spreadsheet ranges for the leaderboard pipeline.

# Sources

Every implementation satisfies Source:

		rows, err := src.Values(ctx, "Groups!A1:X5")

	  - SheetsSource: Google Sheets v4 REST API with a service account
	  - WorkbookSource: a local .xlsx file (excelize)
	  - CSVSource: one CSV export per sheet in a directory
	  - SQLSource: sheets mirrored into the sheet_row table

All of them return rows in the shape of the Sheets API: string cells, no trailing
empty cells, no trailing empty rows.

# Ranges

ParseRange understands A1 notation with an optional quoted sheet name:

	Groups!A1:X5
	Groups!A1:X
	'Spring Term'!B2:F
	Groups

Range.Crop applies a parsed range to a full-sheet grid.

# Logging

WithLogging wraps any Source and logs each fetch with range, row count and duration.
*/
package source
