// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles the optional database mirror of the spreadsheet.

# Connecting

Open accepts "sqlite" (modernc.org/sqlite) or "postgres" (lib/pq):

	conn, err := db.Open("sqlite", "file:sheets.db")

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn.DB); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - sheet_row: (sheet, row_index) primary key, cells as a JSON array of strings

row_index is the 1-based row number in the sheet. Gaps read back as empty rows.

# Loading

ReplaceSheet swaps a sheet's rows in one transaction. It is used by the sheetload
command; the HTTP server only reads.
*/
package db
