// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags and Environment Variables

Flags fall back to environment variables:

	-p                 PORT                            (default 8000)
	-s                 SOURCE_TYPE                     (default sheets)
	-sheet-id          SHEET_ID
	-credentials       GOOGLE_APPLICATION_CREDENTIALS  (default keys.json)
	-workbook          WORKBOOK_PATH
	-csv-dir           CSV_DIR
	-d                 DATABASE_URL
	-t                 DATABASE_TYPE                   (default sqlite)
	-groups-range      GROUPS_RANGE                    (default Groups!A1:X5)
	-individual-range  INDIVIDUAL_RANGE                (default Individual!A1:AP26)
	-boards            BOARDS_FILE
	-origins           ALLOWED_ORIGINS                 (default http://localhost:5173)
	-static            STATIC_DIR                      (default static)
	-fetch-timeout     FETCH_TIMEOUT                   (default 10s)

CLI flags take precedence over environment variables. STATIC_DIR set to an
empty string disables the frontend.

# Validation

ParseFlags returns an error if the chosen source is missing its location:

  - sheets needs SHEET_ID and a credentials file
  - workbook needs WORKBOOK_PATH
  - csv needs CSV_DIR
  - database needs DATABASE_URL
*/
package cliparse
