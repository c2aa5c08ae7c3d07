// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package leaderboard turns a raw spreadsheet grid into ranked, field-limited records.

# Projection

Project is a pure function. Row 0 of the grid is the header; every following row is
zipped against it by position, projected onto the requested keys, and sorted:

	records := leaderboard.Project(grid, board.Keys, board.Sort)

The record built from the row directly below the header is always dropped. The source
sheets carry a second header row there; the rule is positional and is not checked.

Nothing in the pipeline fails. Short rows, missing columns and non-numeric scores all
degrade to empty strings or a zero sort value.

# Sort Rules

Rules apply in priority order and the sort is stable:

  - Numeric: the cell is parsed as an integer (ParseScore), 0 on failure
  - Lexicographic: raw string comparison by code point

Coercion only affects ordering. Output values are the original cell strings.

# Boards

A Board bundles a name, the A1 range to fetch, the projected keys and the sort rules.
DefaultBoards returns the "groups" and "individual" boards. LoadBoards reads extra or
replacement boards from YAML:

	boards:
	  - name: groups
	    range: Groups!A1:X5
	    keys: [مجموعة, مجموع الدرجات]
	    sort:
	      - key: مجموع الدرجات
	        direction: desc
	        typing: numeric
*/
package leaderboard
