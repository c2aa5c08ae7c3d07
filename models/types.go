package models

import "github.com/danielhkuo/sheetboard/leaderboard"

// Data source constants
const (
	SourceSheets   = "sheets"
	SourceWorkbook = "workbook"
	SourceCSV      = "csv"
	SourceDatabase = "database"
)

// Response types

// BoardInfo describes a configured board without fetching it
type BoardInfo struct {
	Name string                 `json:"name"`
	Keys []string               `json:"keys"`
	Sort []leaderboard.SortRule `json:"sort"`
	Path string                 `json:"path"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Source string `json:"source"`
	Boards int    `json:"boards"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
