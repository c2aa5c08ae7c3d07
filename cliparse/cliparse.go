package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/sheetboard/models"
)

type Config struct {
	Port       int
	SourceType string

	// Google Sheets
	SheetID         string
	CredentialsFile string

	// Local sources
	WorkbookPath string
	CSVDir       string
	DatabaseURL  string
	DatabaseType string

	GroupsRange     string
	IndividualRange string
	BoardsFile      string

	AllowedOrigins []string
	StaticDir      string
	FetchTimeout   time.Duration
}

// ParseFlags validates flags and falls back to environment variables.
// CLI flags win over env, env wins over defaults.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var origins string

	fs := flag.NewFlagSet("sheetboard", flag.ContinueOnError)

	// Network config
	fs.IntVar(&cfg.Port, "p", 8000, "Server port")
	fs.StringVar(&origins, "origins", "http://localhost:5173", "Comma-separated CORS origins")
	fs.StringVar(&cfg.StaticDir, "static", "static", "Frontend directory (empty disables)")
	fs.DurationVar(&cfg.FetchTimeout, "fetch-timeout", 10*time.Second, "Sheet fetch timeout")

	// Data source
	fs.StringVar(&cfg.SourceType, "s", models.SourceSheets, "Data source (sheets, workbook, csv, database)")
	fs.StringVar(&cfg.SheetID, "sheet-id", "", "Spreadsheet ID")
	fs.StringVar(&cfg.CredentialsFile, "credentials", "keys.json", "Service account key file")
	fs.StringVar(&cfg.WorkbookPath, "workbook", "", "Workbook path (.xlsx)")
	fs.StringVar(&cfg.CSVDir, "csv-dir", "", "Directory of <sheet>.csv files")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "sqlite", "Database type (sqlite or postgres)")

	// Boards
	fs.StringVar(&cfg.GroupsRange, "groups-range", "Groups!A1:X5", "Range of the groups board")
	fs.StringVar(&cfg.IndividualRange, "individual-range", "Individual!A1:AP26", "Range of the individual board")
	fs.StringVar(&cfg.BoardsFile, "boards", "", "YAML board definitions")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Fall back to environment variables
	if !set["p"] {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		}
	}
	if !set["fetch-timeout"] {
		if s := os.Getenv("FETCH_TIMEOUT"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid FETCH_TIMEOUT env variable")
			}
			cfg.FetchTimeout = d
		}
	}

	envString(set, "origins", "ALLOWED_ORIGINS", &origins)
	if v, ok := os.LookupEnv("STATIC_DIR"); ok && !set["static"] {
		// STATIC_DIR="" turns off the frontend
		cfg.StaticDir = v
	}
	envString(set, "s", "SOURCE_TYPE", &cfg.SourceType)
	envString(set, "sheet-id", "SHEET_ID", &cfg.SheetID)
	envString(set, "credentials", "GOOGLE_APPLICATION_CREDENTIALS", &cfg.CredentialsFile)
	envString(set, "workbook", "WORKBOOK_PATH", &cfg.WorkbookPath)
	envString(set, "csv-dir", "CSV_DIR", &cfg.CSVDir)
	envString(set, "d", "DATABASE_URL", &cfg.DatabaseURL)
	envString(set, "t", "DATABASE_TYPE", &cfg.DatabaseType)
	envString(set, "groups-range", "GROUPS_RANGE", &cfg.GroupsRange)
	envString(set, "individual-range", "INDIVIDUAL_RANGE", &cfg.IndividualRange)
	envString(set, "boards", "BOARDS_FILE", &cfg.BoardsFile)

	cfg.AllowedOrigins = splitList(origins)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}
	if cfg.FetchTimeout <= 0 {
		return Config{}, errors.New("fetch timeout must be positive")
	}

	// Each source needs its own location setting
	switch cfg.SourceType {
	case models.SourceSheets:
		if cfg.SheetID == "" {
			return Config{}, errors.New("spreadsheet ID required (use -sheet-id or SHEET_ID env)")
		}
		if cfg.CredentialsFile == "" {
			return Config{}, errors.New("credentials file required (use -credentials or GOOGLE_APPLICATION_CREDENTIALS env)")
		}
	case models.SourceWorkbook:
		if cfg.WorkbookPath == "" {
			return Config{}, errors.New("workbook path required (use -workbook or WORKBOOK_PATH env)")
		}
	case models.SourceCSV:
		if cfg.CSVDir == "" {
			return Config{}, errors.New("CSV directory required (use -csv-dir or CSV_DIR env)")
		}
	case models.SourceDatabase:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unknown source type %q", cfg.SourceType)
	}

	return cfg, nil
}

// envString overwrites dst with a non-empty env variable when the flag was not given
func envString(set map[string]bool, flagName, envName string, dst *string) {
	if set[flagName] {
		return
	}
	if v := os.Getenv(envName); v != "" {
		*dst = v
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
