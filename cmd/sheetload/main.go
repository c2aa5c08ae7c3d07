// Command sheetload mirrors whole sheets from a spreadsheet, workbook or CSV
// directory into the sheet_row table read by the database source.
//
//	sheetload -s workbook -workbook scores.xlsx -d scores.db Groups Individual
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/sheetboard/db"
	"github.com/danielhkuo/sheetboard/models"
	"github.com/danielhkuo/sheetboard/source"
)

type options struct {
	sourceType      string
	sheetID         string
	credentialsFile string
	workbookPath    string
	csvDir          string
	databaseURL     string
	databaseType    string
	timeout         time.Duration
	sheets          []string
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("sheetload", flag.ContinueOnError)
	fs.StringVar(&opts.sourceType, "s", models.SourceWorkbook, "Source to copy from (sheets, workbook, csv)")
	fs.StringVar(&opts.sheetID, "sheet-id", os.Getenv("SHEET_ID"), "Spreadsheet ID")
	fs.StringVar(&opts.credentialsFile, "credentials", envOr("GOOGLE_APPLICATION_CREDENTIALS", "keys.json"), "Service account key file")
	fs.StringVar(&opts.workbookPath, "workbook", os.Getenv("WORKBOOK_PATH"), "Workbook path (.xlsx)")
	fs.StringVar(&opts.csvDir, "csv-dir", os.Getenv("CSV_DIR"), "Directory of <sheet>.csv files")
	fs.StringVar(&opts.databaseURL, "d", os.Getenv("DATABASE_URL"), "Database URL")
	fs.StringVar(&opts.databaseType, "t", envOr("DATABASE_TYPE", db.TypeSQLite), "Database type (sqlite or postgres)")
	fs.DurationVar(&opts.timeout, "timeout", time.Minute, "Overall timeout")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	opts.sheets = fs.Args()

	if len(opts.sheets) == 0 {
		return options{}, errors.New("at least one sheet name is required")
	}
	if opts.databaseURL == "" {
		return options{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	switch opts.sourceType {
	case models.SourceSheets:
		if opts.sheetID == "" {
			return options{}, errors.New("spreadsheet ID required (use -sheet-id or SHEET_ID env)")
		}
	case models.SourceWorkbook:
		if opts.workbookPath == "" {
			return options{}, errors.New("workbook path required (use -workbook or WORKBOOK_PATH env)")
		}
	case models.SourceCSV:
		if opts.csvDir == "" {
			return options{}, errors.New("CSV directory required (use -csv-dir or CSV_DIR env)")
		}
	default:
		return options{}, fmt.Errorf("cannot load from source type %q", opts.sourceType)
	}

	return opts, nil
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// wholeSheet is the range covering every cell of a sheet
func wholeSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func run(ctx context.Context, opts options) error {
	var src source.Source
	switch opts.sourceType {
	case models.SourceSheets:
		s, err := source.NewSheetsSource(ctx, opts.credentialsFile, opts.sheetID)
		if err != nil {
			return err
		}
		src = s
	case models.SourceWorkbook:
		src = source.NewWorkbookSource(opts.workbookPath)
	case models.SourceCSV:
		src = source.NewCSVSource(opts.csvDir)
	}
	src = source.WithLogging(opts.sourceType, src)

	conn, err := db.Open(opts.databaseType, opts.databaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.CreateSchema(conn.DB); err != nil {
		return fmt.Errorf("schema creation failed: %w", err)
	}

	for _, sheet := range opts.sheets {
		rows, err := src.Values(ctx, wholeSheet(sheet))
		if err != nil {
			return fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}
		if err := db.ReplaceSheet(ctx, conn, sheet, rows); err != nil {
			return err
		}
		slog.Info("sheet loaded", "sheet", sheet, "rows", len(rows))
	}
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env", "error", err)
	}

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	if err := run(ctx, opts); err != nil {
		slog.Error("load failed", "error", err)
		cancel()
		os.Exit(1)
	}
}
