package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/sheetboard/cliparse"
	"github.com/danielhkuo/sheetboard/db"
	"github.com/danielhkuo/sheetboard/leaderboard"
	"github.com/danielhkuo/sheetboard/middleware"
	"github.com/danielhkuo/sheetboard/models"
	"github.com/danielhkuo/sheetboard/router"
	"github.com/danielhkuo/sheetboard/source"
)

func main() {
	var err error

	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Board definitions
	boards := leaderboard.DefaultBoards(cfg.GroupsRange, cfg.IndividualRange)
	if cfg.BoardsFile != "" {
		extra, err := leaderboard.LoadBoards(cfg.BoardsFile)
		if err != nil {
			slog.Error("failed to load boards", "error", err)
			os.Exit(1)
		}
		boards = boards.Merge(extra)
	}
	slog.Info("Boards ready", "count", len(boards))

	// Data source
	src, closeSource, err := openSource(cfg)
	if err != nil {
		slog.Error("data source setup failed", "source", cfg.SourceType, "error", err)
		os.Exit(1)
	}
	defer closeSource()

	// Create router
	mux := router.NewRouter(source.WithLogging(cfg.SourceType, src), boards, cfg)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(cfg.AllowedOrigins)(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "source", cfg.SourceType)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// openSource builds the configured data source and its cleanup func
func openSource(cfg cliparse.Config) (source.Source, func(), error) {
	noop := func() {}

	switch cfg.SourceType {
	case models.SourceSheets:
		src, err := source.NewSheetsSource(context.Background(), cfg.CredentialsFile, cfg.SheetID)
		return src, noop, err

	case models.SourceWorkbook:
		return source.NewWorkbookSource(cfg.WorkbookPath), noop, nil

	case models.SourceCSV:
		return source.NewCSVSource(cfg.CSVDir), noop, nil

	case models.SourceDatabase:
		conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		if err := db.CreateSchema(conn.DB); err != nil {
			conn.Close()
			return nil, noop, fmt.Errorf("schema creation failed: %w", err)
		}
		slog.Info("Database schema ready", "type", cfg.DatabaseType)
		return source.NewSQLSource(conn), func() { conn.Close() }, nil
	}

	return nil, noop, fmt.Errorf("unknown source type %q", cfg.SourceType)
}
