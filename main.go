// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Reelback96/MoviePollGame/cliparse"
	"github.com/Reelback96/MoviePollGame/db"
	"github.com/Reelback96/MoviePollGame/handlers"
	"github.com/Reelback96/MoviePollGame/ingest"
	"github.com/Reelback96/MoviePollGame/logger"
	"github.com/Reelback96/MoviePollGame/router"
	"github.com/Reelback96/MoviePollGame/session"
	"github.com/Reelback96/MoviePollGame/sheets"
)

func main() {
	if err := cliparse.LoadEnv(); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	logger.Init(logCfg)

	// Pick the submission store
	var stores handlers.StoreProvider
	switch cfg.Store {
	case cliparse.StoreSheets:
		stores = handlers.SheetsStore{
			Config: sheets.Config{
				SpreadsheetID: cfg.SheetsSpreadsheetID,
				Endpoint:      cfg.SheetsEndpoint,
			},
			DefaultToken: cfg.SheetsToken,
		}
		slog.Info("Submitting to spreadsheet", "spreadsheet_id", cfg.SheetsSpreadsheetID)
	default:
		conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database setup failed", "error", err)
			os.Exit(1)
		}
		defer conn.Close()
		slog.Info("Database schema ready", "type", cfg.DatabaseType)
		stores = handlers.FixedStore{Store: db.NewSubmissionStore(conn)}
	}

	registry := session.NewRegistry(cfg.MaxSessions, cfg.SessionTTL)
	source := ingest.NewCSVSource(cfg.CSVSource)

	// Create server
	server := http.Server{
		Handler:           router.NewRouter(registry, source, stores, cfg),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "csv_source", cfg.CSVSource)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed")
	}
}
