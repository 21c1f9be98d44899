package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/transgraos/fretelog/internal/config"
	"github.com/transgraos/fretelog/internal/repository/mongodb"
	"github.com/transgraos/fretelog/internal/repository/sheets"
	"github.com/transgraos/fretelog/internal/scheduler"
	"github.com/transgraos/fretelog/internal/server/handlers"
	"github.com/transgraos/fretelog/internal/server/router"
	ledgersvc "github.com/transgraos/fretelog/internal/service/ledger"
	"github.com/transgraos/fretelog/pkg/clients/freteapi"
	"github.com/transgraos/fretelog/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	var exporter sheets.Exporter
	if cfg.Sheets.SpreadsheetID != "" {
		exporter, err = sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
	} else {
		baseLogger.Warn("spreadsheet export disabled, no sheet configured")
	}

	apiClient := freteapi.NewClient(cfg.FreteAPI)
	ledgerService := ledgersvc.NewService(apiClient, baseLogger.Named("svc.ledger"))

	// Prime the snapshot; a partial load is fine, derivations degrade to
	// their fallbacks until the next refresh completes.
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 60*time.Second)
	if err := ledgerService.Refresh(startupCtx); err != nil {
		baseLogger.Warn("initial snapshot load incomplete", zap.Error(err))
	}
	cancelStartup()

	apiHandler := handlers.NewAPIHandler(ledgerService, mongoRepo, baseLogger.Named("handlers.api"))
	engine := router.New(apiHandler, baseLogger.Named("router"))

	sched, err := scheduler.NewScheduler(cfg.Closing, ledgerService, mongoRepo, exporter, baseLogger.Named("scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to init scheduler", zap.Error(err))
	}
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
