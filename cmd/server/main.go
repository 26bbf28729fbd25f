package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/shoecard/internal/catalog"
	"github.com/mamadbah2/shoecard/internal/config"
	"github.com/mamadbah2/shoecard/internal/repository/file"
	"github.com/mamadbah2/shoecard/internal/repository/mongodb"
	"github.com/mamadbah2/shoecard/internal/repository/sheets"
	"github.com/mamadbah2/shoecard/internal/scheduler"
	"github.com/mamadbah2/shoecard/internal/server/handlers"
	"github.com/mamadbah2/shoecard/internal/server/router"
	remotecatalog "github.com/mamadbah2/shoecard/pkg/clients/catalog"
	"github.com/mamadbah2/shoecard/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Server.LogLevel))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	source, closeSource := buildSource(ctx, cfg, baseLogger)
	defer closeSource()

	catalogSvc := catalog.NewService(source, baseLogger.Named("svc.catalog"))
	if err := catalogSvc.Refresh(ctx); err != nil {
		baseLogger.Fatal("failed to load catalog", zap.Error(err))
	}

	if fileSource, ok := source.(*file.Source); ok && cfg.Catalog.Watch {
		go func() {
			err := fileSource.Watch(ctx, 250*time.Millisecond, func() {
				if err := catalogSvc.Refresh(ctx); err != nil {
					baseLogger.Error("catalog reload after file change failed", zap.Error(err))
				}
			})
			if err != nil {
				baseLogger.Error("catalog file watcher stopped", zap.Error(err))
			}
		}()
	}

	classifier := catalog.NewClassifier(cfg.Cards.RecencyWindow)
	shoeHandler := handlers.NewShoeHandler(catalogSvc, classifier, baseLogger.Named("handlers.shoes"))
	engine := router.New(shoeHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Refresh.CronSchedule, catalogSvc, baseLogger.Named("scheduler"))
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

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port), zap.String("source", cfg.Catalog.Source))
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

// buildSource picks the catalog source named by CATALOG_SOURCE. The returned
// func releases any connection the source holds.
func buildSource(ctx context.Context, cfg *config.Config, baseLogger *zap.Logger) (catalog.Source, func()) {
	noop := func() {}

	switch cfg.Catalog.Source {
	case config.SourceMongoDB:
		repo, err := mongodb.NewMongoDBRepository(ctx, cfg.MongoDB.URI, cfg.MongoDB.DBName, cfg.MongoDB.Collection)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		return repo, func() {
			if err := repo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}
	case config.SourceSheets:
		repo, err := sheets.NewGoogleSheetRepository(ctx, cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		return sheets.NewShoeSource(repo, cfg.Sheets.Range, baseLogger.Named("repo.sheets")), noop
	case config.SourceRemote:
		return remotecatalog.NewClient(cfg.Remote), noop
	default:
		return file.NewSource(cfg.Catalog.File, baseLogger.Named("repo.file")), noop
	}
}
