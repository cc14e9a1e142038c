package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ikaro-souza/warlike-spiders/internal/commons"
	"github.com/ikaro-souza/warlike-spiders/internal/config"
	"github.com/ikaro-souza/warlike-spiders/internal/draft"
	"github.com/ikaro-souza/warlike-spiders/internal/infrastructure/logger"
	"github.com/ikaro-souza/warlike-spiders/internal/infrastructure/mysql"
	"github.com/ikaro-souza/warlike-spiders/internal/menu"
	"github.com/ikaro-souza/warlike-spiders/internal/order"
	"github.com/ikaro-souza/warlike-spiders/internal/roster"
	"github.com/ikaro-souza/warlike-spiders/internal/server"
	"github.com/ikaro-souza/warlike-spiders/internal/storage"
	"github.com/ikaro-souza/warlike-spiders/internal/table"
)

func main() {
	cfg, err := commons.LoadConfig("internal/config/config.yaml")
	if err != nil {
		cfg, err = config.Load()
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	draftStorage, err := storage.NewFile(cfg.Storage.Dir)
	if err != nil {
		zapLogger.Fatal("opening draft storage", zap.Error(err))
	}
	drafts := draft.NewManager(draftStorage, zapLogger)
	rosterCache := roster.NewCache()

	menuCtrl := menu.NewModule(db, zapLogger)
	orderModule := order.NewModule(db, drafts, rosterCache, zapLogger)
	tableCtrl := table.NewModule(db, rosterCache, zapLogger)

	router := server.NewRouter(menuCtrl, orderModule, tableCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
