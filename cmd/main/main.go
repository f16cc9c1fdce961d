package main

import (
	"context"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"freshsaver/internal/config"
	"freshsaver/internal/inventory/catalog"
	invSvc "freshsaver/internal/inventory/service"
	serverhttp "freshsaver/server/http"
)

func main() {
	if runtime.GOMAXPROCS(0) < runtime.NumCPU() {
		runtime.GOMAXPROCS(runtime.NumCPU())
	}

	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	// каталог грузится один раз; дальше только чтение
	cat, err := catalog.Load(cfg.CatalogFile, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("file", cfg.CatalogFile).Msg("load catalog")
	}

	svc := invSvc.New(cat)
	r := serverhttp.NewRouter(cfg, logger, svc)

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	logger.Info().Str("addr", cfg.Addr()).Int("items", cat.Len()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}
