package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pricing_backend/internal/app/config"
	"pricing_backend/internal/app/di"
	"pricing_backend/internal/app/router"
	pricehandler "pricing_backend/internal/feature/pricing/transport/handler"
	priceusecase "pricing_backend/internal/feature/pricing/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Store
	store, closeStore, err := di.NewPriceStore(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open price store: %v", err)
	}
	defer closeStore()

	// Usecase
	priceUC := priceusecase.NewPriceUsecase(store)

	// Handler
	priceH := pricehandler.NewPriceHandler(priceUC)

	// ルータ生成
	r := router.NewRouter(priceH, store)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("pricing server listening", "addr", srv.Addr, "store", cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped unexpectedly", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
	slog.Info("pricing server stopped")
}
