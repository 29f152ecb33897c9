package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"newebpay/internal/notifyhttp"
	"newebpay/internal/platform/config"
	"newebpay/internal/platform/httpserver"
	"newebpay/internal/platform/logger"
	"newebpay/internal/platform/metrics"
	"newebpay/pkg/notify"
)

// main wires the callback receiver: config, logger, metrics, and the
// notify routes. Payment handling belongs in the hook; this binary only
// demonstrates the verified edge.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if cfg.HashKey == "" || cfg.HashIV == "" {
		log.Error("NEWEBPAY_HASH_KEY and NEWEBPAY_HASH_IV must be set")
		os.Exit(1)
	}

	m := metrics.New()
	handler := notifyhttp.New(cfg.HashKey, cfg.HashIV, log, m, func(ctx context.Context, n *notify.Handler) {
		if !n.IsSuccess() {
			log.WarnContext(ctx, "payment failed",
				"merchant_order_no", n.MerchantOrderNo(),
				"status", n.Status(),
				"message", n.Message(),
			)
			return
		}
		log.InfoContext(ctx, "payment succeeded",
			"merchant_order_no", n.MerchantOrderNo(),
			"trade_no", n.TradeNo(),
			"amount", n.Amount(),
		)
	})

	router := chi.NewRouter()
	handler.Register(router)
	router.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting notifyd",
		"addr", cfg.Addr,
		"environment", string(cfg.Environment),
		"gateway", cfg.Environment.BaseURL(),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err.Error())
		os.Exit(1)
	}
}
