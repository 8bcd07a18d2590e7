package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/acala-trade/acala/internal/config"
	"github.com/acala-trade/acala/internal/handler"
	"github.com/acala-trade/acala/internal/middleware"
	"github.com/acala-trade/acala/internal/pkg/logger"
	"github.com/acala-trade/acala/internal/pkg/metrics"
	"github.com/acala-trade/acala/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Optional .env for local development; deployments set the environment
	// directly.
	_ = godotenv.Load()

	// 1. Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	metrics.SettingsLoads.WithLabelValues("ok").Inc()

	// 2. Initialize Logger (explicit, once; never a side effect of Load)
	logger.Init(cfg.Log.Level)
	runLog := logger.With("run_id", uuid.NewString())

	// 3. Core services
	venueManager := service.NewVenueManager(cfg)
	settingsHandler := handler.NewSettingsHandler(cfg, venueManager)

	// 4. Setup Router
	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.MetricsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "acala"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		v1.GET("/settings", settingsHandler.GetSettings)
		v1.GET("/settings/check", settingsHandler.CheckSettings)
		v1.GET("/venues", settingsHandler.ListVenues)
		v1.GET("/venues/:name", settingsHandler.GetVenue)
		v1.GET("/limits", settingsHandler.GetLimits)
	}

	// 5. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	hbCtx, hbCancel := context.WithCancel(context.Background())
	go heartbeat(hbCtx, runLog, cfg.Ops.Heartbeat)

	go func() {
		runLog.Info("ACALA settings service started",
			"port", cfg.Server.Port,
			"venues", len(venueManager.EnabledVenues()),
			"pairs", len(cfg.TradingPairs))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server listen failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	runLog.Info("Shutting down")
	hbCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	runLog.Info("Server exiting")
}

func heartbeat(ctx context.Context, l *slog.Logger, every time.Duration) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			l.Debug("heartbeat")
		}
	}
}
