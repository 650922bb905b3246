package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"supply-chain-viz/internal/analytics"
	"supply-chain-viz/internal/config"
	domainDashboard "supply-chain-viz/internal/domain/dashboard"
	"supply-chain-viz/internal/events"
	"supply-chain-viz/internal/infrastructure/memory"
	"supply-chain-viz/internal/logger"
	"supply-chain-viz/internal/middleware"
	"supply-chain-viz/internal/realtime"
	"supply-chain-viz/internal/routes"
	"supply-chain-viz/internal/usecase/dashboard"
	pkgmqtt "supply-chain-viz/pkg/mqtt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	os.Exit(run())
}

// run wires and serves the application, returning the process exit code once every deferred cleanup ran.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		return 1
	}

	env := cfg.Server.Environment
	if env == "" {
		env = "development"
	}
	if err := logger.Init(env); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		return 1
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("environment", env),
		zap.Int("trend_months", cfg.KPI.TrendMonths),
		zap.Bool("strict_on_time", cfg.KPI.StrictOnTime),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	facilities := memory.NewFacilityRepository()
	shipments := memory.NewShipmentRepository()
	trends := memory.NewTrendRepository()

	if cfg.Store.SeedSampleData {
		if err := memory.Seed(ctx, facilities, shipments, trends, time.Now(), cfg.KPI.TrendMonths); err != nil {
			logger.Error("Failed to seed sample data", zap.Error(err))
			return 1
		}
	}

	tracker := analytics.NewTracker(shipments, analytics.NewCalculator(cfg.KPI.TrendMonths, cfg.KPI.StrictOnTime), time.Now)

	hub := realtime.NewHub(cfg.Realtime.PingInterval, cfg.CORS.AllowedOrigins)
	tracker.OnChange(func(kpi domainDashboard.KPI) {
		hub.Broadcast(dashboard.ToKPIResponse(kpi))
	})

	if _, err := tracker.Refresh(ctx); err != nil {
		logger.Error("Failed to compute initial KPI", zap.Error(err))
		return 1
	}

	publisher := newPublisher(cfg)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close event publisher", zap.Error(err))
		}
	}()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst)

	router := routes.SetupRoutes(cfg, &routes.Dependencies{
		Facilities: facilities,
		Shipments:  shipments,
		Trends:     trends,
		Tracker:    tracker,
		Publisher:  publisher,
		Hub:        hub,
		Limiter:    limiter,
	})

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("Server starting", zap.String("address", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		limiter.Run(groupCtx)
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("Shutdown Server ...")

		hub.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return 1
	}

	logger.Info("Server exited properly")
	return 0
}

// newPublisher connects to MQTT when a broker is configured and falls back to a no-op publisher.
func newPublisher(cfg *config.Config) events.Publisher {
	if !cfg.MQTTEnabled() {
		logger.Info("MQTT broker not configured, shipment events disabled")
		return events.NoopPublisher{}
	}

	clientCfg := pkgmqtt.DefaultConfig(cfg.MQTT.Broker, cfg.MQTT.ClientID)
	clientCfg.Username = cfg.MQTT.Username
	clientCfg.Password = cfg.MQTT.Password

	publisher, err := events.NewMQTTPublisher(&events.MQTTPublisherConfig{
		ClientConfig: clientCfg,
		TopicPrefix:  cfg.MQTT.TopicPrefix,
		QoS:          byte(cfg.MQTT.QoS),
	})
	if err != nil {
		logger.Warn("MQTT broker unreachable, shipment events disabled",
			zap.String("broker", cfg.MQTT.Broker),
			zap.Error(err),
		)
		return events.NoopPublisher{}
	}

	return publisher
}
