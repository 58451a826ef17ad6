package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/stableflow/reserve-engine/internal/adapter"
	"github.com/stableflow/reserve-engine/internal/api/middleware"
	"github.com/stableflow/reserve-engine/internal/api/server"
	"github.com/stableflow/reserve-engine/internal/coinday"
	"github.com/stableflow/reserve-engine/internal/config"
	"github.com/stableflow/reserve-engine/internal/domain"
	"github.com/stableflow/reserve-engine/internal/engine"
	"github.com/stableflow/reserve-engine/internal/fixedpoint"
	"github.com/stableflow/reserve-engine/internal/ledger"
	"github.com/stableflow/reserve-engine/internal/logger"
	"github.com/stableflow/reserve-engine/internal/messaging"
	"github.com/stableflow/reserve-engine/internal/oracle"
	"github.com/stableflow/reserve-engine/internal/providers/jetstream"
	"github.com/stableflow/reserve-engine/internal/reserve"
	"github.com/stableflow/reserve-engine/internal/reward"
	"github.com/stableflow/reserve-engine/internal/store"
	"github.com/stableflow/reserve-engine/internal/swap"
	"github.com/stableflow/reserve-engine/internal/synthetic"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadEngineConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "reserve-engine",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting reserve engine")

	owner, ok := domain.ParseAccount(cfg.Token.OwnerAccount)
	if !ok {
		logger.Fatal("Invalid owner account", zap.String("account", cfg.Token.OwnerAccount))
	}
	genesisEmission, ok := fixedpoint.Parse(cfg.Token.GenesisDayEmission)
	if !ok {
		logger.Fatal("Invalid genesis day emission", zap.String("value", cfg.Token.GenesisDayEmission))
	}
	pegTarget, ok := fixedpoint.Parse(cfg.Rebase.PegTarget)
	if !ok {
		logger.Fatal("Invalid peg target", zap.String("value", cfg.Rebase.PegTarget))
	}

	// Connect to database when configured; without one the engine
	// runs with no event journal
	var dataStore store.Store
	if cfg.Database.Host != "" {
		db, err := store.OpenPostgres(cfg.Database.DSN(), cfg.Database.ReadDSN())
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
			logger.Fatal("Failed to configure connection pool", zap.Error(err))
		}
		logger.Info("Connected to database",
			zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
			zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
		)
		dataStore = store.NewPGStore(db)
	} else {
		logger.Warn("Database not configured, event journal disabled")
	}

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

	// Connect to NATS when configured
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		defer publisher.Close()
		logger.Info("Connected to NATS", zap.String("url", cfg.NATS.URL))
	} else {
		logger.Warn("NATS not configured, event publishing disabled")
	}

	// Wire the accounting core; one owner account owns every component
	now := clock.NowMillis()
	events := &domain.EventLog{}
	accumulator := coinday.New(owner, now)
	rewards := reward.New(owner, genesisEmission, now)
	synToken := synthetic.NewMemoryToken(owner, domain.ShareTokenDecimals)
	shareLedger := ledger.New(owner, accumulator, rewards, synToken, clock, events)
	priceOracle := oracle.NewMemoryOracle(owner, clock)
	venue := swap.NewConstantProductPool(owner, fixedpoint.Zero(), fixedpoint.Zero(), cfg.Rebase.VenueFeeBps)
	controller := reserve.New(owner, reserve.Params{
		PegTarget:         pegTarget,
		MinRebaseInterval: cfg.Rebase.MinRebaseInterval.Milliseconds(),
	}, shareLedger, accumulator, synToken, priceOracle, venue, clock, events)

	eng := engine.New(engine.Deps{
		Ledger:     shareLedger,
		Controller: controller,
		Oracle:     priceOracle,
		Coinday:    accumulator,
		Rewards:    rewards,
		Synthetic:  synToken,
		Events:     events,
		Publisher:  publisher,
		Store:      dataStore,
		JSON:       jsonAdapter,
		Clock:      clock,
	})

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, eng)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error(err, zap.String("message", "Server failed"))
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(err, zap.String("message", "Failed to shutdown server gracefully"))
	}
}
