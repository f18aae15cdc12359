package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Jack28cas/zeroshade/internal/adapter"
	"github.com/Jack28cas/zeroshade/internal/api/middleware"
	"github.com/Jack28cas/zeroshade/internal/api/server"
	"github.com/Jack28cas/zeroshade/internal/api/shared/executor"
	"github.com/Jack28cas/zeroshade/internal/block"
	"github.com/Jack28cas/zeroshade/internal/config"
	"github.com/Jack28cas/zeroshade/internal/deployer"
	"github.com/Jack28cas/zeroshade/internal/logger"
	"github.com/Jack28cas/zeroshade/internal/metadata"
	"github.com/Jack28cas/zeroshade/internal/metrics"
	"github.com/Jack28cas/zeroshade/internal/monitor"
	"github.com/Jack28cas/zeroshade/internal/providers/starknet"
	"github.com/Jack28cas/zeroshade/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "zeroshade-api",
			"chain":   string(cfg.Starknet.ChainID),
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting ZeroShade token registry")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	if err := store.Migrate(ctx, db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	// Initialize adapters
	clock := adapter.NewClock()

	// Connect to Starknet
	starknetClient, err := starknet.Dial(ctx, adapter.NewRPCDialer(), cfg.Starknet.RPCURL, starknet.ClientConfig{
		RequestTimeout: cfg.Starknet.RequestTimeout,
		MaxRetries:     cfg.Starknet.MaxRetries,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Starknet RPC", zap.Error(err), zap.String("rpc_url", cfg.Starknet.RPCURL))
	}
	defer starknetClient.Close()
	reader := starknet.NewReader(starknetClient, starknet.Contracts{
		TokenFactory: cfg.Contracts.TokenFactory,
		Launchpad:    cfg.Contracts.Launchpad,
	})
	resolver := metadata.NewResolver(reader, m)
	heads := block.NewHeadProvider(starknet.NewBlockFetcher(starknetClient), block.Config{
		TTL:         cfg.Starknet.BlockHeadTTL,
		StaleWindow: cfg.Starknet.BlockHeadStaleWindow,
	}, clock)
	logger.InfoCtx(ctx, "Connected to Starknet",
		zap.String("chain", string(cfg.Starknet.ChainID)),
		zap.String("token_factory", cfg.Contracts.TokenFactory),
		zap.String("launchpad", cfg.Contracts.Launchpad),
	)

	dep := deployer.New(deployer.Config{
		ScriptPath:       cfg.Deployer.ScriptPath,
		WorkDir:          cfg.Deployer.WorkDir,
		Account:          cfg.Deployer.Account,
		Keystore:         cfg.Deployer.Keystore,
		KeystorePassword: cfg.Deployer.KeystorePassword,
		RPCURL:           cfg.Starknet.RPCURL,
		Timeout:          cfg.Deployer.Timeout,
	}, adapter.NewCommandRunner())

	exec := executor.NewExecutor(dataStore, resolver, dep, clock, m)

	// Start token monitor
	var tokenMonitor monitor.Monitor
	if cfg.Monitor.Enabled {
		tokenMonitor = monitor.NewTokenMonitor(&monitor.Config{
			Chain:            cfg.Starknet.ChainID,
			Interval:         cfg.Monitor.Interval,
			EventBlockWindow: cfg.Monitor.EventBlockWindow,
			EventChunkSize:   cfg.Monitor.EventChunkSize,
			WorkerPoolSize:   cfg.Monitor.WorkerPoolSize,
			Reconcile: monitor.ReconcileConfig{
				Enabled:       cfg.Monitor.Reconcile.Enabled,
				RatePerSecond: cfg.Monitor.Reconcile.RatePerSecond,
				MaxPerCycle:   cfg.Monitor.Reconcile.MaxPerCycle,
			},
		}, dataStore, reader, resolver, heads, clock, m)

		if err := tokenMonitor.Start(ctx); err != nil {
			logger.FatalCtx(ctx, "Failed to start token monitor", zap.Error(err))
		}
	} else {
		logger.WarnCtx(ctx, "Token monitor disabled, only API registrations will populate the registry")
	}

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
	srv := server.New(serverConfig, exec, clock, m, registry)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Don't use the canceled ctx for shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if tokenMonitor != nil {
		if err := tokenMonitor.Stop(shutdownCtx); err != nil {
			logger.ErrorCtx(shutdownCtx, err, zap.String("component", tokenMonitor.Name()))
		}
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("ZeroShade API stopped")
}
