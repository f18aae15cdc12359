package monitor

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/Jack28cas/zeroshade/internal/adapter"
	"github.com/Jack28cas/zeroshade/internal/block"
	"github.com/Jack28cas/zeroshade/internal/domain"
	"github.com/Jack28cas/zeroshade/internal/logger"
	"github.com/Jack28cas/zeroshade/internal/metadata"
	"github.com/Jack28cas/zeroshade/internal/metrics"
	"github.com/Jack28cas/zeroshade/internal/providers/starknet"
	"github.com/Jack28cas/zeroshade/internal/store"
)

const (
	scanFactory   = "factory"
	scanLaunchpad = "launchpad"
	scanReconcile = "reconcile"
)

// ReconcileConfig controls the launchpad creator reconciliation pass
type ReconcileConfig struct {
	Enabled       bool
	RatePerSecond float64 // launch info reads per second; 0 disables the limit
	MaxPerCycle   int     // tokens checked per cycle; 0 checks all
}

// Config holds configuration for the token monitor
type Config struct {
	Chain            domain.Chain
	Interval         time.Duration
	EventBlockWindow uint64
	EventChunkSize   int
	WorkerPoolSize   int
	Reconcile        ReconcileConfig
}

// tokenMonitor discovers tokens from the factory and the launchpad and
// keeps creators in sync with launchpad listings
type tokenMonitor struct {
	config   *Config
	store    store.Store
	reader   starknet.Reader
	resolver metadata.Resolver
	heads    block.HeadProvider
	clock    adapter.Clock
	metrics  *metrics.Metrics

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}

	inCycle atomic.Bool

	// reconcileOffset rotates the bounded reconciliation window across cycles
	reconcileOffset int
}

// NewTokenMonitor creates a new token monitor
func NewTokenMonitor(
	config *Config,
	st store.Store,
	reader starknet.Reader,
	resolver metadata.Resolver,
	heads block.HeadProvider,
	clock adapter.Clock,
	m *metrics.Metrics,
) Monitor {
	cfg := *config
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.EventBlockWindow == 0 {
		cfg.EventBlockWindow = domain.DEFAULT_LAUNCHPAD_BLOCK_WINDOW
	}
	if cfg.EventChunkSize <= 0 {
		cfg.EventChunkSize = domain.DEFAULT_EVENT_CHUNK_SIZE
	}
	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = 1
	}

	return &tokenMonitor{
		config:   &cfg,
		store:    st,
		reader:   reader,
		resolver: resolver,
		heads:    heads,
		clock:    clock,
		metrics:  m,
	}
}

// Name returns the monitor's name
func (s *tokenMonitor) Name() string {
	return "token-monitor"
}

// Running reports whether the polling loop is active
func (s *tokenMonitor) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Start launches the polling loop. The first cycle runs immediately.
func (s *tokenMonitor) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		logger.WarnCtx(ctx, "Token monitor already running")
		return nil
	}

	logger.InfoCtx(ctx, "Starting token monitor",
		zap.String("chain", string(s.config.Chain)),
		zap.Duration("interval", s.config.Interval),
		zap.Uint64("event_block_window", s.config.EventBlockWindow),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
		zap.Bool("reconcile", s.config.Reconcile.Enabled),
	)

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel
	s.done = make(chan struct{})
	s.running = true

	go s.loop(loopCtx, s.done)

	return nil
}

// loop runs one cycle now and one per interval until ctx is canceled
func (s *tokenMonitor) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	s.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.clock.After(s.config.Interval):
			s.RunOnce(ctx)
		}
	}
}

// Stop cancels the polling loop and waits for the in-flight cycle
func (s *tokenMonitor) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.cancel()
	done := s.done
	s.mu.Unlock()

	logger.InfoCtx(ctx, "Stopping token monitor")

	select {
	case <-done:
		logger.InfoCtx(ctx, "Token monitor stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Token monitor stop interrupted by context timeout")
		return ctx.Err()
	}
}

// RunOnce executes the factory scan, the launchpad scan and the creator
// reconciliation. A cycle that is already executing causes a skip.
func (s *tokenMonitor) RunOnce(ctx context.Context) bool {
	if !s.inCycle.CompareAndSwap(false, true) {
		logger.WarnCtx(ctx, "Previous monitor cycle still running, skipping")
		s.metrics.CycleSkipped()
		return false
	}
	defer s.inCycle.Store(false)

	startTime := s.clock.Now()
	cycleID := ulid.MustNewDefault(startTime).String()
	ctx = logger.WithFields(ctx, zap.String("cycle_id", cycleID))

	logger.DebugCtx(ctx, "Starting monitor cycle")

	if err := s.scanFactory(ctx); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("scan", scanFactory))
		s.metrics.ScanFailed(scanFactory)
	}

	if err := s.scanLaunchpad(ctx); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("scan", scanLaunchpad))
		s.metrics.ScanFailed(scanLaunchpad)
	}

	if s.config.Reconcile.Enabled {
		if err := s.reconcileCreators(ctx); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("scan", scanReconcile))
			s.metrics.ScanFailed(scanReconcile)
		}
	}

	elapsed := s.clock.Since(startTime)
	s.metrics.ObserveCycle(elapsed.Seconds())
	logger.DebugCtx(ctx, "Monitor cycle completed", zap.Duration("duration", elapsed))

	return true
}

// registerIfMissing stores a newly discovered token with resolved metadata.
// Known tokens are left untouched.
func (s *tokenMonitor) registerIfMissing(ctx context.Context, address, creator string, source domain.TokenSource) error {
	existing, err := s.store.GetTokenByAddress(ctx, address)
	if err != nil {
		return fmt.Errorf("failed to check token %s: %w", address, err)
	}
	if existing != nil {
		return nil
	}

	md := s.resolver.Resolve(ctx, address)
	token := newToken(address, md, creator, s.clock.Now())
	if err := s.store.UpsertToken(ctx, token); err != nil {
		return fmt.Errorf("failed to save token %s: %w", address, err)
	}

	s.metrics.TokenDiscovered(string(source))
	logger.InfoCtx(ctx, "Discovered token",
		zap.String("address", address),
		zap.String("name", token.Name),
		zap.String("symbol", token.Symbol),
		zap.String("creator", creator),
		zap.String("source", string(source)),
	)

	return nil
}
