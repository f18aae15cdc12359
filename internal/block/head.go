package block

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Jack28cas/zeroshade/internal/adapter"
	"github.com/Jack28cas/zeroshade/internal/logger"
)

// HeadInfo represents cached chain head information
type HeadInfo struct {
	Number    uint64
	FetchedAt time.Time
}

// HeadProvider provides cached access to the latest Starknet block number.
// Public RPC endpoints are load balanced and a lagging node may report an older
// head, so the cached value never moves backwards.
//
//go:generate mockgen -source=head.go -destination=../mocks/block_head_provider.go -package=mocks -mock_names=HeadProvider=MockHeadProvider,BlockFetcher=MockBlockFetcher
type HeadProvider interface {
	// GetLatestBlock returns the latest block number, potentially from cache
	GetLatestBlock(ctx context.Context) (uint64, error)
}

// BlockFetcher is the interface for fetching the latest block from the chain
type BlockFetcher interface {
	// FetchLatestBlock fetches the latest block number from the chain
	FetchLatestBlock(ctx context.Context) (uint64, error)
}

// Config holds configuration for the HeadProvider
type Config struct {
	// TTL is how long to cache the block number
	TTL time.Duration

	// StaleWindow is how long to use stale data if fetching fails
	StaleWindow time.Duration
}

type headProvider struct {
	fetcher BlockFetcher
	config  Config
	clock   adapter.Clock

	mu   sync.RWMutex
	head *HeadInfo
}

// NewHeadProvider creates a new HeadProvider with caching
func NewHeadProvider(fetcher BlockFetcher, config Config, clock adapter.Clock) HeadProvider {
	return &headProvider{
		fetcher: fetcher,
		config:  config,
		clock:   clock,
	}
}

// GetLatestBlock returns the latest block number, using cache if valid
func (p *headProvider) GetLatestBlock(ctx context.Context) (uint64, error) {
	p.mu.RLock()
	cached := p.head
	p.mu.RUnlock()

	now := p.clock.Now()

	if cached != nil && now.Sub(cached.FetchedAt) < p.config.TTL {
		logger.DebugCtx(ctx, "Using cached block number", zap.Uint64("block_number", cached.Number))
		return cached.Number, nil
	}

	logger.DebugCtx(ctx, "Fetching latest block number from starknet")
	blockNumber, err := p.fetcher.FetchLatestBlock(ctx)
	if err != nil {
		if cached != nil && now.Sub(cached.FetchedAt) < p.config.StaleWindow {
			logger.WarnCtx(ctx, "Using stale block number",
				zap.Uint64("block_number", cached.Number),
				zap.Error(err))
			return cached.Number, nil
		}
		return 0, fmt.Errorf("failed to fetch latest block and no valid cache available: %w", err)
	}

	if cached != nil && blockNumber < cached.Number {
		logger.DebugCtx(ctx, "RPC node is behind the cached head",
			zap.Uint64("fetched", blockNumber),
			zap.Uint64("cached", cached.Number))
		blockNumber = cached.Number
	}

	p.mu.Lock()
	p.head = &HeadInfo{
		Number:    blockNumber,
		FetchedAt: now,
	}
	p.mu.Unlock()

	return blockNumber, nil
}
