package monitor

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Jack28cas/zeroshade/internal/chainvalue"
	"github.com/Jack28cas/zeroshade/internal/domain"
	"github.com/Jack28cas/zeroshade/internal/logger"
	"github.com/Jack28cas/zeroshade/internal/metadata"
	"github.com/Jack28cas/zeroshade/internal/store/schema"
)

func newToken(address string, md metadata.TokenMetadata, creator string, now time.Time) *schema.Token {
	return &schema.Token{
		Address:   address,
		Name:      md.Name,
		Symbol:    md.Symbol,
		Creator:   creator,
		CreatedAt: domain.TruncateTimestamp(now),
	}
}

// newPool creates a worker pool for one scan pass. Submit blocks while the
// queue is full.
func (s *tokenMonitor) newPool(ctx context.Context) pond.Pool {
	return pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithContext(ctx),
		pond.WithQueueSize(domain.DEFAULT_SCAN_QUEUE_SIZE),
	)
}

// launchpadCursor names the block cursor of the launchpad event scan
func (s *tokenMonitor) launchpadCursor() string {
	return fmt.Sprintf("%s:launchpad", s.config.Chain)
}

// scanFactory walks every index of the token factory and registers unknown tokens
func (s *tokenMonitor) scanFactory(ctx context.Context) error {
	countValue, err := s.reader.TokenCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to get token count: %w", err)
	}

	count, err := chainvalue.DecodeCount(countValue)
	if err != nil {
		return fmt.Errorf("failed to decode token count: %w", err)
	}

	logger.DebugCtx(ctx, "Scanning token factory", zap.Uint64("count", count))
	if count == 0 {
		return nil
	}
	if count > domain.MAX_FACTORY_TOKEN_COUNT {
		return fmt.Errorf("token count %d exceeds limit %d", count, domain.MAX_FACTORY_TOKEN_COUNT)
	}

	pool := s.newPool(ctx)
	for i := uint64(0); i < count; i++ {
		pool.Submit(func() {
			s.processFactoryIndex(ctx, i)
		})
	}
	pool.StopAndWait()

	return nil
}

func (s *tokenMonitor) processFactoryIndex(ctx context.Context, index uint64) {
	address, err := s.reader.TokenAt(ctx, index)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read factory token",
			zap.Uint64("index", index),
			zap.Error(err))
		s.metrics.ChainReadFailed("token_at")
		return
	}

	address = domain.NormalizeAddress(address)
	if domain.IsPlaceholderAddress(address) {
		logger.DebugCtx(ctx, "Skipping empty factory slot", zap.Uint64("index", index))
		return
	}

	if err := s.registerIfMissing(ctx, address, "", domain.TokenSourceFactory); err != nil {
		logger.WarnCtx(ctx, "Failed to register factory token",
			zap.Uint64("index", index),
			zap.Error(err))
	}
}

// scanLaunchpad reads launchpad events from the recent block window and
// registers the tokens they announce together with their creators.
// The cursor only advances when every event was processed.
func (s *tokenMonitor) scanLaunchpad(ctx context.Context) error {
	latest, err := s.heads.GetLatestBlock(ctx)
	if err != nil {
		return fmt.Errorf("failed to get latest block: %w", err)
	}

	fromBlock := uint64(0)
	if latest > s.config.EventBlockWindow {
		fromBlock = latest - s.config.EventBlockWindow
	}

	cursor, err := s.store.GetBlockCursor(ctx, s.launchpadCursor())
	if err != nil {
		return fmt.Errorf("failed to get launchpad cursor: %w", err)
	}
	if cursor > 0 && cursor+1 > fromBlock {
		fromBlock = cursor + 1
	}
	if fromBlock > latest {
		logger.DebugCtx(ctx, "No new blocks for launchpad scan",
			zap.Uint64("cursor", cursor),
			zap.Uint64("latest", latest))
		return nil
	}

	events, err := s.reader.LaunchpadEvents(ctx, fromBlock, latest, s.config.EventChunkSize)
	if err != nil {
		return fmt.Errorf("failed to get launchpad events: %w", err)
	}

	logger.DebugCtx(ctx, "Scanning launchpad events",
		zap.Uint64("from_block", fromBlock),
		zap.Uint64("to_block", latest),
		zap.Int("events", len(events)))

	failed := 0
	for _, event := range events {
		if len(event.Data) < 2 {
			continue
		}

		tokenAddress := domain.NormalizeAddress(event.Data[0])
		creator := domain.NormalizeCreator(event.Data[1])
		if domain.IsPlaceholderAddress(tokenAddress) {
			continue
		}

		if err := s.registerIfMissing(ctx, tokenAddress, creator, domain.TokenSourceLaunchpad); err != nil {
			logger.WarnCtx(ctx, "Failed to register launchpad token",
				zap.String("tx_hash", event.TransactionHash),
				zap.Error(err))
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to process %d launchpad events", failed)
	}

	if err := s.store.SetBlockCursor(ctx, s.launchpadCursor(), latest); err != nil {
		return fmt.Errorf("failed to save launchpad cursor: %w", err)
	}

	return nil
}

// reconcileCreators asks the launchpad for the listing of stored tokens and
// records creators of active listings. Read failures are skipped.
func (s *tokenMonitor) reconcileCreators(ctx context.Context) error {
	tokens, err := s.store.ListTokens(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tokens: %w", err)
	}

	batch := s.nextReconcileBatch(tokens)
	if len(batch) == 0 {
		return nil
	}

	limit := rate.Inf
	if s.config.Reconcile.RatePerSecond > 0 {
		limit = rate.Limit(s.config.Reconcile.RatePerSecond)
	}
	limiter := rate.NewLimiter(limit, 1)

	var updated atomic.Int32
	pool := s.newPool(ctx)
	for _, token := range batch {
		if domain.IsPlaceholderAddress(token.Address) {
			continue
		}
		pool.Submit(func() {
			if err := limiter.Wait(ctx); err != nil {
				return
			}
			if s.reconcileToken(ctx, token) {
				updated.Add(1)
			}
		})
	}
	pool.StopAndWait()

	logger.DebugCtx(ctx, "Creator reconciliation completed",
		zap.Int("checked", len(batch)),
		zap.Int32("updated", updated.Load()))

	return nil
}

// nextReconcileBatch returns the tokens to check this cycle, rotating
// through the full list when the batch is bounded
func (s *tokenMonitor) nextReconcileBatch(tokens []schema.Token) []schema.Token {
	limit := s.config.Reconcile.MaxPerCycle
	if limit <= 0 || limit >= len(tokens) {
		s.reconcileOffset = 0
		return tokens
	}

	start := s.reconcileOffset % len(tokens)
	batch := make([]schema.Token, 0, limit)
	for i := 0; i < limit; i++ {
		batch = append(batch, tokens[(start+i)%len(tokens)])
	}
	s.reconcileOffset = (start + limit) % len(tokens)

	return batch
}

// reconcileToken reports whether the stored creator was updated
func (s *tokenMonitor) reconcileToken(ctx context.Context, token schema.Token) bool {
	info, err := s.reader.LaunchInfo(ctx, token.Address)
	if err != nil {
		logger.DebugCtx(ctx, "Failed to read launch info",
			zap.String("address", token.Address),
			zap.Error(err))
		s.metrics.ChainReadFailed("launch_info")
		return false
	}

	if info == nil || !info.IsActive || domain.IsPlaceholderAddress(info.Creator) {
		return false
	}
	creator := domain.NormalizeCreator(info.Creator)
	if creator == token.Creator {
		return false
	}

	token.Creator = creator
	if err := s.store.UpsertToken(ctx, &token); err != nil {
		logger.DebugCtx(ctx, "Failed to update token creator",
			zap.String("address", token.Address),
			zap.Error(err))
		return false
	}

	s.metrics.CreatorUpdated()
	logger.InfoCtx(ctx, "Updated token creator",
		zap.String("address", token.Address),
		zap.String("creator", creator))

	return true
}
