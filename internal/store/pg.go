package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Jack28cas/zeroshade/internal/domain"
	"github.com/Jack28cas/zeroshade/internal/logger"
	"github.com/Jack28cas/zeroshade/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Idle connections can never exceed open connections
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// UpsertToken inserts a token or overwrites the row keyed by the same address
func (s *pgStore) UpsertToken(ctx context.Context, token *schema.Token) error {
	if token == nil {
		return fmt.Errorf("failed to upsert token: token is nil")
	}

	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}
	token.CreatedAt = domain.TruncateTimestamp(token.CreatedAt)

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "symbol", "creator", "created_at"}),
		}).
		Create(token).Error
	if err != nil {
		return fmt.Errorf("failed to upsert token: %w", err)
	}

	logger.DebugCtx(ctx, "Upserted token",
		zap.String("address", token.Address),
		zap.String("creator", token.Creator))

	return nil
}

// GetTokenByAddress retrieves a token by its address
func (s *pgStore) GetTokenByAddress(ctx context.Context, address string) (*schema.Token, error) {
	var token schema.Token
	err := s.db.WithContext(ctx).Where("address = ?", address).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token by address: %w", err)
	}
	return &token, nil
}

// ListTokens retrieves every token ordered by creation time, newest first
func (s *pgStore) ListTokens(ctx context.Context) ([]schema.Token, error) {
	tokens := make([]schema.Token, 0)
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Order("address ASC").
		Find(&tokens).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}
	return tokens, nil
}

// ListTokensByCreator retrieves the tokens of a creator ordered by creation time, newest first
func (s *pgStore) ListTokensByCreator(ctx context.Context, creator string) ([]schema.Token, error) {
	tokens := make([]schema.Token, 0)
	err := s.db.WithContext(ctx).
		Where("creator = ?", creator).
		Order("created_at DESC").
		Order("address ASC").
		Find(&tokens).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens by creator: %w", err)
	}
	return tokens, nil
}

// blockCursorKey namespaces cursors inside the key-value table
func blockCursorKey(name string) string {
	return fmt.Sprintf("block_cursor:%s", name)
}

// GetBlockCursor retrieves the last processed block number for a cursor
func (s *pgStore) GetBlockCursor(ctx context.Context, name string) (uint64, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", blockCursorKey(name)).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}

	blockNumber, err := strconv.ParseUint(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse block cursor: %w", err)
	}

	return blockNumber, nil
}

// SetBlockCursor stores the last processed block number for a cursor
func (s *pgStore) SetBlockCursor(ctx context.Context, name string, blockNumber uint64) error {
	kv := schema.KeyValueStore{
		Key:   blockCursorKey(name),
		Value: strconv.FormatUint(blockNumber, 10),
	}

	err := s.db.WithContext(ctx).Save(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set block cursor: %w", err)
	}

	return nil
}
