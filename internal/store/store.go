package store

import (
	"context"

	"github.com/Jack28cas/zeroshade/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

// Store defines the interface for database operations
type Store interface {
	// UpsertToken inserts a token or replaces every column of the existing row with the same address
	UpsertToken(ctx context.Context, token *schema.Token) error
	// GetTokenByAddress retrieves a token by its address, returning nil when absent
	GetTokenByAddress(ctx context.Context, address string) (*schema.Token, error)
	// ListTokens retrieves every token, newest first
	ListTokens(ctx context.Context) ([]schema.Token, error)
	// ListTokensByCreator retrieves the tokens attributed to a creator, newest first
	ListTokensByCreator(ctx context.Context, creator string) ([]schema.Token, error)
	// GetBlockCursor retrieves the last processed block number stored under a cursor name
	GetBlockCursor(ctx context.Context, name string) (uint64, error)
	// SetBlockCursor stores the last processed block number under a cursor name
	SetBlockCursor(ctx context.Context, name string, blockNumber uint64) error
}
