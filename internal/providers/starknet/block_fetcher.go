package starknet

import (
	"context"
	"fmt"

	"github.com/Jack28cas/zeroshade/internal/block"
)

// starknetBlockFetcher implements block.BlockFetcher for Starknet
type starknetBlockFetcher struct {
	client Client
}

func NewBlockFetcher(client Client) block.BlockFetcher {
	return &starknetBlockFetcher{client: client}
}

// FetchLatestBlock fetches the latest block number from Starknet
func (f *starknetBlockFetcher) FetchLatestBlock(ctx context.Context) (uint64, error) {
	n, err := f.client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return n, nil
}
