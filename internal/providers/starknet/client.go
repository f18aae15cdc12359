package starknet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"

	"github.com/Jack28cas/zeroshade/internal/adapter"
	"github.com/Jack28cas/zeroshade/internal/logger"
)

const blockTagLatest = "latest"

// FunctionCall is the request body of starknet_call
type FunctionCall struct {
	ContractAddress    string   `json:"contract_address"`
	EntryPointSelector string   `json:"entry_point_selector"`
	Calldata           []string `json:"calldata"`
}

// BlockID selects a block by number
type BlockID struct {
	BlockNumber uint64 `json:"block_number"`
}

// EventFilter is the filter of starknet_getEvents
type EventFilter struct {
	FromBlock         BlockID    `json:"from_block"`
	ToBlock           BlockID    `json:"to_block"`
	Address           string     `json:"address,omitempty"`
	Keys              [][]string `json:"keys"`
	ChunkSize         int        `json:"chunk_size"`
	ContinuationToken string     `json:"continuation_token,omitempty"`
}

// Event is an emitted contract event
type Event struct {
	FromAddress     string   `json:"from_address"`
	Keys            []string `json:"keys"`
	Data            []string `json:"data"`
	BlockNumber     uint64   `json:"block_number"`
	BlockHash       string   `json:"block_hash"`
	TransactionHash string   `json:"transaction_hash"`
}

// EventsPage is one page of starknet_getEvents results
type EventsPage struct {
	Events            []Event `json:"events"`
	ContinuationToken string  `json:"continuation_token,omitempty"`
}

// Client is a Starknet JSON-RPC client
//
//go:generate mockgen -source=client.go -destination=../../mocks/starknet_client.go -package=mocks -mock_names=Client=MockStarknetClient
type Client interface {
	// Call invokes a view entry point at the latest block and returns the raw felts
	Call(ctx context.Context, call FunctionCall) ([]string, error)

	// BlockNumber returns the latest accepted block number
	BlockNumber(ctx context.Context) (uint64, error)

	// GetEvents returns one page of events matching the filter
	GetEvents(ctx context.Context, filter EventFilter) (*EventsPage, error)

	// Close closes the connection
	Close()
}

// ClientConfig holds client retry and timeout settings
type ClientConfig struct {
	RequestTimeout time.Duration
	MaxRetries     uint64
	InitialBackoff time.Duration
}

type client struct {
	rpc    adapter.RPCClient
	config ClientConfig
}

// NewClient creates a Starknet client on top of a JSON-RPC connection
func NewClient(rpcClient adapter.RPCClient, config ClientConfig) Client {
	if config.InitialBackoff <= 0 {
		config.InitialBackoff = 500 * time.Millisecond
	}
	return &client{rpc: rpcClient, config: config}
}

// Dial connects to the JSON-RPC endpoint at url and wraps it in a Client
func Dial(ctx context.Context, dialer adapter.RPCDialer, url string, config ClientConfig) (Client, error) {
	rpcClient, err := dialer.Dial(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial starknet rpc: %w", err)
	}
	return NewClient(rpcClient, config), nil
}

// Call invokes a view entry point at the latest block
func (c *client) Call(ctx context.Context, call FunctionCall) ([]string, error) {
	if call.Calldata == nil {
		call.Calldata = []string{}
	}

	var result []string
	err := c.callWithRetry(ctx, "starknet_call", &result, call, blockTagLatest)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// BlockNumber returns the latest accepted block number
func (c *client) BlockNumber(ctx context.Context) (uint64, error) {
	var result uint64
	if err := c.callWithRetry(ctx, "starknet_blockNumber", &result); err != nil {
		return 0, err
	}
	return result, nil
}

// GetEvents returns one page of events matching the filter
func (c *client) GetEvents(ctx context.Context, filter EventFilter) (*EventsPage, error) {
	if filter.Keys == nil {
		filter.Keys = [][]string{}
	}

	var result EventsPage
	if err := c.callWithRetry(ctx, "starknet_getEvents", &result, filter); err != nil {
		return nil, err
	}
	return &result, nil
}

// Close closes the connection
func (c *client) Close() {
	c.rpc.Close()
}

// callWithRetry performs a JSON-RPC call with a per-attempt timeout. Transport
// failures are retried with exponential backoff; errors returned by the node
// (unknown contract, reverted call, bad params) are final.
func (c *client) callWithRetry(ctx context.Context, method string, result interface{}, args ...interface{}) error {
	operation := func() error {
		callCtx := ctx
		if c.config.RequestTimeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, c.config.RequestTimeout)
			defer cancel()
		}

		err := c.rpc.CallContext(callCtx, result, method, args...)
		if err == nil {
			return nil
		}

		var rpcErr rpc.Error
		if errors.As(err, &rpcErr) {
			return backoff.Permanent(err)
		}
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.config.InitialBackoff
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = 0 // bounded by MaxRetries

	notify := func(err error, d time.Duration) {
		logger.WarnCtx(ctx, "Starknet RPC call failed, retrying",
			zap.String("method", method),
			zap.Duration("backoff", d),
			zap.Error(err))
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(b, c.config.MaxRetries), ctx)
	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}
	return nil
}
