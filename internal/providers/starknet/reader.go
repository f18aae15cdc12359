package starknet

import (
	"context"
	"fmt"

	"github.com/Jack28cas/zeroshade/internal/chainvalue"
)

// Contracts holds the addresses of the deployed launch contracts
type Contracts struct {
	TokenFactory string
	Launchpad    string
}

// Reader reads token and launch data from the deployed contracts
//
//go:generate mockgen -source=reader.go -destination=../../mocks/starknet_reader.go -package=mocks -mock_names=Reader=MockStarknetReader
type Reader interface {
	// TokenName reads name() from a token contract
	TokenName(ctx context.Context, tokenAddress string) (chainvalue.Value, error)

	// TokenSymbol reads symbol() from a token contract
	TokenSymbol(ctx context.Context, tokenAddress string) (chainvalue.Value, error)

	// TokenCount reads get_token_count() from the factory
	TokenCount(ctx context.Context) (chainvalue.Value, error)

	// TokenAt reads get_token_at(index) from the factory and returns the first result felt
	TokenAt(ctx context.Context, index uint64) (string, error)

	// LaunchInfo reads get_launch_info(token) from the launchpad
	LaunchInfo(ctx context.Context, tokenAddress string) (*LaunchInfo, error)

	// LaunchpadEvents returns every launchpad event in [fromBlock, toBlock], following continuation tokens
	LaunchpadEvents(ctx context.Context, fromBlock, toBlock uint64, chunkSize int) ([]Event, error)
}

type reader struct {
	client    Client
	contracts Contracts
}

// NewReader creates a contract reader
func NewReader(client Client, contracts Contracts) Reader {
	return &reader{client: client, contracts: contracts}
}

func (r *reader) call(ctx context.Context, contractAddress string, fn Function, calldata ...string) (chainvalue.Value, error) {
	felts, err := r.client.Call(ctx, FunctionCall{
		ContractAddress:    contractAddress,
		EntryPointSelector: fn.Selector(),
		Calldata:           calldata,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call %s on %s: %w", fn.Name, contractAddress, err)
	}

	v, err := DecodeOutputs(fn.Outputs, felts)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s result: %w", fn.Name, err)
	}
	return v, nil
}

// TokenName reads name() from a token contract
func (r *reader) TokenName(ctx context.Context, tokenAddress string) (chainvalue.Value, error) {
	return r.call(ctx, tokenAddress, FunctionName)
}

// TokenSymbol reads symbol() from a token contract
func (r *reader) TokenSymbol(ctx context.Context, tokenAddress string) (chainvalue.Value, error) {
	return r.call(ctx, tokenAddress, FunctionSymbol)
}

// TokenCount reads get_token_count() from the factory
func (r *reader) TokenCount(ctx context.Context) (chainvalue.Value, error) {
	return r.call(ctx, r.contracts.TokenFactory, FunctionGetTokenCount)
}

// TokenAt reads get_token_at(index) from the factory. The index is a u256
// passed as (low, high).
func (r *reader) TokenAt(ctx context.Context, index uint64) (string, error) {
	felts, err := r.client.Call(ctx, FunctionCall{
		ContractAddress:    r.contracts.TokenFactory,
		EntryPointSelector: FunctionGetTokenAt.Selector(),
		Calldata:           []string{FeltFromUint64(index), "0x0"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call get_token_at(%d): %w", index, err)
	}
	if len(felts) == 0 {
		return "", nil
	}
	return felts[0], nil
}

// LaunchInfo reads get_launch_info(token) from the launchpad
func (r *reader) LaunchInfo(ctx context.Context, tokenAddress string) (*LaunchInfo, error) {
	v, err := r.call(ctx, r.contracts.Launchpad, FunctionGetLaunchInfo, tokenAddress)
	if err != nil {
		return nil, err
	}
	info := ParseLaunchInfo(v)
	return &info, nil
}

// LaunchpadEvents returns every launchpad event in [fromBlock, toBlock]
func (r *reader) LaunchpadEvents(ctx context.Context, fromBlock, toBlock uint64, chunkSize int) ([]Event, error) {
	filter := EventFilter{
		FromBlock: BlockID{BlockNumber: fromBlock},
		ToBlock:   BlockID{BlockNumber: toBlock},
		Address:   r.contracts.Launchpad,
		Keys:      [][]string{},
		ChunkSize: chunkSize,
	}

	var events []Event
	for {
		page, err := r.client.GetEvents(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to get launchpad events: %w", err)
		}
		events = append(events, page.Events...)

		if page.ContinuationToken == "" {
			return events, nil
		}
		filter.ContinuationToken = page.ContinuationToken
	}
}
