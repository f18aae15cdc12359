package metadata

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Jack28cas/zeroshade/internal/chainvalue"
	"github.com/Jack28cas/zeroshade/internal/domain"
	"github.com/Jack28cas/zeroshade/internal/logger"
	"github.com/Jack28cas/zeroshade/internal/metrics"
	"github.com/Jack28cas/zeroshade/internal/providers/starknet"
)

// TokenMetadata is the display metadata of a token
type TokenMetadata struct {
	Name   string
	Symbol string
}

// Resolver reads token names and symbols from chain. Reads never fail: a call
// error or an unusable result yields the placeholder for that field.
//
//go:generate mockgen -source=resolver.go -destination=../mocks/metadata_resolver.go -package=mocks -mock_names=Resolver=MockMetadataResolver
type Resolver interface {
	// ResolveName returns the token name, or "Unknown"
	ResolveName(ctx context.Context, tokenAddress string) string

	// ResolveSymbol returns the token symbol, or "UNK"
	ResolveSymbol(ctx context.Context, tokenAddress string) string

	// Resolve returns both fields, each resolved independently
	Resolve(ctx context.Context, tokenAddress string) TokenMetadata
}

type resolver struct {
	reader  starknet.Reader
	metrics *metrics.Metrics
}

func NewResolver(reader starknet.Reader, m *metrics.Metrics) Resolver {
	return &resolver{reader: reader, metrics: m}
}

func (r *resolver) ResolveName(ctx context.Context, tokenAddress string) string {
	v, err := r.reader.TokenName(ctx, tokenAddress)
	return r.decode(ctx, tokenAddress, "name", v, err, domain.UNKNOWN_TOKEN_NAME)
}

func (r *resolver) ResolveSymbol(ctx context.Context, tokenAddress string) string {
	v, err := r.reader.TokenSymbol(ctx, tokenAddress)
	return r.decode(ctx, tokenAddress, "symbol", v, err, domain.UNKNOWN_TOKEN_SYMBOL)
}

func (r *resolver) Resolve(ctx context.Context, tokenAddress string) TokenMetadata {
	return TokenMetadata{
		Name:   r.ResolveName(ctx, tokenAddress),
		Symbol: r.ResolveSymbol(ctx, tokenAddress),
	}
}

func (r *resolver) decode(ctx context.Context, tokenAddress, field string, v chainvalue.Value, err error, placeholder string) string {
	if err != nil {
		logger.WarnCtx(ctx, "Could not read token "+field,
			zap.String("address", tokenAddress),
			zap.Error(err))
		r.metrics.ChainReadFailed(field)
		return placeholder
	}

	text := strings.TrimSpace(chainvalue.Decode(v, field))
	if text == "" {
		r.metrics.ChainReadFailed(field)
		return placeholder
	}
	return text
}
