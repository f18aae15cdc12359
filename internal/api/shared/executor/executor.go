package executor

import (
	"context"

	"go.uber.org/zap"

	"github.com/Jack28cas/zeroshade/internal/adapter"
	"github.com/Jack28cas/zeroshade/internal/api/shared/dto"
	apierrors "github.com/Jack28cas/zeroshade/internal/api/shared/errors"
	"github.com/Jack28cas/zeroshade/internal/deployer"
	"github.com/Jack28cas/zeroshade/internal/domain"
	"github.com/Jack28cas/zeroshade/internal/logger"
	"github.com/Jack28cas/zeroshade/internal/metadata"
	"github.com/Jack28cas/zeroshade/internal/metrics"
	"github.com/Jack28cas/zeroshade/internal/store"
	"github.com/Jack28cas/zeroshade/internal/store/schema"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// ListTokens retrieves every registered token, newest first
	ListTokens(ctx context.Context) ([]dto.Token, error)

	// RegisterToken stores a token by address, reading missing name and symbol from chain.
	// An already registered token is returned unchanged.
	RegisterToken(ctx context.Context, req dto.RegisterTokenRequest) (*dto.Token, error)

	// GetToken retrieves a token by address. It returns nil when the token is unknown.
	GetToken(ctx context.Context, address string) (*dto.Token, error)

	// GetTokensByCreator retrieves the tokens attributed to a creator
	GetTokensByCreator(ctx context.Context, creator string) ([]dto.Token, error)

	// RefreshToken re-reads name and symbol from chain, keeping creator and creation time
	RefreshToken(ctx context.Context, address string) (*dto.Token, error)

	// DeployToken deploys a new token contract and registers it under its owner
	DeployToken(ctx context.Context, req dto.DeployTokenRequest) (*dto.DeployTokenResponse, error)
}

type executor struct {
	store    store.Store
	resolver metadata.Resolver
	deployer deployer.Deployer
	clock    adapter.Clock
	metrics  *metrics.Metrics
}

func NewExecutor(st store.Store, resolver metadata.Resolver, dep deployer.Deployer, clock adapter.Clock, m *metrics.Metrics) Executor {
	return &executor{
		store:    st,
		resolver: resolver,
		deployer: dep,
		clock:    clock,
		metrics:  m,
	}
}

func (e *executor) ListTokens(ctx context.Context) ([]dto.Token, error) {
	tokens, err := e.store.ListTokens(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(err.Error())
	}
	return dto.MapTokensToDTO(tokens), nil
}

func (e *executor) RegisterToken(ctx context.Context, req dto.RegisterTokenRequest) (*dto.Token, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := e.store.GetTokenByAddress(ctx, req.Address)
	if err != nil {
		return nil, apierrors.NewDatabaseError(err.Error())
	}
	if existing != nil {
		return dto.MapTokenToDTO(existing), nil
	}

	name := req.Name
	if name == "" {
		name = e.resolver.ResolveName(ctx, req.Address)
	}
	symbol := req.Symbol
	if symbol == "" {
		symbol = e.resolver.ResolveSymbol(ctx, req.Address)
	}

	token := &schema.Token{
		Address:   req.Address,
		Name:      name,
		Symbol:    symbol,
		Creator:   "",
		CreatedAt: domain.TruncateTimestamp(e.clock.Now()),
	}
	if err := e.store.UpsertToken(ctx, token); err != nil {
		return nil, apierrors.NewDatabaseError(err.Error())
	}

	e.metrics.TokenDiscovered(string(domain.TokenSourceAPI))
	logger.InfoCtx(ctx, "Registered token",
		zap.String("address", token.Address),
		zap.String("name", token.Name),
		zap.String("symbol", token.Symbol))

	return dto.MapTokenToDTO(token), nil
}

func (e *executor) GetToken(ctx context.Context, address string) (*dto.Token, error) {
	token, err := e.store.GetTokenByAddress(ctx, domain.NormalizeAddress(address))
	if err != nil {
		return nil, apierrors.NewDatabaseError(err.Error())
	}
	if token == nil {
		return nil, nil
	}
	return dto.MapTokenToDTO(token), nil
}

func (e *executor) GetTokensByCreator(ctx context.Context, creator string) ([]dto.Token, error) {
	tokens, err := e.store.ListTokensByCreator(ctx, domain.NormalizeCreator(creator))
	if err != nil {
		return nil, apierrors.NewDatabaseError(err.Error())
	}
	return dto.MapTokensToDTO(tokens), nil
}

func (e *executor) RefreshToken(ctx context.Context, address string) (*dto.Token, error) {
	address = domain.NormalizeAddress(address)
	if address == "" {
		return nil, apierrors.NewBadRequestError("Token address is required")
	}

	md := e.resolver.Resolve(ctx, address)

	existing, err := e.store.GetTokenByAddress(ctx, address)
	if err != nil {
		return nil, apierrors.NewDatabaseError(err.Error())
	}

	token := &schema.Token{
		Address:   address,
		Name:      md.Name,
		Symbol:    md.Symbol,
		Creator:   "",
		CreatedAt: domain.TruncateTimestamp(e.clock.Now()),
	}
	if existing != nil {
		token.Creator = existing.Creator
		token.CreatedAt = existing.CreatedAt
	}

	if err := e.store.UpsertToken(ctx, token); err != nil {
		return nil, apierrors.NewDatabaseError(err.Error())
	}

	updated, err := e.store.GetTokenByAddress(ctx, address)
	if err != nil {
		return nil, apierrors.NewDatabaseError(err.Error())
	}
	if updated == nil {
		return nil, apierrors.NewInternalError("Failed to retrieve updated token")
	}

	logger.InfoCtx(ctx, "Refreshed token",
		zap.String("address", address),
		zap.String("name", updated.Name),
		zap.String("symbol", updated.Symbol))

	return dto.MapTokenToDTO(updated), nil
}

func (e *executor) DeployToken(ctx context.Context, req dto.DeployTokenRequest) (*dto.DeployTokenResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Deploying token",
		zap.String("name", req.TokenName),
		zap.String("symbol", req.TokenSymbol),
		zap.String("owner", req.OwnerAddress))

	// The deployment outlives the request
	deployCtx := context.WithoutCancel(ctx)

	result, err := e.deployer.Deploy(deployCtx, deployer.Request{
		Name:          req.TokenName,
		Symbol:        req.TokenSymbol,
		InitialSupply: req.Supply(),
		Owner:         req.OwnerAddress,
	})
	if err != nil {
		return nil, apierrors.NewServiceError(err.Error())
	}

	token := &schema.Token{
		Address:   domain.NormalizeAddress(result.Address),
		Name:      req.TokenName,
		Symbol:    req.TokenSymbol,
		Creator:   req.OwnerAddress,
		CreatedAt: domain.TruncateTimestamp(e.clock.Now()),
	}
	if err := e.store.UpsertToken(deployCtx, token); err != nil {
		// The contract exists on chain either way; the monitor picks it up later
		logger.WarnCtx(ctx, "Could not save deployed token",
			zap.String("address", result.Address),
			zap.Error(err))
	} else {
		e.metrics.TokenDiscovered(string(domain.TokenSourceDeploy))
	}

	return &dto.DeployTokenResponse{
		Success:         true,
		Address:         result.Address,
		TransactionHash: result.TransactionHash,
	}, nil
}
