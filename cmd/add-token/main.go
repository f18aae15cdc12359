package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Jack28cas/zeroshade/internal/adapter"
	"github.com/Jack28cas/zeroshade/internal/api/shared/dto"
	"github.com/Jack28cas/zeroshade/internal/domain"
	"github.com/Jack28cas/zeroshade/internal/logger"
)

const defaultTokenAddress = "0x0001be7154d1142684a8585e44c5efbe6ad98dc6fb70a70ef4c1de5cd03d1738"

var (
	apiURL  = flag.String("api", "http://localhost:3001", "Base URL of the registry API")
	address = flag.String("address", defaultTokenAddress, "Token contract address to register")
	name    = flag.String("name", "", "Token name (resolved from chain when empty)")
	symbol  = flag.String("symbol", "", "Token symbol (resolved from chain when empty)")
	timeout = flag.Duration("timeout", 30*time.Second, "Request timeout")
	debug   = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	if err := logger.Initialize(logger.Config{Debug: *debug}); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	token, err := registerToken(ctx, adapter.NewHTTPClient(*timeout), *apiURL, dto.RegisterTokenRequest{
		Address: *address,
		Name:    *name,
		Symbol:  *symbol,
	})
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("address", *address))
		os.Exit(1)
	}

	logger.InfoCtx(ctx, "Token registered",
		zap.String("address", token.Address),
		zap.String("name", token.Name),
		zap.String("symbol", token.Symbol),
		zap.String("creator", token.Creator),
	)
}

// registerToken posts the token to the registry and returns the stored record
func registerToken(ctx context.Context, client adapter.HTTPClient, baseURL string, req dto.RegisterTokenRequest) (*dto.Token, error) {
	req.Normalize()
	if !domain.IsValidAddress(req.Address) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, req.Address)
	}

	var token dto.Token
	url := strings.TrimRight(baseURL, "/") + "/api/tokens"
	if err := client.PostJSON(ctx, url, req, &token); err != nil {
		var statusErr *adapter.HTTPStatusError
		if errors.As(err, &statusErr) {
			return nil, fmt.Errorf("registry rejected token (status %d): %s", statusErr.StatusCode, statusErr.Body)
		}
		return nil, fmt.Errorf("failed to register token: %w", err)
	}

	return &token, nil
}
