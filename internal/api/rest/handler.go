package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jack28cas/zeroshade/internal/adapter"
	"github.com/Jack28cas/zeroshade/internal/api/shared/dto"
	"github.com/Jack28cas/zeroshade/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// ListTokens retrieves every registered token
	// GET /api/tokens
	ListTokens(c *gin.Context)

	// RegisterToken registers a token deployed outside the factory
	// POST /api/tokens {address, name?, symbol?}
	RegisterToken(c *gin.Context)

	// GetToken retrieves a token by address
	// GET /api/tokens/:address
	GetToken(c *gin.Context)

	// GetTokensByCreator retrieves the tokens of a creator
	// GET /api/tokens/creator/:creator
	GetTokensByCreator(c *gin.Context)

	// RefreshToken re-reads name and symbol from chain
	// POST /api/tokens/:address/refresh
	RefreshToken(c *gin.Context)

	// DeployToken deploys a new token contract
	// POST /api/tokens/deploy {tokenName, tokenSymbol, initialSupply, ownerAddress}
	DeployToken(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
	clock    adapter.Clock
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor, clock adapter.Clock) Handler {
	return &handler{
		executor: exec,
		clock:    clock,
	}
}

// ListTokens retrieves every registered token
func (h *handler) ListTokens(c *gin.Context) {
	tokens, err := h.executor.ListTokens(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// RegisterToken registers a token by address
func (h *handler) RegisterToken(c *gin.Context) {
	var req dto.RegisterTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	token, err := h.executor.RegisterToken(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

// GetToken retrieves a token by address
func (h *handler) GetToken(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		respondBadRequest(c, "Token address is required")
		return
	}

	token, err := h.executor.GetToken(c.Request.Context(), address)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if token == nil {
		respondNotFound(c, "Token not found")
		return
	}

	c.JSON(http.StatusOK, token)
}

// GetTokensByCreator retrieves the tokens of a creator
func (h *handler) GetTokensByCreator(c *gin.Context) {
	tokens, err := h.executor.GetTokensByCreator(c.Request.Context(), c.Param("creator"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// RefreshToken re-reads name and symbol from chain
func (h *handler) RefreshToken(c *gin.Context) {
	token, err := h.executor.RefreshToken(c.Request.Context(), c.Param("address"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

// DeployToken deploys a new token contract
func (h *handler) DeployToken(c *gin.Context) {
	var req dto.DeployTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.DeployToken(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: h.clock.Now().UTC(),
	})
}
