package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	apierrors "github.com/Jack28cas/zeroshade/internal/api/shared/errors"
	"github.com/Jack28cas/zeroshade/internal/domain"
)

// RegisterTokenRequest represents the request body for registering a token by address.
// Name and symbol are read from chain when omitted.
type RegisterTokenRequest struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
	Symbol  string `json:"symbol,omitempty"`
}

// Normalize trims every field
func (r *RegisterTokenRequest) Normalize() {
	r.Address = domain.NormalizeAddress(r.Address)
	r.Name = strings.TrimSpace(r.Name)
	r.Symbol = strings.TrimSpace(r.Symbol)
}

// Validate validates the request body
func (r *RegisterTokenRequest) Validate() error {
	if r.Address == "" {
		return apierrors.NewBadRequestError("Token address is required")
	}
	return nil
}

// DeployTokenRequest represents the request body for deploying a new token.
// InitialSupply accepts a JSON number or a numeric string.
type DeployTokenRequest struct {
	TokenName     string           `json:"tokenName"`
	TokenSymbol   string           `json:"tokenSymbol"`
	InitialSupply *decimal.Decimal `json:"initialSupply"`
	OwnerAddress  string           `json:"ownerAddress"`
}

// Normalize trims every text field
func (r *DeployTokenRequest) Normalize() {
	r.TokenName = strings.TrimSpace(r.TokenName)
	r.TokenSymbol = strings.TrimSpace(r.TokenSymbol)
	r.OwnerAddress = domain.NormalizeCreator(r.OwnerAddress)
}

// Validate validates the request body
func (r *DeployTokenRequest) Validate() error {
	if r.TokenName == "" || r.TokenSymbol == "" || r.InitialSupply == nil {
		return apierrors.NewBadRequestError("tokenName, tokenSymbol, and initialSupply are required")
	}

	if r.OwnerAddress == "" {
		return apierrors.NewBadRequestError("ownerAddress is required")
	}

	if r.InitialSupply.IsNegative() || !r.InitialSupply.IsInteger() {
		return apierrors.NewValidationError("initialSupply must be a non-negative integer")
	}

	return nil
}

// Supply renders the initial supply as a plain integer string
func (r *DeployTokenRequest) Supply() string {
	if r.InitialSupply == nil {
		return ""
	}
	return r.InitialSupply.String()
}
