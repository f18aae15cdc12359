package dto

import (
	"time"

	"github.com/Jack28cas/zeroshade/internal/store/schema"
)

// Token represents a registered token
type Token struct {
	Address   string    `json:"address"`
	Name      string    `json:"name"`
	Symbol    string    `json:"symbol"`
	Creator   string    `json:"creator"`
	CreatedAt time.Time `json:"createdAt"`
}

// MapTokenToDTO maps a stored token to its API representation
func MapTokenToDTO(token *schema.Token) *Token {
	if token == nil {
		return nil
	}
	return &Token{
		Address:   token.Address,
		Name:      token.Name,
		Symbol:    token.Symbol,
		Creator:   token.Creator,
		CreatedAt: token.CreatedAt.UTC(),
	}
}

// MapTokensToDTO maps stored tokens, always returning a non-nil slice
func MapTokensToDTO(tokens []schema.Token) []Token {
	result := make([]Token, 0, len(tokens))
	for i := range tokens {
		result = append(result, *MapTokenToDTO(&tokens[i]))
	}
	return result
}
