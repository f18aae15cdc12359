package schema

import "time"

// Token represents a registered ERC-20 style token on Starknet
type Token struct {
	// Address is the token contract address as stored on first discovery
	Address string `gorm:"column:address;primaryKey;type:text"`
	// Name is the on-chain name, or the placeholder when unreadable
	Name string `gorm:"column:name;type:text;not null"`
	// Symbol is the on-chain symbol, or the placeholder when unreadable
	Symbol string `gorm:"column:symbol;type:text;not null"`
	// Creator is the creator address; empty when unknown
	Creator string `gorm:"column:creator;type:text;not null;default:'';index:idx_tokens_creator"`
	// CreatedAt is when the registry first saw the token
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;index:idx_tokens_created_at"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}
