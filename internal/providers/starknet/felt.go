package starknet

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// mask250 keeps the low 250 bits of a keccak digest, as Starknet selectors do
var mask250 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 250), big.NewInt(1))

// ParseFelt parses a felt given as 0x-prefixed hex (leading zeros allowed) or decimal
func ParseFelt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	digits, base := s, 10
	if strings.HasPrefix(strings.ToLower(s), "0x") {
		digits, base = s[2:], 16
	}
	if digits == "" {
		return nil, fmt.Errorf("invalid felt %q", s)
	}

	n, ok := new(big.Int).SetString(digits, base)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("invalid felt %q", s)
	}
	return n, nil
}

// FeltFromUint64 encodes n as a 0x-prefixed felt
func FeltFromUint64(n uint64) string {
	return hexutil.EncodeUint64(n)
}

// FeltToHex renders a felt as minimal 0x-prefixed lowercase hex
func FeltToHex(n *big.Int) string {
	return hexutil.EncodeBig(n)
}

// GetSelectorFromName returns the entry point selector of a Cairo function
func GetSelectorFromName(name string) string {
	digest := new(big.Int).SetBytes(crypto.Keccak256([]byte(name)))
	return FeltToHex(digest.And(digest, mask250))
}
