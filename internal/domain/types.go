package domain

import (
	"math/big"
	"regexp"
	"strings"
	"time"
)

// Chain represents the Starknet network identifier
type Chain string

const (
	ChainStarknetMainnet Chain = "SN_MAIN"
	ChainStarknetSepolia Chain = "SN_SEPOLIA"
)

// IsValidChain checks if a chain is valid
func IsValidChain(chain Chain) bool {
	return chain == ChainStarknetMainnet ||
		chain == ChainStarknetSepolia
}

// TokenSource identifies where a token record was learned from
type TokenSource string

const (
	TokenSourceFactory   TokenSource = "factory"
	TokenSourceLaunchpad TokenSource = "launchpad"
	TokenSourceAPI       TokenSource = "api"
	TokenSourceDeploy    TokenSource = "deploy"
)

var addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{1,64}$`)

// IsValidAddress reports whether address is a 0x-prefixed felt of at most 64 hex digits
func IsValidAddress(address string) bool {
	return addressRegex.MatchString(address)
}

// IsPlaceholderAddress reports whether address carries no token: empty, "0", "0x0"
// or any other encoding of the zero felt
func IsPlaceholderAddress(address string) bool {
	address = strings.TrimSpace(address)
	if address == "" {
		return true
	}

	lower := strings.ToLower(address)
	base := 10
	if strings.HasPrefix(lower, "0x") {
		lower = lower[2:]
		base = 16
	}
	if lower == "" {
		return true
	}

	n, ok := new(big.Int).SetString(lower, base)
	if !ok {
		return false
	}

	return n.Sign() == 0
}

// NormalizeAddress returns the canonical form of a token address: lowercase
// hex zero-padded to 64 digits. Input that is not a hex felt is only trimmed.
func NormalizeAddress(address string) string {
	address = strings.TrimSpace(address)
	if !IsValidAddress(address) {
		return address
	}
	return "0x" + strings.Repeat("0", 66-len(address)) + strings.ToLower(address[2:])
}

// NormalizeCreator trims a creator address. Creators are kept as supplied.
func NormalizeCreator(creator string) string {
	return strings.TrimSpace(creator)
}

// TruncateTimestamp rounds t down to the microsecond precision postgres keeps
func TruncateTimestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
