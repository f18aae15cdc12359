package starknet

import (
	"github.com/Jack28cas/zeroshade/internal/chainvalue"
)

// View functions read by the registry
var (
	FunctionName = Function{
		Name:    "name",
		Outputs: []Member{{Name: "name", Type: TypeFelt252}},
	}
	FunctionSymbol = Function{
		Name:    "symbol",
		Outputs: []Member{{Name: "symbol", Type: TypeFelt252}},
	}
	FunctionGetTokenCount = Function{
		Name:    "get_token_count",
		Outputs: []Member{{Name: "count", Type: TypeU256}},
	}
	FunctionGetTokenAt = Function{
		Name:    "get_token_at",
		Outputs: []Member{{Name: "token_address", Type: TypeContractAddress}},
	}
	FunctionGetLaunchInfo = Function{
		Name: "get_launch_info",
		Outputs: []Member{{
			Name: "launch_info",
			Type: TypeStruct,
			Members: []Member{
				{Name: "token_address", Type: TypeContractAddress},
				{Name: "creator", Type: TypeContractAddress},
				{Name: "initial_price", Type: TypeU256},
				{Name: "current_price", Type: TypeU256},
				{Name: "total_supply", Type: TypeU256},
				{Name: "liquidity", Type: TypeU256},
				{Name: "k", Type: TypeU256},
				{Name: "n", Type: TypeU256},
				{Name: "fee_rate", Type: TypeU256},
				{Name: "launch_time", Type: TypeU64},
				{Name: "is_active", Type: TypeBool},
			},
		}},
	}
)

// LaunchInfo is the subset of a launchpad listing the registry uses
type LaunchInfo struct {
	TokenAddress string
	Creator      string
	IsActive     bool
}

// ParseLaunchInfo extracts a LaunchInfo from a decoded get_launch_info result
func ParseLaunchInfo(v chainvalue.Value) LaunchInfo {
	s, ok := v.(chainvalue.Struct)
	if !ok {
		return LaunchInfo{}
	}
	if inner, ok := s.Get("launch_info"); ok {
		if innerStruct, ok := inner.(chainvalue.Struct); ok {
			s = innerStruct
		}
	}

	info := LaunchInfo{}
	if f, ok := s.Get("token_address"); ok {
		info.TokenAddress = chainvalue.Decode(f, "token_address")
	}
	if f, ok := s.Get("creator"); ok {
		info.Creator = chainvalue.Decode(f, "creator")
	}
	if f, ok := s.Get("is_active"); ok {
		info.IsActive = chainvalue.Decode(f, "is_active") == "true"
	}
	return info
}
