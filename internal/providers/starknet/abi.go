package starknet

import (
	"fmt"

	"github.com/Jack28cas/zeroshade/internal/chainvalue"
)

// Type is a Cairo ABI type understood by the decoder
type Type string

const (
	TypeFelt252         Type = "core::felt252"
	TypeContractAddress Type = "core::starknet::contract_address::ContractAddress"
	TypeU256            Type = "core::integer::u256"
	TypeU64             Type = "core::integer::u64"
	TypeBool            Type = "core::bool"
	TypeStruct          Type = "struct"
)

// Member is a function output or a struct member
type Member struct {
	Name    string
	Type    Type
	Members []Member // only for TypeStruct
}

// Function describes a view function and its outputs
type Function struct {
	Name    string
	Outputs []Member
}

// Selector returns the entry point selector of the function
func (f Function) Selector() string {
	return GetSelectorFromName(f.Name)
}

// DecodeOutputs decodes raw felts into a struct keyed by output name, the same
// shape starknet.js hands back for a parsed call result
func DecodeOutputs(outputs []Member, felts []string) (chainvalue.Value, error) {
	fields, rest, err := decodeMembers(outputs, felts)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("unexpected %d trailing felts", len(rest))
	}
	return chainvalue.Struct{Fields: fields}, nil
}

func decodeMembers(members []Member, felts []string) ([]chainvalue.Field, []string, error) {
	fields := make([]chainvalue.Field, 0, len(members))
	for _, m := range members {
		v, rest, err := decodeMember(m, felts)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decode %s: %w", m.Name, err)
		}
		fields = append(fields, chainvalue.Field{Name: m.Name, Value: v})
		felts = rest
	}
	return fields, felts, nil
}

func decodeMember(m Member, felts []string) (chainvalue.Value, []string, error) {
	switch m.Type {
	case TypeStruct:
		fields, rest, err := decodeMembers(m.Members, felts)
		if err != nil {
			return nil, nil, err
		}
		return chainvalue.Struct{Fields: fields}, rest, nil

	case TypeU256:
		if len(felts) < 2 {
			return nil, nil, fmt.Errorf("u256 needs 2 felts, got %d", len(felts))
		}
		low, err := ParseFelt(felts[0])
		if err != nil {
			return nil, nil, err
		}
		high, err := ParseFelt(felts[1])
		if err != nil {
			return nil, nil, err
		}
		return chainvalue.WideInt{Low: low, High: high}, felts[2:], nil

	case TypeFelt252, TypeU64, TypeContractAddress, TypeBool:
		if len(felts) < 1 {
			return nil, nil, fmt.Errorf("%s needs 1 felt, got 0", m.Type)
		}
		n, err := ParseFelt(felts[0])
		if err != nil {
			return nil, nil, err
		}

		var text string
		switch m.Type {
		case TypeContractAddress:
			text = FeltToHex(n)
		case TypeBool:
			text = fmt.Sprintf("%t", n.Sign() != 0)
		default:
			text = n.String()
		}
		return chainvalue.Text(text), felts[1:], nil

	default:
		return nil, nil, fmt.Errorf("unsupported type %s", m.Type)
	}
}
