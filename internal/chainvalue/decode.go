package chainvalue

import (
	"fmt"
	"math/big"
	"strings"
)

const (
	// NullText is returned for an absent result
	NullText = "Unknown"

	fallbackPrefix = "Token_"
	fallbackLength = 20
)

// Decode renders a contract call result as text. When v is a struct, the field
// named query wins, then a field named "value", then a low/high pair (low half),
// then the first primitive field. Lists decode their first item. Anything else
// falls back to "Token_" followed by the first 20 characters of its dump.
func Decode(v Value, query string) string {
	switch t := v.(type) {
	case nil, Null:
		return NullText
	case Primitive:
		return t.Text
	case WideInt:
		return bigString(t.Low)
	case Struct:
		if query != "" {
			if f, ok := t.Get(query); ok {
				return Decode(f, query)
			}
		}
		if f, ok := t.Get("value"); ok {
			return Decode(f, query)
		}
		if low, ok := t.Get("low"); ok {
			if _, ok := t.Get("high"); ok {
				return Decode(low, query)
			}
		}
		for _, f := range t.Fields {
			if p, ok := f.Value.(Primitive); ok {
				return p.Text
			}
		}
		return fallback(t)
	case List:
		if len(t.Items) > 0 {
			return Decode(t.Items[0], query)
		}
		return fallback(t)
	default:
		return fallback(v)
	}
}

// DecodeCount decodes a count-shaped result (a "count" field, a u256, or a bare
// felt) into an unsigned integer
func DecodeCount(v Value) (uint64, error) {
	text := strings.TrimSpace(Decode(v, "count"))

	digits, base := text, 10
	if strings.HasPrefix(strings.ToLower(text), "0x") {
		digits, base = text[2:], 16
	}

	n, ok := new(big.Int).SetString(digits, base)
	if !ok || n.Sign() < 0 || !n.IsUint64() {
		return 0, fmt.Errorf("invalid count value %q", text)
	}

	return n.Uint64(), nil
}

func fallback(v Value) string {
	runes := []rune(Dump(v))
	if len(runes) > fallbackLength {
		runes = runes[:fallbackLength]
	}
	return fallbackPrefix + string(runes)
}
