// Package chainvalue models the result shapes returned by Starknet contract
// calls and decodes them into plain text.
package chainvalue

import (
	"math/big"
	"strconv"
	"strings"
)

// Value is a decoded contract call result
type Value interface {
	isValue()
}

// Null is an absent result
type Null struct{}

// Primitive is a scalar already rendered as text (felt, address, bool, small integer)
type Primitive struct {
	Text string
}

// WideInt is a 256-bit integer split into two 128-bit halves
type WideInt struct {
	Low  *big.Int
	High *big.Int
}

// Field is a named member of a Struct
type Field struct {
	Name  string
	Value Value
}

// Struct is an ordered set of named fields
type Struct struct {
	Fields []Field
}

// List is an ordered sequence of values
type List struct {
	Items []Value
}

func (Null) isValue()      {}
func (Primitive) isValue() {}
func (WideInt) isValue()   {}
func (Struct) isValue()    {}
func (List) isValue()      {}

// Wrapped returns a single-field struct, the shape most getters return
func Wrapped(name string, v Value) Struct {
	return Struct{Fields: []Field{{Name: name, Value: v}}}
}

// Text is a shorthand for Primitive{Text: s}
func Text(s string) Primitive {
	return Primitive{Text: s}
}

// NewWideInt builds a WideInt from its halves
func NewWideInt(low, high uint64) WideInt {
	return WideInt{
		Low:  new(big.Int).SetUint64(low),
		High: new(big.Int).SetUint64(high),
	}
}

// Get returns the field with the given name
func (s Struct) Get(name string) (Value, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Dump renders a value as compact JSON-like text
func Dump(v Value) string {
	var b strings.Builder
	dump(&b, v)
	return b.String()
}

func dump(b *strings.Builder, v Value) {
	switch t := v.(type) {
	case nil, Null:
		b.WriteString("null")
	case Primitive:
		b.WriteString(strconv.Quote(t.Text))
	case WideInt:
		b.WriteString(`{"low":`)
		b.WriteString(strconv.Quote(bigString(t.Low)))
		b.WriteString(`,"high":`)
		b.WriteString(strconv.Quote(bigString(t.High)))
		b.WriteString("}")
	case Struct:
		b.WriteString("{")
		for i, f := range t.Fields {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(strconv.Quote(f.Name))
			b.WriteString(":")
			dump(b, f.Value)
		}
		b.WriteString("}")
	case List:
		b.WriteString("[")
		for i, item := range t.Items {
			if i > 0 {
				b.WriteString(",")
			}
			dump(b, item)
		}
		b.WriteString("]")
	default:
		b.WriteString("null")
	}
}

func bigString(n *big.Int) string {
	if n == nil {
		return "0"
	}
	return n.String()
}
