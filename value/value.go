// Package value provides the dynamic value representation used for specification
// extensions and literal parameter data, plus the two-shape container used wherever
// the Arazzo specification allows either a literal value or a runtime expression.
package value

import (
	"fmt"
	"sort"
	"strings"
)

// Kind represents the kind of data held by a Value
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindArray
	KindObject
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Boolean"
	case KindInt:
		return "Integer"
	case KindUint:
		return "UInteger"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// Value is a closed variant over the data shapes that can appear in an extension
// field or literal parameter value. Values are constructed once during loading and
// are immutable afterwards.
type Value struct {
	kind Kind

	// Scalar values (only one valid based on kind)
	boolVal  bool
	intVal   int64
	uintVal  uint64
	floatVal float64
	strVal   string

	// Container values
	arrayVal  []Value
	objectVal map[string]Value
}

// NullValue returns the null Value
func NullValue() Value {
	return Value{kind: KindNull}
}

// BoolValue returns a boolean Value
func BoolValue(b bool) Value {
	return Value{kind: KindBool, boolVal: b}
}

// IntValue returns a 64-bit signed integer Value
func IntValue(i int64) Value {
	return Value{kind: KindInt, intVal: i}
}

// UintValue returns a 64-bit unsigned integer Value
func UintValue(u uint64) Value {
	return Value{kind: KindUint, uintVal: u}
}

// FloatValue returns a 64-bit floating point Value
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, floatVal: f}
}

// StringValue returns a string Value
func StringValue(s string) Value {
	return Value{kind: KindString, strVal: s}
}

// ArrayValue returns an array Value holding the given items
func ArrayValue(items []Value) Value {
	return Value{kind: KindArray, arrayVal: items}
}

// ObjectValue returns an object Value holding the given fields
func ObjectValue(fields map[string]Value) Value {
	return Value{kind: KindObject, objectVal: fields}
}

// Kind returns the kind of data held by the Value
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull returns true if the Value is null
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Bool returns the boolean data, or false if the Value is not a boolean
func (v Value) Bool() bool {
	return v.boolVal
}

// Int returns the signed integer data, or zero if the Value is not a signed integer
func (v Value) Int() int64 {
	return v.intVal
}

// Uint returns the unsigned integer data, or zero if the Value is not an unsigned integer
func (v Value) Uint() uint64 {
	return v.uintVal
}

// Float returns the floating point data, or zero if the Value is not a float
func (v Value) Float() float64 {
	return v.floatVal
}

// Str returns the string data, or the empty string if the Value is not a string
func (v Value) Str() string {
	return v.strVal
}

// Items returns the array items, or nil if the Value is not an array
func (v Value) Items() []Value {
	return v.arrayVal
}

// Fields returns the object fields, or nil if the Value is not an object
func (v Value) Fields() map[string]Value {
	return v.objectVal
}

// Equal returns true if the other Value is structurally equal to this one
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolVal == o.boolVal
	case KindInt:
		return v.intVal == o.intVal
	case KindUint:
		return v.uintVal == o.uintVal
	case KindFloat:
		return v.floatVal == o.floatVal
	case KindString:
		return v.strVal == o.strVal
	case KindArray:
		if len(v.arrayVal) != len(o.arrayVal) {
			return false
		}
		for i, item := range v.arrayVal {
			if !item.Equal(o.arrayVal[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.objectVal) != len(o.objectVal) {
			return false
		}
		for k, item := range v.objectVal {
			other, ok := o.objectVal[k]
			if !ok || !item.Equal(other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String returns a debug rendering of the Value
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return fmt.Sprintf("%v", v.boolVal)
	case KindInt:
		return fmt.Sprintf("%d", v.intVal)
	case KindUint:
		return fmt.Sprintf("%d", v.uintVal)
	case KindFloat:
		return fmt.Sprintf("%v", v.floatVal)
	case KindString:
		return fmt.Sprintf("%q", v.strVal)
	case KindArray:
		parts := make([]string, 0, len(v.arrayVal))
		for _, item := range v.arrayVal {
			parts = append(parts, item.String())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindObject:
		keys := make([]string, 0, len(v.objectVal))
		for k := range v.objectVal {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%q: %s", k, v.objectVal[k].String()))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "unknown"
	}
}
