package dataTree

import (
	"reflect"
	"strconv"
	"strings"
)

// Null is the empty value, every Null equals every other.
type Null struct{}

func (Null) String() string {
	return "null"
}

// Kind tells which alternative a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Scalar is any Go type a Value can be built from, named types like type ID string included.
type Scalar interface {
	Null | ~bool | ~string | Number | Numeric
}

/*
Value is a leaf of the tree: null, bool, number or string.
The zero Value is null.
*/
type Value struct {
	kind Kind
	b    bool
	num  Number
	s    string
}

var (
	NullValue  = Value{}
	TrueValue  = BoolValue(true)
	FalseValue = BoolValue(false)
)

// ValueOf wraps v, numeric primitives are promoted into a Number.
func ValueOf[T Scalar](v T) Value {
	return valueFromAny(v)
}

// SetValue replaces whatever dst holds with v.
func SetValue[T Scalar](dst *Value, v T) {
	*dst = valueFromAny(v)
}

func valueFromAny(v interface{}) Value {
	switch x := v.(type) {
	case Null:
		return Value{}
	case bool:
		return BoolValue(x)
	case string:
		return StringValue(x)
	}

	if num, ok := numberFromAny(v); ok {
		return NumberValue(num)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return BoolValue(rv.Bool())
	case reflect.String:
		return StringValue(rv.String())
	default:
		return Value{}
	}
}

func BoolValue(v bool) Value {
	return Value{kind: KindBool, b: v}
}

func StringValue(v string) Value {
	return Value{kind: KindString, s: v}
}

func NumberValue(v Number) Value {
	return Value{kind: KindNumber, num: v}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) HasNull() bool {
	return v.kind == KindNull
}

func (v Value) HasBool() bool {
	return v.kind == KindBool
}

func (v Value) HasNumber() bool {
	return v.kind == KindNumber
}

func (v Value) HasString() bool {
	return v.kind == KindString
}

func (v Value) TryGetNull() (Null, error) {
	if v.kind != KindNull {
		return Null{}, ErrBadAccess
	}

	return Null{}, nil
}

func (v Value) TryGetBool() (bool, error) {
	if v.kind != KindBool {
		return false, ErrBadAccess
	}

	return v.b, nil
}

func (v Value) TryGetNumber() (Number, error) {
	if v.kind != KindNumber {
		return Number{}, ErrBadAccess
	}

	return v.num, nil
}

func (v Value) TryGetString() (string, error) {
	if v.kind != KindString {
		return "", ErrBadAccess
	}

	return v.s, nil
}

// GetNull trusts the caller that v holds null, panics with ErrBadAccess otherwise.
func (v Value) GetNull() Null {
	v.must(KindNull)
	return Null{}
}

// GetBool trusts the caller that v holds a bool, panics with ErrBadAccess otherwise.
func (v Value) GetBool() bool {
	v.must(KindBool)
	return v.b
}

// GetNumber trusts the caller that v holds a number, panics with ErrBadAccess otherwise.
func (v Value) GetNumber() Number {
	v.must(KindNumber)
	return v.num
}

// GetString trusts the caller that v holds a string, panics with ErrBadAccess otherwise.
func (v Value) GetString() string {
	v.must(KindString)
	return v.s
}

func (v Value) must(kind Kind) {
	if v.kind != kind {
		panic(ErrBadAccess)
	}
}

func (v *Value) SetNull() {
	*v = Value{}
}

func (v *Value) SetBool(b bool) {
	*v = BoolValue(b)
}

func (v *Value) SetNumber(num Number) {
	*v = NumberValue(num)
}

func (v *Value) SetString(s string) {
	*v = StringValue(s)
}

// Reset turns v back into null.
func (v *Value) Reset() {
	*v = Value{}
}

func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.num.Equal(other.num)
	case KindString:
		return v.s == other.s
	default:
		return true
	}
}

// Compare orders by kind first (null < bool < number < string), then by payload.
func (v Value) Compare(other Value) int {
	if v.kind != other.kind {
		if v.kind < other.kind {
			return -1
		}
		return 1
	}

	switch v.kind {
	case KindBool:
		if v.b == other.b {
			return 0
		}
		if !v.b {
			return -1
		}
		return 1
	case KindNumber:
		return v.num.Compare(other.num)
	case KindString:
		return strings.Compare(v.s, other.s)
	default:
		return 0
	}
}

func (v Value) Less(other Value) bool {
	if v.kind == KindNumber && other.kind == KindNumber {
		return v.num.Less(other.num)
	}

	return v.Compare(other) < 0
}

func (v Value) String() string {
	return string(v.appendTo(nil))
}

func (v Value) appendTo(out []byte) []byte {
	switch v.kind {
	case KindBool:
		return strconv.AppendBool(out, v.b)
	case KindNumber:
		return v.num.appendTo(out)
	case KindString:
		return appendQuoted(out, v.s)
	default:
		return append(out, "null"...)
	}
}
