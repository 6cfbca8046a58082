package dataTree

import (
	"cmp"
	"math"
	"reflect"
	"strconv"
)

// NumberTag tells which payload of a Number is meaningful.
// The order matters: numbers of different tags are ordered by tag.
type NumberTag uint8

const (
	NumberNone NumberTag = iota
	NumberInt
	NumberUInt
	NumberDouble
)

func (t NumberTag) String() string {
	switch t {
	case NumberNone:
		return "none"
	case NumberInt:
		return "int"
	case NumberUInt:
		return "uint"
	case NumberDouble:
		return "double"
	default:
		return "unknown"
	}
}

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Float interface {
	~float32 | ~float64
}

// Numeric is any primitive a Number can be built from. Bool is deliberately absent.
type Numeric interface {
	Signed | Unsigned | Float
}

/*
Number holds a signed, unsigned or floating point value, or nothing at all.
The zero Number holds nothing.
Accessors never reinterpret one payload as another: asking for the wrong one gives ErrBadAccess.
*/
type Number struct {
	tag NumberTag
	i   int64
	u   uint64
	f   float64
}

// NumberOf picks the tag from the Go type of v: floats become Double,
// signed integers Int and unsigned integers UInt.
func NumberOf[T Numeric](v T) Number {
	n := Number{}
	SetNumber(&n, v)
	return n
}

// SetNumber stores v into n, retagging it by the Go type of v.
func SetNumber[T Numeric](n *Number, v T) {
	*n, _ = numberFromAny(v)
}

func numberFromAny(v interface{}) (Number, bool) {
	switch x := v.(type) {
	case float32:
		return DoubleNumber(float64(x)), true
	case float64:
		return DoubleNumber(x), true
	case int:
		return IntNumber(int64(x)), true
	case int8:
		return IntNumber(int64(x)), true
	case int16:
		return IntNumber(int64(x)), true
	case int32:
		return IntNumber(int64(x)), true
	case int64:
		return IntNumber(x), true
	case uint:
		return UIntNumber(uint64(x)), true
	case uint8:
		return UIntNumber(uint64(x)), true
	case uint16:
		return UIntNumber(uint64(x)), true
	case uint32:
		return UIntNumber(uint64(x)), true
	case uint64:
		return UIntNumber(x), true
	case uintptr:
		return UIntNumber(uint64(x)), true
	case Number:
		return x, true
	}

	// named kinds like type Level int
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntNumber(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return UIntNumber(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return DoubleNumber(rv.Float()), true
	default:
		return Number{}, false
	}
}

func IntNumber(v int64) Number {
	return Number{tag: NumberInt, i: v}
}

func UIntNumber(v uint64) Number {
	return Number{tag: NumberUInt, u: v}
}

func DoubleNumber(v float64) Number {
	return Number{tag: NumberDouble, f: v}
}

func (n *Number) SetInt(v int64) {
	*n = Number{tag: NumberInt, i: v}
}

func (n *Number) SetUInt(v uint64) {
	*n = Number{tag: NumberUInt, u: v}
}

func (n *Number) SetDouble(v float64) {
	*n = Number{tag: NumberDouble, f: v}
}

// Reset drops the payload, the number holds nothing afterwards.
func (n *Number) Reset() {
	*n = Number{}
}

func (n Number) Tag() NumberTag {
	return n.tag
}

func (n Number) HasValue() bool {
	return n.tag != NumberNone
}

func (n Number) IsInt() bool {
	return n.tag == NumberInt
}

func (n Number) IsUInt() bool {
	return n.tag == NumberUInt
}

func (n Number) IsDouble() bool {
	return n.tag == NumberDouble
}

func (n Number) GetInt() (int64, error) {
	if n.tag != NumberInt {
		return 0, ErrBadAccess
	}

	return n.i, nil
}

func (n Number) GetUInt() (uint64, error) {
	if n.tag != NumberUInt {
		return 0, ErrBadAccess
	}

	return n.u, nil
}

func (n Number) GetDouble() (float64, error) {
	if n.tag != NumberDouble {
		return 0, ErrBadAccess
	}

	return n.f, nil
}

// VisitNumber calls the handler matching the tag of n and returns its result.
func VisitNumber[R any](n Number, onNone func() R, onInt func(int64) R, onUInt func(uint64) R, onDouble func(float64) R) R {
	switch n.tag {
	case NumberInt:
		return onInt(n.i)
	case NumberUInt:
		return onUInt(n.u)
	case NumberDouble:
		return onDouble(n.f)
	default:
		return onNone()
	}
}

// Equal is true for equal tags with equal payloads. Doubles use native
// comparison, so a NaN is never equal to anything.
func (n Number) Equal(other Number) bool {
	if n.tag != other.tag {
		return false
	}

	switch n.tag {
	case NumberInt:
		return n.i == other.i
	case NumberUInt:
		return n.u == other.u
	case NumberDouble:
		return n.f == other.f
	default:
		return true
	}
}

/*
Less orders numbers of different tags by tag alone: None < Int < UInt < Double,
so IntNumber(1) < UIntNumber(0) even though 1 > 0.
Numbers of the same tag compare their payloads natively, a NaN is neither less nor greater.
*/
func (n Number) Less(other Number) bool {
	if n.tag != other.tag {
		return n.tag < other.tag
	}

	switch n.tag {
	case NumberInt:
		return n.i < other.i
	case NumberUInt:
		return n.u < other.u
	case NumberDouble:
		return n.f < other.f
	default:
		return false
	}
}

// Compare is a total version of Less for sorting: -1, 0 or +1.
// Unlike Less it puts a NaN before any other double.
func (n Number) Compare(other Number) int {
	if n.tag != other.tag {
		return cmp.Compare(n.tag, other.tag)
	}

	switch n.tag {
	case NumberInt:
		return cmp.Compare(n.i, other.i)
	case NumberUInt:
		return cmp.Compare(n.u, other.u)
	case NumberDouble:
		return cmp.Compare(n.f, other.f)
	default:
		return 0
	}
}

// Neg negates the payload keeping the tag. An unsigned value wraps around like Go's unary minus.
func (n Number) Neg() Number {
	switch n.tag {
	case NumberInt:
		return IntNumber(-n.i)
	case NumberUInt:
		return UIntNumber(-n.u)
	case NumberDouble:
		return DoubleNumber(-n.f)
	default:
		return n
	}
}

func (n Number) String() string {
	return string(n.appendTo(nil))
}

func (n Number) appendTo(out []byte) []byte {
	switch n.tag {
	case NumberInt:
		return strconv.AppendInt(out, n.i, 10)
	case NumberUInt:
		return strconv.AppendUint(out, n.u, 10)
	case NumberDouble:
		if math.IsNaN(n.f) || math.IsInf(n.f, 0) {
			return append(out, "null"...)
		}
		return strconv.AppendFloat(out, n.f, 'f', -1, 64)
	default:
		return append(out, "null"...)
	}
}
