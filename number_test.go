package dataTree

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberOf(t *testing.T) {
	tests := []struct {
		number Number
		tag    NumberTag
		str    string
	}{
		{number: Number{}, tag: NumberNone, str: "null"},
		{number: NumberOf(5), tag: NumberInt, str: "5"},
		{number: NumberOf(int8(-5)), tag: NumberInt, str: "-5"},
		{number: NumberOf(uint16(7)), tag: NumberUInt, str: "7"},
		{number: NumberOf(uint64(math.MaxUint64)), tag: NumberUInt, str: "18446744073709551615"},
		{number: NumberOf(1.5), tag: NumberDouble, str: "1.5"},
		{number: NumberOf(float32(0.25)), tag: NumberDouble, str: "0.25"},
		{number: NumberOf(1.0), tag: NumberDouble, str: "1"},
	}

	for _, test := range tests {
		assert.Equal(t, test.tag, test.number.Tag(), "wrong tag for %s", test.str)
		assert.Equal(t, test.str, test.number.String(), "wrong string")
		assert.Equal(t, test.tag != NumberNone, test.number.HasValue(), "wrong HasValue for %s", test.str)
	}
}

func TestNumberAccess(t *testing.T) {
	n := IntNumber(-3)
	i, err := n.GetInt()
	assert.NoError(t, err, "int should be accessible")
	assert.Equal(t, int64(-3), i, "wrong int")

	_, err = n.GetUInt()
	assert.Equal(t, ErrBadAccess, err, "int isn't uint")
	_, err = n.GetDouble()
	assert.Equal(t, ErrBadAccess, err, "int isn't double")

	n.SetDouble(2.5)
	assert.True(t, n.IsDouble(), "should be double after SetDouble")
	_, err = n.GetInt()
	assert.Equal(t, ErrBadAccess, err, "bits shouldn't be reinterpreted")

	n.SetUInt(9)
	assert.True(t, n.IsUInt(), "should be uint after SetUInt")
	SetNumber(&n, int32(4))
	assert.True(t, n.IsInt(), "should be retagged by SetNumber")

	n.Reset()
	assert.False(t, n.HasValue(), "should hold nothing after reset")
	_, err = Number{}.GetInt()
	assert.Equal(t, BadAccess, CategoryOf(err), "none has no int")
}

func TestNumberOrdering(t *testing.T) {
	none, i, u, d := Number{}, NumberOf(1), NumberOf(uint(1)), NumberOf(1.0)

	assert.True(t, none.Less(i), "none < int")
	assert.True(t, i.Less(u), "int < uint")
	assert.True(t, u.Less(d), "uint < double")
	assert.False(t, d.Less(none), "double isn't < none")

	assert.True(t, IntNumber(1).Less(UIntNumber(0)), "tags win over values")
	assert.True(t, IntNumber(2).Less(IntNumber(3)), "2 < 3")
	assert.False(t, IntNumber(3).Less(IntNumber(3)), "3 isn't < 3")

	assert.False(t, i.Equal(u), "different tags aren't equal")
	assert.False(t, i.Equal(d), "different tags aren't equal")
	assert.True(t, Number{}.Equal(Number{}), "nones are equal")
	assert.True(t, UIntNumber(5).Equal(NumberOf(uint8(5))), "same tag and payload")

	numbers := []Number{d, IntNumber(-1), u, none, DoubleNumber(-0.5), i}
	slices.SortFunc(numbers, Number.Compare)
	assert.Equal(t, []Number{none, IntNumber(-1), i, u, DoubleNumber(-0.5), d}, numbers, "wrong sort order")
}

func TestNumberNaN(t *testing.T) {
	nan := DoubleNumber(math.NaN())

	assert.False(t, nan.Equal(nan), "NaN isn't equal to itself")
	assert.False(t, nan.Less(DoubleNumber(1)), "NaN is unordered")
	assert.False(t, DoubleNumber(1).Less(nan), "NaN is unordered")
	assert.Equal(t, -1, nan.Compare(DoubleNumber(1)), "NaN goes first when sorting")
}

func TestNumberNeg(t *testing.T) {
	assert.Equal(t, IntNumber(-5), IntNumber(5).Neg(), "wrong int negation")
	assert.Equal(t, DoubleNumber(-1.5), DoubleNumber(1.5).Neg(), "wrong double negation")
	assert.Equal(t, UIntNumber(math.MaxUint64), UIntNumber(1).Neg(), "uint should wrap")
	assert.Equal(t, Number{}, Number{}.Neg(), "none stays none")
}

func TestVisitNumber(t *testing.T) {
	name := func(n Number) string {
		return VisitNumber(n,
			func() string { return "none" },
			func(int64) string { return "int" },
			func(uint64) string { return "uint" },
			func(float64) string { return "double" },
		)
	}

	assert.Equal(t, "none", name(Number{}), "wrong handler")
	assert.Equal(t, "int", name(IntNumber(1)), "wrong handler")
	assert.Equal(t, "uint", name(UIntNumber(1)), "wrong handler")
	assert.Equal(t, "double", name(DoubleNumber(1)), "wrong handler")
}
