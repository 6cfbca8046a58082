package dataTree

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueOf(t *testing.T) {
	tests := []struct {
		value Value
		kind  Kind
		str   string
	}{
		{value: NullValue, kind: KindNull, str: "null"},
		{value: Value{}, kind: KindNull, str: "null"},
		{value: ValueOf(Null{}), kind: KindNull, str: "null"},
		{value: TrueValue, kind: KindBool, str: "true"},
		{value: ValueOf(false), kind: KindBool, str: "false"},
		{value: ValueOf(42), kind: KindNumber, str: "42"},
		{value: ValueOf(uint8(42)), kind: KindNumber, str: "42"},
		{value: ValueOf(-0.5), kind: KindNumber, str: "-0.5"},
		{value: ValueOf(UIntNumber(1)), kind: KindNumber, str: "1"},
		{value: ValueOf("text"), kind: KindString, str: `"text"`},
		{value: StringValue("a\"b"), kind: KindString, str: `"a\"b"`},
	}

	for _, test := range tests {
		assert.Equal(t, test.kind, test.value.Kind(), "wrong kind for %s", test.str)
		assert.Equal(t, test.str, test.value.String(), "wrong string")
	}

	assert.True(t, ValueOf(3).GetNumber().IsInt(), "int should be promoted into Int number")
	assert.True(t, ValueOf(uint(3)).GetNumber().IsUInt(), "uint should be promoted into UInt number")
	assert.True(t, ValueOf(float32(3)).GetNumber().IsDouble(), "float should be promoted into Double number")
}

type userID string

type level int8

type ratio float32

type flag bool

func TestValueOfNamedTypes(t *testing.T) {
	assert.Equal(t, StringValue("u1"), ValueOf(userID("u1")), "named string should become a string")
	assert.Equal(t, BoolValue(true), ValueOf(flag(true)), "named bool should become a bool")
	assert.True(t, ValueOf(level(-3)).GetNumber().IsInt(), "named int should become Int number")
	assert.True(t, ValueOf(ratio(0.5)).GetNumber().IsDouble(), "named float should become Double number")
	assert.Equal(t, `-3`, ValueOf(level(-3)).String(), "wrong named int")
	assert.Equal(t, IntNumber(-3), NumberOf(level(-3)), "wrong named number")

	n := NewNode()
	Assign(n.Key("id"), userID("u1"))
	assert.Equal(t, `{"id":"u1"}`, n.EncodeToString(), "named string should be assignable")
}

func TestValueAccess(t *testing.T) {
	v := StringValue("x")

	s, err := v.TryGetString()
	assert.NoError(t, err, "string should be accessible")
	assert.Equal(t, "x", s, "wrong string")

	_, err = v.TryGetBool()
	assert.Equal(t, ErrBadAccess, err, "string isn't bool")
	_, err = v.TryGetNumber()
	assert.Equal(t, ErrBadAccess, err, "string isn't number")
	_, err = v.TryGetNull()
	assert.Equal(t, ErrBadAccess, err, "string isn't null")

	assert.Panics(t, func() { v.GetBool() }, "trusting access should panic on wrong kind")
	assert.PanicsWithValue(t, ErrBadAccess, func() { v.GetNumber() }, "wrong panic value")
	assert.NotPanics(t, func() { v.GetString() }, "trusting access on right kind shouldn't panic")

	v.SetBool(true)
	assert.True(t, v.HasBool(), "should be bool after SetBool")
	v.SetNumber(IntNumber(1))
	assert.True(t, v.HasNumber(), "should be number after SetNumber")
	SetValue(&v, "y")
	assert.True(t, v.HasString(), "should be string after SetValue")
	v.SetNull()
	assert.True(t, v.HasNull(), "should be null after SetNull")
	v.SetString("z")
	v.Reset()
	assert.True(t, v.HasNull(), "should be null after Reset")
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		a, b  Value
		equal bool
	}{
		{a: NullValue, b: ValueOf(Null{}), equal: true},
		{a: TrueValue, b: BoolValue(true), equal: true},
		{a: TrueValue, b: FalseValue, equal: false},
		{a: ValueOf(1), b: ValueOf(int64(1)), equal: true},
		{a: ValueOf(1), b: ValueOf(uint(1)), equal: false},
		{a: ValueOf(1), b: ValueOf(1.0), equal: false},
		{a: ValueOf("a"), b: ValueOf("a"), equal: true},
		{a: ValueOf("a"), b: ValueOf("b"), equal: false},
		{a: ValueOf(""), b: NullValue, equal: false},
		{a: FalseValue, b: ValueOf(0), equal: false},
	}

	for _, test := range tests {
		assert.Equal(t, test.equal, test.a.Equal(test.b), "wrong equality of %s and %s", test.a, test.b)
		assert.Equal(t, test.equal, test.b.Equal(test.a), "equality should be symmetric")
	}
}

func TestValueOrdering(t *testing.T) {
	values := []Value{ValueOf("b"), ValueOf(1.5), TrueValue, NullValue, ValueOf("a"), FalseValue, ValueOf(7)}
	slices.SortFunc(values, Value.Compare)

	expected := []Value{NullValue, FalseValue, TrueValue, ValueOf(7), ValueOf(1.5), ValueOf("a"), ValueOf("b")}
	assert.Equal(t, expected, values, "wrong sort order")

	assert.True(t, ValueOf(1).Less(ValueOf(uint(0))), "numbers should follow tag ordering")
	assert.True(t, NullValue.Less(FalseValue), "null < bool")
	assert.False(t, ValueOf("a").Less(ValueOf("a")), "a isn't < a")
}

func TestValueMonad(t *testing.T) {
	double := func(n Number) Value {
		i, _ := n.GetInt()
		return ValueOf(i * 2)
	}

	assert.Equal(t, ValueOf(int64(4)), ValueOf(2).IfNumberThen(double), "number should be transformed")
	assert.Equal(t, NullValue, ValueOf("2").IfNumberThen(double), "mismatch should give null")

	called := false
	NullValue.IfStringThen(func(string) Value {
		called = true
		return NullValue
	})
	assert.False(t, called, "fn shouldn't be called on mismatch")

	negate := func(b bool) Value { return ValueOf(!b) }
	assert.Equal(t, FalseValue, TrueValue.IfBoolThen(negate), "wrong bool branch")
	assert.Equal(t, ValueOf(true), NullValue.IfNullThen(func(Null) Value { return TrueValue }), "wrong null branch")

	length := func(s string) int { return len(s) }
	assert.Equal(t, ValueOf(5), IfStringTransform(ValueOf("hello"), length), "wrong transform")
	assert.Equal(t, ValueOf(0), IfStringTransform(ValueOf(5), length), "mismatch should wrap zero result")
	assert.Equal(t, ValueOf(""), IfBoolTransform(ValueOf(1), func(bool) string { return "x" }), "mismatch should wrap zero result")
	assert.Equal(t, ValueOf("x"), IfNullTransform(NullValue, func(Null) string { return "x" }), "wrong null transform")
	assert.Equal(t, ValueOf(false), IfNumberTransform(ValueOf(3), func(n Number) bool { return !n.IsInt() }), "wrong number transform")

	fallback := func() Value { return ValueOf("anonymous") }
	assert.Equal(t, ValueOf("bob"), ValueOf("bob").IfNotString(fallback), "string should pass through")
	assert.Equal(t, ValueOf("anonymous"), NullValue.IfNotString(fallback), "fallback should be used")
	assert.Equal(t, NullValue, NullValue.IfNotNull(fallback), "null should pass through")
	assert.Equal(t, ValueOf("anonymous"), TrueValue.IfNotNumber(fallback), "fallback should be used")
	assert.Equal(t, TrueValue, TrueValue.IfNotBool(fallback), "bool should pass through")
}

func TestVisitValue(t *testing.T) {
	describe := func(v Value) string {
		return VisitValue(v,
			func(Null) string { return "null" },
			func(b bool) string { return strconv.FormatBool(b) },
			func(n Number) string { return "number " + n.String() },
			func(s string) string { return "string " + s },
		)
	}

	assert.Equal(t, "null", describe(NullValue), "wrong handler")
	assert.Equal(t, "false", describe(FalseValue), "wrong handler")
	assert.Equal(t, "number 2.5", describe(ValueOf(2.5)), "wrong handler")
	assert.Equal(t, "string s", describe(ValueOf("s")), "wrong handler")
}
