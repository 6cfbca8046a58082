package dataTree

// If*Then calls fn with the payload when v holds that kind and returns fn's result,
// otherwise it returns a null Value without calling fn.

func (v Value) IfNullThen(fn func(Null) Value) Value {
	if v.kind != KindNull {
		return Value{}
	}

	return fn(Null{})
}

func (v Value) IfBoolThen(fn func(bool) Value) Value {
	if v.kind != KindBool {
		return Value{}
	}

	return fn(v.b)
}

func (v Value) IfNumberThen(fn func(Number) Value) Value {
	if v.kind != KindNumber {
		return Value{}
	}

	return fn(v.num)
}

func (v Value) IfStringThen(fn func(string) Value) Value {
	if v.kind != KindString {
		return Value{}
	}

	return fn(v.s)
}

// If*Transform wrap the result of fn into a Value. When v doesn't hold the kind
// the zero R is wrapped instead, e.g. IfBoolTransform(StringValue("x"), func(bool) int { ... })
// is an Int number 0.

func IfNullTransform[R Scalar](v Value, fn func(Null) R) Value {
	var r R
	if v.kind == KindNull {
		r = fn(Null{})
	}

	return ValueOf(r)
}

func IfBoolTransform[R Scalar](v Value, fn func(bool) R) Value {
	var r R
	if v.kind == KindBool {
		r = fn(v.b)
	}

	return ValueOf(r)
}

func IfNumberTransform[R Scalar](v Value, fn func(Number) R) Value {
	var r R
	if v.kind == KindNumber {
		r = fn(v.num)
	}

	return ValueOf(r)
}

func IfStringTransform[R Scalar](v Value, fn func(string) R) Value {
	var r R
	if v.kind == KindString {
		r = fn(v.s)
	}

	return ValueOf(r)
}

/*
IfNot* are for early return chains: v comes back unchanged when it holds the kind,
otherwise the fallback result is returned.
	name := v.IfNotString(func() Value { return StringValue("anonymous") })
*/

func (v Value) IfNotNull(fallback func() Value) Value {
	if v.kind == KindNull {
		return v
	}

	return fallback()
}

func (v Value) IfNotBool(fallback func() Value) Value {
	if v.kind == KindBool {
		return v
	}

	return fallback()
}

func (v Value) IfNotNumber(fallback func() Value) Value {
	if v.kind == KindNumber {
		return v
	}

	return fallback()
}

func (v Value) IfNotString(fallback func() Value) Value {
	if v.kind == KindString {
		return v
	}

	return fallback()
}

// VisitValue calls the handler matching the kind of v and returns its result.
func VisitValue[R any](v Value, onNull func(Null) R, onBool func(bool) R, onNumber func(Number) R, onString func(string) R) R {
	switch v.kind {
	case KindBool:
		return onBool(v.b)
	case KindNumber:
		return onNumber(v.num)
	case KindString:
		return onString(v.s)
	default:
		return onNull(Null{})
	}
}
