package dataTree

import (
	"github.com/pkg/errors"
	"github.com/valyala/fastjson/fastfloat"
)

/*
ParseNumber converts decimal text into a Number choosing the narrowest tag:
	"-5"                   -> Int
	"18446744073709551615" -> UInt, it doesn't fit int64
	"1.5", "1e20"          -> Double
Unparseable text gives an error of Generic category.
*/
func ParseNumber(s string) (Number, error) {
	if len(s) == 0 {
		return Number{}, errors.Wrap(ErrGeneric, "empty number")
	}

	if i, err := fastfloat.ParseInt64(s); err == nil {
		return IntNumber(i), nil
	}

	if s[0] != '-' && s[0] != '+' {
		if u, err := fastfloat.ParseUint64(s); err == nil {
			return UIntNumber(u), nil
		}
	}

	f, err := fastfloat.Parse(s)
	if err != nil {
		return Number{}, errors.Wrapf(ErrGeneric, "can't parse number %q", s)
	}

	return DoubleNumber(f), nil
}
