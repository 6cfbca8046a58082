package dataTree

import (
	"github.com/pkg/errors"
)

// Category is a failure class reported by checked operations.
type Category uint8

const (
	Generic Category = iota
	OutOfRange
	BadAccess
	KeyError
)

var categoryNames = [...]string{
	Generic:    "Category::Generic",
	OutOfRange: "Category::OutOfRange",
	BadAccess:  "Category::BadAccess",
	KeyError:   "Category::KeyError",
}

func (c Category) String() string {
	if int(c) >= len(categoryNames) {
		return "Category::Unknown"
	}

	return categoryNames[c]
}

/*
Error is returned by every Try* operation and is used as the panic value of trusting accessors.
It's a comparable value, so errors.Is(err, ErrBadAccess) works through any wrapping.
*/
type Error struct {
	Category Category
}

func (e Error) Error() string {
	switch e.Category {
	case OutOfRange:
		return "index is out of range"
	case BadAccess:
		return "node holds another kind"
	case KeyError:
		return "key isn't found"
	case Generic:
		return "generic error"
	default:
		return "unknown error"
	}
}

var (
	ErrOutOfRange = Error{Category: OutOfRange}
	ErrBadAccess  = Error{Category: BadAccess}
	ErrKeyError   = Error{Category: KeyError}
	ErrGeneric    = Error{Category: Generic}

	// ErrUnsafeEscaped is the panic value when an UnsafeNode is used after its callback returned
	ErrUnsafeEscaped = errors.New("unsafe handle is used outside of its callback")
)

// CategoryOf digs the category out of a possibly wrapped error.
// Errors that don't carry a category are Generic.
func CategoryOf(err error) Category {
	var e Error
	if errors.As(err, &e) {
		return e.Category
	}

	return Generic
}

func pathErr(err error, path []KeyOrIndex) error {
	if len(path) == 0 {
		return err
	}

	return errors.Wrapf(err, "%s", Path(path))
}
