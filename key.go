package dataTree

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyOrIndex addresses a child: a string key selects an object field,
// an integer index selects an array slot.
type KeyOrIndex struct {
	key     string
	index   int
	isIndex bool
}

func StringKey(key string) KeyOrIndex {
	return KeyOrIndex{key: key}
}

func IntegerIndex(index int) KeyOrIndex {
	return KeyOrIndex{index: index, isIndex: true}
}

func (k KeyOrIndex) IsKey() bool {
	return !k.isIndex
}

func (k KeyOrIndex) IsIndex() bool {
	return k.isIndex
}

// Key returns the string key, empty for an index.
func (k KeyOrIndex) Key() string {
	return k.key
}

// Index returns the integer index, zero for a key.
func (k KeyOrIndex) Index() int {
	return k.index
}

func (k KeyOrIndex) String() string {
	if k.isIndex {
		return "[" + strconv.Itoa(k.index) + "]"
	}

	return "[" + strconv.Quote(k.key) + "]"
}

// Path is an ordered sequence of steps from some node down to a descendant.
type Path []KeyOrIndex

/*
MustPath builds a Path out of strings and ints:
	MustPath("statuses", 0, "user") is ["statuses"][0]["user"]
It panics on any other item type.
*/
func MustPath(items ...interface{}) Path {
	path := make(Path, 0, len(items))
	for _, item := range items {
		switch x := item.(type) {
		case string:
			path = append(path, StringKey(x))
		case int:
			path = append(path, IntegerIndex(x))
		case KeyOrIndex:
			path = append(path, x)
		default:
			panic(fmt.Sprintf("data tree: unsupported path item %T", item))
		}
	}

	return path
}

func (p Path) String() string {
	b := strings.Builder{}
	for _, k := range p {
		b.WriteString(k.String())
	}

	return b.String()
}
