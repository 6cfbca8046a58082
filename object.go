package dataTree

import (
	"iter"
	"maps"
	"slices"
)

/*
Object maps string keys to nodes it exclusively owns.
The zero Object is empty and ready to use. Key order carries no meaning:
two objects are equal when they hold the same keys with equal nodes.
*/
type Object struct {
	fields map[string]*Node
}

func NewObject() Object {
	return Object{fields: make(map[string]*Node)}
}

func (o *Object) init() {
	if o.fields == nil {
		o.fields = make(map[string]*Node)
	}
}

func (o *Object) Size() int {
	return len(o.fields)
}

func (o *Object) Empty() bool {
	return len(o.fields) == 0
}

func (o *Object) Clear() {
	clear(o.fields)
}

func (o *Object) Contains(key string) bool {
	_, has := o.fields[key]
	return has
}

func (o *Object) Find(key string) (*Node, bool) {
	node, has := o.fields[key]
	return node, has
}

func (o *Object) TryGet(key string) (*Node, error) {
	node, has := o.fields[key]
	if !has {
		return nil, ErrKeyError
	}

	return node, nil
}

// At trusts the caller that key is present, panics with ErrKeyError otherwise.
func (o *Object) At(key string) *Node {
	node, has := o.fields[key]
	if !has {
		panic(ErrKeyError)
	}

	return node
}

// Index returns the node under key, a missing key is added holding an empty object.
func (o *Object) Index(key string) *Node {
	if node, has := o.fields[key]; has {
		return node
	}

	o.init()
	node := &Node{}
	o.fields[key] = node
	return node
}

// Insert adds a deep copy of node under key unless the key is taken.
// It returns the node stored under key and whether node was inserted.
func (o *Object) Insert(key string, node Node) (*Node, bool) {
	if existing, has := o.fields[key]; has {
		return existing, false
	}

	return o.adopt(key, node.Clone()), true
}

// adopt stores node as is, node must not share storage with anything else.
func (o *Object) adopt(key string, node Node) *Node {
	o.init()
	o.fields[key] = &node
	return &node
}

// Emplace is the same as Insert.
func (o *Object) Emplace(key string, node Node) (*Node, bool) {
	return o.Insert(key, node)
}

// InsertOrAssign stores a deep copy of node under key replacing the previous one.
// The bool is true if key was new.
func (o *Object) InsertOrAssign(key string, node Node) (*Node, bool) {
	c := node.Clone()
	if existing, has := o.fields[key]; has {
		*existing = c
		return existing, false
	}

	return o.adopt(key, c), true
}

// TryEmplace calls build only when key is missing, an existing node is never touched.
func (o *Object) TryEmplace(key string, build func() Node) (*Node, bool) {
	if existing, has := o.fields[key]; has {
		return existing, false
	}

	node := build()
	return o.adopt(key, node.Clone()), true
}

// Erase removes key and returns how many nodes were removed: 0 or 1.
func (o *Object) Erase(key string) int {
	if _, has := o.fields[key]; !has {
		return 0
	}

	delete(o.fields, key)
	return 1
}

// EraseFunc removes every field del returns true for and returns how many were removed.
func (o *Object) EraseFunc(del func(key string, node *Node) bool) int {
	before := len(o.fields)
	maps.DeleteFunc(o.fields, del)
	return before - len(o.fields)
}

// Keys returns sorted keys.
func (o *Object) Keys() []string {
	return slices.Sorted(maps.Keys(o.fields))
}

// All yields fields in no particular order.
func (o *Object) All() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		for key, node := range o.fields {
			if !yield(key, node) {
				return
			}
		}
	}
}

// Sorted yields fields ordered by key.
func (o *Object) Sorted() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		for _, key := range o.Keys() {
			if !yield(key, o.fields[key]) {
				return
			}
		}
	}
}

// Merge deep copies every field of other into o, fields of other win on conflicts.
func (o *Object) Merge(other *Object) {
	if o == other {
		return
	}

	for key, src := range other.fields {
		o.InsertOrAssign(key, *src)
	}
}

func (o *Object) Equal(other *Object) bool {
	if len(o.fields) != len(other.fields) {
		return false
	}

	for key, node := range o.fields {
		otherNode, has := other.fields[key]
		if !has || !node.Equal(otherNode) {
			return false
		}
	}

	return true
}

// Clone deep copies the object with all of its descendants.
func (o *Object) Clone() Object {
	if len(o.fields) == 0 {
		return Object{}
	}

	fields := make(map[string]*Node, len(o.fields))
	for key, node := range o.fields {
		c := node.Clone()
		fields[key] = &c
	}

	return Object{fields: fields}
}

func (Object) nodeTag() NodeTag {
	return TagObject
}
