package dataTree

import (
	"iter"
	"slices"
)

/*
Array is an ordered sequence of nodes it exclusively owns.
Pointers returned by its methods point into the backing slice:
any call that grows or shrinks the array invalidates them.
*/
type Array struct {
	nodes []Node
}

// NewArray makes an array of deep copies of nodes.
func NewArray(nodes ...Node) Array {
	if len(nodes) == 0 {
		return Array{}
	}

	a := Array{nodes: make([]Node, 0, len(nodes))}
	for i := range nodes {
		a.nodes = append(a.nodes, nodes[i].Clone())
	}

	return a
}

func (a *Array) Size() int {
	return len(a.nodes)
}

func (a *Array) Empty() bool {
	return len(a.nodes) == 0
}

func (a *Array) Capacity() int {
	return cap(a.nodes)
}

// Reserve makes room for at least n nodes without changing the size.
func (a *Array) Reserve(n int) {
	if n > cap(a.nodes) {
		a.nodes = slices.Grow(a.nodes, n-len(a.nodes))
	}
}

func (a *Array) ShrinkToFit() {
	if cap(a.nodes) == len(a.nodes) {
		return
	}

	a.nodes = append(make([]Node, 0, len(a.nodes)), a.nodes...)
}

/*
Resize truncates the array or extends it up to n nodes.
New slots are null values, or copies of fill when it's given.
*/
func (a *Array) Resize(n int, fill ...Node) {
	if n < 0 {
		panic(ErrOutOfRange)
	}

	l := len(a.nodes)
	if n <= l {
		clear(a.nodes[n:])
		a.nodes = a.nodes[:n]
		return
	}

	a.nodes = slices.Grow(a.nodes, n-l)
	for i := l; i < n; i++ {
		if len(fill) > 0 {
			a.nodes = append(a.nodes, fill[0].Clone())
		} else {
			a.nodes = append(a.nodes, nullNode())
		}
	}
}

func (a *Array) TryGet(pos int) (*Node, error) {
	if pos < 0 || pos >= len(a.nodes) {
		return nil, ErrOutOfRange
	}

	return &a.nodes[pos], nil
}

// TrySet replaces the node at pos with a deep copy of node.
func (a *Array) TrySet(pos int, node Node) error {
	if pos < 0 || pos >= len(a.nodes) {
		return ErrOutOfRange
	}

	a.nodes[pos] = node.Clone()
	return nil
}

/*
Index returns the slot at pos growing the array with null values when pos is past the end:
	a := Array{}
	a.Index(3) // a.Size() == 4, slots 0-2 are null
It panics on a negative pos.
*/
func (a *Array) Index(pos int) *Node {
	if pos < 0 {
		panic(ErrOutOfRange)
	}

	if pos >= len(a.nodes) {
		a.Resize(pos + 1)
	}

	return &a.nodes[pos]
}

// At trusts the caller that pos is in bounds, panics with ErrOutOfRange otherwise.
func (a *Array) At(pos int) *Node {
	if pos < 0 || pos >= len(a.nodes) {
		panic(ErrOutOfRange)
	}

	return &a.nodes[pos]
}

func (a *Array) TryFront() (*Node, error) {
	return a.TryGet(0)
}

func (a *Array) TryBack() (*Node, error) {
	return a.TryGet(len(a.nodes) - 1)
}

// Front trusts the caller that the array isn't empty.
func (a *Array) Front() *Node {
	return a.At(0)
}

// Back trusts the caller that the array isn't empty.
func (a *Array) Back() *Node {
	return a.At(len(a.nodes) - 1)
}

// Insert puts a deep copy of node before pos (pos == Size() appends) and returns the inserted slot.
// It panics if pos is outside [0, Size()].
func (a *Array) Insert(pos int, node Node) *Node {
	if pos < 0 || pos > len(a.nodes) {
		panic(ErrOutOfRange)
	}

	a.nodes = slices.Insert(a.nodes, pos, node.Clone())
	return &a.nodes[pos]
}

// Emplace inserts a null value before pos and returns it.
func (a *Array) Emplace(pos int) *Node {
	return a.Insert(pos, nullNode())
}

// Erase removes the node at pos and returns the position of the node that followed it.
func (a *Array) Erase(pos int) int {
	return a.EraseRange(pos, pos+1)
}

// EraseRange removes nodes in [first, last) and returns first.
func (a *Array) EraseRange(first, last int) int {
	if first < 0 || last > len(a.nodes) || first > last {
		panic(ErrOutOfRange)
	}

	a.nodes = slices.Delete(a.nodes, first, last)
	return first
}

// PushBack appends a deep copy of node.
func (a *Array) PushBack(node Node) {
	a.nodes = append(a.nodes, node.Clone())
}

// EmplaceBack appends a null value and returns it.
func (a *Array) EmplaceBack() *Node {
	a.nodes = append(a.nodes, nullNode())
	return &a.nodes[len(a.nodes)-1]
}

// PopBack removes the last node, it does nothing on an empty array.
func (a *Array) PopBack() {
	l := len(a.nodes)
	if l == 0 {
		return
	}

	a.nodes[l-1] = Node{}
	a.nodes = a.nodes[:l-1]
}

func (a *Array) Clear() {
	clear(a.nodes)
	a.nodes = a.nodes[:0]
}

func (a *Array) All() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		for i := range a.nodes {
			if !yield(i, &a.nodes[i]) {
				return
			}
		}
	}
}

func (a *Array) Backward() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		for i := len(a.nodes) - 1; i >= 0; i-- {
			if !yield(i, &a.nodes[i]) {
				return
			}
		}
	}
}

func (a *Array) Equal(other *Array) bool {
	if len(a.nodes) != len(other.nodes) {
		return false
	}

	for i := range a.nodes {
		if !a.nodes[i].Equal(&other.nodes[i]) {
			return false
		}
	}

	return true
}

// Clone deep copies the array with all of its descendants.
func (a *Array) Clone() Array {
	if len(a.nodes) == 0 {
		return Array{}
	}

	nodes := make([]Node, len(a.nodes))
	for i := range a.nodes {
		nodes[i] = a.nodes[i].Clone()
	}

	return Array{nodes: nodes}
}

func (Array) nodeTag() NodeTag {
	return TagArray
}
