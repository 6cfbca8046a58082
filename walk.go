package dataTree

import (
	"github.com/pkg/errors"
)

// MaxVisitDepth limits how deep Walk descends.
var MaxVisitDepth = 1024

/*
Walk visits n and all of its descendants in pre-order, the root comes with depth 0.
Object fields are visited ordered by key, array slots by index.
fn must not change the shape of the tree it's walking.
When the tree is deeper than MaxVisitDepth, Walk stops and returns an error of Generic category.
*/
func (n *Node) Walk(fn func(node *Node, depth int)) error {
	return n.walk(fn, 0)
}

func (n *Node) walk(fn func(node *Node, depth int), depth int) error {
	if depth > MaxVisitDepth {
		return errors.Wrapf(ErrGeneric, "max visit depth %d is exceeded", MaxVisitDepth)
	}

	fn(n, depth)

	switch n.tag {
	case TagObject:
		for _, child := range n.object.Sorted() {
			if err := child.walk(fn, depth+1); err != nil {
				return err
			}
		}
	case TagArray:
		for _, child := range n.array.All() {
			if err := child.walk(fn, depth+1); err != nil {
				return err
			}
		}
	}

	return nil
}

// VisitNode calls the handler matching the tag of n and returns its result.
func VisitNode[R any](n *Node, onObject func(*Object) R, onArray func(*Array) R, onValue func(*Value) R) R {
	switch n.tag {
	case TagArray:
		return onArray(&n.array)
	case TagValue:
		return onValue(&n.value)
	default:
		return onObject(&n.object)
	}
}
