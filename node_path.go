package dataTree

import (
	"strconv"
)

// TryGet looks a child up without creating anything.
// Any failure is a KeyError: a missing key, an index out of range, or a node of the wrong kind.
func (n *Node) TryGet(k KeyOrIndex) (*Node, error) {
	if k.isIndex {
		if n.tag != TagArray {
			return nil, ErrKeyError
		}

		node, err := n.array.TryGet(k.index)
		if err != nil {
			return nil, ErrKeyError
		}

		return node, nil
	}

	if n.tag != TagObject {
		return nil, ErrKeyError
	}

	return n.object.TryGet(k.key)
}

// TryGetPath walks path without creating anything.
// The error names the path prefix at which the walk failed.
func (n *Node) TryGetPath(path ...KeyOrIndex) (*Node, error) {
	node := n
	for i, k := range path {
		next, err := node.TryGet(k)
		if err != nil {
			return nil, pathErr(err, path[:i+1])
		}
		node = next
	}

	return node, nil
}

// Exists tells whether path leads to a node.
func (n *Node) Exists(path ...KeyOrIndex) bool {
	_, err := n.TryGetPath(path...)
	return err == nil
}

// ContainsType tells whether path leads to a value of the given kind.
func (n *Node) ContainsType(kind Kind, path ...KeyOrIndex) bool {
	node, err := n.TryGetPath(path...)
	if err != nil {
		return false
	}

	return node.tag == TagValue && node.value.kind == kind
}

// ContainsNodeType tells whether path leads to a node with the given tag.
func (n *Node) ContainsNodeType(tag NodeTag, path ...KeyOrIndex) bool {
	node, err := n.TryGetPath(path...)
	if err != nil {
		return false
	}

	return node.tag == tag
}

/*
Dig walks path of plain strings, arrays take decimal indexes:
	root.Dig("statuses", "0", "user", "name")
It returns nil if anything on the way is missing, so it's safe to chain with Is*.
*/
func (n *Node) Dig(path ...string) *Node {
	node := n
	for _, step := range path {
		if node == nil {
			return nil
		}

		switch node.tag {
		case TagObject:
			node, _ = node.object.Find(step)
		case TagArray:
			index, err := strconv.Atoi(step)
			if err != nil {
				return nil
			}
			node, _ = node.array.TryGet(index)
		default:
			return nil
		}
	}

	return node
}
