package dataTree

/*
UnsafeNode is a trusting view of a node: its getters skip the Try* ceremony
and panic when the node doesn't hold what's asked for.
The handle lives only while the callback that received it runs,
any use after that panics with ErrUnsafeEscaped.
*/
type UnsafeNode struct {
	node   *Node
	closed bool
}

// Unsafe runs fn with a trusting view of n.
func (n *Node) Unsafe(fn func(u *UnsafeNode)) {
	u := &UnsafeNode{node: n}
	defer u.close()

	fn(u)
}

/*
WithUnsafe runs fn with a trusting view of n and returns its result:
	size := WithUnsafe(root, func(u *UnsafeNode) int {
		return u.GetObject().Size()
	})
*/
func WithUnsafe[R any](n *Node, fn func(u *UnsafeNode) R) R {
	u := &UnsafeNode{node: n}
	defer u.close()

	return fn(u)
}

func (u *UnsafeNode) close() {
	u.closed = true
}

func (u *UnsafeNode) check(tag NodeTag) *Node {
	if u.closed {
		panic(ErrUnsafeEscaped)
	}

	if u.node.tag != tag {
		panic(ErrBadAccess)
	}

	return u.node
}

func (u *UnsafeNode) GetObject() *Object {
	return &u.check(TagObject).object
}

func (u *UnsafeNode) GetArray() *Array {
	return &u.check(TagArray).array
}

func (u *UnsafeNode) GetValue() *Value {
	return &u.check(TagValue).value
}

func (u *UnsafeNode) GetNull() Null {
	return u.check(TagValue).value.GetNull()
}

func (u *UnsafeNode) GetBool() bool {
	return u.check(TagValue).value.GetBool()
}

func (u *UnsafeNode) GetNumber() Number {
	return u.check(TagValue).value.GetNumber()
}

func (u *UnsafeNode) GetString() string {
	return u.check(TagValue).value.GetString()
}

// Safe returns the node behind the handle.
func (u *UnsafeNode) Safe() *Node {
	if u.closed {
		panic(ErrUnsafeEscaped)
	}

	return u.node
}
