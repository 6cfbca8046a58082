package dataTree

// NodeTag tells which payload a Node holds.
type NodeTag uint8

const (
	TagObject NodeTag = iota
	TagArray
	TagValue
)

func (t NodeTag) String() string {
	switch t {
	case TagObject:
		return "object"
	case TagArray:
		return "array"
	case TagValue:
		return "value"
	default:
		return "unknown"
	}
}

/*
Node is a building block of the tree. It holds exactly one of:
	1. Object
	2. Array
	3. Value: null, bool, number or string
The zero Node is an empty object.

A node exclusively owns its subtree. Set, MutateToNode and the insert methods of Object
and Array store a deep copy of what they get, so the tree never shares storage with the caller.
Use Clone to get an independent copy by hand; a plain Go assignment of one Node to another
shares child storage and must not be used to put a node into a tree.

Indexing never fails. Key() and Idx() create what's missing and convert a node of
another kind on the way, dropping its previous content:
	root := NewNode()
	root.Key("first").Key("second").Idx(3).MutateToInt(4)
	// {"first":{"second":[null,null,null,4]}}
*/
type Node struct {
	tag    NodeTag
	object Object
	array  Array
	value  Value
}

// NodeData is a payload of a Node, it's implemented by Object, Array and Value only.
type NodeData interface {
	nodeTag() NodeTag
}

func (Value) nodeTag() NodeTag {
	return TagValue
}

func NewNode() Node {
	return Node{}
}

// NewNodeFromTag creates an empty object, an empty array or a null value.
func NewNodeFromTag(tag NodeTag) Node {
	switch tag {
	case TagArray:
		return Node{tag: TagArray}
	case TagValue:
		return Node{tag: TagValue}
	default:
		return Node{}
	}
}

// ObjectNode takes o over, o must not be used afterwards.
func ObjectNode(o Object) Node {
	return Node{tag: TagObject, object: o}
}

// ArrayNode takes a over, a must not be used afterwards.
func ArrayNode(a Array) Node {
	return Node{tag: TagArray, array: a}
}

func ValueNode(v Value) Node {
	return Node{tag: TagValue, value: v}
}

// NodeOf wraps a scalar into a value node.
func NodeOf[T Scalar](v T) Node {
	return ValueNode(ValueOf(v))
}

func nullNode() Node {
	return Node{tag: TagValue}
}

func (n *Node) Tag() NodeTag {
	return n.tag
}

func (n *Node) HasObject() bool {
	return n.tag == TagObject
}

func (n *Node) HasArray() bool {
	return n.tag == TagArray
}

func (n *Node) HasValue() bool {
	return n.tag == TagValue
}

func (n *Node) HasNull() bool {
	return n.tag == TagValue && n.value.kind == KindNull
}

func (n *Node) HasBool() bool {
	return n.tag == TagValue && n.value.kind == KindBool
}

func (n *Node) HasNumber() bool {
	return n.tag == TagValue && n.value.kind == KindNumber
}

func (n *Node) HasString() bool {
	return n.tag == TagValue && n.value.kind == KindString
}

// Is* are null safe versions of Has*, handy on results of Dig.

func (n *Node) IsObject() bool {
	return n != nil && n.HasObject()
}

func (n *Node) IsArray() bool {
	return n != nil && n.HasArray()
}

func (n *Node) IsValue() bool {
	return n != nil && n.HasValue()
}

func (n *Node) IsNull() bool {
	return n != nil && n.HasNull()
}

func (n *Node) IsBool() bool {
	return n != nil && n.HasBool()
}

func (n *Node) IsNumber() bool {
	return n != nil && n.HasNumber()
}

func (n *Node) IsString() bool {
	return n != nil && n.HasString()
}

func (n *Node) IsNil() bool {
	return n == nil
}

func (n *Node) TypeStr() string {
	if n == nil {
		return "nil"
	}

	if n.tag != TagValue {
		return n.tag.String()
	}

	return n.value.kind.String()
}

func (n *Node) TryGetObject() (*Object, error) {
	if n.tag != TagObject {
		return nil, ErrBadAccess
	}

	return &n.object, nil
}

func (n *Node) TryGetArray() (*Array, error) {
	if n.tag != TagArray {
		return nil, ErrBadAccess
	}

	return &n.array, nil
}

func (n *Node) TryGetValue() (*Value, error) {
	if n.tag != TagValue {
		return nil, ErrBadAccess
	}

	return &n.value, nil
}

func (n *Node) TryGetNull() (Null, error) {
	if n.tag != TagValue {
		return Null{}, ErrBadAccess
	}

	return n.value.TryGetNull()
}

func (n *Node) TryGetBool() (bool, error) {
	if n.tag != TagValue {
		return false, ErrBadAccess
	}

	return n.value.TryGetBool()
}

func (n *Node) TryGetNumber() (Number, error) {
	if n.tag != TagValue {
		return Number{}, ErrBadAccess
	}

	return n.value.TryGetNumber()
}

func (n *Node) TryGetString() (string, error) {
	if n.tag != TagValue {
		return "", ErrBadAccess
	}

	return n.value.TryGetString()
}

/*
Set replaces the node content with a deep copy of data.
Pointers are accepted as well, nil data panics with ErrBadAccess.
*/
func (n *Node) Set(data NodeData) *Node {
	var c Node
	switch d := data.(type) {
	case Object:
		c = ObjectNode(d.Clone())
	case *Object:
		if d == nil {
			panic(ErrBadAccess)
		}
		c = ObjectNode(d.Clone())
	case Array:
		c = ArrayNode(d.Clone())
	case *Array:
		if d == nil {
			panic(ErrBadAccess)
		}
		c = ArrayNode(d.Clone())
	case Value:
		c = ValueNode(d)
	case *Value:
		if d == nil {
			panic(ErrBadAccess)
		}
		c = ValueNode(*d)
	default:
		panic(ErrBadAccess)
	}

	*n = c
	return n
}

// Reset drops the node content leaving an empty payload of the given kind.
func (n *Node) Reset(tag NodeTag) *Node {
	*n = NewNodeFromTag(tag)
	return n
}

// Assign stores a scalar into n, whatever n held before is dropped.
func Assign[T Scalar](n *Node, v T) *Node {
	*n = NodeOf(v)
	return n
}

/*
Index returns the child under k. A key makes n an object and an index makes it an array:
a node of another kind is reset first, then the missing child is created.
New object fields start as empty objects, new array slots as null values.
*/
func (n *Node) Index(k KeyOrIndex) *Node {
	if k.isIndex {
		return n.Idx(k.index)
	}

	return n.Key(k.key)
}

func (n *Node) Key(key string) *Node {
	if n.tag != TagObject {
		*n = Node{}
	}

	return n.object.Index(key)
}

// Idx panics on a negative pos.
func (n *Node) Idx(pos int) *Node {
	if n.tag != TagArray {
		*n = Node{tag: TagArray}
	}

	return n.array.Index(pos)
}

// Path applies Index for each item in turn, an empty path returns n itself.
func (n *Node) Path(path ...KeyOrIndex) *Node {
	node := n
	for _, k := range path {
		node = node.Index(k)
	}

	return node
}

// Erase removes a child of an object or an array. It returns false if there is no such child.
func (n *Node) Erase(k KeyOrIndex) bool {
	if k.isIndex {
		if n.tag != TagArray || k.index < 0 || k.index >= n.array.Size() {
			return false
		}

		n.array.Erase(k.index)
		return true
	}

	if n.tag != TagObject {
		return false
	}

	return n.object.Erase(k.key) == 1
}

// Equal compares the whole subtrees, object field order doesn't matter.
func (n *Node) Equal(other *Node) bool {
	if n.tag != other.tag {
		return false
	}

	switch n.tag {
	case TagArray:
		return n.array.Equal(&other.array)
	case TagValue:
		return n.value.Equal(other.value)
	default:
		return n.object.Equal(&other.object)
	}
}

// Clone deep copies the subtree, the copy shares nothing with n.
func (n *Node) Clone() Node {
	switch n.tag {
	case TagArray:
		return ArrayNode(n.array.Clone())
	case TagValue:
		return ValueNode(n.value)
	default:
		return ObjectNode(n.object.Clone())
	}
}

// Neg returns a negated number. Anything that isn't a number comes back as a copy.
func (n *Node) Neg() Node {
	if !n.HasNumber() {
		return n.Clone()
	}

	return ValueNode(NumberValue(n.value.num.Neg()))
}

// ******************** //
//      MUTATIONS       //
// ******************** //

func (n *Node) MutateToNull() *Node {
	*n = nullNode()
	return n
}

func (n *Node) MutateToBool(value bool) *Node {
	*n = ValueNode(BoolValue(value))
	return n
}

func (n *Node) MutateToInt(value int64) *Node {
	*n = ValueNode(NumberValue(IntNumber(value)))
	return n
}

func (n *Node) MutateToUInt(value uint64) *Node {
	*n = ValueNode(NumberValue(UIntNumber(value)))
	return n
}

func (n *Node) MutateToFloat(value float64) *Node {
	*n = ValueNode(NumberValue(DoubleNumber(value)))
	return n
}

func (n *Node) MutateToNumber(value Number) *Node {
	*n = ValueNode(NumberValue(value))
	return n
}

func (n *Node) MutateToString(value string) *Node {
	*n = ValueNode(StringValue(value))
	return n
}

func (n *Node) MutateToValue(value Value) *Node {
	*n = ValueNode(value)
	return n
}

// MutateToObject makes n an empty object.
func (n *Node) MutateToObject() *Node {
	*n = Node{}
	return n
}

// MutateToArray makes n an empty array.
func (n *Node) MutateToArray() *Node {
	*n = Node{tag: TagArray}
	return n
}

// MutateToNode replaces n with a deep copy of node, node may be n's own ancestor or descendant.
func (n *Node) MutateToNode(node Node) *Node {
	c := node.Clone()
	*n = c
	return n
}
