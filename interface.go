package dataTree

import (
	"reflect"

	"github.com/pkg/errors"
)

/*
Interface projects the subtree onto plain Go values:
	object -> map[string]interface{}
	array  -> []interface{}
	null   -> nil
	bool, string as is
	number -> int64, uint64 or float64 by its tag, a number holding nothing is nil
*/
func (n *Node) Interface() interface{} {
	switch n.tag {
	case TagArray:
		out := make([]interface{}, 0, n.array.Size())
		for _, child := range n.array.All() {
			out = append(out, child.Interface())
		}
		return out
	case TagValue:
		return n.value.Interface()
	default:
		out := make(map[string]interface{}, n.object.Size())
		for key, child := range n.object.All() {
			out[key] = child.Interface()
		}
		return out
	}
}

func (v Value) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		return v.s
	case KindNumber:
		return v.num.Interface()
	default:
		return nil
	}
}

func (n Number) Interface() interface{} {
	return VisitNumber(n,
		func() interface{} { return nil },
		func(i int64) interface{} { return i },
		func(u uint64) interface{} { return u },
		func(f float64) interface{} { return f },
	)
}

/*
FromInterface builds a tree out of Go values: maps keyed by strings, slices and arrays,
any numeric kind, bool, string, nil, and this package's Null, Number, Value and Node.
A value of any other type gives an error of Generic category naming where it was met.
*/
func FromInterface(v interface{}) (Node, error) {
	return fromInterface(v, nil)
}

func fromInterface(v interface{}, path Path) (Node, error) {
	switch x := v.(type) {
	case nil:
		return nullNode(), nil
	case Node:
		return x.Clone(), nil
	case *Node:
		if x == nil {
			return nullNode(), nil
		}
		return x.Clone(), nil
	case Value:
		return ValueNode(x), nil
	case Null:
		return nullNode(), nil
	case bool:
		return ValueNode(BoolValue(x)), nil
	case string:
		return ValueNode(StringValue(x)), nil
	case map[string]interface{}:
		obj := NewObject()
		for key, child := range x {
			node, err := fromInterface(child, append(path, StringKey(key)))
			if err != nil {
				return Node{}, err
			}
			obj.adopt(key, node)
		}
		return ObjectNode(obj), nil
	case []interface{}:
		arr := Array{nodes: make([]Node, 0, len(x))}
		for i, child := range x {
			node, err := fromInterface(child, append(path, IntegerIndex(i)))
			if err != nil {
				return Node{}, err
			}
			arr.nodes = append(arr.nodes, node)
		}
		return ArrayNode(arr), nil
	}

	if num, ok := numberFromAny(v); ok {
		return ValueNode(NumberValue(num)), nil
	}

	return fromReflect(reflect.ValueOf(v), path)
}

// fromReflect handles typed containers like map[string]int or []string
// and named kinds like type Level int.
func fromReflect(rv reflect.Value, path Path) (Node, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nullNode(), nil
		}
		return fromInterface(rv.Elem().Interface(), path)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Node{}, unsupportedErr(rv, path)
		}
		obj := NewObject()
		it := rv.MapRange()
		for it.Next() {
			key := it.Key().String()
			node, err := fromInterface(it.Value().Interface(), append(path, StringKey(key)))
			if err != nil {
				return Node{}, err
			}
			obj.adopt(key, node)
		}
		return ObjectNode(obj), nil
	case reflect.Slice, reflect.Array:
		l := rv.Len()
		arr := Array{nodes: make([]Node, 0, l)}
		for i := 0; i < l; i++ {
			node, err := fromInterface(rv.Index(i).Interface(), append(path, IntegerIndex(i)))
			if err != nil {
				return Node{}, err
			}
			arr.nodes = append(arr.nodes, node)
		}
		return ArrayNode(arr), nil
	case reflect.Bool:
		return ValueNode(BoolValue(rv.Bool())), nil
	case reflect.String:
		return ValueNode(StringValue(rv.String())), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ValueNode(NumberValue(IntNumber(rv.Int()))), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ValueNode(NumberValue(UIntNumber(rv.Uint()))), nil
	case reflect.Float32, reflect.Float64:
		return ValueNode(NumberValue(DoubleNumber(rv.Float()))), nil
	default:
		return Node{}, unsupportedErr(rv, path)
	}
}

func unsupportedErr(rv reflect.Value, path Path) error {
	return pathErr(errors.Wrapf(ErrGeneric, "unsupported type %s", rv.Type()), path)
}
