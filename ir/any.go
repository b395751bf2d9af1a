package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"
)

// ToAny converts a node to plain Go values: nil, bool, int64, float64,
// json.Number, string, time.Time, []any and map[string]any. Object key
// order is lost; callers needing order should walk the node directly.
func ToAny(node *Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case NullType:
		return nil
	case BoolType:
		return node.Bool
	case StringType:
		return node.String
	case TimeType:
		return *node.Time
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return json.Number(node.Number)
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			res[f.String] = ToAny(node.Values[i])
		}
		return res
	}
	return nil
}

// FromAny converts plain Go values to a node. Maps produce objects with
// sorted keys. Unrecognized types fail rather than degrade; callers that
// want universal conversion go through the fields package instead.
func FromAny(v any) (*Node, error) {
	switch vv := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return vv, nil
	case bool:
		return FromBool(vv), nil
	case string:
		return FromString(vv), nil
	case int:
		return FromInt(int64(vv)), nil
	case int8:
		return FromInt(int64(vv)), nil
	case int16:
		return FromInt(int64(vv)), nil
	case int32:
		return FromInt(int64(vv)), nil
	case int64:
		return FromInt(vv), nil
	case uint:
		return FromInt(int64(vv)), nil
	case uint8:
		return FromInt(int64(vv)), nil
	case uint16:
		return FromInt(int64(vv)), nil
	case uint32:
		return FromInt(int64(vv)), nil
	case uint64:
		return FromInt(int64(vv)), nil
	case float32:
		return FromFloat(float64(vv)), nil
	case float64:
		return FromFloat(vv), nil
	case time.Time:
		return FromTime(vv), nil
	case json.Number:
		return numberFromString(string(vv)), nil
	case []any:
		values := make([]*Node, len(vv))
		for i, elt := range vv {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			values[i] = n
		}
		return FromSlice(values), nil
	case map[string]any:
		res := make(map[string]*Node, len(vv))
		for _, key := range slices.Sorted(maps.Keys(vv)) {
			n, err := FromAny(vv[key])
			if err != nil {
				return nil, err
			}
			res[key] = n
		}
		return FromMap(res), nil
	default:
		return nil, fmt.Errorf("cannot represent %T in ir", v)
	}
}

func numberFromString(v string) *Node {
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return FromInt(i)
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil && strconv.FormatFloat(f, 'g', -1, 64) == v {
		return FromFloat(f)
	}
	return FromDecimal(v)
}
