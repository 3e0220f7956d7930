package main

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/joshuapare/mpack/value"
)

// jsonToValue converts a decoded JSON document (the output of
// json.Unmarshal into an `any`) into a value.Value tree. This bridge is
// CLI-only glue, not part of the core codec per spec.md §1 — JSON has no
// binary type, so json.Unmarshal never produces value.Binary; a round trip
// through JSON cannot carry MessagePack bin8/16/32 payloads.
func jsonToValue(v any) (value.Value, error) {
	switch t := v.(type) {
	case nil:
		return value.Null, nil
	case bool:
		return value.Bool(t), nil
	case float64:
		// float64(math.MaxInt64) rounds up to 2^63, which does not fit int64,
		// so the upper bound is exclusive.
		if t == math.Trunc(t) && !math.IsInf(t, 0) && t >= math.MinInt64 && t < math.MaxInt64 {
			return value.Int(int64(t)), nil
		}
		return value.Float(t), nil
	case string:
		return value.String(t), nil
	case []any:
		elems := make([]value.Value, len(t))
		for i, e := range t {
			ev, err := jsonToValue(e)
			if err != nil {
				return value.Value{}, err
			}
			elems[i] = ev
		}
		return value.Array(elems), nil
	case map[string]any:
		entries := make([]value.MapEntry, 0, len(t))
		for k, e := range t {
			ev, err := jsonToValue(e)
			if err != nil {
				return value.Value{}, err
			}
			entries = append(entries, value.MapEntry{Key: k, Val: ev})
		}
		return value.Map(entries), nil
	default:
		return value.Value{}, fmt.Errorf("jsonbridge: unsupported JSON value of type %T", v)
	}
}

// valueToJSON converts a value.Value tree into a structure encoding/json
// can marshal. value.Binary payloads are base64-encoded by
// encoding/json's own []byte handling.
func valueToJSON(v value.Value) (any, error) {
	switch v.Kind {
	case value.KindNull:
		return nil, nil
	case value.KindBool:
		b, _ := v.Bool()
		return b, nil
	case value.KindInt:
		n, _ := v.Int()
		return n, nil
	case value.KindFloat:
		f, _ := v.Float()
		return f, nil
	case value.KindString:
		s, _ := v.Str()
		return s, nil
	case value.KindBinary:
		b, _ := v.Bytes()
		return b, nil
	case value.KindArray:
		elems, _ := v.Elems()
		out := make([]any, len(elems))
		for i, e := range elems {
			jv, err := valueToJSON(e)
			if err != nil {
				return nil, err
			}
			out[i] = jv
		}
		return out, nil
	case value.KindMap:
		entries, _ := v.Entries()
		out := make(map[string]any, len(entries))
		for _, e := range entries {
			jv, err := valueToJSON(e.Val)
			if err != nil {
				return nil, err
			}
			out[e.Key] = jv
		}
		return out, nil
	default:
		return nil, fmt.Errorf("jsonbridge: unsupported value kind %s", v.Kind)
	}
}

func parseJSON(b []byte) (value.Value, error) {
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return value.Value{}, fmt.Errorf("parse JSON: %w", err)
	}
	return jsonToValue(doc)
}

func marshalJSONIndent(v value.Value) ([]byte, error) {
	doc, err := valueToJSON(v)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}
