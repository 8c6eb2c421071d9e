package engine

import (
	"encoding/json"
	"math"
	"reflect"
)

// toFloat accepts the number shapes produced by encoding/json (with or
// without UseNumber) and yaml.v3.
func toFloat(data any) (float64, bool) {
	switch n := data.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func isIntegral(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f) && math.Trunc(f) == f
}

// JSONEqual compares two decoded JSON values, numbers by value regardless
// of their Go representation.
func JSONEqual(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	switch va := a.(type) {
	case map[string]any:
		vb, ok := b.(map[string]any)
		if !ok || len(va) != len(vb) {
			return false
		}
		for k, x := range va {
			y, found := vb[k]
			if !found || !JSONEqual(x, y) {
				return false
			}
		}
		return true
	case []any:
		vb, ok := b.([]any)
		if !ok || len(va) != len(vb) {
			return false
		}
		for i := range va {
			if !JSONEqual(va[i], vb[i]) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

// DeepCopy copies maps and slices so outputs never alias schema-owned
// values such as defaults.
func DeepCopy(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(tv))
		for k, x := range tv {
			m[k] = DeepCopy(x)
		}
		return m
	case []any:
		arr := make([]any, len(tv))
		for i, x := range tv {
			arr[i] = DeepCopy(x)
		}
		return arr
	}
	return v
}
