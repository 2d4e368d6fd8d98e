package utils

import (
	"fmt"
	"reflect"

	"github.com/bytedance/sonic"
)

// JSONContains reports whether every key of left is present in right with
// an equal value. A key missing from right compares as null, so a null in
// left matches an absent key. Numbers compare by value regardless of their
// Go type.
func JSONContains(left, right map[string]any) bool {
	for key, lv := range left {
		if !jsonEqual(lv, right[key]) {
			return false
		}
	}
	return true
}

// JSONContainsRaw decodes two JSON objects and applies JSONContains.
func JSONContainsRaw(left, right []byte) (bool, error) {
	validator := DefaultJSONValidator()

	var l, r map[string]any
	if err := validator.ValidateSize(left); err != nil {
		return false, fmt.Errorf("left: %w", err)
	}
	if err := validator.ValidateSize(right); err != nil {
		return false, fmt.Errorf("right: %w", err)
	}
	if err := sonic.Unmarshal(left, &l); err != nil {
		return false, fmt.Errorf("left is not a JSON object: %w", err)
	}
	if err := sonic.Unmarshal(right, &r); err != nil {
		return false, fmt.Errorf("right is not a JSON object: %w", err)
	}
	if l == nil || r == nil {
		return false, fmt.Errorf("both sides must be JSON objects")
	}
	return JSONContains(l, r), nil
}

func jsonEqual(a, b any) bool {
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		return ok && af == bf
	}

	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			other, present := bv[k]
			if !present || !jsonEqual(v, other) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !jsonEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
