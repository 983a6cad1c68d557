package codec

import "encoding/json"

// wireNumber converts the numeric kinds a decoded document may carry. JSON
// sources configured with UseNumber yield json.Number; hand-built documents
// may carry native Go numbers.
func wireNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
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
	default:
		return 0, false
	}
}

// wireField reads the first present key out of keys and converts it with
// wireNumber.
func wireField(m map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return wireNumber(v)
		}
	}
	return 0, false
}
