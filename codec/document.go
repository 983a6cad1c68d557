package codec

// DecodeDocument deep-walks a freshly decoded document and rewrites
// recognizable wrapper serializations into their tagged union values, so the
// projection engine sees GeoPoint/Timestamp/Reference instead of raw maps.
// Detection is exact-shape: a map with any extra or missing component keys is
// left alone and recursed into. Bare strings are never rewritten; a string
// reference reaches the engine only through the Reference codec.
//
// The walk returns a new map and never mutates its input.
func DecodeDocument(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = decodeValue(v)
	}
	return out
}

func decodeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if ts, ok := decodeTimestampMap(t); ok {
			return ts
		}
		if gp, ok := decodeGeoPointMap(t); ok {
			return gp
		}
		if ref, ok := decodeReferenceMap(t); ok {
			return ref
		}
		return DecodeDocument(t)
	case []any:
		out := make([]any, len(t))
		for i, el := range t {
			out[i] = decodeValue(el)
		}
		return out
	default:
		return v
	}
}
