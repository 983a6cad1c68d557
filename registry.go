package docproject

import (
	"encoding/json"

	gojson "github.com/goccy/go-json"
)

// typeEntry pairs the validator predicate and the coercer function for one
// type tag. The registry is a fixed mapping over the closed tag set; nothing
// mutates it at runtime, so projections are safe to run concurrently.
type typeEntry struct {
	valid  func(v any) bool
	coerce coerceFunc
}

// coerceFunc converts a validated raw value into its canonical output
// representation. Only the map coercer can fail (nested schema errors or the
// depth guard); every other coercion of a validated value is infallible.
type coerceFunc func(p *projector, f Field, at PathRef, depth int, v any) (any, error)

var typeRegistry map[FieldType]typeEntry

// The map is populated in init rather than a var initializer to break the
// compile-time initialization cycle through coerceMap and project.
func init() {
	typeRegistry = map[FieldType]typeEntry{
		TypeBoolean: {
			valid:  func(v any) bool { _, ok := v.(bool); return ok },
			coerce: coerceIdentity,
		},
		TypeNumber: {
			valid:  isNumeric,
			coerce: coerceIdentity,
		},
		TypeString: {
			valid:  func(v any) bool { _, ok := v.(string); return ok },
			coerce: coerceIdentity,
		},
		TypeJSON: {
			valid:  isStructured,
			coerce: coerceJSON,
		},
		TypeGeoPoint: {
			valid:  func(v any) bool { _, ok := v.(GeoPoint); return ok },
			coerce: coerceGeoPoint,
		},
		TypeTimestamp: {
			valid:  func(v any) bool { _, ok := v.(Timestamp); return ok },
			coerce: coerceTimestamp,
		},
		TypeReference: {
			valid:  func(v any) bool { _, ok := v.(Reference); return ok },
			coerce: coerceReference,
		},
		TypeMap: {
			valid:  func(v any) bool { _, ok := v.(map[string]any); return ok },
			coerce: coerceMap,
		},
	}
}

func isNumeric(v any) bool {
	switch v.(type) {
	case json.Number, float64, float32, int, int32, int64:
		return true
	default:
		return false
	}
}

// isStructured accepts any non-scalar value: objects and sequences.
func isStructured(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}

func coerceIdentity(_ *projector, _ Field, _ PathRef, _ int, v any) (any, error) {
	return v, nil
}

// coerceJSON renders the structure as text. goccy/go-json sorts object keys,
// so equal structures serialize identically and the text parses back to a
// deep-equal value.
func coerceJSON(_ *projector, _ Field, _ PathRef, _ int, v any) (any, error) {
	b, err := gojson.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func coerceGeoPoint(_ *projector, _ Field, _ PathRef, _ int, v any) (any, error) {
	gp := v.(GeoPoint)
	return map[string]any{"latitude": gp.Latitude, "longitude": gp.Longitude}, nil
}

// coerceTimestamp keeps only the whole-seconds component.
func coerceTimestamp(_ *projector, _ Field, _ PathRef, _ int, v any) (any, error) {
	return v.(Timestamp).Seconds, nil
}

func coerceReference(_ *projector, _ Field, _ PathRef, _ int, v any) (any, error) {
	return v.(Reference).Path, nil
}

func coerceMap(p *projector, f Field, at PathRef, depth int, v any) (any, error) {
	return p.project(v.(map[string]any), f.Fields, at, depth+1)
}
