package codec

import (
	"context"
	"fmt"
	"time"

	docproject "github.com/entamburini/docproject"
)

// Timestamp returns a Codec that converts between raw timestamp
// serializations and docproject.Timestamp. Decode accepts:
//
//   - {"seconds": N, "nanoseconds": N} and the underscore-prefixed variant
//     some exporters emit ({"_seconds", "_nanoseconds"}); nanoseconds may be
//     absent
//   - RFC3339 / RFC3339Nano strings
//   - time.Time values
//
// Encode emits the canonical {"seconds", "nanoseconds"} map.
func Timestamp() Codec[docproject.Timestamp] { return timestampCodec{} }

type timestampCodec struct{}

func (timestampCodec) Decode(ctx context.Context, v any) (docproject.Timestamp, error) {
	switch t := v.(type) {
	case docproject.Timestamp:
		return t, nil
	case time.Time:
		return docproject.NewTimestamp(t), nil
	case string:
		tt, err := parseRFC3339(t)
		if err != nil {
			return docproject.Timestamp{}, fmt.Errorf("codec: invalid RFC3339 timestamp: %w", err)
		}
		return docproject.NewTimestamp(tt), nil
	case map[string]any:
		ts, ok := decodeTimestampMap(t)
		if !ok {
			return docproject.Timestamp{}, fmt.Errorf("codec: map is not a timestamp shape")
		}
		return ts, nil
	default:
		return docproject.Timestamp{}, fmt.Errorf("codec: cannot decode %T as timestamp", v)
	}
}

func (timestampCodec) Encode(ctx context.Context, ts docproject.Timestamp) (any, error) {
	return map[string]any{
		"seconds":     ts.Seconds,
		"nanoseconds": ts.Nanoseconds,
	}, nil
}

// decodeTimestampMap recognizes the seconds/nanoseconds map shapes. The map
// must carry a seconds key and nothing beyond the two timestamp components.
func decodeTimestampMap(m map[string]any) (docproject.Timestamp, bool) {
	sec, ok := wireField(m, "seconds", "_seconds")
	if !ok || len(m) > 2 {
		return docproject.Timestamp{}, false
	}
	var nanos float64
	if len(m) == 2 {
		nanos, ok = wireField(m, "nanoseconds", "_nanoseconds")
		if !ok {
			return docproject.Timestamp{}, false
		}
	}
	return docproject.Timestamp{Seconds: int64(sec), Nanoseconds: int32(nanos)}, true
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}
