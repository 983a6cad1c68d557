package docproject

import "time"

// Domain wrapper values form the tagged union documents use for non-JSON
// kinds. Document sources convert whatever raw serialization they carry into
// these types at ingestion (see codec/), so registry validators stay pure
// structural predicates.

// GeoPoint is a two-component geographic coordinate.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Timestamp is a point in time split into whole seconds since the Unix epoch
// and a nanosecond remainder.
type Timestamp struct {
	Seconds     int64 `json:"seconds"`
	Nanoseconds int32 `json:"nanoseconds"`
}

// NewTimestamp builds a Timestamp from a time.Time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Seconds: t.Unix(), Nanoseconds: int32(t.Nanosecond())}
}

// Time converts the Timestamp back to a time.Time in UTC.
func (ts Timestamp) Time() time.Time {
	return time.Unix(ts.Seconds, int64(ts.Nanoseconds)).UTC()
}

// Reference is a handle to another document, exposing its path.
type Reference struct {
	Path string `json:"path"`
}
