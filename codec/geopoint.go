package codec

import (
	"context"
	"fmt"

	docproject "github.com/entamburini/docproject"
)

// GeoPoint returns a Codec that converts between raw coordinate
// serializations and docproject.GeoPoint. Decode accepts
// {"latitude", "longitude"} maps and the underscore-prefixed variant
// ({"_latitude", "_longitude"}). Encode emits the canonical
// {"latitude", "longitude"} map.
func GeoPoint() Codec[docproject.GeoPoint] { return geoPointCodec{} }

type geoPointCodec struct{}

func (geoPointCodec) Decode(ctx context.Context, v any) (docproject.GeoPoint, error) {
	switch g := v.(type) {
	case docproject.GeoPoint:
		return g, nil
	case map[string]any:
		gp, ok := decodeGeoPointMap(g)
		if !ok {
			return docproject.GeoPoint{}, fmt.Errorf("codec: map is not a geopoint shape")
		}
		return gp, nil
	default:
		return docproject.GeoPoint{}, fmt.Errorf("codec: cannot decode %T as geopoint", v)
	}
}

func (geoPointCodec) Encode(ctx context.Context, gp docproject.GeoPoint) (any, error) {
	return map[string]any{
		"latitude":  gp.Latitude,
		"longitude": gp.Longitude,
	}, nil
}

// decodeGeoPointMap recognizes the latitude/longitude map shapes. Both
// components must be present and nothing else.
func decodeGeoPointMap(m map[string]any) (docproject.GeoPoint, bool) {
	if len(m) != 2 {
		return docproject.GeoPoint{}, false
	}
	lat, ok := wireField(m, "latitude", "_latitude")
	if !ok {
		return docproject.GeoPoint{}, false
	}
	lng, ok := wireField(m, "longitude", "_longitude")
	if !ok {
		return docproject.GeoPoint{}, false
	}
	return docproject.GeoPoint{Latitude: lat, Longitude: lng}, true
}
