// Package codec defines the ingestion boundary between raw document
// serializations and the tagged wrapper values the projection engine
// validates. Each codec decodes the wire shapes a document source may carry
// and encodes the canonical shape back out.
package codec

import "context"

// Codec performs bidirectional conversion between a raw wire value and a
// domain wrapper value B.
type Codec[B any] interface {
	// Decode converts a raw wire value into B. It returns an error when the
	// value is not a recognizable serialization of B.
	Decode(ctx context.Context, v any) (B, error)
	// Encode converts B into its canonical wire representation.
	Encode(ctx context.Context, b B) (any, error)
}
