package codec

import (
	"context"
	"fmt"

	docproject "github.com/entamburini/docproject"
)

// Reference returns a Codec that converts between raw document-reference
// serializations and docproject.Reference. Decode accepts {"path"} maps, the
// underscore-prefixed variant ({"_path"}), and bare path strings. Encode
// emits the path string, which is also the projection output for reference
// fields.
func Reference() Codec[docproject.Reference] { return referenceCodec{} }

type referenceCodec struct{}

func (referenceCodec) Decode(ctx context.Context, v any) (docproject.Reference, error) {
	switch r := v.(type) {
	case docproject.Reference:
		return r, nil
	case string:
		if r == "" {
			return docproject.Reference{}, fmt.Errorf("codec: empty reference path")
		}
		return docproject.Reference{Path: r}, nil
	case map[string]any:
		ref, ok := decodeReferenceMap(r)
		if !ok {
			return docproject.Reference{}, fmt.Errorf("codec: map is not a reference shape")
		}
		return ref, nil
	default:
		return docproject.Reference{}, fmt.Errorf("codec: cannot decode %T as reference", v)
	}
}

func (referenceCodec) Encode(ctx context.Context, ref docproject.Reference) (any, error) {
	return ref.Path, nil
}

// decodeReferenceMap recognizes the single-key path map shapes.
func decodeReferenceMap(m map[string]any) (docproject.Reference, bool) {
	if len(m) != 1 {
		return docproject.Reference{}, false
	}
	for _, k := range []string{"path", "_path"} {
		if v, ok := m[k]; ok {
			s, ok := v.(string)
			if !ok || s == "" {
				return docproject.Reference{}, false
			}
			return docproject.Reference{Path: s}, true
		}
	}
	return docproject.Reference{}, false
}
