package docproject

// FieldType identifies one of the eight recognized schema type tags.
// The set is closed: schemas referencing any other tag are rejected as a
// schema-definition error, not a data error.
type FieldType string

const (
	TypeBoolean   FieldType = "boolean"
	TypeGeoPoint  FieldType = "geopoint"
	TypeJSON      FieldType = "json"
	TypeNumber    FieldType = "number"
	TypeMap       FieldType = "map"
	TypeReference FieldType = "reference"
	TypeString    FieldType = "string"
	TypeTimestamp FieldType = "timestamp"
)

// KnownType reports whether t is one of the recognized type tags.
func KnownType(t FieldType) bool {
	_, ok := typeRegistry[t]
	return ok
}

// Field describes one named slot to extract from a document.
//
// Fields is populated if and only if Type is TypeMap; for every other tag it
// is meaningless and ignored when present.
type Field struct {
	Name     string    `json:"name" yaml:"name"`
	Type     FieldType `json:"type" yaml:"type"`
	Repeated bool      `json:"repeated,omitempty" yaml:"repeated,omitempty"`
	Fields   []Field   `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Schema is an ordered field list plus metadata pointers consumed by external
// collaborators (sink writers, change trackers). The projection algorithm
// itself reads only Fields.
type Schema struct {
	IDField        string  `json:"idField,omitempty" yaml:"idField,omitempty"`
	TimestampField string  `json:"timestampField,omitempty" yaml:"timestampField,omitempty"`
	Fields         []Field `json:"fields" yaml:"fields"`
}

// Record is an output record. It is freshly allocated per projection and owned
// by the caller. It never maps a key to nil; inside a repeated field's slice,
// a nil element marks a hole left by an invalid element (length preserved).
type Record = map[string]any

// DefaultMaxDepth bounds schema recursion when ProjectOpt.MaxDepth is zero.
// Schemas are acyclic by construction, but nothing enforces that at build
// time; the guard turns a cyclic schema into ErrMaxDepth instead of a stack
// overflow.
const DefaultMaxDepth = 128

// ProjectOpt bundles projection options.
type ProjectOpt struct {
	// MaxDepth limits nested map recursion. Zero means DefaultMaxDepth.
	MaxDepth int
	// Sink, when non-nil, receives each Warning as it is emitted, in addition
	// to the accumulated Warnings returned by the call.
	Sink func(Warning)
}
