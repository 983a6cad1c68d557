package docproject

import (
	"errors"
	"fmt"
	"strings"
)

// Warning codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType    = "invalid_type"    // scalar value failed the tag's validator
	CodeNotArray       = "not_array"       // field declared repeated but value is not a sequence
	CodeInvalidElement = "invalid_element" // repeated element failed the tag's validator
	CodeCoerce         = "coerce_error"    // validated value could not be coerced
)

// Warning is a single non-fatal data-quality diagnostic. Warnings describe
// skipped keys and array holes; they never affect control flow.
type Warning struct {
	Path    string // JSON Pointer (for example: /items/2).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: expected shape, tag names, etc.
	// Params carries structured parameters (e.g., {"want":"number","got":"string"})
	// for observability.
	Params map[string]any
}

// Warnings is the accumulated diagnostic side channel of one projection.
type Warnings []Warning

// String summarizes the first few warnings.
func (ws Warnings) String() string {
	if len(ws) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(ws)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		w := ws[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", w.Code, w.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// SchemaError reports an unrecognized type tag in a field descriptor. It is a
// caller bug, not a data-quality issue, and fails the whole projection.
type SchemaError struct {
	Path string    // JSON Pointer of the offending descriptor's slot.
	Type FieldType // The unrecognized tag.
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("docproject: unsupported field type %q at %s", string(e.Type), e.Path)
}

// AsSchemaError extracts a *SchemaError from an error using errors.As internally.
func AsSchemaError(err error) (*SchemaError, bool) {
	if err == nil {
		return nil, false
	}
	var se *SchemaError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// ErrMaxDepth is returned when nested map recursion exceeds the configured
// depth limit, which indicates a cyclic or runaway schema definition.
var ErrMaxDepth = errors.New("docproject: schema nesting exceeds max depth")
