package docproject

import (
	"context"
	"errors"
	"fmt"
)

// Project extracts the schema-declared fields from doc and returns the
// sanitized, type-coerced record together with the data-quality warnings
// accumulated along the way. The engine is a pure function of its inputs:
// it holds no state between invocations and never mutates doc or fields.
//
// The returned error is non-nil only for schema-definition failures (an
// unrecognized type tag, or nesting beyond the depth limit); no partial
// output is returned in that case.
func Project(ctx context.Context, doc map[string]any, fields []Field, opts ...ProjectOpt) (Record, Warnings, error) {
	var opt ProjectOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	maxDepth := opt.MaxDepth
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}
	p := &projector{maxDepth: maxDepth, sink: opt.Sink}
	out, err := p.project(doc, fields, Root(), 0)
	if err != nil {
		return nil, nil, err
	}
	return out, p.warnings, nil
}

// projector carries the per-call diagnostic state of one projection. A fresh
// projector is allocated per Project call, so the package stays reentrant.
type projector struct {
	maxDepth int
	sink     func(Warning)
	warnings Warnings
}

func (p *projector) warn(w Warning) {
	p.warnings = append(p.warnings, w)
	if p.sink != nil {
		p.sink(w)
	}
}

// project iterates the field descriptors in declared order, applies the skip
// rules, and delegates accepted values to processField. Nested map fields
// re-enter project with the nested field list.
func (p *projector) project(doc map[string]any, fields []Field, at PathRef, depth int) (Record, error) {
	if depth > p.maxDepth {
		return nil, fmt.Errorf("%w (limit %d at %s)", ErrMaxDepth, p.maxDepth, at.Pointer())
	}
	out := make(Record)
	for _, f := range fields {
		fat := at.Field(f.Name)
		v, ok := doc[f.Name]
		// Skip rule A: absent or null keys are omitted silently.
		if !ok || v == nil {
			continue
		}
		// Skip rule B: declared shape mismatch takes priority over type checking.
		if f.Repeated {
			if _, isSeq := v.([]any); !isSeq {
				p.warn(fat.Warning(CodeNotArray, "field is declared repeated but value is not a sequence",
					"type", string(f.Type), "got", fmt.Sprintf("%T", v)))
				continue
			}
		}
		// Validity gate: an unknown tag is a caller bug and aborts the call.
		if !KnownType(f.Type) {
			return nil, &SchemaError{Path: fat.Pointer(), Type: f.Type}
		}
		cv, defined, err := p.processField(f, fat, v, depth)
		if err != nil {
			return nil, err
		}
		if defined {
			out[f.Name] = cv
		}
	}
	return out, nil
}

// processField validates and coerces one candidate value against one field
// descriptor. The second result reports whether the value is defined; callers
// drop the key when it is false. v is guaranteed non-nil by the caller.
func (p *projector) processField(f Field, at PathRef, v any, depth int) (any, bool, error) {
	entry := typeRegistry[f.Type]
	if f.Repeated {
		if seq, ok := v.([]any); ok {
			// Invalid elements become holes, not omissions: the output keeps
			// the input's length so element indexes stay aligned.
			out := make([]any, len(seq))
			for i, el := range seq {
				eat := at.Index(i)
				if el == nil || !entry.valid(el) {
					p.warn(eat.Warning(CodeInvalidElement, "element does not match the declared type",
						"type", string(f.Type), "got", fmt.Sprintf("%T", el)))
					continue
				}
				cv, err := entry.coerce(p, f, eat, depth, el)
				if err != nil {
					if isFatal(err) {
						return nil, false, err
					}
					p.warn(eat.Warning(CodeCoerce, err.Error(), "type", string(f.Type)))
					continue
				}
				out[i] = cv
			}
			return out, true, nil
		}
		// Unreachable from project, which applies skip rule B first; kept so
		// the operation stands alone.
		p.warn(at.Warning(CodeNotArray, "field is declared repeated but value is not a sequence",
			"type", string(f.Type), "got", fmt.Sprintf("%T", v)))
		return nil, false, nil
	}
	if !entry.valid(v) {
		p.warn(at.Warning(CodeInvalidType, "value does not match the declared type",
			"type", string(f.Type), "got", fmt.Sprintf("%T", v)))
		return nil, false, nil
	}
	cv, err := entry.coerce(p, f, at, depth, v)
	if err != nil {
		if isFatal(err) {
			return nil, false, err
		}
		p.warn(at.Warning(CodeCoerce, err.Error(), "type", string(f.Type)))
		return nil, false, nil
	}
	return cv, true, nil
}

// isFatal reports whether err must abort the whole projection: schema
// definition bugs and the depth guard, never data-quality mismatches.
func isFatal(err error) bool {
	if _, ok := AsSchemaError(err); ok {
		return true
	}
	return errors.Is(err, ErrMaxDepth)
}
