// Package dsl provides programmatic construction of projection schemas.
//
// Entry points
//   - Leaf constructors: String()/Bool()/Number()/JSON()/GeoPoint()/
//     Timestamp()/Reference() build one typed field descriptor.
//   - Map(name, fields...) builds a nested composite field.
//   - Repeated(field) marks a field as an ordered sequence.
//   - New() starts a schema builder; chain Field/IDField/TimestampField and
//     finish with Build()/MustBuild().
//
// Example
//
//	sch := dsl.New().
//		Field(dsl.String("city")).
//		Field(dsl.Repeated(dsl.Number("scores"))).
//		Field(dsl.Map("addr", dsl.String("street"), dsl.String("zip"))).
//		IDField("id").
//		MustBuild()
package dsl

import docproject "github.com/entamburini/docproject"

// String builds a string field descriptor.
func String(name string) docproject.Field {
	return docproject.Field{Name: name, Type: docproject.TypeString}
}

// Bool builds a boolean field descriptor.
func Bool(name string) docproject.Field {
	return docproject.Field{Name: name, Type: docproject.TypeBoolean}
}

// Number builds a number field descriptor.
func Number(name string) docproject.Field {
	return docproject.Field{Name: name, Type: docproject.TypeNumber}
}

// JSON builds a field descriptor whose structured value is serialized to text.
func JSON(name string) docproject.Field {
	return docproject.Field{Name: name, Type: docproject.TypeJSON}
}

// GeoPoint builds a geographic coordinate field descriptor.
func GeoPoint(name string) docproject.Field {
	return docproject.Field{Name: name, Type: docproject.TypeGeoPoint}
}

// Timestamp builds a point-in-time field descriptor.
func Timestamp(name string) docproject.Field {
	return docproject.Field{Name: name, Type: docproject.TypeTimestamp}
}

// Reference builds a document-reference field descriptor.
func Reference(name string) docproject.Field {
	return docproject.Field{Name: name, Type: docproject.TypeReference}
}

// Map builds a composite field whose value is projected against the nested
// field list.
func Map(name string, fields ...docproject.Field) docproject.Field {
	return docproject.Field{Name: name, Type: docproject.TypeMap, Fields: fields}
}

// Repeated marks f as an ordered sequence of same-typed values.
func Repeated(f docproject.Field) docproject.Field {
	f.Repeated = true
	return f
}

// Fields collects descriptors into an ordered schema field list.
func Fields(fs ...docproject.Field) []docproject.Field { return fs }

// Builder accumulates a Schema. Zero value is not usable; start with New.
type Builder struct {
	sch docproject.Schema
}

// New starts an empty schema builder.
func New() *Builder { return &Builder{} }

// Field appends one descriptor, preserving declaration order.
func (b *Builder) Field(f docproject.Field) *Builder {
	b.sch.Fields = append(b.sch.Fields, f)
	return b
}

// IDField records the collaborator metadata pointer naming the identifier field.
func (b *Builder) IDField(name string) *Builder {
	b.sch.IDField = name
	return b
}

// TimestampField records the collaborator metadata pointer naming the
// document timestamp field.
func (b *Builder) TimestampField(name string) *Builder {
	b.sch.TimestampField = name
	return b
}

// Build validates the accumulated definition and returns the Schema.
func (b *Builder) Build() (docproject.Schema, error) {
	if err := docproject.ValidateFields(b.sch.Fields); err != nil {
		return docproject.Schema{}, err
	}
	return b.sch, nil
}

// MustBuild is Build that panics on a malformed definition. Intended for
// schemas declared as package-level literals.
func (b *Builder) MustBuild() docproject.Schema {
	sch, err := b.Build()
	if err != nil {
		panic(err)
	}
	return sch
}
