package docproject

// Package docproject provides:
//
// - Schema-driven projection of loosely-typed documents into sanitized,
//   type-coerced records for column-oriented sinks (Project/ProjectDocument)
// - A stable diagnostic model via Warnings (JSON Pointer, code, message)
//   returned as an explicit side channel, never as errors
// - A tagged union for domain wrapper values (GeoPoint, Timestamp, Reference)
//   with ingestion codecs under codec/
//
// Design policy:
// - Keep only public APIs in the root package.
// - Place the schema DSL under dsl/, wire codecs under codec/, document
//   snapshots under source/, the schema description format under schemafile/,
//   log adapters under sink/, and the CLI under cmd/docproject.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	sch, err := schemafile.Load("schema.json")
//	out, warns, err := docproject.ProjectDocument(ctx, source.JSONBytes(data), sch.Fields)
//
// Data-quality mismatches (missing keys, wrong shapes, failed validation) are
// reported through the returned Warnings and never abort a projection. An
// unrecognized field type is a schema-definition bug and fails the whole call
// with a *SchemaError.
