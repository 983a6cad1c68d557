package docproject

import "fmt"

// ValidateFields checks a field list as a schema definition: every descriptor
// carries a name and a recognized type tag, and nested field lists appear
// exactly on map entries. Unknown tags are reported as *SchemaError with the
// offending descriptor's JSON Pointer.
//
// Project performs the same gate lazily, per field encountered; validating at
// the configuration boundary surfaces caller bugs before any document flows.
func ValidateFields(fields []Field) error {
	return validateFields(fields, Root())
}

func validateFields(fields []Field, at PathRef) error {
	for _, f := range fields {
		if f.Name == "" {
			return fmt.Errorf("docproject: field with empty name at %s", at.Pointer())
		}
		fat := at.Field(f.Name)
		if !KnownType(f.Type) {
			return &SchemaError{Path: fat.Pointer(), Type: f.Type}
		}
		if f.Type == TypeMap {
			if len(f.Fields) == 0 {
				return fmt.Errorf("docproject: map field %s declares no nested fields", fat.Pointer())
			}
			if err := validateFields(f.Fields, fat); err != nil {
				return err
			}
		}
		// Nested fields on non-map entries are meaningless and ignored.
	}
	return nil
}
