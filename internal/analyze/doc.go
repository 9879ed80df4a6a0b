// Package analyze builds record types from Go structs.
//
// It uses golang.org/x/tools/go/packages with go/types to load packages and
// maps their exported declarations onto the schema type system:
//   - struct types become records; embedded structs are flattened
//   - named string/int types with package constants become enums
//   - interfaces with getter methods become interfaces
//   - basic types map to the built-in scalars, time.Time to DateTime
//   - maps, channels, functions and the like become opaque types
//
// Value fields are required, pointer and slice fields are nullable.
// Field names follow the json tag; the "desc" and "deprecated" tags carry
// metadata and a "resolver" tag, with any value, marks a field as
// resolver-bound.
package analyze
