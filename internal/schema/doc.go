// Package schema provides the host type system that input conversion runs
// against.
//
// Types form a closed set of variants:
//   - Scalar, Enum: leaf types, legal both as input and output
//   - Record: output object type with named, typed fields
//   - Input: input object type, the result of converting a Record
//   - Interface, Union: abstract types, never convertible
//   - Opaque: anything the loaders could not classify
//   - List, Required: wrappers around another type
//
// A Registry holds named types by name and performs the structural
// validation (duplicate names, empty field sets, illegal field types)
// that callers rely on when installing produced input types.
package schema
