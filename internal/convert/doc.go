// Package convert turns record types into their input counterparts.
//
// Pipeline for one record:
//  1. Name the input type: prefix + record name + postfix.
//  2. Filter the record's fields (FilterConvertibleFields): abstract-typed
//     and resolver-bound fields are dropped.
//  3. Convert every remaining field (ConvertField): strip List/Required
//     wrappers, resolve the base type, put the wrappers back.
//  4. A record-typed base recurses into step 1 with the postfix extended by
//     the field name, so nested input names follow the field path.
//
// Base types with no input counterpart become schema.GenericType() and are
// reported to the configured diagnostic.Reporter; conversion never fails.
//
// Within one Converter call, a record reached again while it is still being
// converted resolves to the in-progress input type, and a record reached
// twice under the same derived name resolves to the same input type.
// Nothing is shared between calls unless Options.Cache is set.
package convert
