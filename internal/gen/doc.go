// Package gen renders produced input types.
//
// Output formats:
//   - SDL: GraphQL-style input declarations
//   - Go: one struct per input type, built with jennifer
//   - JSON: a machine-readable description of every input and field
//
// All emitters take the inputs in the order given; use convert.Collect to
// get dependencies first.
package gen
