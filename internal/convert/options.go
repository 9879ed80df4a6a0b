package convert

import "inputtype-generator/internal/diagnostic"

// DefaultPostfix is appended to input type names when Options.Postfix is empty.
const DefaultPostfix = "Input"

// Options configures a conversion.
type Options struct {
	// Prefix is prepended to every produced type name.
	Prefix string
	// Postfix is appended to the top-level type name; empty means DefaultPostfix.
	Postfix string
	// Reporter receives advisory diagnostics; nil logs them.
	Reporter diagnostic.Reporter
	// Cache, when set, shares produced input types across calls.
	Cache Cache
}

// FieldContext carries the naming state for converting one field.
type FieldContext struct {
	Prefix  string
	Postfix string
	// FieldName is the name of the field being converted.
	FieldName string
	// OutputTypeName is the name of the record that owns the field.
	OutputTypeName string
	// Reporter receives advisory diagnostics; nil logs them.
	Reporter diagnostic.Reporter
}

func (o Options) withDefaults() Options {
	if o.Postfix == "" {
		o.Postfix = DefaultPostfix
	}

	if o.Reporter == nil {
		o.Reporter = diagnostic.LogReporter{}
	}

	return o
}
