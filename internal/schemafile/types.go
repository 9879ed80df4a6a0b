package schemafile

import "inputtype-generator/internal/schema"

// Document represents the root of a YAML schema file.
type Document struct {
	// Version of the document format.
	Version string `yaml:"version,omitempty"`

	// Scalars declares custom scalar types beside the built-ins.
	Scalars []ScalarDef `yaml:"scalars,omitempty"`

	// Enums declares enumeration types.
	Enums []EnumDef `yaml:"enums,omitempty"`

	// Interfaces declares abstract interface types.
	Interfaces []ObjectDef `yaml:"interfaces,omitempty"`

	// Unions declares abstract union types over records.
	Unions []UnionDef `yaml:"unions,omitempty"`

	// Types declares record (output object) types.
	Types []ObjectDef `yaml:"types,omitempty"`

	// Inputs declares hand-written input types.
	Inputs []ObjectDef `yaml:"inputs,omitempty"`

	// Convert lists the records to convert and how to name the results.
	Convert []ConvertDef `yaml:"convert,omitempty"`
}

// ScalarDef declares a custom scalar. A plain string is accepted as the name.
type ScalarDef struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// EnumDef declares an enumeration.
type EnumDef struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Values      []string `yaml:"values"`
}

// UnionDef declares a union of record types.
type UnionDef struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Types       []string `yaml:"types"`
}

// ObjectDef declares a record, input or interface type.
type ObjectDef struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Fields      FieldList `yaml:"fields"`
}

// FieldList is an ordered list of field definitions.
type FieldList []FieldDef

// FieldDef declares one field.
type FieldDef struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Description string   `yaml:"description,omitempty"`
	Deprecated  string   `yaml:"deprecated,omitempty"`
	Args        []ArgDef `yaml:"args,omitempty"`

	// Origin is decided while decoding from the presence of the
	// "resolver" key.
	Origin schema.Origin `yaml:"-"`
}

// ArgDef declares one argument of a record field.
type ArgDef struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description,omitempty"`
}

// ConvertDef requests conversion of one record.
type ConvertDef struct {
	Type    string `yaml:"type"`
	Prefix  string `yaml:"prefix,omitempty"`
	Postfix string `yaml:"postfix,omitempty"`
}

// Request is a ConvertDef resolved against a registry.
type Request struct {
	Record  *schema.Record
	Prefix  string
	Postfix string
}
