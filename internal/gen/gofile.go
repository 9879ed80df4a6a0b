package gen

import (
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"

	"inputtype-generator/internal/common"
	"inputtype-generator/internal/schema"
)

// GeneratedHeader marks emitted Go files as generated.
const GeneratedHeader = "Code generated by inputtype-generator. DO NOT EDIT."

// GoFile builds a Go source file declaring one struct per input type plus
// a string type for every enum the inputs reference.
func GoFile(pkg string, inputs []*schema.Input) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment(GeneratedHeader)

	var enums []*schema.Enum

	seen := make(map[*schema.Enum]bool)

	for _, in := range inputs {
		for _, field := range in.Fields.All() {
			if e, ok := schema.NamedOf(field.Type).(*schema.Enum); ok && !seen[e] {
				seen[e] = true
				enums = append(enums, e)
			}
		}
	}

	for _, e := range enums {
		generateEnum(f, e)
		f.Line()
	}

	for _, in := range inputs {
		generateStruct(f, in)
		f.Line()
	}

	return f
}

func generateEnum(f *jen.File, e *schema.Enum) {
	if e.Description != "" {
		f.Comment(e.Name + " " + e.Description)
	}

	f.Type().Id(e.Name).String()

	if len(e.Values) == 0 {
		return
	}

	defs := make([]jen.Code, 0, len(e.Values))
	for _, v := range e.Values {
		defs = append(defs, jen.Id(enumConstName(e.Name, v)).Id(e.Name).Op("=").Lit(v))
	}

	f.Const().Defs(defs...)
}

func generateStruct(f *jen.File, in *schema.Input) {
	if in.Description != "" {
		f.Comment(in.Name + " " + in.Description)
	}

	fields := make([]jen.Code, 0, in.Fields.Len())
	used := make(map[string]bool, in.Fields.Len())

	for name, field := range in.Fields.All() {
		tag := name
		if _, required := field.Type.(*schema.Required); !required {
			tag += ",omitempty"
		}

		code := jen.Id(uniqueName(goFieldName(name), used)).Add(goType(field.Type)).Tag(map[string]string{"json": tag})
		if field.Description != "" {
			code.Comment(field.Description)
		}

		fields = append(fields, code)
	}

	f.Type().Id(in.Name).Struct(fields...)
}

// goType maps a field type to Go: required scalars and enums are values,
// input types and nullable named types are pointers, lists are slices.
// Input types are always pointers since they may refer back to the struct
// that holds them.
func goType(t schema.Type) *jen.Statement {
	if r, ok := t.(*schema.Required); ok {
		if _, isInput := r.OfType.(*schema.Input); !isInput {
			return valueType(r.OfType)
		}

		t = r.OfType
	}

	if _, ok := t.(*schema.List); ok {
		return valueType(t)
	}

	if isInterfaceType(t) {
		return valueType(t)
	}

	return jen.Op("*").Add(valueType(t))
}

func valueType(t schema.Type) *jen.Statement {
	switch tt := t.(type) {
	case *schema.Required:
		return valueType(tt.OfType)
	case *schema.List:
		return jen.Index().Add(goType(tt.OfType))
	case *schema.Scalar:
		return scalarType(tt)
	case *schema.Enum:
		return jen.Id(tt.Name)
	case *schema.Input:
		return jen.Id(tt.Name)
	default:
		return jen.Any()
	}
}

func scalarType(s *schema.Scalar) *jen.Statement {
	if code, ok := builtinScalarType(s.Name); ok {
		return code
	}

	return jen.Any()
}

func builtinScalarType(name string) (*jen.Statement, bool) {
	switch name {
	case schema.String.Name, schema.ID.Name:
		return jen.String(), true
	case schema.Int.Name:
		return jen.Int(), true
	case schema.Float.Name:
		return jen.Float64(), true
	case schema.Boolean.Name:
		return jen.Bool(), true
	case "DateTime":
		return jen.Qual("time", "Time"), true
	default:
		return nil, false
	}
}

// isInterfaceType reports whether t renders as an empty interface, which is
// already nillable.
func isInterfaceType(t schema.Type) bool {
	switch tt := t.(type) {
	case *schema.Scalar:
		_, ok := builtinScalarType(tt.Name)
		return !ok
	case *schema.Enum, *schema.Input:
		return false
	default:
		return true
	}
}

func goFieldName(name string) string {
	switch strings.ToLower(name) {
	case "id":
		return "ID"
	case "url":
		return "URL"
	}

	return common.UpperFirst(name)
}

// uniqueName returns name, or name with the first free numeric suffix if
// it is already in used, and marks the result as used.
func uniqueName(name string, used map[string]bool) string {
	candidate := name
	for i := 2; used[candidate]; i++ {
		candidate = name + strconv.Itoa(i)
	}

	used[candidate] = true

	return candidate
}

func enumConstName(typeName, value string) string {
	var sb strings.Builder

	sb.WriteString(typeName)

	for _, part := range strings.FieldsFunc(value, func(r rune) bool { return r == '_' || r == '-' || r == ' ' }) {
		sb.WriteString(common.UpperFirst(strings.ToLower(part)))
	}

	return sb.String()
}
