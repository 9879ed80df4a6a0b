package schema

import (
	"strings"

	"inputtype-generator/internal/common"
)

// TypeString returns the reference form of t as written in a schema
// document, e.g. "[String!]!".
func TypeString(t Type) string {
	switch tt := t.(type) {
	case nil:
		return "<nil>"
	case *List:
		return "[" + TypeString(tt.OfType) + "]"
	case *Required:
		return TypeString(tt.OfType) + "!"
	case Named:
		return tt.TypeName()
	default:
		return common.UnknownStr
	}
}

// TypePath builds a readable path string through types and fields.
// Examples:
//   - "User" for a type
//   - "User.posts" for a field
//   - "User.posts[].author" for a field within list elements
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{
		parts: []string{root},
	}
}

// Field appends a field name to the path.
func (p *TypePath) Field(name string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// List marks the last path element as a list.
func (p *TypePath) List() *TypePath {
	if len(p.parts) == 0 {
		return &TypePath{parts: []string{"[]"}}
	}

	newParts := make([]string, len(p.parts))
	copy(newParts, p.parts)
	newParts[len(newParts)-1] += "[]"

	return &TypePath{parts: newParts}
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}

// FieldPath returns "typeName.fieldName".
func FieldPath(typeName, fieldName string) string {
	return NewTypePath(typeName).Field(fieldName).String()
}
