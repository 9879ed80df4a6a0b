package schema

import "fmt"

// IsWrapping reports whether t is a List or Required wrapper.
func IsWrapping(t Type) bool {
	switch t.(type) {
	case *List, *Required:
		return true
	default:
		return false
	}
}

// NamedOf strips all wrappers from t and returns the named type underneath.
func NamedOf(t Type) Named {
	for {
		switch tt := t.(type) {
		case *List:
			t = tt.OfType
		case *Required:
			t = tt.OfType
		case Named:
			return tt
		default:
			return nil
		}
	}
}

// NameOf returns the name of the type underneath all wrappers, or "" for nil.
func NameOf(t Type) string {
	if n := NamedOf(t); n != nil {
		return n.TypeName()
	}

	return ""
}

// IsInputType reports whether t (after unwrapping) may be used as an input.
// Scalars, enums and input object types qualify.
func IsInputType(t Type) bool {
	switch NamedOf(t).(type) {
	case *Scalar, *Enum, *Input:
		return true
	default:
		return false
	}
}

// IsOutputType reports whether t (after unwrapping) may be used as the type
// of a record field.
func IsOutputType(t Type) bool {
	switch NamedOf(t).(type) {
	case *Scalar, *Enum, *Record, *Interface, *Union, *Opaque:
		return true
	default:
		return false
	}
}

// IsAbstractType reports whether t itself is an interface or union.
// Wrappers are not looked through.
func IsAbstractType(t Type) bool {
	switch t.(type) {
	case *Interface, *Union:
		return true
	default:
		return false
	}
}

// FieldsOf returns a copy of the field map of a composite type.
// Non-composite types yield an empty map.
func FieldsOf(t Type) *FieldMap {
	switch tt := t.(type) {
	case *Record:
		return tt.Fields.Clone()
	case *Input:
		return tt.Fields.Clone()
	case *Interface:
		return tt.Fields.Clone()
	default:
		return NewFieldMap()
	}
}

// SetFields replaces the field map of a composite type.
func SetFields(t Type, fields *FieldMap) error {
	switch tt := t.(type) {
	case *Record:
		tt.Fields = fields
	case *Input:
		tt.Fields = fields
	case *Interface:
		tt.Fields = fields
	default:
		return fmt.Errorf("type %s (kind: %s) has no fields", TypeString(t), kindOf(t))
	}

	return nil
}

func kindOf(t Type) Kind {
	if t == nil {
		return KindUnknown
	}

	return t.Kind()
}
