package schema

import "inputtype-generator/internal/common"

// Kind identifies the variant of a type node.
type Kind int

const (
	KindUnknown   Kind = iota
	KindScalar         // String, Int, custom scalars
	KindEnum           // enumeration of named values
	KindRecord         // output object type
	KindInput          // input object type
	KindInterface      // abstract: interface
	KindUnion          // abstract: union of records
	KindOpaque         // unclassified type
	KindList           // wrapper: list of another type
	KindRequired       // wrapper: non-null another type
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindEnum:
		return "enum"
	case KindRecord:
		return "record"
	case KindInput:
		return "input"
	case KindInterface:
		return "interface"
	case KindUnion:
		return "union"
	case KindOpaque:
		return "opaque"
	case KindList:
		return "list"
	case KindRequired:
		return "required"
	default:
		return common.UnknownStr
	}
}

// Type is a node in the schema type graph.
// The set of implementations is closed to this package.
type Type interface {
	Kind() Kind
	isType()
}

// Named is implemented by every type that is not a wrapper.
type Named interface {
	Type
	TypeName() string
}

// Scalar is a leaf value type.
type Scalar struct {
	Name        string
	Description string
}

// Enum is a leaf type restricted to a fixed set of values.
type Enum struct {
	Name        string
	Description string
	Values      []string
}

// Record is an output object type.
type Record struct {
	Name        string
	Description string
	Fields      *FieldMap
}

// Input is an input object type.
type Input struct {
	Name        string
	Description string
	Fields      *FieldMap
}

// Interface is an abstract type describing a shared field set.
type Interface struct {
	Name        string
	Description string
	Fields      *FieldMap
}

// Union is an abstract type that resolves to one of its member records.
type Union struct {
	Name        string
	Description string
	Members     []*Record
}

// Opaque stands for a type the loaders recognized but could not classify
// (e.g. Go maps or channels).
type Opaque struct {
	Name string
}

// List wraps a type as "list of".
type List struct {
	OfType Type
}

// Required wraps a type as non-null.
type Required struct {
	OfType Type
}

func (*Scalar) Kind() Kind    { return KindScalar }
func (*Enum) Kind() Kind      { return KindEnum }
func (*Record) Kind() Kind    { return KindRecord }
func (*Input) Kind() Kind     { return KindInput }
func (*Interface) Kind() Kind { return KindInterface }
func (*Union) Kind() Kind     { return KindUnion }
func (*Opaque) Kind() Kind    { return KindOpaque }
func (*List) Kind() Kind      { return KindList }
func (*Required) Kind() Kind  { return KindRequired }

func (*Scalar) isType()    {}
func (*Enum) isType()      {}
func (*Record) isType()    {}
func (*Input) isType()     {}
func (*Interface) isType() {}
func (*Union) isType()     {}
func (*Opaque) isType()    {}
func (*List) isType()      {}
func (*Required) isType()  {}

func (t *Scalar) TypeName() string    { return t.Name }
func (t *Enum) TypeName() string      { return t.Name }
func (t *Record) TypeName() string    { return t.Name }
func (t *Input) TypeName() string     { return t.Name }
func (t *Interface) TypeName() string { return t.Name }
func (t *Union) TypeName() string     { return t.Name }
func (t *Opaque) TypeName() string    { return t.Name }

// ListOf returns a list wrapper around t.
func ListOf(t Type) *List {
	return &List{OfType: t}
}

// RequiredOf returns a non-null wrapper around t.
func RequiredOf(t Type) *Required {
	return &Required{OfType: t}
}

// NewRecord creates a record with the given fields in declaration order.
func NewRecord(name string, fields ...Field) *Record {
	return &Record{Name: name, Fields: NewFieldMap(fields...)}
}

// NewInput creates an input type with the given fields in declaration order.
func NewInput(name string, fields ...Field) *Input {
	return &Input{Name: name, Fields: NewFieldMap(fields...)}
}

// Built-in scalars.
var (
	String  = &Scalar{Name: "String", Description: "UTF-8 character sequence."}
	Int     = &Scalar{Name: "Int", Description: "Signed 32-bit integer."}
	Float   = &Scalar{Name: "Float", Description: "Signed double-precision floating-point value."}
	Boolean = &Scalar{Name: "Boolean", Description: "true or false."}
	ID      = &Scalar{Name: "ID", Description: "Unique identifier."}
)

// BuiltinScalars returns the built-in scalar types in a stable order.
func BuiltinScalars() []*Scalar {
	return []*Scalar{String, Int, Float, Boolean, ID}
}

var genericType = &Scalar{
	Name:        "Generic",
	Description: "Any value. Used where a field type has no input counterpart.",
}

// GenericType returns the shared fallback type substituted for field types
// that have no input counterpart. It must not be mutated.
func GenericType() *Scalar {
	return genericType
}
