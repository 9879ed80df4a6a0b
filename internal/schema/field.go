package schema

import "iter"

//go:generate go tool stringer -type=Origin -trimprefix=Origin -output=origin_string.go

// Origin records how a field came to be part of a type.
type Origin int

const (
	// OriginDeclared is a field written out in the type definition.
	OriginDeclared Origin = iota
	// OriginResolverBound is a field attached by a resolver binding.
	// Such fields are never carried over to input types.
	OriginResolverBound
)

// Field describes one named field of a composite type.
type Field struct {
	Name              string
	Type              Type
	Description       string
	DeprecationReason string
	Args              []Arg
	Origin            Origin
}

// Arg describes one argument of an output field.
type Arg struct {
	Name        string
	Type        Type
	Description string
}

// FieldMap is an insertion-ordered mapping from field name to Field.
// A nil *FieldMap behaves as an empty map for all read operations.
type FieldMap struct {
	order  []string
	fields map[string]Field
}

// NewFieldMap creates a FieldMap holding fields keyed by their Name.
func NewFieldMap(fields ...Field) *FieldMap {
	m := &FieldMap{fields: make(map[string]Field, len(fields))}
	for _, f := range fields {
		m.Set(f.Name, f)
	}

	return m
}

// Set stores f under name. Overwriting keeps the original position.
func (m *FieldMap) Set(name string, f Field) {
	if m.fields == nil {
		m.fields = make(map[string]Field)
	}

	f.Name = name
	if _, ok := m.fields[name]; !ok {
		m.order = append(m.order, name)
	}

	m.fields[name] = f
}

// Get returns the field stored under name.
func (m *FieldMap) Get(name string) (Field, bool) {
	if m == nil {
		return Field{}, false
	}

	f, ok := m.fields[name]

	return f, ok
}

// Has reports whether a field is stored under name.
func (m *FieldMap) Has(name string) bool {
	_, ok := m.Get(name)
	return ok
}

// Delete removes the field stored under name, if any.
func (m *FieldMap) Delete(name string) {
	if m == nil {
		return
	}

	if _, ok := m.fields[name]; !ok {
		return
	}

	delete(m.fields, name)

	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i:i], m.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of fields.
func (m *FieldMap) Len() int {
	if m == nil {
		return 0
	}

	return len(m.order)
}

// Names returns the field names in insertion order.
func (m *FieldMap) Names() []string {
	if m == nil {
		return nil
	}

	return append([]string(nil), m.order...)
}

// All iterates over the fields in insertion order.
func (m *FieldMap) All() iter.Seq2[string, Field] {
	return func(yield func(string, Field) bool) {
		if m == nil {
			return
		}

		for _, name := range m.order {
			if !yield(name, m.fields[name]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of m. Field values are copied; the types they
// reference are shared.
func (m *FieldMap) Clone() *FieldMap {
	out := &FieldMap{fields: make(map[string]Field, m.Len())}
	for name, f := range m.All() {
		out.Set(name, f)
	}

	return out
}
