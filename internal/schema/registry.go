package schema

import (
	"errors"
	"fmt"

	"inputtype-generator/internal/match"
)

// Structural errors reported by the registry.
var (
	ErrDuplicateType = errors.New("duplicate type name")
	ErrUnknownType   = errors.New("unknown type")
	ErrEmptyFields   = errors.New("type has no fields")
	ErrInvalidField  = errors.New("invalid field type")
	ErrInvalidUnion  = errors.New("invalid union")
)

// Registry holds named types by name.
type Registry struct {
	types map[string]Named
	order []string
}

// NewRegistry creates a Registry pre-populated with the built-in scalars.
func NewRegistry() *Registry {
	r := &Registry{types: make(map[string]Named)}
	for _, s := range BuiltinScalars() {
		r.types[s.Name] = s
		r.order = append(r.order, s.Name)
	}

	return r
}

// Add registers t. Adding the same instance twice is a no-op; adding a
// different type under an existing name fails with ErrDuplicateType.
func (r *Registry) Add(t Named) error {
	if t == nil {
		return errors.New("cannot register nil type")
	}

	name := t.TypeName()
	if name == "" {
		return fmt.Errorf("cannot register %s type without a name", t.Kind())
	}

	if existing, ok := r.types[name]; ok {
		if existing == t {
			return nil
		}

		return fmt.Errorf("%w: %s (%s already registered as %s)", ErrDuplicateType, name, t.Kind(), existing.Kind())
	}

	r.types[name] = t
	r.order = append(r.order, name)

	return nil
}

// Get returns the type registered under name, or nil if not found.
func (r *Registry) Get(name string) Named {
	return r.types[name]
}

// Record returns the record registered under name.
func (r *Registry) Record(name string) (*Record, error) {
	t := r.Get(name)
	if t == nil {
		return nil, fmt.Errorf("%w: %s%s", ErrUnknownType, name, match.DidYouMean(name, r.recordNames()))
	}

	rec, ok := t.(*Record)
	if !ok {
		return nil, fmt.Errorf("type %s is not a record (kind: %s)", name, t.Kind())
	}

	return rec, nil
}

func (r *Registry) recordNames() []string {
	var names []string

	for _, name := range r.order {
		if _, ok := r.types[name].(*Record); ok {
			names = append(names, name)
		}
	}

	return names
}

// Names returns the registered type names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Types returns the registered types in registration order.
func (r *Registry) Types() []Named {
	out := make([]Named, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.types[name])
	}

	return out
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.order)
}

// Validate checks the structural rules of every registered type and returns
// all violations joined into one error, or nil.
func (r *Registry) Validate() error {
	var errs []error

	for _, name := range r.order {
		switch t := r.types[name].(type) {
		case *Record:
			errs = append(errs, r.validateFields(name, t.Fields, IsOutputType)...)
		case *Interface:
			errs = append(errs, r.validateFields(name, t.Fields, IsOutputType)...)
		case *Input:
			errs = append(errs, r.validateFields(name, t.Fields, IsInputType)...)
		case *Union:
			errs = append(errs, r.validateUnion(t)...)
		}
	}

	return errors.Join(errs...)
}

func (r *Registry) validateFields(typeName string, fields *FieldMap, legal func(Type) bool) []error {
	if fields.Len() == 0 {
		return []error{fmt.Errorf("%w: %s", ErrEmptyFields, typeName)}
	}

	var errs []error

	for fieldName, f := range fields.All() {
		path := FieldPath(typeName, fieldName)

		if !legal(f.Type) {
			errs = append(errs, fmt.Errorf("%w: %s has type %s", ErrInvalidField, path, TypeString(f.Type)))
			continue
		}

		if err := r.checkReference(path, f.Type); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

func (r *Registry) validateUnion(u *Union) []error {
	if len(u.Members) == 0 {
		return []error{fmt.Errorf("%w: %s has no members", ErrInvalidUnion, u.Name)}
	}

	var errs []error

	for _, m := range u.Members {
		if m == nil {
			errs = append(errs, fmt.Errorf("%w: %s has a nil member", ErrInvalidUnion, u.Name))
			continue
		}

		if err := r.checkReference(u.Name, m); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

// checkReference verifies that the named type under t is the instance
// registered under its name.
func (r *Registry) checkReference(path string, t Type) error {
	named := NamedOf(t)
	if named == nil {
		return fmt.Errorf("%w: %s references a nil type", ErrUnknownType, path)
	}

	registered, ok := r.types[named.TypeName()]
	if !ok {
		return fmt.Errorf("%w: %s references %s", ErrUnknownType, path, named.TypeName())
	}

	if registered != named {
		return fmt.Errorf("%w: %s references a different %s than the registered one", ErrDuplicateType, path, named.TypeName())
	}

	return nil
}
