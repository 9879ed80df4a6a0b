package schemafile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"inputtype-generator/internal/schema"
)

// CurrentVersion is the only document version understood by Parse.
const CurrentVersion = "1"

// LoadFile loads and parses a YAML schema file from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Document.
func Parse(data []byte) (*Document, error) {
	var doc Document

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&doc)

	if doc.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported schema version %q (want %q)", doc.Version, CurrentVersion)
	}

	return &doc, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(doc *Document) {
	if doc.Version == "" {
		doc.Version = CurrentVersion
	}
}

// Build creates a registry holding every type declared in doc and validates
// it. Types may reference each other in any order, including themselves.
func Build(doc *Document) (*schema.Registry, error) {
	reg := schema.NewRegistry()

	var errs []error

	add := func(t schema.Named) {
		if err := reg.Add(t); err != nil {
			errs = append(errs, err)
		}
	}

	// Declare every named type first so field types can refer forward.
	for _, s := range doc.Scalars {
		add(&schema.Scalar{Name: s.Name, Description: s.Description})
	}

	for _, e := range doc.Enums {
		add(&schema.Enum{Name: e.Name, Description: e.Description, Values: e.Values})
	}

	interfaces := declare(doc.Interfaces, func(d ObjectDef) *schema.Interface {
		return &schema.Interface{Name: d.Name, Description: d.Description}
	}, add)
	records := declare(doc.Types, func(d ObjectDef) *schema.Record {
		return &schema.Record{Name: d.Name, Description: d.Description}
	}, add)
	inputs := declare(doc.Inputs, func(d ObjectDef) *schema.Input {
		return &schema.Input{Name: d.Name, Description: d.Description}
	}, add)

	unions := make([]*schema.Union, len(doc.Unions))
	for i, u := range doc.Unions {
		unions[i] = &schema.Union{Name: u.Name, Description: u.Description}
		add(unions[i])
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	// Then fill in fields and members.
	for i, d := range doc.Interfaces {
		errs = append(errs, fillFields(reg, interfaces[i], d)...)
	}

	for i, d := range doc.Types {
		errs = append(errs, fillFields(reg, records[i], d)...)
	}

	for i, d := range doc.Inputs {
		errs = append(errs, fillFields(reg, inputs[i], d)...)
	}

	for i, d := range doc.Unions {
		errs = append(errs, fillMembers(reg, unions[i], d)...)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if err := reg.Validate(); err != nil {
		return nil, err
	}

	return reg, nil
}

func declare[T schema.Named](defs []ObjectDef, mk func(ObjectDef) T, add func(schema.Named)) []T {
	out := make([]T, len(defs))
	for i, d := range defs {
		out[i] = mk(d)
		add(out[i])
	}

	return out
}

func fillFields(reg *schema.Registry, t schema.Named, def ObjectDef) []error {
	var errs []error

	fields := schema.NewFieldMap()

	for _, fd := range def.Fields {
		path := schema.FieldPath(def.Name, fd.Name)

		if fd.Name == "" {
			errs = append(errs, fmt.Errorf("%s: field without a name", def.Name))
			continue
		}

		if fields.Has(fd.Name) {
			errs = append(errs, fmt.Errorf("%s: field declared twice", path))
			continue
		}

		ft, err := resolveExpr(reg, fd.Type)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}

		args := make([]schema.Arg, 0, len(fd.Args))

		for _, ad := range fd.Args {
			at, err := resolveExpr(reg, ad.Type)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s(%s): %w", path, ad.Name, err))
				continue
			}

			args = append(args, schema.Arg{Name: ad.Name, Type: at, Description: ad.Description})
		}

		fields.Set(fd.Name, schema.Field{
			Type:              ft,
			Description:       fd.Description,
			DeprecationReason: fd.Deprecated,
			Args:              args,
			Origin:            fd.Origin,
		})
	}

	if err := schema.SetFields(t, fields); err != nil {
		errs = append(errs, err)
	}

	return errs
}

func fillMembers(reg *schema.Registry, u *schema.Union, def UnionDef) []error {
	var errs []error

	for _, name := range def.Types {
		rec, err := reg.Record(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("union %s: %w", u.Name, err))
			continue
		}

		u.Members = append(u.Members, rec)
	}

	return errs
}

func resolveExpr(reg *schema.Registry, expr string) (schema.Type, error) {
	ref, err := ParseTypeRef(expr)
	if err != nil {
		return nil, err
	}

	return ref.Resolve(reg)
}

// Requests resolves the document's convert section against reg.
func (d *Document) Requests(reg *schema.Registry) ([]Request, error) {
	out := make([]Request, 0, len(d.Convert))

	for _, c := range d.Convert {
		rec, err := reg.Record(c.Type)
		if err != nil {
			return nil, fmt.Errorf("convert %s: %w", c.Type, err)
		}

		out = append(out, Request{Record: rec, Prefix: c.Prefix, Postfix: c.Postfix})
	}

	return out, nil
}
