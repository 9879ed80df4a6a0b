package convert

import (
	"fmt"

	"inputtype-generator/internal/schema"
)

// Collect returns every distinct input type reachable from roots through
// field types, dependencies before dependents. Cycles are followed once.
func Collect(roots ...*schema.Input) []*schema.Input {
	var (
		out  []*schema.Input
		seen = make(map[*schema.Input]bool)
	)

	var visit func(in *schema.Input)
	visit = func(in *schema.Input) {
		if in == nil || seen[in] {
			return
		}

		seen[in] = true

		for _, f := range in.Fields.All() {
			if nested, ok := schema.NamedOf(f.Type).(*schema.Input); ok {
				visit(nested)
			}
		}

		out = append(out, in)
	}

	for _, root := range roots {
		visit(root)
	}

	return out
}

// Install registers root, every input type nested under it, and any leaf
// types they reference that the registry does not know yet (such as the
// generic fallback). Name clashes surface as the registry's
// schema.ErrDuplicateType.
func Install(reg *schema.Registry, root *schema.Input) error {
	for _, in := range Collect(root) {
		for fieldName, f := range in.Fields.All() {
			leaf := schema.NamedOf(f.Type)
			if leaf == nil || reg.Get(leaf.TypeName()) != nil {
				continue
			}

			switch leaf.(type) {
			case *schema.Scalar, *schema.Enum:
				if err := reg.Add(leaf); err != nil {
					return fmt.Errorf("installing %s: %w", schema.FieldPath(in.Name, fieldName), err)
				}
			}
		}

		if err := reg.Add(in); err != nil {
			return fmt.Errorf("installing %s: %w", in.Name, err)
		}
	}

	return nil
}
