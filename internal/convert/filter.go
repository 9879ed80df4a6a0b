package convert

import "inputtype-generator/internal/schema"

// FilterConvertibleFields returns a new map holding only the fields that can
// appear on an input type. Fields whose declared type is abstract and fields
// attached by a resolver binding are left out; order is preserved.
func FilterConvertibleFields(fields *schema.FieldMap) *schema.FieldMap {
	out := schema.NewFieldMap()

	for name, f := range fields.All() {
		if schema.IsAbstractType(f.Type) || f.Origin == schema.OriginResolverBound {
			continue
		}

		out.Set(name, f)
	}

	return out
}
