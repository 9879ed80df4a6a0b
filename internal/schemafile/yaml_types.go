package schemafile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"inputtype-generator/internal/schema"
)

// resolverKey marks a field as attached by a resolver binding.
const resolverKey = "resolver"

// UnmarshalYAML accepts either a plain name or a full scalar mapping.
func (s *ScalarDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&s.Name)
	}

	type plain ScalarDef

	return node.Decode((*plain)(s))
}

// UnmarshalYAML implements custom YAML unmarshaling for FieldList.
// Accepts:
//   - Sequence of field mappings: [{name: id, type: ID!}]
//   - Mapping of name to type expression: {id: ID!}
//   - Mapping of name to field mapping: {id: {type: ID!, description: ...}}
func (l *FieldList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		fields := make(FieldList, 0, len(node.Content))

		for _, item := range node.Content {
			var f FieldDef

			if err := item.Decode(&f); err != nil {
				return err
			}

			fields = append(fields, f)
		}

		*l = fields

		return nil

	case yaml.MappingNode:
		fields := make(FieldList, 0, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]

			var f FieldDef

			if value.Kind == yaml.ScalarNode {
				f.Type = value.Value
			} else if err := value.Decode(&f); err != nil {
				return err
			}

			f.Name = key.Value
			fields = append(fields, f)
		}

		*l = fields

		return nil

	default:
		return fmt.Errorf("line %d: expected field list or mapping, got %v", node.Line, node.Kind)
	}
}

// UnmarshalYAML decodes a field mapping and derives its Origin from the
// presence of the "resolver" key.
func (f *FieldDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected field mapping, got %v", node.Line, node.Kind)
	}

	type plain FieldDef

	if err := node.Decode((*plain)(f)); err != nil {
		return err
	}

	f.Origin = schema.OriginDeclared

	for i := 0; i < len(node.Content); i += 2 {
		if node.Content[i].Value == resolverKey {
			f.Origin = schema.OriginResolverBound
			break
		}
	}

	return nil
}
