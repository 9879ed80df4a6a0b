package gen

import (
	"github.com/goccy/go-json"

	"inputtype-generator/internal/schema"
)

// InputDoc is the JSON form of an input type.
type InputDoc struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Fields      []FieldDoc `json:"fields"`
}

// FieldDoc is the JSON form of an input field.
type FieldDoc struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Kind        string `json:"kind"`
	Required    bool   `json:"required"`
	List        bool   `json:"list"`
	Description string `json:"description,omitempty"`
}

// Docs converts inputs into their JSON document form.
func Docs(inputs []*schema.Input) []InputDoc {
	docs := make([]InputDoc, 0, len(inputs))

	for _, in := range inputs {
		doc := InputDoc{
			Name:        in.Name,
			Description: in.Description,
			Fields:      make([]FieldDoc, 0, in.Fields.Len()),
		}

		for name, f := range in.Fields.All() {
			_, required := f.Type.(*schema.Required)

			fd := FieldDoc{
				Name:        name,
				Type:        schema.TypeString(f.Type),
				Required:    required,
				List:        isList(f.Type),
				Description: f.Description,
			}

			if named := schema.NamedOf(f.Type); named != nil {
				fd.Kind = named.Kind().String()
			}

			doc.Fields = append(doc.Fields, fd)
		}

		docs = append(docs, doc)
	}

	return docs
}

// JSON renders inputs as an indented JSON array.
func JSON(inputs []*schema.Input) ([]byte, error) {
	return json.MarshalIndent(Docs(inputs), "", "  ")
}

func isList(t schema.Type) bool {
	if r, ok := t.(*schema.Required); ok {
		t = r.OfType
	}

	_, ok := t.(*schema.List)

	return ok
}
