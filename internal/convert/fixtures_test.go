package convert

import "inputtype-generator/internal/schema"

type blogSchema struct {
	node    *schema.Interface
	search  *schema.Union
	role    *schema.Enum
	address *schema.Record
	user    *schema.Record
	post    *schema.Record
}

// newBlogSchema builds User <-> Post with an address, an enum, an interface
// and a union so every conversion branch is reachable.
func newBlogSchema() *blogSchema {
	s := &blogSchema{
		node: &schema.Interface{Name: "Node", Fields: schema.NewFieldMap(
			schema.Field{Name: "id", Type: schema.RequiredOf(schema.ID)},
		)},
		role: &schema.Enum{Name: "Role", Values: []string{"ADMIN", "AUTHOR", "READER"}},
		address: schema.NewRecord("Address",
			schema.Field{Name: "street", Type: schema.String, Description: "Street and number."},
			schema.Field{Name: "city", Type: schema.RequiredOf(schema.String)},
		),
	}

	s.user = schema.NewRecord("User",
		schema.Field{Name: "id", Type: schema.RequiredOf(schema.ID), Description: "Primary key."},
		schema.Field{Name: "name", Type: schema.String},
		schema.Field{Name: "role", Type: schema.RequiredOf(s.role)},
		schema.Field{Name: "homeAddress", Type: s.address},
		schema.Field{Name: "workAddress", Type: s.address},
		schema.Field{Name: "node", Type: s.node},
	)
	s.post = schema.NewRecord("Post",
		schema.Field{Name: "id", Type: schema.RequiredOf(schema.ID)},
		schema.Field{Name: "title", Type: schema.RequiredOf(schema.String)},
		schema.Field{Name: "tags", Type: schema.RequiredOf(schema.ListOf(schema.RequiredOf(schema.String)))},
		schema.Field{Name: "author", Type: schema.RequiredOf(s.user)},
		schema.Field{
			Name:   "commentCount",
			Type:   schema.Int,
			Origin: schema.OriginResolverBound,
		},
	)
	s.user.Fields.Set("posts", schema.Field{Type: schema.ListOf(schema.RequiredOf(s.post))})
	s.search = &schema.Union{Name: "SearchResult", Members: []*schema.Record{s.user, s.post}}

	return s
}

func fieldTypeOf(in *schema.Input, name string) schema.Type {
	f, ok := in.Fields.Get(name)
	if !ok {
		return nil
	}

	return f.Type
}
