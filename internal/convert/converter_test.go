package convert

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inputtype-generator/internal/diagnostic"
	"inputtype-generator/internal/schema"
)

func TestToInputType_Naming(t *testing.T) {
	s := newBlogSchema()

	cases := []struct {
		prefix, postfix, want string
	}{
		{"", "", "AddressInput"},
		{"", "Input", "AddressInput"},
		{"Create", "", "CreateAddressInput"},
		{"Update", "Payload", "UpdateAddressPayload"},
		{"X", "Y", "XAddressY"},
	}

	for _, tc := range cases {
		in := ToInputType(s.address, Options{Prefix: tc.prefix, Postfix: tc.postfix, Reporter: diagnostic.Discard})
		assert.Equal(t, tc.want, in.Name, "prefix=%q postfix=%q", tc.prefix, tc.postfix)
	}
}

func TestToInputType_DefaultOptions(t *testing.T) {
	s := newBlogSchema()

	implicit := ToInputType(s.user, Options{Reporter: diagnostic.Discard})
	explicit := ToInputType(s.user, Options{Prefix: "", Postfix: "Input", Reporter: diagnostic.Discard})

	assert.NotSame(t, implicit, explicit)
	assert.Equal(t, explicit.Name, implicit.Name)
	assert.Equal(t, explicit.Fields.Names(), implicit.Fields.Names())

	for name, f := range explicit.Fields.All() {
		assert.Equal(t, schema.TypeString(f.Type), schema.TypeString(fieldTypeOf(implicit, name)), name)
	}
}

func TestToInputType_Fields(t *testing.T) {
	s := newBlogSchema()
	var diags diagnostic.Diagnostics

	in := ToInputType(s.post, Options{Reporter: &diags})

	require.Equal(t, "PostInput", in.Name, spew.Sdump(in.Fields.Names()))
	assert.Equal(t, []string{"id", "title", "tags", "author"}, in.Fields.Names())
	assert.Equal(t, "ID!", schema.TypeString(fieldTypeOf(in, "id")))
	assert.Equal(t, "[String!]!", schema.TypeString(fieldTypeOf(in, "tags")))
	assert.Equal(t, "UserAuthorInput!", schema.TypeString(fieldTypeOf(in, "author")))

	author, ok := schema.NamedOf(fieldTypeOf(in, "author")).(*schema.Input)
	require.True(t, ok)
	// node is an interface and was filtered; posts loops back to Post.
	assert.Equal(t, []string{"id", "name", "role", "homeAddress", "workAddress", "posts"}, author.Fields.Names())
	assert.Equal(t, "Role!", schema.TypeString(fieldTypeOf(author, "role")))
	assert.Equal(t, "AddressHomeAddressAuthorInput", schema.TypeString(fieldTypeOf(author, "homeAddress")))

	assert.Empty(t, diags.Warnings)
}

func TestToInputType_FieldCountMatchesFilter(t *testing.T) {
	s := newBlogSchema()

	for _, rec := range []*schema.Record{s.address, s.user, s.post} {
		in := ToInputType(rec, Options{Reporter: diagnostic.Discard})
		assert.Equal(t, FilterConvertibleFields(rec.Fields).Len(), in.Fields.Len(), rec.Name)
	}
}

func TestToInputType_DescriptionsPreserved(t *testing.T) {
	s := newBlogSchema()

	in := ToInputType(s.address, Options{Reporter: diagnostic.Discard})

	for name, f := range s.address.Fields.All() {
		got, ok := in.Fields.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, f.Description, got.Description, name)
	}

	street, _ := in.Fields.Get("street")
	city, _ := in.Fields.Get("city")
	assert.Equal(t, "Street and number.", street.Description)
	assert.Equal(t, "", city.Description)
}

func TestToInputType_NestedNamesFollowFieldPath(t *testing.T) {
	other := schema.NewRecord("Other", schema.Field{Name: "value", Type: schema.Int})
	parent := schema.NewRecord("Parent",
		schema.Field{Name: "childA", Type: other},
		schema.Field{Name: "childB", Type: other},
	)

	in := ToInputType(parent, Options{Reporter: diagnostic.Discard})

	a, okA := schema.NamedOf(fieldTypeOf(in, "childA")).(*schema.Input)
	b, okB := schema.NamedOf(fieldTypeOf(in, "childB")).(*schema.Input)
	require.True(t, okA)
	require.True(t, okB)

	assert.Equal(t, "OtherChildAInput", a.Name)
	assert.Equal(t, "OtherChildBInput", b.Name)
	assert.NotSame(t, a, b)
}

func TestToInputType_SameDerivedNameReused(t *testing.T) {
	address := schema.NewRecord("Address", schema.Field{Name: "city", Type: schema.String})
	shipment := schema.NewRecord("Shipment", schema.Field{Name: "address", Type: address})
	order := schema.NewRecord("Order",
		schema.Field{Name: "first", Type: shipment},
		schema.Field{Name: "second", Type: shipment},
	)
	// first.address and second.address derive different names; within one
	// Converter the same derived name maps to one instance.
	c := NewConverter(Options{Reporter: diagnostic.Discard})

	one := c.Convert(address)
	two := c.Convert(address)
	assert.Same(t, one, two)

	in := c.Convert(order)
	first := schema.NamedOf(fieldTypeOf(in, "first")).(*schema.Input)
	second := schema.NamedOf(fieldTypeOf(in, "second")).(*schema.Input)
	assert.Equal(t, "AddressAddressFirstInput", schema.NameOf(fieldTypeOf(first, "address")))
	assert.Equal(t, "AddressAddressSecondInput", schema.NameOf(fieldTypeOf(second, "address")))
}

func TestToInputType_IndependentCalls(t *testing.T) {
	s := newBlogSchema()

	first := ToInputType(s.address, Options{Reporter: diagnostic.Discard})
	second := ToInputType(s.address, Options{Reporter: diagnostic.Discard})

	assert.NotSame(t, first, second)
	assert.Equal(t, first.Name, second.Name)
}

func TestToInputType_SelfReference(t *testing.T) {
	person := schema.NewRecord("Person", schema.Field{Name: "name", Type: schema.String})
	person.Fields.Set("mentor", schema.Field{Type: person})
	person.Fields.Set("friends", schema.Field{Type: schema.RequiredOf(schema.ListOf(schema.RequiredOf(person)))})

	var diags diagnostic.Diagnostics
	in := ToInputType(person, Options{Reporter: &diags})

	assert.Equal(t, "PersonInput", in.Name)
	assert.Same(t, in, fieldTypeOf(in, "mentor"))
	assert.Same(t, in, schema.NamedOf(fieldTypeOf(in, "friends")))
	assert.Equal(t, "[PersonInput!]!", schema.TypeString(fieldTypeOf(in, "friends")))

	cycles := diags.WithCode(diagnostic.CodeCycle)
	assert.Len(t, cycles, 2)
	assert.Empty(t, diags.Warnings)
}

func TestToInputType_MutualReference(t *testing.T) {
	s := newBlogSchema()

	in := ToInputType(s.user, Options{Reporter: diagnostic.Discard})

	posts := schema.NamedOf(fieldTypeOf(in, "posts")).(*schema.Input)
	assert.Equal(t, "PostPostsInput", posts.Name)
	assert.Same(t, in, schema.NamedOf(fieldTypeOf(posts, "author")), "author loops back to the root input")
}

func TestToInputType_WrappedAbstractFallsBack(t *testing.T) {
	s := newBlogSchema()
	feed := schema.NewRecord("Feed",
		schema.Field{Name: "title", Type: schema.String},
		schema.Field{Name: "items", Type: schema.ListOf(s.node), Description: "Feed items."},
	)

	var diags diagnostic.Diagnostics
	in := ToInputType(feed, Options{Reporter: &diags})

	assert.Equal(t, "[Generic]", schema.TypeString(fieldTypeOf(in, "items")))

	require.Len(t, diags.Warnings, 1)
	assert.Contains(t, diags.Warnings[0].Message, "Feed")
	assert.Contains(t, diags.Warnings[0].Message, "items")
	assert.Equal(t, "Feed.items", diags.Warnings[0].FieldPath)
}

func TestToInputType_NilRecord(t *testing.T) {
	assert.Nil(t, ToInputType(nil, Options{Reporter: diagnostic.Discard}))
}
