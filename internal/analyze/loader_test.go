package analyze

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inputtype-generator/internal/schema"
)

const blogPkg = "inputtype-generator/examples/blog"

func loadBlog(t *testing.T) *schema.Registry {
	t.Helper()

	reg, err := NewAnalyzer().LoadPackages(blogPkg)
	require.NoError(t, err)
	require.NotNil(t, reg)

	return reg
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	reg := loadBlog(t)

	for _, name := range []string{"User", "Post", "Address", "Timestamps", "Role", "Node", "DateTime"} {
		assert.NotNil(t, reg.Get(name), "expected %s to be registered", name)
	}

	assert.NoError(t, reg.Validate())
}

func TestAnalyzer_UserFields(t *testing.T) {
	reg := loadBlog(t)

	user, err := reg.Record("User")
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"id", "name", "role", "address", "posts", "friends", "settings", "createdAt", "owner"},
		user.Fields.Names(),
	)

	tests := []struct {
		field string
		want  string
	}{
		{"id", "String!"},
		{"name", "String"},
		{"role", "Role!"},
		{"address", "Address"},
		{"posts", "[Post]"},
		{"friends", "[User!]"},
		{"settings", "map[string]string!"},
		{"createdAt", "DateTime!"},
		{"owner", "Node!"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			f, ok := user.Fields.Get(tt.field)
			require.True(t, ok)
			assert.Equal(t, tt.want, schema.TypeString(f.Type))
		})
	}
}

func TestAnalyzer_FieldTags(t *testing.T) {
	reg := loadBlog(t)

	user, err := reg.Record("User")
	require.NoError(t, err)

	id, _ := user.Fields.Get("id")
	assert.Equal(t, "Primary key.", id.Description)
	assert.Equal(t, schema.OriginDeclared, id.Origin)

	posts, _ := user.Fields.Get("posts")
	assert.Equal(t, schema.OriginResolverBound, posts.Origin)

	post, err := reg.Record("Post")
	require.NoError(t, err)

	score, _ := post.Fields.Get("score")
	assert.Equal(t, "no longer computed", score.DeprecationReason)
}

func TestAnalyzer_EmbeddedStructFlattened(t *testing.T) {
	reg := loadBlog(t)

	post, err := reg.Record("Post")
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"updatedAt", "id", "title", "tags", "author", "score", "views"},
		post.Fields.Names(),
	)

	views, _ := post.Fields.Get("views")
	assert.Equal(t, "Int!", schema.TypeString(views.Type))
}

func TestAnalyzer_RecursiveStructSharesRecord(t *testing.T) {
	reg := loadBlog(t)

	user, err := reg.Record("User")
	require.NoError(t, err)

	friends, _ := user.Fields.Get("friends")
	assert.Same(t, user, schema.NamedOf(friends.Type))

	post, err := reg.Record("Post")
	require.NoError(t, err)

	author, _ := post.Fields.Get("author")
	assert.Same(t, user, schema.NamedOf(author.Type))
}

func TestAnalyzer_Enum(t *testing.T) {
	reg := loadBlog(t)

	role, ok := reg.Get("Role").(*schema.Enum)
	require.True(t, ok)
	assert.Equal(t, []string{"ADMIN", "AUTHOR", "READER"}, role.Values)
}

func TestAnalyzer_InterfaceGetters(t *testing.T) {
	reg := loadBlog(t)

	node, ok := reg.Get("Node").(*schema.Interface)
	require.True(t, ok)
	assert.Equal(t, []string{"nodeID"}, node.Fields.Names())
}

func TestAnalyzer_BadPattern(t *testing.T) {
	_, err := NewAnalyzer().LoadPackages("inputtype-generator/does/not/exist")
	assert.Error(t, err)
}

func TestJSONName(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		want     string
		wantSkip bool
	}{
		{name: "no tag", tag: ``, want: "createdAt"},
		{name: "plain", tag: `json:"created"`, want: "created"},
		{name: "options only", tag: `json:",omitempty"`, want: "createdAt"},
		{name: "skip", tag: `json:"-"`, wantSkip: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, skip := jsonName("CreatedAt", reflect.StructTag(tt.tag))
			assert.Equal(t, tt.wantSkip, skip)

			if !tt.wantSkip {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

const treePkg = "inputtype-generator/examples/tree"

func TestAnalyzer_SelfEmbeddedStruct(t *testing.T) {
	reg, err := NewAnalyzer().LoadPackages(treePkg)
	require.NoError(t, err)

	tree, err := reg.Record("Tree")
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, tree.Fields.Names())

	left, err := reg.Record("Left")
	require.NoError(t, err)
	assert.Equal(t, []string{"l", "r"}, left.Fields.Names())

	right, err := reg.Record("Right")
	require.NoError(t, err)
	assert.Equal(t, []string{"r", "l"}, right.Fields.Names())
}

func TestAnalyzer_EmbeddedStructWithJSONName(t *testing.T) {
	reg, err := NewAnalyzer().LoadPackages(treePkg)
	require.NoError(t, err)

	leaf, err := reg.Record("Leaf")
	require.NoError(t, err)
	assert.Equal(t, []string{"base", "weight", "label"}, leaf.Fields.Names())

	base, _ := leaf.Fields.Get("base")
	assert.Equal(t, "Base!", schema.TypeString(base.Type))

	baseRec, err := reg.Record("Base")
	require.NoError(t, err)
	assert.Same(t, baseRec, schema.NamedOf(base.Type))
}

func TestHasJSONName(t *testing.T) {
	assert.True(t, hasJSONName(`json:"base"`))
	assert.True(t, hasJSONName(`json:"base,omitempty"`))
	assert.False(t, hasJSONName(`json:",omitempty"`))
	assert.False(t, hasJSONName(`json:"-"`))
	assert.False(t, hasJSONName(``))
}
