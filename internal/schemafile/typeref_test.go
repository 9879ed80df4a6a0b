package schemafile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inputtype-generator/internal/schema"
)

func TestParseTypeRef(t *testing.T) {
	valid := []string{"Int", "ID!", "[String]", "[String!]!", "[[Int!]]", "_Private", "Type2"}

	for _, expr := range valid {
		ref, err := ParseTypeRef(expr)
		require.NoError(t, err, expr)
		assert.Equal(t, expr, ref.String())
	}
}

func TestParseTypeRef_Structure(t *testing.T) {
	ref, err := ParseTypeRef(" [ User! ]! ")
	require.NoError(t, err)

	assert.True(t, ref.Required)
	require.NotNil(t, ref.OfType)
	assert.True(t, ref.OfType.Required)
	assert.Equal(t, "User", ref.OfType.Name)
	assert.Equal(t, "[User!]!", ref.String())
}

func TestParseTypeRef_Errors(t *testing.T) {
	invalid := []string{"", "!", "Int!!", "[Int", "Int]", "[]", "9Lives", "a-b", "[Int]!!"}

	for _, expr := range invalid {
		_, err := ParseTypeRef(expr)
		assert.Error(t, err, expr)
	}
}

func TestTypeRef_Resolve(t *testing.T) {
	reg := schema.NewRegistry()
	user := schema.NewRecord("User", schema.Field{Name: "id", Type: schema.ID})
	require.NoError(t, reg.Add(user))

	ref, err := ParseTypeRef("[User!]!")
	require.NoError(t, err)

	typ, err := ref.Resolve(reg)
	require.NoError(t, err)
	assert.Equal(t, "[User!]!", schema.TypeString(typ))
	assert.Same(t, user, schema.NamedOf(typ))

	missing, err := ParseTypeRef("[Nope]")
	require.NoError(t, err)

	_, err = missing.Resolve(reg)
	assert.ErrorIs(t, err, schema.ErrUnknownType)

	typo, err := ParseTypeRef("Strng!")
	require.NoError(t, err)

	_, err = typo.Resolve(reg)
	assert.ErrorIs(t, err, schema.ErrUnknownType)
	assert.Contains(t, err.Error(), "did you mean String?")
}
