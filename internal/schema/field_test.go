package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldMap_PreservesOrder(t *testing.T) {
	m := NewFieldMap(
		Field{Name: "zeta", Type: String},
		Field{Name: "alpha", Type: Int},
		Field{Name: "mid", Type: Boolean},
	)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Names())

	var seen []string
	for name, f := range m.All() {
		seen = append(seen, name)
		assert.Equal(t, name, f.Name)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, seen)
}

func TestFieldMap_SetOverwriteKeepsPosition(t *testing.T) {
	m := NewFieldMap(Field{Name: "a", Type: String}, Field{Name: "b", Type: String})
	m.Set("a", Field{Type: Int})

	assert.Equal(t, []string{"a", "b"}, m.Names())

	f, ok := m.Get("a")
	assert.True(t, ok)
	assert.Same(t, Int, f.Type)
	assert.Equal(t, "a", f.Name, "Set should stamp the key as the field name")
}

func TestFieldMap_Delete(t *testing.T) {
	m := NewFieldMap(Field{Name: "a"}, Field{Name: "b"}, Field{Name: "c"})
	m.Delete("b")
	m.Delete("missing")

	assert.Equal(t, []string{"a", "c"}, m.Names())
	assert.False(t, m.Has("b"))
	assert.Equal(t, 2, m.Len())
}

func TestFieldMap_NilIsEmpty(t *testing.T) {
	var m *FieldMap

	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Names())
	assert.False(t, m.Has("x"))

	for range m.All() {
		t.Fatal("nil map should not yield")
	}

	clone := m.Clone()
	assert.NotNil(t, clone)
	assert.Equal(t, 0, clone.Len())
}

func TestFieldMap_CloneIsIndependent(t *testing.T) {
	m := NewFieldMap(Field{Name: "a", Type: String, Description: "first"})
	c := m.Clone()
	c.Set("b", Field{Type: Int})
	c.Set("a", Field{Type: Int})

	assert.Equal(t, 1, m.Len())

	f, _ := m.Get("a")
	assert.Same(t, String, f.Type)
	assert.Equal(t, "first", f.Description)
}

func TestFieldMap_AllStopsEarly(t *testing.T) {
	m := NewFieldMap(Field{Name: "a"}, Field{Name: "b"}, Field{Name: "c"})

	count := 0
	for range m.All() {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(t, 2, count)
}
