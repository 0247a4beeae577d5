package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    string
	Value int
}

func keyOf(i item) string { return i.ID }

func TestCollection_AppendKeepsInsertionOrder(t *testing.T) {
	c := New(keyOf)
	c.Append(item{ID: "b", Value: 2})
	c.Append(item{ID: "a", Value: 1})
	c.Append(item{ID: "c", Value: 3})

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []item{{"b", 2}, {"a", 1}, {"c", 3}}, c.Items())
}

func TestCollection_ItemsReturnsCopy(t *testing.T) {
	c := From(keyOf, []item{{"a", 1}})
	items := c.Items()
	items[0].Value = 99

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, got.Value)
}

func TestCollection_UpdateOnlyTouchesTarget(t *testing.T) {
	c := From(keyOf, []item{{"a", 1}, {"b", 2}, {"c", 3}})

	ok := c.Update("b", func(i *item) { i.Value = 20 })

	assert.True(t, ok)
	assert.Equal(t, []item{{"a", 1}, {"b", 20}, {"c", 3}}, c.Items())
}

func TestCollection_UpdateMissingKey(t *testing.T) {
	c := From(keyOf, []item{{"a", 1}})
	called := false

	ok := c.Update("zzz", func(*item) { called = true })

	assert.False(t, ok)
	assert.False(t, called)
}

func TestCollection_Remove(t *testing.T) {
	c := From(keyOf, []item{{"a", 1}, {"b", 2}, {"c", 3}})

	assert.Equal(t, 1, c.Remove("b"))
	assert.Equal(t, 0, c.Remove("b"))
	assert.Equal(t, []item{{"a", 1}, {"c", 3}}, c.Items())

	got, ok := c.Get("c")
	require.True(t, ok)
	assert.Equal(t, 3, got.Value)
}

func TestCollection_DuplicateKeys(t *testing.T) {
	c := New(keyOf)
	c.Append(item{"a", 1})
	c.Append(item{"b", 2})
	c.Append(item{"a", 3})

	first, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, first.Value)

	c.Update("a", func(i *item) { i.Value *= 10 })
	assert.Equal(t, []item{{"a", 10}, {"b", 2}, {"a", 30}}, c.Items())

	assert.Equal(t, 2, c.Remove("a"))
	assert.Equal(t, []item{{"b", 2}}, c.Items())
	assert.False(t, c.Contains("a"))
}

func TestCollection_FindAndReset(t *testing.T) {
	c := From(keyOf, []item{{"a", 1}, {"b", 2}})

	got, ok := c.Find(func(i item) bool { return i.Value > 1 })
	require.True(t, ok)
	assert.Equal(t, "b", got.ID)

	c.Reset([]item{{"x", 7}})
	assert.Equal(t, 1, c.Len())
	assert.False(t, c.Contains("a"))
	assert.True(t, c.Contains("x"))
}
