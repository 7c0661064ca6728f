package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroup_Normalize(t *testing.T) {
	g := NewGroup{Name: "  Gloves "}
	require.NoError(t, g.Normalize())
	assert.Equal(t, "Gloves", g.Name)
	assert.Equal(t, DefaultIcon, g.Icon)

	empty := NewGroup{Name: "   "}
	assert.True(t, errors.Is(empty.Normalize(), ErrInvalid))
}

func TestNewItem_Normalize(t *testing.T) {
	it := NewItem{Name: " XL ", GroupID: " g1 "}
	require.NoError(t, it.Normalize())
	assert.Equal(t, "XL", it.Name)
	assert.Equal(t, "g1", it.GroupID)

	assert.ErrorIs(t, (&NewItem{GroupID: "g1"}).Normalize(), ErrInvalid)
	assert.ErrorIs(t, (&NewItem{Name: "XL"}).Normalize(), ErrInvalid)
}

func TestDedupeGroups_KeepsFirst(t *testing.T) {
	in := []Group{
		{ID: "1", Name: "Primer"},
		{ID: "2", Name: "Glaze"},
		{ID: "3", Name: "Primer "},
	}
	out := DedupeGroups(in)
	require.Len(t, out, 2)
	assert.Equal(t, "1", out[0].ID)
	assert.Equal(t, "2", out[1].ID)
}

func TestAssemble(t *testing.T) {
	groups := []Group{
		{ID: "b", Name: "Beta", SortOrder: 2},
		{ID: "a2", Name: "Zeta", SortOrder: 1},
		{ID: "a1", Name: "Alpha", SortOrder: 1},
	}
	items := []Item{
		{ID: "x2", GroupID: "b", SortOrder: 2},
		{ID: "x1", GroupID: "b", SortOrder: 1},
		{ID: "orphan", GroupID: "gone", SortOrder: 1},
	}

	out := Assemble(groups, items)
	require.Len(t, out, 3)
	assert.Equal(t, []string{"a1", "a2", "b"}, []string{out[0].ID, out[1].ID, out[2].ID})

	assert.NotNil(t, out[0].Items)
	assert.Empty(t, out[0].Items)
	require.Len(t, out[2].Items, 2)
	assert.Equal(t, "x1", out[2].Items[0].ID)
	assert.Equal(t, "x2", out[2].Items[1].ID)
}
