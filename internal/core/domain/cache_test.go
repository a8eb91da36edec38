package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(ids ...string) []Item {
	items := make([]Item, len(ids))
	for i, id := range ids {
		items[i] = Item{ObjectID: id, Title: "Story " + id}
	}
	return items
}

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ObjectID
	}
	return out
}

func TestNewQueryCache_Empty(t *testing.T) {
	cache := NewQueryCache()

	assert.Equal(t, 0, cache.Len())
	assert.False(t, cache.Has("redux"))
	assert.Equal(t, -1, cache.CurrentPage("redux"))

	_, ok := cache.Get("redux")
	assert.False(t, ok)
}

func TestQueryCache_ZeroValueUsable(t *testing.T) {
	var cache QueryCache

	assert.False(t, cache.Has("redux"))

	next := cache.MergePage("redux", testItems("a"), 0)
	assert.True(t, next.Has("redux"))
	assert.False(t, cache.Has("redux"))
}

func TestQueryCache_MergePage_Ordering(t *testing.T) {
	pages := [][]Item{
		testItems("a", "b"),
		testItems("c"),
		testItems("d", "e", "f"),
	}

	cache := NewQueryCache()
	for page, hits := range pages {
		cache = cache.MergePage("redux", hits, page)
	}

	entry, ok := cache.Get("redux")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, ids(entry.Hits))
	assert.Equal(t, 2, entry.Page)
	assert.Equal(t, 2, cache.CurrentPage("redux"))
}

func TestQueryCache_MergePage_DoesNotMutateReceiver(t *testing.T) {
	before := NewQueryCache().MergePage("redux", testItems("a"), 0)

	after := before.MergePage("redux", testItems("b"), 1)

	old, _ := before.Get("redux")
	assert.Equal(t, []string{"a"}, ids(old.Hits))
	assert.Equal(t, 0, old.Page)

	updated, _ := after.Get("redux")
	assert.Equal(t, []string{"a", "b"}, ids(updated.Hits))
}

func TestQueryCache_MergePage_KeepsDuplicates(t *testing.T) {
	cache := NewQueryCache().
		MergePage("redux", testItems("a", "b"), 0).
		MergePage("redux", testItems("b", "c"), 1)

	entry, _ := cache.Get("redux")
	assert.Equal(t, []string{"a", "b", "b", "c"}, ids(entry.Hits))
}

func TestQueryCache_MergePage_EmptyPage(t *testing.T) {
	cache := NewQueryCache().
		MergePage("redux", testItems("a"), 0).
		MergePage("redux", nil, 1)

	entry, _ := cache.Get("redux")
	assert.Equal(t, []string{"a"}, ids(entry.Hits))
	assert.Equal(t, 1, entry.Page)
}

func TestQueryCache_KeysAreLiteral(t *testing.T) {
	cache := NewQueryCache().MergePage("Redux", testItems("a"), 0)

	assert.True(t, cache.Has("Redux"))
	assert.False(t, cache.Has("redux"))
	assert.False(t, cache.Has(" Redux"))
}

func TestQueryCache_QueriesIsolated(t *testing.T) {
	cache := NewQueryCache().
		MergePage("redux", testItems("a"), 0).
		MergePage("react", testItems("b"), 0)

	assert.Equal(t, 2, cache.Len())
	assert.Equal(t, []string{"react", "redux"}, cache.Queries())

	redux, _ := cache.Get("redux")
	react, _ := cache.Get("react")
	assert.Equal(t, []string{"a"}, ids(redux.Hits))
	assert.Equal(t, []string{"b"}, ids(react.Hits))
}

func TestQueryCache_Get_ReturnsCopy(t *testing.T) {
	cache := NewQueryCache().MergePage("redux", testItems("a", "b"), 0)

	entry, _ := cache.Get("redux")
	entry.Hits[0].Title = "changed"

	again, _ := cache.Get("redux")
	assert.Equal(t, "Story a", again.Hits[0].Title)
}

func TestQueryCache_RemoveItem(t *testing.T) {
	base := NewQueryCache().
		MergePage("redux", testItems("a", "b", "c"), 0).
		MergePage("redux", testItems("d"), 1)

	t.Run("removes matching id and keeps page", func(t *testing.T) {
		cache := base.RemoveItem("redux", "b")

		entry, _ := cache.Get("redux")
		assert.Equal(t, []string{"a", "c", "d"}, ids(entry.Hits))
		assert.Equal(t, 1, entry.Page)
	})

	t.Run("does not mutate receiver", func(t *testing.T) {
		_ = base.RemoveItem("redux", "b")

		entry, _ := base.Get("redux")
		assert.Equal(t, []string{"a", "b", "c", "d"}, ids(entry.Hits))
	})

	t.Run("idempotent", func(t *testing.T) {
		once := base.RemoveItem("redux", "c")
		twice := once.RemoveItem("redux", "c")

		a, _ := once.Get("redux")
		b, _ := twice.Get("redux")
		assert.Equal(t, a, b)
	})

	t.Run("missing id is a no-op", func(t *testing.T) {
		cache := base.RemoveItem("redux", "zzz")

		entry, _ := cache.Get("redux")
		assert.Equal(t, []string{"a", "b", "c", "d"}, ids(entry.Hits))
	})

	t.Run("missing query is a no-op", func(t *testing.T) {
		cache := base.RemoveItem("react", "a")

		assert.False(t, cache.Has("react"))
		assert.Equal(t, base.Len(), cache.Len())
	})

	t.Run("removes every duplicate", func(t *testing.T) {
		cache := NewQueryCache().
			MergePage("redux", testItems("a", "b"), 0).
			MergePage("redux", testItems("b"), 1).
			RemoveItem("redux", "b")

		entry, _ := cache.Get("redux")
		assert.Equal(t, []string{"a"}, ids(entry.Hits))
	})

	t.Run("removing last hit keeps entry", func(t *testing.T) {
		cache := NewQueryCache().
			MergePage("redux", testItems("a"), 0).
			RemoveItem("redux", "a")

		assert.True(t, cache.Has("redux"))
		entry, _ := cache.Get("redux")
		assert.Empty(t, entry.Hits)
	})
}
