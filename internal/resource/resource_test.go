package resource

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetMarksDirty(t *testing.T) {
	t.Parallel()

	r := New("articles", "1")
	require.Empty(t, r.Dirty())

	r.Set("title", "Hello")
	require.True(t, r.IsDirty("title"))
	require.Equal(t, []string{"title"}, r.Dirty())

	v, ok := r.Get("title")
	require.True(t, ok)
	require.Equal(t, "Hello", v)
}

func TestGetDistinguishesAbsentFromNil(t *testing.T) {
	t.Parallel()

	r := New("articles", "1")

	_, ok := r.Get("title")
	require.False(t, ok)

	r.Set("title", nil)
	v, ok := r.Get("title")
	require.True(t, ok)
	require.Nil(t, v)
}

func TestMarkCleanClearsDirtySet(t *testing.T) {
	t.Parallel()

	r := New("articles", "1")
	r.Set("title", "Hello")
	r.Set("views", 3)
	require.Len(t, r.Dirty(), 2)

	r.MarkClean()
	require.Empty(t, r.Dirty())

	// Values survive, only the flags reset.
	v, ok := r.Get("title")
	require.True(t, ok)
	require.Equal(t, "Hello", v)
}

func TestSyncSetDoesNotMarkDirty(t *testing.T) {
	t.Parallel()

	r := New("articles", "1")
	r.Set("title", "draft")
	require.True(t, r.IsDirty("title"))

	// A decode pass overwrites the value as the clean baseline.
	r.SyncSet("title", "published")
	require.False(t, r.IsDirty("title"))

	v, _ := r.Get("title")
	require.Equal(t, "published", v)
}

func TestRelationshipDirtyTracking(t *testing.T) {
	t.Parallel()

	author := New("people", "9")
	r := New("articles", "1")

	r.SetToOne("author", author)
	require.True(t, r.IsDirty("author"))

	got, ok := r.ToOne("author")
	require.True(t, ok)
	require.Same(t, author, got)

	r.MarkClean()
	r.SyncToOne("author", nil)
	require.False(t, r.IsDirty("author"))

	_, ok = r.ToOne("author")
	require.False(t, ok)
}

func TestToManyReferences(t *testing.T) {
	t.Parallel()

	c1 := New("comments", "1")
	c2 := New("comments", "2")
	r := New("articles", "1")

	_, ok := r.ToMany("comments")
	require.False(t, ok)

	r.SyncToMany("comments", []*Resource{c1, c2})
	targets, ok := r.ToMany("comments")
	require.True(t, ok)
	require.Len(t, targets, 2)
	require.Same(t, c1, targets[0])
	require.Same(t, c2, targets[1])
	require.False(t, r.IsDirty("comments"))
}

func TestPlaceholderLifecycle(t *testing.T) {
	t.Parallel()

	store := NewStore()
	r := store.Resolve("people", "9")
	require.True(t, r.Placeholder())

	// Materialize without any fields still resolves the placeholder.
	r.Materialize()
	require.False(t, r.Placeholder())

	other := store.Resolve("people", "10")
	other.SyncSet("name", "Ada")
	require.False(t, other.Placeholder())
}

func TestFieldNamesSorted(t *testing.T) {
	t.Parallel()

	r := New("articles", "1")
	r.Set("views", 1)
	r.Set("title", "Hello")
	r.SetToOne("author", New("people", "9"))
	r.SetToMany("comments", nil)

	require.Equal(t, []string{"title", "views"}, r.AttributeNames())
	require.Equal(t, []string{"author", "comments"}, r.RelationshipNames())
}
