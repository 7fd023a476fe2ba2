package resource

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsonapi-tools/wiremap/internal/errors"
)

func TestResolveIsIdempotent(t *testing.T) {
	t.Parallel()

	store := NewStore()

	first := store.Resolve("articles", "1")
	second := store.Resolve("articles", "1")
	require.Same(t, first, second)
	require.Equal(t, 1, store.Len())

	// Different id, different instance.
	third := store.Resolve("articles", "2")
	require.NotSame(t, first, third)
	require.Equal(t, 2, store.Len())
}

func TestResolveKeysByTypeAndID(t *testing.T) {
	t.Parallel()

	store := NewStore()

	article := store.Resolve("articles", "1")
	person := store.Resolve("people", "1")
	require.NotSame(t, article, person)
	require.Equal(t, 2, store.Len())
}

func TestAddDuplicateFails(t *testing.T) {
	t.Parallel()

	store := NewStore()
	require.NoError(t, store.Add(New("articles", "1")))

	err := store.Add(New("articles", "1"))
	require.ErrorIs(t, err, errors.ErrDuplicateResource)
	require.Equal(t, 1, store.Len())
}

func TestFirstAndAllFollowRegistrationOrder(t *testing.T) {
	t.Parallel()

	store := NewStore()

	_, ok := store.First()
	require.False(t, ok)

	a := store.Resolve("articles", "1")
	b := store.Resolve("people", "9")
	c := store.Resolve("articles", "2")

	first, ok := store.First()
	require.True(t, ok)
	require.Same(t, a, first)

	all := store.All()
	require.Len(t, all, 3)
	require.Same(t, a, all[0])
	require.Same(t, b, all[1])
	require.Same(t, c, all[2])
}

func TestRekey(t *testing.T) {
	t.Parallel()

	store := NewStore()
	draft := New("articles", "")
	require.NoError(t, store.Add(draft))
	other := store.Resolve("people", "9")

	draft.SetID("17")
	require.NoError(t, store.Rekey(draft, ""))

	// The old key is gone, the new key resolves to the same instance,
	// and the registration order position is kept.
	_, ok := store.Lookup("articles", "")
	require.False(t, ok)
	require.Same(t, draft, store.Resolve("articles", "17"))
	require.Equal(t, 2, store.Len())

	first, ok := store.First()
	require.True(t, ok)
	require.Same(t, draft, first)
	require.Same(t, other, store.All()[1])
}

func TestRekeyFailures(t *testing.T) {
	t.Parallel()

	store := NewStore()
	draft := New("articles", "")
	require.NoError(t, store.Add(draft))
	require.NoError(t, store.Add(New("articles", "17")))

	// The new key is already taken.
	draft.SetID("17")
	require.ErrorIs(t, store.Rekey(draft, ""), errors.ErrDuplicateResource)

	// Not registered under the claimed previous key.
	stray := New("articles", "99")
	require.Error(t, store.Rekey(stray, "1"))

	// Same key is a no-op.
	kept := store.Resolve("people", "9")
	require.NoError(t, store.Rekey(kept, "9"))
	require.Same(t, kept, store.Resolve("people", "9"))
}

func TestLookup(t *testing.T) {
	t.Parallel()

	store := NewStore()
	r := store.Resolve("articles", "1")

	got, ok := store.Lookup("articles", "1")
	require.True(t, ok)
	require.Same(t, r, got)

	_, ok = store.Lookup("articles", "2")
	require.False(t, ok)
}
