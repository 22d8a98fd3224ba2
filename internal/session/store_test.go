package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSaveAndLoad(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	ok := store.Save(ctx, "s1", KeySearch, map[string]any{"hotel": "Heritage", "nights": 3})
	require.True(t, ok)

	got := store.Load(ctx, "s1", KeySearch)
	require.NotNil(t, got)
	assert.Equal(t, "Heritage", got["hotel"])
	assert.Equal(t, float64(3), got["nights"])
}

func TestMemoryStoreShallowMerge(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.True(t, store.Save(ctx, "s1", KeySearch, map[string]any{"a": float64(1)}))
	require.True(t, store.Save(ctx, "s1", KeySearch, map[string]any{"b": float64(2)}))

	got := store.Load(ctx, "s1", KeySearch)
	assert.Equal(t, map[string]any{"a": float64(1), "b": float64(2)}, got)
}

func TestMemoryStoreMergeOverwritesTopLevelKeys(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.True(t, store.Save(ctx, "s1", KeyRoom, map[string]any{
		"roomName": "Deluxe",
		"pricing":  map[string]any{"subtotal": float64(60000), "tax": float64(10800)},
	}))
	// Nested objects are replaced wholesale, not merged.
	require.True(t, store.Save(ctx, "s1", KeyRoom, map[string]any{
		"pricing": map[string]any{"subtotal": float64(40000)},
	}))

	got := store.Load(ctx, "s1", KeyRoom)
	assert.Equal(t, "Deluxe", got["roomName"])
	assert.Equal(t, map[string]any{"subtotal": float64(40000)}, got["pricing"])
}

func TestMemoryStoreLoadMissing(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	assert.Nil(t, store.Load(ctx, "nope", KeySearch))

	store.Save(ctx, "s1", KeySearch, map[string]any{"a": float64(1)})
	assert.Nil(t, store.Load(ctx, "s1", KeyRoom))
	assert.Nil(t, store.Load(ctx, "s2", KeySearch))
}

func TestMemoryStoreSaveUnserializable(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	ok := store.Save(ctx, "s1", KeySearch, map[string]any{"bad": make(chan int)})
	assert.False(t, ok)
	assert.Nil(t, store.Load(ctx, "s1", KeySearch))
}

func TestMemoryStoreLoadAllDefaultsToEmptyMaps(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Save(ctx, "s1", KeyPersonal, map[string]any{"email": "a@b.com"})

	all := store.LoadAll(ctx, "s1")
	assert.Equal(t, map[string]any{}, all.Search)
	assert.Equal(t, map[string]any{}, all.Room)
	assert.Equal(t, map[string]any{}, all.Confirmation)
	assert.Equal(t, "a@b.com", all.Personal["email"])
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	type sample struct {
		Name   string `json:"name"`
		Nights int    `json:"nights"`
	}

	m, err := Encode(sample{Name: "Deluxe", Nights: 3})
	require.NoError(t, err)
	assert.Equal(t, "Deluxe", m["name"])

	var out sample
	require.NoError(t, Decode(m, &out))
	assert.Equal(t, sample{Name: "Deluxe", Nights: 3}, out)

	// nil fragment leaves the target zeroed
	var zero sample
	require.NoError(t, Decode(nil, &zero))
	assert.Equal(t, sample{}, zero)
}
