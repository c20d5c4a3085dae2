package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/kerbaras/gita/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// mockStore wraps a MemoryStore and lets tests inject failures.
type mockStore struct {
	*data.MemoryStore
	getItemFunc func(key string) (string, bool, error)
	setItemFunc    func(key, value string) error
	removeItemFunc func(key string) error
	writes         int
}

func newMockStore() *mockStore {
	return &mockStore{MemoryStore: data.NewMemoryStore()}
}

func (m *mockStore) GetItem(key string) (string, bool, error) {
	if m.getItemFunc != nil {
		return m.getItemFunc(key)
	}
	return m.MemoryStore.GetItem(key)
}

func (m *mockStore) SetItem(key, value string) error {
	m.writes++
	if m.setItemFunc != nil {
		return m.setItemFunc(key, value)
	}
	return m.MemoryStore.SetItem(key, value)
}

func (m *mockStore) RemoveItem(key string) error {
	if m.removeItemFunc != nil {
		return m.removeItemFunc(key)
	}
	return m.MemoryStore.RemoveItem(key)
}

// stepClock returns a clock that advances one minute per call.
func stepClock() func() time.Time {
	t := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func newTestFavorites(store data.KeyValueStore) *FavoritesStore {
	return NewFavoritesStore(store, zap.NewNop()).WithClock(stepClock())
}

func ids(favs []data.FavoriteVerse) []string {
	out := make([]string, len(favs))
	for i, f := range favs {
		out[i] = f.ID
	}
	return out
}

func TestFavoritesLoadEmpty(t *testing.T) {
	favs := newTestFavorites(newMockStore())

	loaded := favs.Load()
	assert.Empty(t, loaded)
	assert.NotNil(t, loaded)
	assert.Equal(t, 0, favs.Count())
}

func TestFavoritesAddAndRemove(t *testing.T) {
	favs := newTestFavorites(newMockStore())
	favs.Load()

	favs.Add(peaceVerse)
	assert.True(t, favs.IsSaved(peaceVerse.ID))

	favs.Remove(peaceVerse.ID)
	assert.False(t, favs.IsSaved(peaceVerse.ID))
}

func TestFavoritesMostRecentFirst(t *testing.T) {
	favs := newTestFavorites(newMockStore())
	favs.Load()

	favs.Add(peaceVerse)
	favs.Add(fearVerse)

	assert.Equal(t, []string{"b", "a"}, ids(favs.Favorites()))
}

func TestFavoritesAddTwiceKeepsOneEntry(t *testing.T) {
	store := newMockStore()
	favs := newTestFavorites(store)
	favs.Load()

	favs.Add(peaceVerse)
	favs.Add(fearVerse)
	first := favs.Favorites()[1].SavedAt

	favs.Add(peaceVerse)

	fresh := newTestFavorites(store).Load()
	require.Equal(t, []string{"a", "b"}, ids(fresh))
	assert.True(t, fresh[0].SavedAt.After(first), "re-adding refreshes savedAt")
}

func TestFavoritesPersistAcrossInstances(t *testing.T) {
	store := newMockStore()
	favs := newTestFavorites(store)
	favs.Load()
	favs.Add(peaceVerse)
	favs.Add(fearVerse)

	reloaded := NewFavoritesStore(store, nil).Load()
	require.Len(t, reloaded, 2)
	assert.Equal(t, fearVerse.English, reloaded[0].English)
	assert.Equal(t, []string{"Peace"}, reloaded[1].Tags)
	assert.Equal(t, time.Date(2025, time.June, 1, 8, 2, 0, 0, time.UTC), reloaded[0].SavedAt.UTC())

	// cmp compares SavedAt with time.Time.Equal, so the decoded location
	// does not matter.
	if diff := cmp.Diff(favs.Favorites(), reloaded); diff != "" {
		t.Errorf("reloaded favorites mismatch (-want +got):\n%s", diff)
	}
}

func TestFavoritesRemoveAbsentIsNoop(t *testing.T) {
	favs := newTestFavorites(newMockStore())
	favs.Load()
	favs.Add(peaceVerse)

	favs.Remove("does-not-exist")
	assert.Equal(t, []string{"a"}, ids(favs.Favorites()))
}

func TestFavoritesToggle(t *testing.T) {
	favs := newTestFavorites(newMockStore())
	favs.Load()

	assert.True(t, favs.Toggle(fearVerse))
	assert.True(t, favs.IsSaved(fearVerse.ID))
	assert.False(t, favs.Toggle(fearVerse))
	assert.False(t, favs.IsSaved(fearVerse.ID))
}

func TestFavoritesMalformedDataFallsBackToEmpty(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	store := newMockStore()
	store.SetItem(data.KeyFavorites, "{not json")

	favs := NewFavoritesStore(store, zap.New(core))
	assert.Empty(t, favs.Load())
	assert.Equal(t, 1, logs.FilterMessage("Discarding malformed favorites").Len())

	// the store is still usable afterwards
	favs.Add(peaceVerse)
	assert.Equal(t, []string{"a"}, ids(NewFavoritesStore(store, nil).Load()))
}

func TestFavoritesReadErrorFallsBackToEmpty(t *testing.T) {
	store := newMockStore()
	store.getItemFunc = func(string) (string, bool, error) {
		return "", false, errors.New("disk unavailable")
	}

	assert.Empty(t, newTestFavorites(store).Load())
}

func TestFavoritesWriteFailureKeepsMemoryState(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	store := newMockStore()
	store.setItemFunc = func(string, string) error {
		return errors.New("read-only filesystem")
	}

	favs := NewFavoritesStore(store, zap.New(core))
	favs.Load()
	favs.Add(peaceVerse)

	assert.True(t, favs.IsSaved(peaceVerse.ID))
	assert.Equal(t, 1, logs.FilterMessage("Failed to save favorites").Len())
}

func TestFavoritesEveryMutationPersists(t *testing.T) {
	store := newMockStore()
	favs := newTestFavorites(store)
	favs.Load()

	favs.Add(peaceVerse)
	favs.Add(fearVerse)
	favs.Remove(peaceVerse.ID)

	assert.Equal(t, 3, store.writes)

	raw, ok, err := store.MemoryStore.GetItem(data.KeyFavorites)
	require.NoError(t, err)
	require.True(t, ok)

	var stored []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, "b", stored[0]["id"])
	assert.Contains(t, stored[0], "savedAt")
}

func TestFavoritesLoadCollapsesDuplicates(t *testing.T) {
	store := newMockStore()
	stored := `[
		{"id":"a","chapter":2,"verse":70,"tags":["Peace"],"savedAt":"2025-06-02T10:00:00Z"},
		{"id":"b","chapter":2,"verse":20,"tags":["Fear"],"savedAt":"2025-06-01T10:00:00Z"},
		{"id":"a","chapter":2,"verse":70,"tags":["Peace"],"savedAt":"2025-05-01T10:00:00Z"}
	]`
	store.SetItem(data.KeyFavorites, stored)

	loaded := newTestFavorites(store).Load()
	require.Equal(t, []string{"a", "b"}, ids(loaded))
	assert.Equal(t, 2, loaded[0].SavedAt.Day())
}

func TestFavoritesReturnsCopies(t *testing.T) {
	favs := newTestFavorites(newMockStore())
	favs.Load()
	favs.Add(peaceVerse)

	got := favs.Favorites()
	got[0].Tags[0] = "Mutated"
	got[0].ID = "mutated"

	assert.True(t, favs.IsSaved("a"))
	assert.Equal(t, "Peace", favs.Favorites()[0].Tags[0])
}

func TestFavoritesClear(t *testing.T) {
	store := newMockStore()
	favs := newTestFavorites(store)
	favs.Add(data.Verse{ID: "2-47"})
	favs.Add(data.Verse{ID: "6-5"})

	assert.Equal(t, 2, favs.Clear())
	assert.Zero(t, favs.Count())
	assert.False(t, favs.IsSaved("2-47"))

	_, ok, err := store.MemoryStore.GetItem(data.KeyFavorites)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, newTestFavorites(store).Load())
}

func TestFavoritesClearRemoveFailureKeepsMemoryState(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	store := newMockStore()
	store.removeItemFunc = func(string) error { return errors.New("disk full") }
	favs := NewFavoritesStore(store, zap.New(core))
	favs.Add(data.Verse{ID: "2-47"})

	assert.Equal(t, 1, favs.Clear())
	assert.Zero(t, favs.Count())
	assert.Equal(t, 1, logs.FilterMessage("Failed to clear favorites").Len())
}
