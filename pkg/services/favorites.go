package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/kerbaras/gita/pkg/data"
	"go.uber.org/zap"
)

// FavoritesStore keeps the user's bookmarked verses, most recently saved
// first, and mirrors every change to the key-value store under
// data.KeyFavorites.
//
// Persistence is best effort: read failures fall back to an empty
// collection and write failures are logged while the in-memory state
// stays authoritative for the session.
type FavoritesStore struct {
	store  data.KeyValueStore
	logger *zap.Logger
	now    func() time.Time

	mu        sync.Mutex
	favorites []data.FavoriteVerse
}

func NewFavoritesStore(store data.KeyValueStore, logger *zap.Logger) *FavoritesStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FavoritesStore{
		store:  store,
		logger: logger.Named("favorites"),
		now:    time.Now,
	}
}

// WithClock replaces the clock used to stamp SavedAt.
func (f *FavoritesStore) WithClock(now func() time.Time) *FavoritesStore {
	f.now = now
	return f
}

// Load reads the persisted collection, replacing the in-memory state.
// Missing or malformed data yields an empty collection.
func (f *FavoritesStore) Load() []data.FavoriteVerse {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.favorites = f.read()
	return f.snapshot()
}

func (f *FavoritesStore) read() []data.FavoriteVerse {
	raw, ok, err := f.store.GetItem(data.KeyFavorites)
	if err != nil {
		f.logger.Error("Failed to load favorites", zap.Error(err))
		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	var parsed []data.FavoriteVerse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		f.logger.Warn("Discarding malformed favorites", zap.Error(err), zap.Int("bytes", len(raw)))
		return nil
	}

	// Older writers could store the same verse twice; keep the newest.
	seen := make(map[string]bool, len(parsed))
	out := parsed[:0]
	for _, fav := range parsed {
		if seen[fav.ID] {
			continue
		}
		seen[fav.ID] = true
		out = append(out, fav)
	}
	return out
}

// Add bookmarks verse at the front of the collection with SavedAt set to
// now. A verse that is already saved moves to the front with a new
// timestamp; the collection never holds two entries for one id.
func (f *FavoritesStore) Add(verse data.Verse) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fav := data.FavoriteVerse{Verse: verse, SavedAt: f.now()}
	fav.Tags = append([]string(nil), verse.Tags...)

	next := make([]data.FavoriteVerse, 0, len(f.favorites)+1)
	next = append(next, fav)
	for _, existing := range f.favorites {
		if existing.ID != verse.ID {
			next = append(next, existing)
		}
	}
	f.favorites = next
	f.persist()
}

// Remove drops the entry for id. Removing an id that is not saved is a
// no-op.
func (f *FavoritesStore) Remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	next := make([]data.FavoriteVerse, 0, len(f.favorites))
	for _, existing := range f.favorites {
		if existing.ID != id {
			next = append(next, existing)
		}
	}
	f.favorites = next
	f.persist()
}

// Clear forgets every saved verse and deletes the stored record. It
// returns the number of verses removed.
func (f *FavoritesStore) Clear() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := len(f.favorites)
	f.favorites = nil
	if err := f.store.RemoveItem(data.KeyFavorites); err != nil {
		f.logger.Error("Failed to clear favorites", zap.Error(err))
		return n
	}
	f.logger.Info("Cleared favorites", zap.Int("count", n))
	return n
}

// Toggle saves verse if it is not saved yet and removes it otherwise. It
// reports whether the verse is saved afterwards.
func (f *FavoritesStore) Toggle(verse data.Verse) bool {
	if f.IsSaved(verse.ID) {
		f.Remove(verse.ID)
		return false
	}
	f.Add(verse)
	return true
}

func (f *FavoritesStore) IsSaved(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, fav := range f.favorites {
		if fav.ID == id {
			return true
		}
	}
	return false
}

// Favorites returns a copy of the collection, most recent first.
func (f *FavoritesStore) Favorites() []data.FavoriteVerse {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot()
}

func (f *FavoritesStore) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.favorites)
}

func (f *FavoritesStore) snapshot() []data.FavoriteVerse {
	out := make([]data.FavoriteVerse, len(f.favorites))
	for i, fav := range f.favorites {
		out[i] = fav
		out[i].Tags = append([]string(nil), fav.Tags...)
	}
	return out
}

// persist overwrites the stored collection. Callers hold f.mu.
func (f *FavoritesStore) persist() {
	raw, err := json.Marshal(f.favorites)
	if err != nil {
		f.logger.Error("Failed to encode favorites", zap.Error(err))
		return
	}
	if err := f.store.SetItem(data.KeyFavorites, string(raw)); err != nil {
		f.logger.Error("Failed to save favorites", zap.Error(err), zap.Int("count", len(f.favorites)))
		return
	}
	f.logger.Debug("Saved favorites", zap.Int("count", len(f.favorites)))
}
