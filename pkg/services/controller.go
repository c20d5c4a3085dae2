package services

import (
	"fmt"
	"io"
	"time"

	"github.com/kerbaras/gita/pkg/config"
	"github.com/kerbaras/gita/pkg/data"
	"github.com/kerbaras/gita/pkg/sources"
	"go.uber.org/zap"
)

// Store is the persistence the controller owns.
type Store interface {
	data.KeyValueStore
	io.Closer
}

// Controller wires the catalog, matcher, favorites and settings together.
// It is created once at startup and passed explicitly to the CLI and the
// TUI.
type Controller struct {
	Verses    *VerseRepository
	Matcher   *Matcher
	Favorites *FavoritesStore
	Settings  *Settings

	ThinkDelay time.Duration

	store  Store
	logger *zap.Logger
}

// NewController opens the store described by cfg and loads the catalog.
// An empty or invalid catalog is a configuration error.
func NewController(cfg *config.Config, logger *zap.Logger) (*Controller, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var store Store
	if cfg.Ephemeral {
		store = data.NewMemoryStore()
	} else {
		s, err := data.NewDuckDBStore(cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open store: %w", err)
		}
		store = s
	}

	c, err := NewControllerWithStore(sources.FromPath(cfg.CatalogPath), store, logger)
	if err != nil {
		store.Close()
		return nil, err
	}
	c.ThinkDelay = cfg.ThinkDelay
	return c, nil
}

// NewControllerWithStore builds a controller over an already opened store.
// The controller takes ownership of store.
func NewControllerWithStore(src sources.Source, store Store, logger *zap.Logger) (*Controller, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	repo, err := LoadVerseRepository(src)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	favorites := NewFavoritesStore(store, logger)
	loaded := favorites.Load()

	settings := LoadSettings(store, logger)

	logger.Info("Controller ready",
		zap.Int("verses", repo.Len()),
		zap.Int("tags", len(repo.tags)),
		zap.Int("favorites", len(loaded)),
		zap.String("theme", string(settings.Theme())),
	)

	return &Controller{
		Verses:     repo,
		Matcher:    NewMatcher(repo),
		Favorites:  favorites,
		Settings:   settings,
		ThinkDelay: config.DefaultThinkDelay,
		store:      store,
		logger:     logger,
	}, nil
}

func (c *Controller) Logger() *zap.Logger {
	return c.logger
}

// Reset clears favorites and settings, then deletes any other record left
// in the store. Services keep working with their defaults afterwards.
func (c *Controller) Reset() error {
	c.Favorites.Clear()
	c.Settings.Reset()

	keys, err := c.store.Keys()
	if err != nil {
		return fmt.Errorf("failed to list stored records: %w", err)
	}
	for _, key := range keys {
		if err := c.store.RemoveItem(key); err != nil {
			return fmt.Errorf("failed to remove %q: %w", key, err)
		}
	}
	c.logger.Info("Reset stored data", zap.Int("extra_records", len(keys)))
	return nil
}

func (c *Controller) Close() error {
	return c.store.Close()
}
