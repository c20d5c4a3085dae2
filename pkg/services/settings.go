package services

import (
	"strconv"
	"sync"

	"github.com/kerbaras/gita/pkg/data"
	"go.uber.org/zap"
)

const (
	DefaultTheme             = data.ThemeLight
	DefaultDailyNotification = true
)

// Settings holds the user's theme and reminder preferences. It is built
// once by the controller and handed to whoever needs it; setters write
// through to the key-value store.
type Settings struct {
	store  data.KeyValueStore
	logger *zap.Logger

	mu    sync.RWMutex
	theme data.ThemeMode
	daily bool
}

// LoadSettings reads the persisted preferences. Missing, unreadable or
// invalid records fall back to the defaults.
func LoadSettings(store data.KeyValueStore, logger *zap.Logger) *Settings {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Settings{
		store:  store,
		logger: logger.Named("settings"),
		theme:  DefaultTheme,
		daily:  DefaultDailyNotification,
	}

	if raw, ok := s.get(data.KeyThemeMode); ok {
		if mode := data.ThemeMode(raw); mode.Valid() {
			s.theme = mode
		} else {
			s.logger.Warn("Ignoring unknown theme", zap.String("value", raw))
		}
	}

	if raw, ok := s.get(data.KeyDailyNotification); ok {
		switch raw {
		case "true":
			s.daily = true
		case "false":
			s.daily = false
		default:
			s.logger.Warn("Ignoring malformed notification setting", zap.String("value", raw))
		}
	}

	return s
}

func (s *Settings) get(key string) (string, bool) {
	raw, ok, err := s.store.GetItem(key)
	if err != nil {
		s.logger.Error("Failed to load setting", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return raw, ok
}

func (s *Settings) Theme() data.ThemeMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme switches the theme. Unknown modes return an
// *InvalidThemeError and change nothing.
func (s *Settings) SetTheme(mode data.ThemeMode) error {
	if !mode.Valid() {
		return &InvalidThemeError{Mode: string(mode)}
	}

	s.mu.Lock()
	s.theme = mode
	s.mu.Unlock()

	s.set(data.KeyThemeMode, string(mode))
	return nil
}

func (s *Settings) DailyNotification() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.daily
}

func (s *Settings) SetDailyNotification(enabled bool) {
	s.mu.Lock()
	s.daily = enabled
	s.mu.Unlock()

	s.set(data.KeyDailyNotification, strconv.FormatBool(enabled))
}

// Reset restores the defaults and deletes the stored records.
func (s *Settings) Reset() {
	s.mu.Lock()
	s.theme = DefaultTheme
	s.daily = DefaultDailyNotification
	s.mu.Unlock()

	for _, key := range []string{data.KeyThemeMode, data.KeyDailyNotification} {
		if err := s.store.RemoveItem(key); err != nil {
			s.logger.Error("Failed to reset setting", zap.String("key", key), zap.Error(err))
		}
	}
}

// Snapshot returns the current values.
func (s *Settings) Snapshot() data.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return data.Settings{Theme: s.theme, DailyNotification: s.daily}
}

func (s *Settings) set(key, value string) {
	if err := s.store.SetItem(key, value); err != nil {
		s.logger.Error("Failed to save setting", zap.String("key", key), zap.Error(err))
	}
}

type InvalidThemeError struct {
	Mode string
}

func (e *InvalidThemeError) Error() string {
	return "unknown theme " + strconv.Quote(e.Mode) + " (want light, dark or temple)"
}
