package settings

import (
	"strings"
	"sync"

	"github.com/Jaze-bot/finquest-budget-manager/internal/listener"
	"github.com/Jaze-bot/finquest-budget-manager/internal/log"
)

const (
	ThemeLight = "Light"
	ThemeDark  = "Dark"
)

// Theme is the UI theme setting. It follows the same load-once,
// persist-immediately, notify-on-change contract as Budget and Currency.
type Theme struct {
	mu        sync.Mutex
	value     string
	file      *File
	listeners *listener.Registry[string]
	logger    *log.Logger
}

// LoadTheme reads THEME from the settings file; unknown values map to
// Light.
func LoadTheme(file *File, logger *log.Logger) *Theme {
	return &Theme{
		value:     normalizeTheme(file.Get(KeyTheme, ThemeLight)),
		file:      file,
		listeners: listener.NewRegistry[string](),
		logger:    logger.WithComponent("theme"),
	}
}

func normalizeTheme(v string) string {
	if strings.EqualFold(strings.TrimSpace(v), ThemeDark) {
		return ThemeDark
	}
	return ThemeLight
}

// Get returns the current theme, Light or Dark.
func (t *Theme) Get() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.value
}

// Set applies the theme, persists it, and notifies listeners. Unknown
// strings resolve to Light.
func (t *Theme) Set(v string) {
	resolved := normalizeTheme(v)

	t.mu.Lock()
	t.value = resolved
	t.mu.Unlock()

	if err := t.file.Set(KeyTheme, resolved); err != nil {
		t.logger.Error("Failed to persist theme", "error", err, "theme", resolved)
	}

	t.listeners.Notify(resolved)
}

// AddListener registers fn under id; registration is idempotent.
func (t *Theme) AddListener(id string, fn func(string)) {
	t.listeners.Add(id, fn)
}

// RemoveListener deregisters id; unknown ids are a no-op.
func (t *Theme) RemoveListener(id string) {
	t.listeners.Remove(id)
}
