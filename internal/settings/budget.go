package settings

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Jaze-bot/finquest-budget-manager/internal/listener"
	"github.com/Jaze-bot/finquest-budget-manager/internal/log"
)

// DefaultBudget is used when the settings file is missing or unparsable.
var DefaultBudget = decimal.RequireFromString("2000.00")

// Budget is the monthly budget ceiling. Set persists the new value to the
// settings file immediately and then notifies listeners in registration
// order. A negative value is rejected silently: state is unchanged and no
// listener fires.
type Budget struct {
	mu        sync.Mutex
	value     decimal.Decimal
	file      *File
	listeners *listener.Registry[decimal.Decimal]
	logger    *log.Logger
}

// LoadBudget reads MONTHLY_BUDGET from the settings file, falling back to
// the default on any failure. Load failures are never surfaced.
func LoadBudget(file *File, logger *log.Logger) *Budget {
	b := &Budget{
		value:     DefaultBudget,
		file:      file,
		listeners: listener.NewRegistry[decimal.Decimal](),
		logger:    logger.WithComponent("budget"),
	}

	raw := file.Get(KeyBudget, "")
	if raw == "" {
		return b
	}
	v, err := decimal.NewFromString(raw)
	if err != nil || v.IsNegative() {
		b.logger.Warn("Ignoring malformed budget in settings file, using default",
			"raw", raw, "default", DefaultBudget)
		return b
	}
	b.value = v
	return b
}

// Get returns the current monthly budget.
func (b *Budget) Get() decimal.Decimal {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value
}

// Set validates, applies, persists, and notifies. The in-memory value is
// authoritative: a persistence failure is logged but does not roll back
// the update or suppress notification.
func (b *Budget) Set(v decimal.Decimal) {
	if v.IsNegative() {
		return
	}

	b.mu.Lock()
	b.value = v
	b.mu.Unlock()

	if err := b.file.Set(KeyBudget, v.StringFixed(2)); err != nil {
		b.logger.Error("Failed to persist budget", "error", err, "value", v)
	}

	b.listeners.Notify(v)
}

// AddListener registers fn under id; registration is idempotent.
func (b *Budget) AddListener(id string, fn func(decimal.Decimal)) {
	b.listeners.Add(id, fn)
}

// RemoveListener deregisters id; unknown ids are a no-op.
func (b *Budget) RemoveListener(id string) {
	b.listeners.Remove(id)
}
