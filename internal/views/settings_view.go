package views

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Jaze-bot/finquest-budget-manager/internal/app"
	"github.com/Jaze-bot/finquest-budget-manager/internal/core"
	"github.com/Jaze-bot/finquest-budget-manager/internal/log"
	"github.com/Jaze-bot/finquest-budget-manager/internal/settings"
)

// SettingsSnapshot mirrors the settings form fields.
type SettingsSnapshot struct {
	Theme          string
	CurrencyCode   string
	CurrencySymbol string
	Budget         decimal.Decimal
	BudgetLabel    string
}

// Settings is the preferences surface: theme, currency, and monthly
// budget editing. It listens to all three settings so concurrent edits
// from other views (the dashboard budget editor) stay reflected.
type Settings struct {
	app    *app.App
	logger *log.Logger

	mu     sync.Mutex
	active bool
	snap   SettingsSnapshot
}

func NewSettings(a *app.App) *Settings {
	return &Settings{
		app:    a,
		logger: a.Logger.WithComponent(log.ComponentViews).With(log.FieldView, "settings"),
	}
}

func (s *Settings) Name() string { return "settings" }

func (s *Settings) Activate() {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.mu.Unlock()

	s.app.Budget.AddListener(s.Name(), func(decimal.Decimal) { s.Refresh() })
	s.app.Currency.AddListener(s.Name(), func(settings.CurrencyChange) { s.Refresh() })
	s.app.Theme.AddListener(s.Name(), func(string) { s.Refresh() })
	s.Refresh()
}

func (s *Settings) Deactivate() {
	s.mu.Lock()
	s.active = false
	s.mu.Unlock()

	s.app.Budget.RemoveListener(s.Name())
	s.app.Currency.RemoveListener(s.Name())
	s.app.Theme.RemoveListener(s.Name())
}

func (s *Settings) Refresh() {
	budget := s.app.Budget.Get()
	snap := SettingsSnapshot{
		Theme:          s.app.Theme.Get(),
		CurrencyCode:   s.app.Currency.Get(),
		CurrencySymbol: s.app.Currency.Symbol(),
		Budget:         budget,
		BudgetLabel:    s.app.Currency.Format(budget),
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// Snapshot returns the current settings form state.
func (s *Settings) Snapshot() SettingsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// SaveBudget parses and applies a new monthly budget.
func (s *Settings) SaveBudget(raw string) error {
	v, err := core.ParseBudget(raw)
	if err != nil {
		return fmt.Errorf("invalid budget %q: %w", raw, err)
	}
	s.app.Budget.Set(v)
	s.logger.Info("Budget saved", log.FieldAmount, v)
	return nil
}

// SaveCurrency applies a currency code; unknown codes resolve to the
// default rather than failing.
func (s *Settings) SaveCurrency(code string) {
	s.app.Currency.Set(code)
}

// SaveTheme applies a theme; unknown values resolve to Light.
func (s *Settings) SaveTheme(theme string) {
	s.app.Theme.Set(theme)
}
