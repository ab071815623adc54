package views

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Jaze-bot/finquest-budget-manager/internal/app"
	"github.com/Jaze-bot/finquest-budget-manager/internal/core"
	"github.com/Jaze-bot/finquest-budget-manager/internal/log"
	"github.com/Jaze-bot/finquest-budget-manager/internal/report"
	"github.com/Jaze-bot/finquest-budget-manager/internal/settings"
	"github.com/Jaze-bot/finquest-budget-manager/internal/store"
)

// DashboardSnapshot is what the dashboard surface renders: the headline
// totals and the spent/remaining pie proportions.
type DashboardSnapshot struct {
	Budget       decimal.Decimal
	Income       decimal.Decimal
	Expenses     decimal.Decimal
	Remaining    decimal.Decimal
	SpentPct     float64
	RemainingPct float64

	// Formatted labels in the current currency.
	BudgetLabel    string
	IncomeLabel    string
	ExpensesLabel  string
	RemainingLabel string
}

// Dashboard is the main view: headline totals, the budget pie, and the
// quick-add transaction form.
type Dashboard struct {
	app    *app.App
	logger *log.Logger

	mu     sync.Mutex
	active bool
	snap   DashboardSnapshot
}

func NewDashboard(a *app.App) *Dashboard {
	return &Dashboard{
		app:    a,
		logger: a.Logger.WithComponent(log.ComponentViews).With(log.FieldView, "dashboard"),
	}
}

func (d *Dashboard) Name() string { return "dashboard" }

func (d *Dashboard) Activate() {
	d.mu.Lock()
	if d.active {
		d.mu.Unlock()
		return
	}
	d.active = true
	d.mu.Unlock()

	d.app.Budget.AddListener(d.Name(), func(decimal.Decimal) { d.Refresh() })
	d.app.Currency.AddListener(d.Name(), func(settings.CurrencyChange) { d.Refresh() })
	d.app.Store.AddListener(d.Name(), func(store.Change) { d.Refresh() })
	d.Refresh()
}

func (d *Dashboard) Deactivate() {
	d.mu.Lock()
	d.active = false
	d.mu.Unlock()

	d.app.Budget.RemoveListener(d.Name())
	d.app.Currency.RemoveListener(d.Name())
	d.app.Store.RemoveListener(d.Name())
}

// Refresh recomputes the snapshot from current state. The pie clamps a
// negative remaining to zero for its proportions; the raw remaining
// value keeps its sign.
func (d *Dashboard) Refresh() {
	txs := d.app.Store.List(store.FilterAll)
	totals := report.ComputeTotals(txs)
	budget := d.app.Budget.Get()
	remaining := report.Remaining(budget, totals.Expenses)

	pieRemaining := remaining
	if pieRemaining.IsNegative() {
		pieRemaining = decimal.Zero
	}
	spentPct, remainingPct := report.PercentageSplit(totals.Expenses, pieRemaining)

	snap := DashboardSnapshot{
		Budget:         budget,
		Income:         totals.Income,
		Expenses:       totals.Expenses,
		Remaining:      remaining,
		SpentPct:       spentPct,
		RemainingPct:   remainingPct,
		BudgetLabel:    d.app.Currency.Format(budget),
		IncomeLabel:    d.app.Currency.Format(totals.Income),
		ExpensesLabel:  d.app.Currency.Format(totals.Expenses),
		RemainingLabel: d.app.Currency.Format(remaining),
	}

	d.mu.Lock()
	d.snap = snap
	d.mu.Unlock()
}

// Snapshot returns the most recently computed dashboard state.
func (d *Dashboard) Snapshot() DashboardSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snap
}

// AddTransaction validates the quick-add form input and, on success,
// appends to the store and persists. Validation failures never touch
// core state.
func (d *Dashboard) AddTransaction(ctx context.Context, title, category, kind, amount, date string) error {
	amt, err := core.ParseAmount(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	day, err := core.ParseDate(date)
	if err != nil {
		return err
	}

	tx := core.NewTransaction(title, category, core.ParseKind(kind), amt, day)
	if err := tx.Validate(); err != nil {
		return err
	}

	d.app.Store.Add(tx)
	d.logger.Info("Transaction added",
		log.FieldTitle, tx.Title,
		log.FieldKind, tx.Kind,
		log.FieldAmount, tx.Amount)

	return d.app.Save(ctx)
}

// SetBudget applies the inline budget editor. A negative or unparsable
// value is rejected before reaching the setting.
func (d *Dashboard) SetBudget(raw string) error {
	v, err := core.ParseBudget(raw)
	if err != nil {
		return fmt.Errorf("invalid budget %q: %w", raw, err)
	}
	d.app.Budget.Set(v)
	return nil
}
