package views

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Jaze-bot/finquest-budget-manager/internal/app"
	"github.com/Jaze-bot/finquest-budget-manager/internal/core"
	"github.com/Jaze-bot/finquest-budget-manager/internal/log"
	"github.com/Jaze-bot/finquest-budget-manager/internal/report"
	"github.com/Jaze-bot/finquest-budget-manager/internal/settings"
	"github.com/Jaze-bot/finquest-budget-manager/internal/store"
)

// ReportsSnapshot carries everything the reports surface draws: metric
// cards, the two category pies, and the monthly bar series.
type ReportsSnapshot struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetSavings    decimal.Decimal

	IncomeByCategory  map[string]decimal.Decimal
	ExpenseByCategory map[string]decimal.Decimal
	Monthly           []report.MonthRow

	IncomeLabel   string
	ExpensesLabel string
	SavingsLabel  string
}

// Reports aggregates the filtered transaction list into breakdowns.
type Reports struct {
	app    *app.App
	logger *log.Logger

	mu     sync.Mutex
	active bool
	filter store.Filter
	snap   ReportsSnapshot
}

func NewReports(a *app.App) *Reports {
	return &Reports{
		app:    a,
		logger: a.Logger.WithComponent(log.ComponentViews).With(log.FieldView, "reports"),
		filter: store.FilterAll,
	}
}

func (r *Reports) Name() string { return "reports" }

func (r *Reports) Activate() {
	r.mu.Lock()
	if r.active {
		r.mu.Unlock()
		return
	}
	r.active = true
	r.mu.Unlock()

	r.app.Budget.AddListener(r.Name(), func(decimal.Decimal) { r.Refresh() })
	r.app.Currency.AddListener(r.Name(), func(settings.CurrencyChange) { r.Refresh() })
	r.app.Store.AddListener(r.Name(), func(store.Change) { r.Refresh() })
	r.Refresh()
}

func (r *Reports) Deactivate() {
	r.mu.Lock()
	r.active = false
	r.mu.Unlock()

	r.app.Budget.RemoveListener(r.Name())
	r.app.Currency.RemoveListener(r.Name())
	r.app.Store.RemoveListener(r.Name())
}

// SetFilter narrows the report to one kind and refreshes immediately.
func (r *Reports) SetFilter(f store.Filter) {
	r.mu.Lock()
	r.filter = f
	r.mu.Unlock()
	r.Refresh()
}

func (r *Reports) Refresh() {
	r.mu.Lock()
	filter := r.filter
	r.mu.Unlock()

	txs := r.app.Store.List(filter)
	totals := report.ComputeTotals(txs)

	snap := ReportsSnapshot{
		TotalIncome:       totals.Income,
		TotalExpenses:     totals.Expenses,
		NetSavings:        report.NetSavings(totals.Income, totals.Expenses),
		IncomeByCategory:  report.CategoryBreakdown(txs, core.Income),
		ExpenseByCategory: report.CategoryBreakdown(txs, core.Expense),
		Monthly:           report.MonthlyBreakdown(txs),
		IncomeLabel:       r.app.Currency.Format(totals.Income),
		ExpensesLabel:     r.app.Currency.Format(totals.Expenses),
	}
	snap.SavingsLabel = r.app.Currency.Format(snap.NetSavings)

	r.mu.Lock()
	r.snap = snap
	r.mu.Unlock()
}

// Snapshot returns the most recently computed report.
func (r *Reports) Snapshot() ReportsSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap
}
