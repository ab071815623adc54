package views

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Jaze-bot/finquest-budget-manager/internal/app"
	"github.com/Jaze-bot/finquest-budget-manager/internal/core"
	"github.com/Jaze-bot/finquest-budget-manager/internal/report"
	"github.com/Jaze-bot/finquest-budget-manager/internal/settings"
	"github.com/Jaze-bot/finquest-budget-manager/internal/store"
)

// KindList is a kind-filtered transaction list with a running total: the
// Income and Expenses tabs are the two instances.
type KindList struct {
	app    *app.App
	name   string
	filter store.Filter
	kind   core.Kind

	mu     sync.Mutex
	active bool
	rows   []*core.Transaction
	total  decimal.Decimal
	label  string
}

// NewIncomeList builds the income tab.
func NewIncomeList(a *app.App) *KindList {
	return &KindList{app: a, name: "income", filter: store.FilterIncome, kind: core.Income}
}

// NewExpenseList builds the expenses tab.
func NewExpenseList(a *app.App) *KindList {
	return &KindList{app: a, name: "expenses", filter: store.FilterExpense, kind: core.Expense}
}

func (k *KindList) Name() string { return k.name }

func (k *KindList) Activate() {
	k.mu.Lock()
	if k.active {
		k.mu.Unlock()
		return
	}
	k.active = true
	k.mu.Unlock()

	k.app.Currency.AddListener(k.name, func(settings.CurrencyChange) { k.Refresh() })
	k.app.Store.AddListener(k.name, func(store.Change) { k.Refresh() })
	k.Refresh()
}

func (k *KindList) Deactivate() {
	k.mu.Lock()
	k.active = false
	k.mu.Unlock()

	k.app.Currency.RemoveListener(k.name)
	k.app.Store.RemoveListener(k.name)
}

func (k *KindList) Refresh() {
	rows := k.app.Store.List(k.filter)
	totals := report.ComputeTotals(rows)

	total := totals.Expenses
	if k.kind.IsIncome() {
		total = totals.Income
	}

	k.mu.Lock()
	k.rows = rows
	k.total = total
	k.label = k.app.Currency.Format(total)
	k.mu.Unlock()
}

// Rows returns the filtered transactions in display order.
func (k *KindList) Rows() []*core.Transaction {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.rows
}

// Total returns the summed amount for this list's kind.
func (k *KindList) Total() decimal.Decimal {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.total
}

// TotalLabel returns the total formatted in the current currency.
func (k *KindList) TotalLabel() string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.label
}
