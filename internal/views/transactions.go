package views

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Jaze-bot/finquest-budget-manager/internal/app"
	"github.com/Jaze-bot/finquest-budget-manager/internal/core"
	"github.com/Jaze-bot/finquest-budget-manager/internal/log"
	"github.com/Jaze-bot/finquest-budget-manager/internal/settings"
	"github.com/Jaze-bot/finquest-budget-manager/internal/store"
)

// Transactions is the full transaction list with per-row edit, delete,
// and duplicate actions.
type Transactions struct {
	app    *app.App
	logger *log.Logger

	mu     sync.Mutex
	active bool
	filter store.Filter
	rows   []*core.Transaction
}

func NewTransactions(a *app.App) *Transactions {
	return &Transactions{
		app:    a,
		logger: a.Logger.WithComponent(log.ComponentViews).With(log.FieldView, "transactions"),
		filter: store.FilterAll,
	}
}

func (t *Transactions) Name() string { return "transactions" }

func (t *Transactions) Activate() {
	t.mu.Lock()
	if t.active {
		t.mu.Unlock()
		return
	}
	t.active = true
	t.mu.Unlock()

	t.app.Currency.AddListener(t.Name(), func(settings.CurrencyChange) { t.Refresh() })
	t.app.Store.AddListener(t.Name(), func(store.Change) { t.Refresh() })
	t.Refresh()
}

func (t *Transactions) Deactivate() {
	t.mu.Lock()
	t.active = false
	t.mu.Unlock()

	t.app.Currency.RemoveListener(t.Name())
	t.app.Store.RemoveListener(t.Name())
}

func (t *Transactions) Refresh() {
	t.mu.Lock()
	filter := t.filter
	t.mu.Unlock()

	rows := t.app.Store.List(filter)

	t.mu.Lock()
	t.rows = rows
	t.mu.Unlock()
}

// SetFilter switches the list between all, income-only, and expense-only
// and refreshes immediately.
func (t *Transactions) SetFilter(f store.Filter) {
	t.mu.Lock()
	t.filter = f
	t.mu.Unlock()
	t.Refresh()
}

// Rows returns the currently listed transactions. The pointers are the
// store's own; callers must route edits through Edit.
func (t *Transactions) Rows() []*core.Transaction {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rows
}

// Add validates form input and appends a new transaction.
func (t *Transactions) Add(ctx context.Context, title, category, kind, amount, date string) error {
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

	t.app.Store.Add(tx)
	return t.app.Save(ctx)
}

// Edit applies the edit dialog's result to tx in place. The form has
// already validated its fields; Edit only guards the amount parse.
func (t *Transactions) Edit(ctx context.Context, tx *core.Transaction, title, category, kind, amount string, date core.Date) error {
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, core.ErrInvalidAmount)
	}

	t.app.Store.Update(tx, title, category, core.ParseKind(kind), amt, date)
	t.logger.Info("Transaction updated", log.FieldTitle, title)
	return t.app.Save(ctx)
}

// Delete removes tx and persists.
func (t *Transactions) Delete(ctx context.Context, tx *core.Transaction) error {
	t.app.Store.Remove(tx)
	t.logger.Info("Transaction deleted", log.FieldTitle, tx.Title)
	return t.app.Save(ctx)
}

// Duplicate copies tx with a " (Copy)" suffix and today's date.
func (t *Transactions) Duplicate(ctx context.Context, tx *core.Transaction) (*core.Transaction, error) {
	dup := t.app.Store.Duplicate(tx)
	t.logger.Info("Transaction duplicated", log.FieldTitle, dup.Title)
	return dup, t.app.Save(ctx)
}
