// Package store holds the single shared transaction collection. Exactly
// one Store exists per process; every view reads and writes the same
// instance by reference, so no view ever works from a stale copy.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Jaze-bot/finquest-budget-manager/internal/core"
	"github.com/Jaze-bot/finquest-budget-manager/internal/listener"
	"github.com/Jaze-bot/finquest-budget-manager/internal/log"
)

// Filter selects which transactions List returns.
type Filter string

const (
	FilterAll     Filter = "All Transactions"
	FilterIncome  Filter = "Income"
	FilterExpense Filter = "Expense"
)

// Matches reports whether tx passes the filter.
func (f Filter) Matches(tx *core.Transaction) bool {
	switch f {
	case FilterIncome:
		return tx.Kind.IsIncome()
	case FilterExpense:
		return !tx.Kind.IsIncome()
	default:
		return true
	}
}

// Change describes a store mutation delivered to listeners.
type Change struct {
	Op          string // add, remove, update, duplicate
	Transaction *core.Transaction
}

// Repository is the durable backend for the transaction set.
type Repository interface {
	LoadAll(ctx context.Context) ([]*core.Transaction, error)
	ReplaceAll(ctx context.Context, txs []*core.Transaction) error
}

// Store is the ordered, mutex-serialized transaction collection.
// Insertion order is the default display order; views re-sort or filter
// independently. Every successful mutation broadcasts a Change so other
// views refresh without manual polling.
type Store struct {
	mu        sync.Mutex
	txs       []*core.Transaction
	repo      Repository
	listeners *listener.Registry[Change]
	logger    *log.Logger
}

func New(repo Repository, logger *log.Logger) *Store {
	return &Store{
		repo:      repo,
		listeners: listener.NewRegistry[Change](),
		logger:    logger.WithComponent(log.ComponentStore),
	}
}

// Load replaces the in-memory collection from the repository. On any
// failure, or when the backend is empty, the fixed placeholder sample set
// is seeded instead; load never surfaces an error to the user.
func (s *Store) Load(ctx context.Context) {
	txs, err := s.repo.LoadAll(ctx)
	if err != nil || len(txs) == 0 {
		if err != nil {
			s.logger.Warn("Could not load transactions, using placeholder data",
				log.FieldError, err)
		}
		txs = SampleTransactions()
	}

	s.mu.Lock()
	s.txs = txs
	s.mu.Unlock()

	s.logger.Info("Transactions loaded", log.FieldCount, len(txs))
}

// Save writes the whole collection to the repository. Persistence is
// best-effort whole-dataset overwrite; failures are logged and returned
// so explicit save actions can surface them.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	snapshot := make([]*core.Transaction, len(s.txs))
	copy(snapshot, s.txs)
	s.mu.Unlock()

	if err := s.repo.ReplaceAll(ctx, snapshot); err != nil {
		s.logger.Error("Failed to save transactions", log.FieldError, err)
		return fmt.Errorf("save transactions: %w", err)
	}
	s.logger.Info("Transactions saved", log.FieldCount, len(snapshot))
	return nil
}

// Add appends tx to the collection. There is no duplicate detection; the
// same logical transaction can be added twice.
func (s *Store) Add(tx *core.Transaction) {
	s.mu.Lock()
	s.txs = append(s.txs, tx)
	s.mu.Unlock()

	s.listeners.Notify(Change{Op: log.OpAdd, Transaction: tx})
}

// Remove deletes the first matching reference; absent transactions are a
// no-op and do not notify.
func (s *Store) Remove(tx *core.Transaction) {
	s.mu.Lock()
	removed := false
	for i, existing := range s.txs {
		if existing == tx {
			s.txs = append(s.txs[:i], s.txs[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.listeners.Notify(Change{Op: log.OpRemove, Transaction: tx})
	}
}

// Update mutates tx's fields in place. Validation happens at the form
// boundary before Update is called.
func (s *Store) Update(tx *core.Transaction, title, category string, kind core.Kind, amount decimal.Decimal, date core.Date) {
	s.mu.Lock()
	tx.Title = title
	tx.Category = category
	tx.Kind = kind
	tx.Amount = amount
	tx.Date = date
	s.mu.Unlock()

	s.listeners.Notify(Change{Op: log.OpUpdate, Transaction: tx})
}

// Duplicate appends a copy of tx with a " (Copy)" title suffix and
// today's date, and returns the new transaction.
func (s *Store) Duplicate(tx *core.Transaction) *core.Transaction {
	dup := tx.Duplicate()

	s.mu.Lock()
	s.txs = append(s.txs, dup)
	s.mu.Unlock()

	s.listeners.Notify(Change{Op: log.OpDuplicate, Transaction: dup})
	return dup
}

// List returns the transactions passing the filter, in insertion order.
// The returned slice is a fresh snapshot; the Transaction pointers are
// shared with the store.
func (s *Store) List(filter Filter) []*core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*core.Transaction, 0, len(s.txs))
	for _, tx := range s.txs {
		if filter.Matches(tx) {
			out = append(out, tx)
		}
	}
	return out
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.txs)
}

// Reset clears the whole collection, for the process-wide data reset.
func (s *Store) Reset() {
	s.mu.Lock()
	s.txs = nil
	s.mu.Unlock()

	s.listeners.Notify(Change{Op: log.OpRemove})
}

// AddListener registers a change listener under id; idempotent per id.
func (s *Store) AddListener(id string, fn func(Change)) {
	s.listeners.Add(id, fn)
}

// RemoveListener deregisters id; unknown ids are a no-op.
func (s *Store) RemoveListener(id string) {
	s.listeners.Remove(id)
}

// SampleTransactions is the placeholder set seeded when no persisted data
// can be loaded.
func SampleTransactions() []*core.Transaction {
	today := core.Today()
	day := func(offset int) core.Date {
		return core.Date{Time: today.AddDate(0, 0, offset)}
	}
	return []*core.Transaction{
		core.NewTransaction("Monthly Salary", "Income", core.Income, decimal.RequireFromString("3000.00"), day(-5)),
		core.NewTransaction("Grocery Shopping", "Food & Dining", core.Expense, decimal.RequireFromString("85.75"), day(-3)),
		core.NewTransaction("Movie Night", "Entertainment", core.Expense, decimal.RequireFromString("25.50"), day(-1)),
	}
}
