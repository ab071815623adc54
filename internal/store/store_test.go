package store

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Jaze-bot/finquest-budget-manager/internal/core"
	"github.com/Jaze-bot/finquest-budget-manager/internal/log"
)

type fakeRepo struct {
	loaded   []*core.Transaction
	loadErr  error
	saved    []*core.Transaction
	saveErr  error
	saveCall int
}

func (f *fakeRepo) LoadAll(ctx context.Context) ([]*core.Transaction, error) {
	return f.loaded, f.loadErr
}

func (f *fakeRepo) ReplaceAll(ctx context.Context, txs []*core.Transaction) error {
	f.saveCall++
	f.saved = txs
	return f.saveErr
}

func testStore(repo *fakeRepo) *Store {
	return New(repo, log.New(log.Config{Level: slog.LevelError}))
}

func tx(title string, kind core.Kind, amount string) *core.Transaction {
	return core.NewTransaction(title, "Other", kind, decimal.RequireFromString(amount), core.NewDate(2024, 1, 1))
}

func TestStoreAddAndList(t *testing.T) {
	s := testStore(&fakeRepo{})

	income := tx("Salary", core.Income, "3000.00")
	expense := tx("Groceries", core.Expense, "85.75")
	s.Add(income)
	s.Add(expense)

	if got := len(s.List(FilterAll)); got != 2 {
		t.Fatalf("List(all) = %d entries, want 2", got)
	}
	if got := s.List(FilterIncome); len(got) != 1 || got[0] != income {
		t.Fatalf("List(income) = %v", got)
	}
	if got := s.List(FilterExpense); len(got) != 1 || got[0] != expense {
		t.Fatalf("List(expense) = %v", got)
	}
}

func TestStoreListSharesReferences(t *testing.T) {
	s := testStore(&fakeRepo{})
	original := tx("Rent", core.Expense, "900")
	s.Add(original)

	// A view mutating through Update must be visible to every other
	// view holding the same reference.
	s.Update(original, "Rent (edited)", "Bills & Utilities", core.Expense, decimal.NewFromInt(950), core.NewDate(2024, 2, 1))

	listed := s.List(FilterAll)[0]
	if listed != original || listed.Title != "Rent (edited)" || !listed.Amount.Equal(decimal.NewFromInt(950)) {
		t.Fatalf("views see diverged copy: %+v", listed)
	}
}

func TestStoreRemove(t *testing.T) {
	s := testStore(&fakeRepo{})
	a := tx("a", core.Expense, "1")
	b := tx("b", core.Expense, "2")
	s.Add(a)
	s.Add(b)

	notifications := 0
	s.AddListener("test", func(Change) { notifications++ })

	s.Remove(a)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}

	// Removing an absent transaction is a no-op and does not notify.
	s.Remove(a)
	if s.Len() != 1 || notifications != 1 {
		t.Fatalf("Len=%d notifications=%d, want 1/1", s.Len(), notifications)
	}
}

func TestStoreDuplicate(t *testing.T) {
	s := testStore(&fakeRepo{})
	original := tx("Coffee", core.Expense, "4.50")
	s.Add(original)

	dup := s.Duplicate(original)

	if dup.Title != "Coffee (Copy)" {
		t.Fatalf("Title = %q", dup.Title)
	}
	if !dup.Date.Equal(core.Today().Time) {
		t.Fatalf("Date = %v, want today", dup.Date)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
}

func TestStoreBroadcastsChanges(t *testing.T) {
	s := testStore(&fakeRepo{})

	var ops []string
	s.AddListener("test", func(c Change) { ops = append(ops, c.Op) })

	a := tx("a", core.Expense, "1")
	s.Add(a)
	s.Update(a, "a2", "Other", core.Expense, decimal.NewFromInt(2), core.NewDate(2024, 1, 2))
	s.Duplicate(a)
	s.Remove(a)

	want := []string{"add", "update", "duplicate", "remove"}
	if len(ops) != len(want) {
		t.Fatalf("ops = %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("ops[%d] = %q, want %q", i, ops[i], want[i])
		}
	}
}

func TestStoreLoadFallsBackToSamples(t *testing.T) {
	cases := []struct {
		name string
		repo *fakeRepo
	}{
		{"load error", &fakeRepo{loadErr: errors.New("corrupt")}},
		{"empty backend", &fakeRepo{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := testStore(tc.repo)
			s.Load(context.Background())

			txs := s.List(FilterAll)
			if len(txs) != 3 {
				t.Fatalf("loaded %d transactions, want 3 samples", len(txs))
			}
			if txs[0].Title != "Monthly Salary" || txs[1].Title != "Grocery Shopping" || txs[2].Title != "Movie Night" {
				t.Fatalf("unexpected samples: %v", txs)
			}
		})
	}
}

func TestStoreLoadUsesRepositoryData(t *testing.T) {
	repo := &fakeRepo{loaded: []*core.Transaction{tx("persisted", core.Income, "10")}}
	s := testStore(repo)
	s.Load(context.Background())

	txs := s.List(FilterAll)
	if len(txs) != 1 || txs[0].Title != "persisted" {
		t.Fatalf("unexpected transactions: %v", txs)
	}
}

func TestStoreSave(t *testing.T) {
	repo := &fakeRepo{}
	s := testStore(repo)
	s.Add(tx("a", core.Expense, "1"))

	if err := s.Save(context.Background()); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if repo.saveCall != 1 || len(repo.saved) != 1 {
		t.Fatalf("saveCall=%d saved=%d", repo.saveCall, len(repo.saved))
	}

	repo.saveErr = errors.New("disk full")
	if err := s.Save(context.Background()); err == nil {
		t.Fatal("expected error from failing repository")
	}
}
