package report

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Jaze-bot/finquest-budget-manager/internal/core"
)

func tx(kind core.Kind, category, amount string, date core.Date) *core.Transaction {
	return core.NewTransaction("t", category, kind, decimal.RequireFromString(amount), date)
}

func d(amount string) decimal.Decimal {
	return decimal.RequireFromString(amount)
}

func TestComputeTotals(t *testing.T) {
	txs := []*core.Transaction{
		tx(core.Income, "Income", "3000.00", core.NewDate(2024, 1, 1)),
		tx(core.Expense, "Food & Dining", "85.75", core.NewDate(2024, 1, 1)),
	}
	totals := ComputeTotals(txs)
	if !totals.Income.Equal(d("3000.00")) {
		t.Fatalf("Income = %s, want 3000.00", totals.Income)
	}
	if !totals.Expenses.Equal(d("85.75")) {
		t.Fatalf("Expenses = %s, want 85.75", totals.Expenses)
	}
}

func TestComputeTotalsIncomeAddition(t *testing.T) {
	txs := []*core.Transaction{tx(core.Expense, "Other", "50", core.NewDate(2024, 1, 1))}
	before := ComputeTotals(txs)

	txs = append(txs, tx(core.Income, "Income", "123.45", core.NewDate(2024, 1, 2)))
	after := ComputeTotals(txs)

	if !after.Income.Sub(before.Income).Equal(d("123.45")) {
		t.Fatalf("income delta = %s, want 123.45", after.Income.Sub(before.Income))
	}
	if !after.Expenses.Equal(before.Expenses) {
		t.Fatalf("expenses changed: %s -> %s", before.Expenses, after.Expenses)
	}
}

func TestComputeTotalsFallbackBucket(t *testing.T) {
	// Anything not case-insensitively Income counts as an expense.
	txs := []*core.Transaction{
		{Title: "a", Category: "Other", Kind: core.Kind("Transfer"), Amount: d("10"), Date: core.NewDate(2024, 1, 1)},
		{Title: "b", Category: "Other", Kind: core.Kind("EXPENSE"), Amount: d("5"), Date: core.NewDate(2024, 1, 1)},
		{Title: "c", Category: "Other", Kind: core.Kind("income"), Amount: d("7"), Date: core.NewDate(2024, 1, 1)},
	}
	totals := ComputeTotals(txs)
	if !totals.Expenses.Equal(d("15")) {
		t.Fatalf("Expenses = %s, want 15", totals.Expenses)
	}
	if !totals.Income.Equal(d("7")) {
		t.Fatalf("Income = %s, want 7", totals.Income)
	}
}

func TestRemaining(t *testing.T) {
	cases := []struct {
		budget, expenses, want string
	}{
		{"2000.00", "85.75", "1914.25"},
		{"100", "250", "-150"},
		{"0", "0", "0"},
	}
	for _, tc := range cases {
		got := Remaining(d(tc.budget), d(tc.expenses))
		if !got.Equal(d(tc.want)) {
			t.Fatalf("Remaining(%s, %s) = %s, want %s", tc.budget, tc.expenses, got, tc.want)
		}
	}
}

func TestCategoryBreakdown(t *testing.T) {
	txs := []*core.Transaction{
		tx(core.Expense, "Food & Dining", "10.00", core.NewDate(2024, 1, 1)),
		tx(core.Expense, "Food & Dining", "15.50", core.NewDate(2024, 1, 5)),
		tx(core.Expense, "Entertainment", "25.50", core.NewDate(2024, 1, 8)),
		tx(core.Income, "Income", "3000.00", core.NewDate(2024, 1, 1)),
	}

	expenses := CategoryBreakdown(txs, core.Expense)
	if len(expenses) != 2 {
		t.Fatalf("expense categories = %d, want 2", len(expenses))
	}
	if !expenses["Food & Dining"].Equal(d("25.50")) {
		t.Fatalf("Food & Dining = %s, want 25.50", expenses["Food & Dining"])
	}
	if !expenses["Entertainment"].Equal(d("25.50")) {
		t.Fatalf("Entertainment = %s, want 25.50", expenses["Entertainment"])
	}

	income := CategoryBreakdown(txs, core.Income)
	if len(income) != 1 || !income["Income"].Equal(d("3000.00")) {
		t.Fatalf("income breakdown = %v", income)
	}
}

func TestMonthlyBreakdownChronological(t *testing.T) {
	txs := []*core.Transaction{
		tx(core.Expense, "Other", "20", core.NewDate(2024, 3, 10)),
		tx(core.Income, "Income", "100", core.NewDate(2023, 12, 1)),
		tx(core.Expense, "Other", "30", core.NewDate(2024, 1, 15)),
		tx(core.Income, "Income", "50", core.NewDate(2024, 1, 20)),
	}

	rows := MonthlyBreakdown(txs)

	wantMonths := []string{"2023-12", "2024-01", "2024-03"}
	if len(rows) != len(wantMonths) {
		t.Fatalf("rows = %d, want %d", len(rows), len(wantMonths))
	}
	for i, m := range wantMonths {
		if rows[i].Month != m {
			t.Fatalf("rows[%d].Month = %q, want %q", i, rows[i].Month, m)
		}
	}
	if !rows[1].Income.Equal(d("50")) || !rows[1].Expenses.Equal(d("30")) {
		t.Fatalf("2024-01 row = %+v", rows[1])
	}
}

func TestPercentageSplit(t *testing.T) {
	spent, remaining := PercentageSplit(d("0"), d("0"))
	if spent != 0.0 || remaining != 0.0 {
		t.Fatalf("zero-total split = (%v, %v), want (0, 0)", spent, remaining)
	}

	spent, remaining = PercentageSplit(d("25"), d("75"))
	if spent != 25.0 || remaining != 75.0 {
		t.Fatalf("split = (%v, %v), want (25, 75)", spent, remaining)
	}

	spent, remaining = PercentageSplit(d("50"), d("50"))
	if spent+remaining != 100.0 {
		t.Fatalf("split sums to %v, want 100", spent+remaining)
	}
}

func TestEndToEndScenario(t *testing.T) {
	budget := d("2000.00")
	txs := []*core.Transaction{
		core.NewTransaction("Groceries", "Food & Dining", core.Expense, d("85.75"), core.NewDate(2024, 1, 1)),
		core.NewTransaction("Salary", "Income", core.Income, d("3000.00"), core.NewDate(2024, 1, 1)),
	}

	totals := ComputeTotals(txs)
	if !totals.Income.Equal(d("3000.00")) || !totals.Expenses.Equal(d("85.75")) {
		t.Fatalf("totals = %+v", totals)
	}
	if got := Remaining(budget, totals.Expenses); !got.Equal(d("1914.25")) {
		t.Fatalf("Remaining = %s, want 1914.25", got)
	}
}
