// Package report computes derived aggregates over the transaction set.
// Everything here is pure and stateless: aggregates are recomputed on
// demand from current state, never cached incrementally.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Jaze-bot/finquest-budget-manager/internal/core"
)

// Totals holds the income and expense sums for a transaction set.
type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// MonthRow is one chronological row of the monthly breakdown.
type MonthRow struct {
	Month    string // YYYY-MM
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// ComputeTotals sums amounts in a single pass. A transaction whose kind
// does not case-insensitively match Income counts as an expense; unknown
// kinds land in the expense fallback bucket rather than erroring.
func ComputeTotals(txs []*core.Transaction) Totals {
	t := Totals{Income: decimal.Zero, Expenses: decimal.Zero}
	for _, tx := range txs {
		if tx.Kind.IsIncome() {
			t.Income = t.Income.Add(tx.Amount)
		} else {
			t.Expenses = t.Expenses.Add(tx.Amount)
		}
	}
	return t
}

// Remaining is budget minus expenses. The raw value may go negative;
// display layers clamp it for visual proportions only.
func Remaining(budget, expenses decimal.Decimal) decimal.Decimal {
	return budget.Sub(expenses)
}

// NetSavings is income minus expenses.
func NetSavings(income, expenses decimal.Decimal) decimal.Decimal {
	return income.Sub(expenses)
}

// CategoryBreakdown accumulates per-category sums for the given kind.
// Absent keys start at zero; map iteration order is unspecified.
func CategoryBreakdown(txs []*core.Transaction, kind core.Kind) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Kind.IsIncome() != kind.IsIncome() {
			continue
		}
		sum, ok := out[tx.Category]
		if !ok {
			sum = decimal.Zero
		}
		out[tx.Category] = sum.Add(tx.Amount)
	}
	return out
}

// MonthlyBreakdown accumulates parallel income/expense sums keyed by the
// transaction's year-month, returned in chronological order.
func MonthlyBreakdown(txs []*core.Transaction) []MonthRow {
	byMonth := make(map[string]*MonthRow)
	for _, tx := range txs {
		key := tx.Date.YearMonth()
		row, ok := byMonth[key]
		if !ok {
			row = &MonthRow{Month: key, Income: decimal.Zero, Expenses: decimal.Zero}
			byMonth[key] = row
		}
		if tx.Kind.IsIncome() {
			row.Income = row.Income.Add(tx.Amount)
		} else {
			row.Expenses = row.Expenses.Add(tx.Amount)
		}
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]MonthRow, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, *byMonth[k])
	}
	return rows
}

// PercentageSplit converts spent/remaining into two percentages summing
// to 100. When the total is zero both halves are 0.0 by policy, never
// NaN or a division error.
func PercentageSplit(spent, remaining decimal.Decimal) (spentPct, remainingPct float64) {
	total := spent.Add(remaining)
	if total.IsZero() {
		return 0.0, 0.0
	}
	hundred := decimal.NewFromInt(100)
	spentPct, _ = spent.Mul(hundred).Div(total).Float64()
	remainingPct, _ = remaining.Mul(hundred).Div(total).Float64()
	return spentPct, remainingPct
}
