package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Income  Kind = "Income"
	Expense Kind = "Expense"
)

// DateLayout is the textual date convention used at every I/O boundary.
const DateLayout = "01/02/2006"

type (
	// Kind is the direction of a transaction, Income or Expense.
	Kind string

	// Date is a calendar date with no time component.
	Date struct {
		time.Time
	}

	// Transaction is one discrete income or expense event. Instances are
	// owned by the store; views hold references, never diverging copies.
	Transaction struct {
		Title    string
		Category string
		Kind     Kind
		Amount   decimal.Decimal
		Date     Date
	}
)

var (
	ErrEmptyTitle    = errors.New("empty title")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidKind   = errors.New("invalid kind")
	ErrInvalidDate   = errors.New("invalid date")
)

// Categories is the fixed set offered by entry forms. Free text is still
// accepted; the list only drives selection widgets and sample data.
var Categories = []string{
	"Food & Dining",
	"Entertainment",
	"Transportation",
	"Shopping",
	"Bills & Utilities",
	"Healthcare",
	"Education",
	"Business",
	"Income",
	"Other",
}

// ParseKind normalizes a kind string case-insensitively. Anything that is
// not income resolves to Expense; aggregation treats unknown kinds as the
// expense fallback bucket rather than an error.
func ParseKind(s string) Kind {
	if strings.EqualFold(strings.TrimSpace(s), string(Income)) {
		return Income
	}
	return Expense
}

// IsIncome reports whether the kind counts toward income totals. The
// comparison is case-insensitive so persisted legacy values still match.
func (k Kind) IsIncome() bool {
	return strings.EqualFold(string(k), string(Income))
}

func (k Kind) Validate() error {
	if k != Income && k != Expense {
		return ErrInvalidKind
	}
	return nil
}

// NewDate creates a Date at midnight UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// ParseDate parses the MM/DD/YYYY convention.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// String renders the MM/DD/YYYY convention.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// YearMonth returns the YYYY-MM grouping key used by monthly breakdowns.
func (d Date) YearMonth() string {
	return d.Format("2006-01")
}

// NewTransaction builds a transaction without validating it; the add path
// calls Validate before the store accepts it.
func NewTransaction(title, category string, kind Kind, amount decimal.Decimal, date Date) *Transaction {
	return &Transaction{
		Title:    title,
		Category: category,
		Kind:     kind,
		Amount:   amount,
		Date:     date,
	}
}

// Validate enforces the creation-time invariants: non-empty title,
// positive amount, enumerated kind, and a real date. Edits performed by
// forms are validated at the form boundary instead.
func (t *Transaction) Validate() error {
	if len(strings.TrimSpace(t.Title)) == 0 {
		return ErrEmptyTitle
	}
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if err := t.Kind.Validate(); err != nil {
		return err
	}
	return t.Date.Validate()
}

// Duplicate copies the transaction with a " (Copy)" title suffix and the
// date reset to today.
func (t *Transaction) Duplicate() *Transaction {
	return &Transaction{
		Title:    t.Title + " (Copy)",
		Category: t.Category,
		Kind:     t.Kind,
		Amount:   t.Amount,
		Date:     Today(),
	}
}

func (t *Transaction) String() string {
	sign := "-"
	if t.Kind.IsIncome() {
		sign = "+"
	}
	return fmt.Sprintf("%s (%s): %s%s", t.Date, t.Category, sign, t.Amount.StringFixed(2))
}
