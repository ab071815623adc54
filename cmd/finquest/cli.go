package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Jaze-bot/finquest-budget-manager/internal/app"
	"github.com/Jaze-bot/finquest-budget-manager/internal/store"
	"github.com/Jaze-bot/finquest-budget-manager/internal/views"
)

// cli is the interactive front end. It is intentionally thin: every
// command reads from or mutates through a view, never the store
// directly, so the synchronization layer is exercised the same way a
// graphical shell would.
type cli struct {
	app *app.App
	in  io.Reader
	out io.Writer

	dashboard    *views.Dashboard
	transactions *views.Transactions
	reports      *views.Reports
	settings     *views.Settings
}

var errQuit = fmt.Errorf("quit")

// run reads commands until quit, EOF, or context cancellation. Lines
// arrive over a channel so a shutdown signal interrupts the prompt.
func (c *cli) run(ctx context.Context) error {
	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		close(lines)
	}()

	fmt.Fprintln(c.out, `finquest - type "help" for commands`)
	for {
		fmt.Fprint(c.out, "> ")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return errQuit
			}
			if err := c.dispatch(ctx, strings.TrimSpace(line)); err != nil {
				if err == errQuit {
					return err
				}
				fmt.Fprintln(c.out, "error:", err)
			}
		}
	}
}

func (c *cli) dispatch(ctx context.Context, line string) error {
	cmd, rest, _ := strings.Cut(line, " ")
	switch cmd {
	case "":
		return nil
	case "help":
		c.help()
		return nil
	case "dashboard":
		c.showDashboard()
		return nil
	case "list":
		return c.list(rest)
	case "add":
		return c.add(ctx, rest)
	case "del":
		return c.del(ctx, rest)
	case "dup":
		return c.dup(ctx, rest)
	case "reports":
		c.showReports()
		return nil
	case "budget":
		return c.settings.SaveBudget(rest)
	case "currency":
		c.settings.SaveCurrency(rest)
		return nil
	case "theme":
		c.settings.SaveTheme(rest)
		return nil
	case "settings":
		c.showSettings()
		return nil
	case "save":
		return c.app.Save(ctx)
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (c *cli) help() {
	fmt.Fprint(c.out, `commands:
  dashboard                                 headline totals and budget pie
  list [all|income|expense]                 transaction list
  add <title>|<category>|<kind>|<amount>|<MM/DD/YYYY>
  del <n>                                   delete row n of the last list
  dup <n>                                   duplicate row n of the last list
  reports                                   category and monthly breakdowns
  budget <amount>                           set the monthly budget
  currency <PHP|USD|EUR|GBP|JPY>            set the display currency
  theme <Light|Dark>                        set the theme
  settings                                  show current settings
  save                                      persist transactions now
  quit
`)
}

func (c *cli) showDashboard() {
	snap := c.dashboard.Snapshot()
	fmt.Fprintf(c.out, "budget    %s\n", snap.BudgetLabel)
	fmt.Fprintf(c.out, "income    %s\n", snap.IncomeLabel)
	fmt.Fprintf(c.out, "expenses  %s (%.1f%% of budget pie)\n", snap.ExpensesLabel, snap.SpentPct)
	fmt.Fprintf(c.out, "remaining %s (%.1f%%)\n", snap.RemainingLabel, snap.RemainingPct)
}

func (c *cli) list(arg string) error {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "", "all":
		c.transactions.SetFilter(store.FilterAll)
	case "income":
		c.transactions.SetFilter(store.FilterIncome)
	case "expense", "expenses":
		c.transactions.SetFilter(store.FilterExpense)
	default:
		return fmt.Errorf("unknown filter %q", arg)
	}
	for i, tx := range c.transactions.Rows() {
		fmt.Fprintf(c.out, "%3d  %-28s %s\n", i+1, tx.Title, tx)
	}
	return nil
}

func (c *cli) add(ctx context.Context, rest string) error {
	parts := strings.Split(rest, "|")
	if len(parts) != 5 {
		return fmt.Errorf("usage: add <title>|<category>|<kind>|<amount>|<MM/DD/YYYY>")
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return c.transactions.Add(ctx, parts[0], parts[1], parts[2], parts[3], parts[4])
}

func (c *cli) rowArg(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 || n > len(c.transactions.Rows()) {
		return 0, fmt.Errorf("no such row %q", arg)
	}
	return n - 1, nil
}

func (c *cli) del(ctx context.Context, arg string) error {
	i, err := c.rowArg(arg)
	if err != nil {
		return err
	}
	return c.transactions.Delete(ctx, c.transactions.Rows()[i])
}

func (c *cli) dup(ctx context.Context, arg string) error {
	i, err := c.rowArg(arg)
	if err != nil {
		return err
	}
	_, err = c.transactions.Duplicate(ctx, c.transactions.Rows()[i])
	return err
}

func (c *cli) showReports() {
	snap := c.reports.Snapshot()
	fmt.Fprintf(c.out, "income   %s\n", snap.IncomeLabel)
	fmt.Fprintf(c.out, "expenses %s\n", snap.ExpensesLabel)
	fmt.Fprintf(c.out, "savings  %s\n", snap.SavingsLabel)
	fmt.Fprintln(c.out, "expenses by category:")
	for cat, amt := range snap.ExpenseByCategory {
		fmt.Fprintf(c.out, "  %-20s %s\n", cat, amt.StringFixed(2))
	}
	fmt.Fprintln(c.out, "monthly:")
	for _, row := range snap.Monthly {
		fmt.Fprintf(c.out, "  %s  +%s  -%s\n", row.Month, row.Income.StringFixed(2), row.Expenses.StringFixed(2))
	}
}

func (c *cli) showSettings() {
	snap := c.settings.Snapshot()
	fmt.Fprintf(c.out, "theme    %s\n", snap.Theme)
	fmt.Fprintf(c.out, "currency %s (%s)\n", snap.CurrencyCode, snap.CurrencySymbol)
	fmt.Fprintf(c.out, "budget   %s\n", snap.BudgetLabel)
}
