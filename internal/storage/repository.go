// Package storage persists the transaction set in a SQLite database
// with a migrated, versioned schema, so data files keep loading across
// upgrades.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/Jaze-bot/finquest-budget-manager/internal/core"
)

// dateColumnLayout is the ISO form used inside the database. The
// MM/DD/YYYY convention applies only at user-facing boundaries.
const dateColumnLayout = "2006-01-02"

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// LoadAll returns every stored transaction in display order.
func (r *SQLiteRepository) LoadAll(ctx context.Context) ([]*core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT title, category, kind, amount, tx_date FROM transactions ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []*core.Transaction
	for rows.Next() {
		var title, category, kind, amount, date string
		if err := rows.Scan(&title, &category, &kind, &amount, &date); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}

		amt, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parse amount %q: %w", amount, err)
		}
		day, err := time.Parse(dateColumnLayout, date)
		if err != nil {
			return nil, fmt.Errorf("parse date %q: %w", date, err)
		}

		txs = append(txs, &core.Transaction{
			Title:    title,
			Category: category,
			Kind:     core.ParseKind(kind),
			Amount:   amt,
			Date:     core.Date{Time: day},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return txs, nil
}

// ReplaceAll overwrites the whole stored set inside one SQL transaction,
// mirroring the whole-dataset save the UI exposes. Either every row lands
// or the previous contents survive untouched.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, txs []*core.Transaction) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}

	stmt, err := dbTx.PrepareContext(ctx,
		`INSERT INTO transactions (position, title, category, kind, amount, tx_date) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, tx := range txs {
		_, err := stmt.ExecContext(ctx, i, tx.Title, tx.Category, string(tx.Kind),
			tx.Amount.String(), tx.Date.Format(dateColumnLayout))
		if err != nil {
			return fmt.Errorf("insert transaction %d: %w", i, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("commit transactions: %w", err)
	}
	return nil
}

// Count returns the number of stored transactions.
func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}
