// Package app wires the process-wide state holders together. The App
// struct is constructed once at startup and handed by reference to
// every view, so all surfaces share one instance of each state holder
// without package-level globals.
package app

import (
	"context"
	"fmt"

	"github.com/Jaze-bot/finquest-budget-manager/internal/config"
	"github.com/Jaze-bot/finquest-budget-manager/internal/log"
	"github.com/Jaze-bot/finquest-budget-manager/internal/settings"
	"github.com/Jaze-bot/finquest-budget-manager/internal/storage"
	"github.com/Jaze-bot/finquest-budget-manager/internal/store"
)

// App is the explicit application context shared by all views.
type App struct {
	Logger   *log.Logger
	Settings *settings.File
	Budget   *settings.Budget
	Currency *settings.Currency
	Theme    *settings.Theme
	Store    *store.Store

	repo *storage.SQLiteRepository
}

// New opens the settings file and transaction database, loads all state,
// and returns the ready application context. Settings load failures fall
// back to defaults; transaction load failures fall back to sample data.
// Only an unopenable database is fatal.
func New(ctx context.Context, cfg *config.Config, logger *log.Logger) (*App, error) {
	settingsFile := settings.NewFile(cfg.SettingsPath)

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("open transaction database: %w", err)
	}

	a := &App{
		Logger:   logger,
		Settings: settingsFile,
		Budget:   settings.LoadBudget(settingsFile, logger),
		Currency: settings.LoadCurrency(settingsFile, logger),
		Theme:    settings.LoadTheme(settingsFile, logger),
		Store:    store.New(repo, logger),
		repo:     repo,
	}

	a.Store.Load(ctx)

	logger.Info("Application state loaded",
		"budget", a.Budget.Get(),
		"currency", a.Currency.Get(),
		"theme", a.Theme.Get(),
		log.FieldCount, a.Store.Len())

	return a, nil
}

// Save persists the transaction set. Budget, currency, and theme persist
// themselves on every change and need no action here.
func (a *App) Save(ctx context.Context) error {
	return a.Store.Save(ctx)
}

// Close saves outstanding state and releases the database.
func (a *App) Close(ctx context.Context) error {
	saveErr := a.Save(ctx)
	if err := a.repo.Close(); err != nil {
		return fmt.Errorf("close repository: %w", err)
	}
	return saveErr
}
