package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/Jaze-bot/finquest-budget-manager/internal/app"
	"github.com/Jaze-bot/finquest-budget-manager/internal/config"
	"github.com/Jaze-bot/finquest-budget-manager/internal/log"
	"github.com/Jaze-bot/finquest-budget-manager/internal/netsim"
	"github.com/Jaze-bot/finquest-budget-manager/internal/views"
)

func main() {
	// Load .env file for local development (ignore errors when absent)
	_ = godotenv.Load()

	cfg := config.Load()

	logger := log.New(log.Config{Level: cfg.LogLevel, Component: log.ComponentApp})
	log.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize application", log.FieldError, err)
		os.Exit(1)
	}

	// Every view stays registered for the whole session; switching the
	// visible tab never tears listeners down, so all surfaces are current
	// the moment they are shown.
	ui := &cli{
		app:          a,
		in:           os.Stdin,
		out:          os.Stdout,
		dashboard:    views.NewDashboard(a),
		transactions: views.NewTransactions(a),
		reports:      views.NewReports(a),
		settings:     views.NewSettings(a),
	}
	active := []views.View{
		ui.dashboard,
		ui.transactions,
		views.NewIncomeList(a),
		views.NewExpenseList(a),
		ui.reports,
		ui.settings,
	}
	for _, v := range active {
		v.Activate()
	}

	g, gctx := errgroup.WithContext(ctx)

	if cfg.NetSimEnabled {
		sim := netsim.New(cfg.NetSimInterval, logger)
		sim.AddListener("status-bar", func(st netsim.Status) {
			state := "offline"
			if st.Online {
				state = "online"
			}
			logger.Info("Status bar updated", "state", state)
		})
		g.Go(func() error { return sim.Run(gctx) })
	}

	// The cli returning cancels gctx, which stops the simulator.
	g.Go(func() error { return ui.run(gctx) })

	logger.Info("finquest started",
		"views", len(active),
		"db", cfg.SQLiteDBPath,
		"settings", cfg.SettingsPath)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) && err != errQuit {
		logger.Error("Background task failed", log.FieldError, err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, v := range active {
		v.Deactivate()
	}
	if err := a.Close(shutdownCtx); err != nil {
		logger.Error("Shutdown save failed", log.FieldError, err)
		os.Exit(1)
	}
	logger.Info("finquest stopped gracefully")
}
