package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/bittrack/internal/cli"
	"github.com/alexanderramin/bittrack/internal/cli/formatter"
	"github.com/alexanderramin/bittrack/internal/config"
	"github.com/alexanderramin/bittrack/internal/db"
	"github.com/alexanderramin/bittrack/internal/repository"
	"github.com/alexanderramin/bittrack/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	cfg := config.Load()
	formatter.SetCurrencySymbol(cfg.CurrencySymbol)

	// Nothing is persisted: the store lives for one process.
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	repos := repository.NewSQLiteRepositories(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	importSvc := service.NewImportService(uow, observers...)

	app := &cli.App{
		Dashboard: service.NewDashboardService(repos, observers...),
		Projects:  service.NewProjectService(repos, observers...),
		Issues:    service.NewIssueService(repos, uow, observers...),
		Time:      service.NewTimeService(repos, uow, observers...),
		Wallet:    service.NewWalletService(repos, uow, observers...),
		Analytics: service.NewAnalyticsService(repos, observers...),
		Settings:  service.NewSettingsService(repos, uow, observers...),
		Profile:   service.NewProfileService(repos, observers...),
		Check:     service.NewCheckService(repos, observers...),
		Config:    cfg,
		Load: func(ctx context.Context, path string) error {
			_, err := importSvc.ImportFile(ctx, path)
			return err
		},
	}

	// Pickers and the focus timer need a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
