// File: app/app.go
package app

import (
	"context"
	"fmt"
	"go-bank-account/common"
	"go-bank-account/config"
	"go-bank-account/logger"
	"go-bank-account/repository"
	"go-bank-account/service"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/sirupsen/logrus"
)

func Run() {
	logger.Init()
	if err := config.LoadConfig("."); err != nil {
		logger.Log.Fatalf("Error loading configuration: %v", err)
	}
	if err := logger.Configure(config.AppConfig.Log.Level, config.AppConfig.Log.Format); err != nil {
		logger.Log.Fatalf("Error configuring logger: %v", err)
	}
	logger.Log.Info("Configuration loaded successfully")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := Execute(ctx, config.AppConfig)
	if report != nil {
		logBalances(report)
	}
	if err != nil {
		logger.Log.Fatalf("Script run failed: %v", err)
	}
}

// Execute wires the repository and services, opens the configured accounts
// and runs the configured operations. The report is returned whenever the
// script started, even if it failed part way.
func Execute(ctx context.Context, cfg config.Config) (*service.Report, error) {
	accountRepo := repository.NewAccountRepository()
	accountService := service.NewAccountService(accountRepo)
	transactionService := service.NewTransactionService(accountRepo, accountService)

	if err := accountService.OpenAccounts(cfg.Accounts); err != nil {
		return nil, fmt.Errorf("could not open accounts: %w", err)
	}

	return transactionService.RunScript(ctx, cfg.Operations, cfg.StopOnRejection)
}

func logBalances(report *service.Report) {
	accepted := 0
	for _, step := range report.Steps {
		if step.Accepted {
			accepted++
		}
	}
	logger.Log.WithFields(logrus.Fields{
		"run_id":   report.RunID,
		"steps":    len(report.Steps),
		"accepted": accepted,
	}).Info("Run summary")

	names := make([]string, 0, len(report.Balances))
	for name := range report.Balances {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		logger.Log.WithFields(logrus.Fields{
			"run_id":  report.RunID,
			"account": name,
			"balance": common.FormatAmount(report.Balances[name]),
		}).Info("Final balance")
	}
}
