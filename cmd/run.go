// File: cmd/run.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jrx4d/cartwheel/internal/observability"
	"github.com/jrx4d/cartwheel/pkg/browser"
	"github.com/jrx4d/cartwheel/pkg/fixtures"
	"github.com/jrx4d/cartwheel/pkg/harness"
	"github.com/jrx4d/cartwheel/pkg/runner"
	"github.com/jrx4d/cartwheel/pkg/scenarios"
)

const shutdownGrace = 15 * time.Second

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the storefront acceptance suite and write a JSON run report.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeSuite()
	},
}

func init() {
	runCmd.Flags().String("fixtures", "", "path to the users.json fixture file")
	runCmd.Flags().String("report", "", "path for the JSON run report")
	runCmd.Flags().Bool("headless", true, "run the browser headless")

	// Flag values land in the same keys the config file uses.
	_ = viper.BindPFlag("suite.fixture_path", runCmd.Flags().Lookup("fixtures"))
	_ = viper.BindPFlag("suite.report_path", runCmd.Flags().Lookup("report"))
	_ = viper.BindPFlag("browser.headless", runCmd.Flags().Lookup("headless"))

	rootCmd.AddCommand(runCmd)
}

func executeSuite() error {
	logger := observability.GetLogger()
	defer observability.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fx, err := fixtures.Load(cfg.Suite.FixturePath)
	if err != nil {
		return fmt.Errorf("loading fixtures: %w", err)
	}

	mgr, err := browser.NewManager(ctx, logger, cfg.Browser)
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := mgr.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Browser shutdown was not clean.", zap.Error(err))
		}
	}()

	tc := harness.NewTestContext(mgr, cfg, fx, logger)
	suite := scenarios.All(fx)

	logger.Info("Executing acceptance suite.",
		zap.Int("scenarios", len(suite)),
		zap.String("base_url", cfg.Suite.BaseURL))

	report := runner.New(tc, logger).Execute(suite)

	if err := report.WriteFile(cfg.Suite.ReportPath); err != nil {
		return err
	}
	logger.Info("Run report written.",
		zap.String("path", cfg.Suite.ReportPath),
		zap.Int("total", report.Total),
		zap.Int("passed", report.Passed),
		zap.Int("failed", report.Failed))

	if !report.AllPassed() {
		return fmt.Errorf("%d of %d scenarios failed", report.Failed, report.Total)
	}
	return nil
}
