// Package e2e drives the real storefront through the full harness stack.
// The tests talk to the live site, so they only run when CARTWHEEL_E2E=1.
package e2e

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jrx4d/cartwheel/internal/config"
	"github.com/jrx4d/cartwheel/internal/observability"
	"github.com/jrx4d/cartwheel/pkg/browser"
	"github.com/jrx4d/cartwheel/pkg/fixtures"
	"github.com/jrx4d/cartwheel/pkg/harness"
)

var (
	mgr *browser.Manager
	tc  *harness.TestContext
)

// TestMain launches one browser process shared by every test in the
// package; each test still gets its own isolated session (tab).
func TestMain(m *testing.M) {
	if os.Getenv("CARTWHEEL_E2E") != "1" {
		// Individual tests skip themselves with a message.
		os.Exit(m.Run())
	}

	cfg := config.NewDefaultConfig()
	observability.InitializeLogger(cfg.Logger)
	logger := observability.GetLogger()

	fx, err := fixtures.Load("../data/users.json")
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load fixtures:", err)
		os.Exit(1)
	}

	mgr, err = browser.NewManager(context.Background(), logger, cfg.Browser)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot launch browser:", err)
		os.Exit(1)
	}

	tc = harness.NewTestContext(mgr, cfg, fx, logger)

	code := m.Run()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	_ = mgr.Shutdown(shutdownCtx)
	cancel()
	observability.Sync()

	os.Exit(code)
}

// requireE2E gates individual tests on the environment switch.
func requireE2E(t *testing.T) {
	t.Helper()
	if os.Getenv("CARTWHEEL_E2E") != "1" {
		t.Skip("set CARTWHEEL_E2E=1 to run browser tests against the live site")
	}
}
