// pkg/browser/manager.go
package browser

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/jrx4d/cartwheel/internal/config"
)

// SessionAcquisitionError reports that the browser process or a fresh tab
// could not be started. It is fatal for the affected test; there is no
// retry.
type SessionAcquisitionError struct {
	Reason string
	Err    error
}

func (e *SessionAcquisitionError) Error() string {
	return fmt.Sprintf("session acquisition failed: %s: %v", e.Reason, e.Err)
}

func (e *SessionAcquisitionError) Unwrap() error { return e.Err }

// Manager owns the browser process. Every test session is a fresh,
// isolated tab derived from the manager's allocator context; sessions are
// never pooled or reused across tests.
type Manager struct {
	logger *zap.Logger
	cfg    config.BrowserConfig

	// allocatorCtx manages the entire browser process. All session
	// contexts are derived from this.
	allocatorCtx    context.Context
	allocatorCancel context.CancelFunc

	// wg tracks open sessions for a graceful shutdown.
	wg sync.WaitGroup
}

// NewManager launches the browser process and verifies it responds.
func NewManager(ctx context.Context, logger *zap.Logger, cfg config.BrowserConfig) (*Manager, error) {
	m := &Manager{
		logger: logger.Named("browser_manager"),
		cfg:    cfg,
	}
	if err := m.launchBrowser(ctx); err != nil {
		return nil, &SessionAcquisitionError{Reason: "browser launch", Err: err}
	}
	return m, nil
}

// launchBrowser prepares allocator options and starts the browser process.
func (m *Manager) launchBrowser(ctx context.Context) error {
	m.logger.Info("Initializing browser allocator...")

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, m.buildAllocatorOptions()...)
	m.allocatorCtx = allocCtx
	m.allocatorCancel = cancel

	// Probe with a temporary tab to confirm the browser is alive.
	probeCtx, cancelProbe := context.WithTimeout(allocCtx, 30*time.Second)
	probeCtx, cancelProbeTab := chromedp.NewContext(probeCtx)
	defer cancelProbeTab()
	defer cancelProbe()

	if err := chromedp.Run(probeCtx, chromedp.Navigate("about:blank")); err != nil {
		m.allocatorCancel()
		return fmt.Errorf("browser failed to start or respond: %w", err)
	}

	m.logger.Info("Browser launched successfully and is responsive.")
	return nil
}

// buildAllocatorOptions assembles the flags for a clean, prompt free
// browser instance: maximized viewport, no password manager or autofill
// bubbles, no notification prompts.
func (m *Manager) buildAllocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)

	opts = append(opts,
		chromedp.Flag("headless", m.cfg.Headless),
		chromedp.Flag("ignore-certificate-errors", m.cfg.IgnoreTLSErrors),
		chromedp.Flag("disable-gpu", m.cfg.Headless),
		chromedp.Flag("disable-extensions", true),
		// Keep the page free of interfering chrome UI: notification
		// prompts, save-password bubbles and autofill dropdowns would sit
		// on top of the elements under test.
		chromedp.Flag("disable-notifications", true),
		chromedp.Flag("disable-save-password-bubble", true),
		chromedp.Flag("disable-features", "PasswordLeakDetection,AutofillServerCommunication,TranslateUI"),
		chromedp.WindowSize(m.cfg.WindowWidth, m.cfg.WindowHeight),
	)
	if !m.cfg.Headless {
		opts = append(opts, chromedp.Flag("start-maximized", true))
	}

	// Custom arguments from configuration.
	for _, arg := range m.cfg.Args {
		parts := strings.SplitN(arg, "=", 2)
		flagName := strings.TrimPrefix(parts[0], "--")
		if len(parts) == 2 {
			opts = append(opts, chromedp.Flag(flagName, parts[1]))
		} else {
			opts = append(opts, chromedp.Flag(flagName, true))
		}
	}

	// Flags required for running inside containers.
	if runtime.GOOS == "linux" {
		opts = append(opts,
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.Flag("disable-setuid-sandbox", true),
		)
	}

	return opts
}

// NewSession creates a fresh, isolated browser tab for exactly one test.
func (m *Manager) NewSession() (*Session, error) {
	s, err := newSession(m.allocatorCtx, m.logger)
	if err != nil {
		return nil, err
	}
	m.wg.Add(1)
	s.onClose = m.wg.Done
	return s, nil
}

// Shutdown waits for open sessions to close and terminates the browser
// process, respecting the caller's deadline.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.logger.Info("Browser manager shutdown initiated. Waiting for open sessions...")

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.logger.Info("All sessions have closed.")
	case <-ctx.Done():
		m.logger.Warn("Shutdown deadline exceeded. Forcing browser termination.", zap.Error(ctx.Err()))
	}

	if m.allocatorCancel != nil {
		m.allocatorCancel()
		<-m.allocatorCtx.Done()
	}
	return nil
}
