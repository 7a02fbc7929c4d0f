// pkg/browser/session.go
package browser

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is one isolated browser tab, exclusively owned by a single test
// case from acquisition to teardown. It is never shared or reused.
type Session struct {
	id        string
	logger    *zap.Logger
	startedAt time.Time

	tabCtx    context.Context
	tabCancel context.CancelFunc

	onClose func()
	closed  bool
	mu      sync.Mutex
}

// newSession opens a fresh tab under the manager's allocator and verifies
// it is usable.
func newSession(allocCtx context.Context, logger *zap.Logger) (*Session, error) {
	id := uuid.New().String()

	tabCtx, tabCancel := chromedp.NewContext(allocCtx)

	// Materialize the tab now so acquisition failures surface in setup,
	// not in the middle of a scenario.
	if err := chromedp.Run(tabCtx, chromedp.Navigate("about:blank")); err != nil {
		tabCancel()
		return nil, &SessionAcquisitionError{Reason: "tab creation", Err: err}
	}

	s := &Session{
		id:        id,
		logger:    logger.Named("session").With(zap.String("session_id", id[:8])),
		startedAt: time.Now(),
		tabCtx:    tabCtx,
		tabCancel: tabCancel,
	}
	s.logger.Info("Browser session acquired.")
	return s, nil
}

// ID returns the unique identifier for this session.
func (s *Session) ID() string { return s.id }

// Logger returns the session scoped logger.
func (s *Session) Logger() *zap.Logger { return s.logger }

// StartedAt returns the acquisition time of the session.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Context returns the tab context all driver calls run against.
func (s *Session) Context() context.Context { return s.tabCtx }

// Navigate loads the given URL and blocks until the navigation commits.
// Any element handles resolved before this call are invalid afterwards.
func (s *Session) Navigate(url string) error {
	if err := chromedp.Run(s.tabCtx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	return nil
}

// CurrentURL returns the document location of the tab.
func (s *Session) CurrentURL() (string, error) {
	var url string
	if err := chromedp.Run(s.tabCtx, chromedp.Location(&url)); err != nil {
		return "", fmt.Errorf("read current url: %w", err)
	}
	return url, nil
}

// Screenshot captures the full viewport as PNG bytes.
func (s *Session) Screenshot() ([]byte, error) {
	var buf []byte
	if err := chromedp.Run(s.tabCtx, chromedp.CaptureScreenshot(&buf)); err != nil {
		return nil, fmt.Errorf("capture screenshot: %w", err)
	}
	return buf, nil
}

// Close releases the tab exactly once. Safe to call on every exit path.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	s.tabCancel()
	if s.onClose != nil {
		s.onClose()
	}
	s.logger.Info("Browser session released.",
		zap.Duration("lifetime", time.Since(s.startedAt)))
}
