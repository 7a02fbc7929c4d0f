// pkg/harness/context.go
package harness

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jrx4d/cartwheel/internal/config"
	"github.com/jrx4d/cartwheel/pkg/browser"
	"github.com/jrx4d/cartwheel/pkg/fixtures"
	"github.com/jrx4d/cartwheel/pkg/pages"
	"github.com/jrx4d/cartwheel/pkg/query"
)

// TestContext owns the per-test session lifecycle: acquisition, optional
// pre-auth login, and teardown with failure-only artifact capture. One
// TestContext serves a whole run; each test gets its own fresh session.
type TestContext struct {
	mgr       *browser.Manager
	cfg       *config.Config
	fixtures  *fixtures.Set
	logger    *zap.Logger
	artifacts *ArtifactRecorder
}

// NewTestContext wires the lifecycle over an already launched browser
// manager and an already loaded, immutable fixture set.
func NewTestContext(mgr *browser.Manager, cfg *config.Config, fx *fixtures.Set, logger *zap.Logger) *TestContext {
	return &TestContext{
		mgr:       mgr,
		cfg:       cfg,
		fixtures:  fx,
		logger:    logger.Named("harness"),
		artifacts: NewArtifactRecorder(cfg.Artifacts.ScreenshotDir, logger),
	}
}

// Config exposes the run configuration to scenarios.
func (tc *TestContext) Config() *config.Config { return tc.cfg }

// Fixtures exposes the immutable fixture set to scenarios.
func (tc *TestContext) Fixtures() *fixtures.Set { return tc.fixtures }

// BaseURL is the storefront entry point for this run.
func (tc *TestContext) BaseURL() string { return tc.cfg.Suite.BaseURL }

// NewQuery builds the element resolver for a session, with the configured
// wait presets.
func (tc *TestContext) NewQuery(sess *browser.Session) *query.Query {
	standard := query.WaitPolicy{
		Timeout:      tc.cfg.Waits.StandardTimeout,
		PollInterval: tc.cfg.Waits.PollInterval,
	}
	short := query.WaitPolicy{
		Timeout:      tc.cfg.Waits.ShortTimeout,
		PollInterval: tc.cfg.Waits.PollInterval,
	}
	return query.New(sess.Logger(), standard, short)
}

// Setup acquires a fresh browser session for exactly one test case.
func (tc *TestContext) Setup() (*browser.Session, error) {
	sess, err := tc.mgr.NewSession()
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// SetupLoggedIn acquires a fresh session and signs in with the first
// valid-credentials fixture record before handing control to the
// scenario. The session is released on every failing path, including a
// failure inside the login itself.
func (tc *TestContext) SetupLoggedIn() (*browser.Session, error) {
	sess, err := tc.Setup()
	if err != nil {
		return nil, err
	}

	creds := tc.fixtures.ValidLogin()
	login := pages.NewLoginPage(sess, tc.NewQuery(sess), tc.cfg.Suite.BaseURL)

	if err := login.Open(); err != nil {
		sess.Close()
		return nil, fmt.Errorf("open login page: %w", err)
	}
	if err := login.Login(creds.Username, creds.Password); err != nil {
		sess.Close()
		return nil, fmt.Errorf("pre-auth login: %w", err)
	}

	sess.Logger().Info("Pre-auth login completed.", zap.String("username", creds.Username))
	return sess, nil
}

// Teardown always releases the session and, only when the outcome failed,
// captures the failure artifacts first. Release is best effort and never
// raises.
func (tc *TestContext) Teardown(sess *browser.Session, o *Outcome) {
	if sess == nil {
		return
	}
	if o != nil && !o.Passed {
		tc.artifacts.CaptureFailure(sess, o.Name, o)
	}
	sess.Close()
}
