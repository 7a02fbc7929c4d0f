// pkg/harness/artifacts.go
package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jrx4d/cartwheel/pkg/browser"
)

// screenshotTimeLayout names failure screenshots with a sortable,
// filesystem safe timestamp.
const screenshotTimeLayout = "2006-01-02_15-04-05"

// ArtifactRecorder writes failure diagnostics: one PNG per failing test
// plus a structured log entry. No artifact is produced on success.
type ArtifactRecorder struct {
	dir    string
	logger *zap.Logger
}

// NewArtifactRecorder creates a recorder rooted at dir. The directory is
// created lazily on the first failure.
func NewArtifactRecorder(dir string, logger *zap.Logger) *ArtifactRecorder {
	return &ArtifactRecorder{
		dir:    dir,
		logger: logger.Named("artifacts"),
	}
}

// CaptureFailure saves a screenshot named by test identifier and timestamp
// and writes a failure log entry. Capture problems are logged, never
// raised: diagnostics must not mask the original failure.
func (r *ArtifactRecorder) CaptureFailure(sess *browser.Session, testName string, o *Outcome) {
	log := r.logger.With(zap.String("test", testName))

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		log.Warn("cannot create screenshot directory", zap.String("dir", r.dir), zap.Error(err))
		return
	}

	png, err := sess.Screenshot()
	if err != nil {
		log.Warn("failed to capture failure screenshot", zap.Error(err))
		return
	}

	name := fmt.Sprintf("%s_%s.png", sanitizeName(testName), time.Now().Format(screenshotTimeLayout))
	path := filepath.Join(r.dir, name)
	if err := os.WriteFile(path, png, 0o644); err != nil {
		log.Warn("failed to write failure screenshot", zap.String("path", path), zap.Error(err))
		return
	}

	log.Error("test failed, screenshot captured",
		zap.String("screenshot", path),
		zap.Strings("findings", o.Findings),
		zap.Duration("duration", o.Duration),
	)
}

// sanitizeName maps a scenario name onto a safe file name component.
func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, name)
}
