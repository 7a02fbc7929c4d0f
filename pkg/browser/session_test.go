// pkg/browser/session_test.go
package browser

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestSession(onClose func()) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		id:        "0f8fad5b-d9cb-469f-a165-70867728950e",
		logger:    zap.NewNop(),
		startedAt: time.Now(),
		tabCtx:    ctx,
		tabCancel: cancel,
		onClose:   onClose,
	}
}

func TestSessionAccessors(t *testing.T) {
	s := newTestSession(nil)
	defer s.Close()

	assert.Equal(t, "0f8fad5b-d9cb-469f-a165-70867728950e", s.ID())
	assert.False(t, s.StartedAt().IsZero())
	assert.False(t, s.StartedAt().After(time.Now()))
	assert.NoError(t, s.Context().Err(), "tab context must be live before Close")
}

func TestSessionCloseExactlyOnce(t *testing.T) {
	closes := 0
	s := newTestSession(func() { closes++ })

	s.Close()
	s.Close()
	s.Close()

	assert.Equal(t, 1, closes, "onClose must fire exactly once")
	assert.Error(t, s.Context().Err(), "tab context must be cancelled after Close")
}
