// pkg/query/wait.go
package query

import (
	"fmt"
	"time"
)

// WaitPolicy bounds a single explicit wait: the page is polled at
// PollInterval cadence until the condition holds or Timeout elapses.
type WaitPolicy struct {
	Timeout      time.Duration
	PollInterval time.Duration
}

// Validate enforces the policy invariant Timeout > PollInterval > 0.
func (p WaitPolicy) Validate() error {
	if p.PollInterval <= 0 {
		return fmt.Errorf("wait policy poll interval must be positive, got %s", p.PollInterval)
	}
	if p.Timeout <= p.PollInterval {
		return fmt.Errorf("wait policy timeout %s must exceed poll interval %s", p.Timeout, p.PollInterval)
	}
	return nil
}

// StandardPolicy returns the default policy for most interactions.
func StandardPolicy() WaitPolicy {
	return WaitPolicy{Timeout: 10 * time.Second, PollInterval: 250 * time.Millisecond}
}

// ShortPolicy returns the policy for optional, likely absent elements,
// such as the cart badge on an empty cart.
func ShortPolicy() WaitPolicy {
	return WaitPolicy{Timeout: 2 * time.Second, PollInterval: 250 * time.Millisecond}
}
