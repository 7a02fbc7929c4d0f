// pkg/query/wait_test.go
package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitPolicyValidate(t *testing.T) {
	cases := []struct {
		name    string
		policy  WaitPolicy
		wantErr string
	}{
		{
			name:   "valid policy",
			policy: WaitPolicy{Timeout: 10 * time.Second, PollInterval: 250 * time.Millisecond},
		},
		{
			name:    "zero poll interval",
			policy:  WaitPolicy{Timeout: 10 * time.Second, PollInterval: 0},
			wantErr: "poll interval must be positive",
		},
		{
			name:    "negative poll interval",
			policy:  WaitPolicy{Timeout: 10 * time.Second, PollInterval: -time.Second},
			wantErr: "poll interval must be positive",
		},
		{
			name:    "timeout equal to poll interval",
			policy:  WaitPolicy{Timeout: 250 * time.Millisecond, PollInterval: 250 * time.Millisecond},
			wantErr: "must exceed poll interval",
		},
		{
			name:    "timeout below poll interval",
			policy:  WaitPolicy{Timeout: 100 * time.Millisecond, PollInterval: 250 * time.Millisecond},
			wantErr: "must exceed poll interval",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.policy.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestPolicyPresets(t *testing.T) {
	standard := StandardPolicy()
	assert.Equal(t, 10*time.Second, standard.Timeout)
	assert.Equal(t, 250*time.Millisecond, standard.PollInterval)
	assert.NoError(t, standard.Validate())

	short := ShortPolicy()
	assert.Equal(t, 2*time.Second, short.Timeout)
	assert.Equal(t, 250*time.Millisecond, short.PollInterval)
	assert.NoError(t, short.Validate())

	assert.Less(t, short.Timeout, standard.Timeout,
		"the short preset exists to give up quickly on optional elements")
}
