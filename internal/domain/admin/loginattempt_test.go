package admin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() LockoutPolicy {
	return LockoutPolicy{
		MaxFailures: 3,
		Window:      10 * time.Minute,
		Duration:    15 * time.Minute,
	}
}

func TestNewLoginAttempt(t *testing.T) {
	now := time.Now().UTC()

	attempt, err := NewLoginAttempt("hash-a", now)
	require.NoError(t, err)
	assert.Equal(t, "hash-a", attempt.ClientHash())
	assert.Equal(t, 0, attempt.FailedCount())
	assert.False(t, attempt.IsLocked(now))

	_, err = NewLoginAttempt("", now)
	assert.Error(t, err)
}

func TestRegisterFailureLocksAtThreshold(t *testing.T) {
	now := time.Now().UTC()
	policy := testPolicy()

	attempt, err := NewLoginAttempt("hash-a", now)
	require.NoError(t, err)

	attempt.RegisterFailure(now, policy)
	attempt.RegisterFailure(now.Add(time.Second), policy)
	assert.False(t, attempt.IsLocked(now.Add(2*time.Second)))
	assert.Equal(t, 2, attempt.FailedCount())

	attempt.RegisterFailure(now.Add(2*time.Second), policy)
	assert.True(t, attempt.IsLocked(now.Add(3*time.Second)))
	require.NotNil(t, attempt.LockedUntil())
	assert.Equal(t, now.Add(2*time.Second).Add(policy.Duration), *attempt.LockedUntil())
}

func TestRegisterFailureWindowReset(t *testing.T) {
	now := time.Now().UTC()
	policy := testPolicy()

	attempt, err := NewLoginAttempt("hash-a", now)
	require.NoError(t, err)

	attempt.RegisterFailure(now, policy)
	attempt.RegisterFailure(now.Add(time.Minute), policy)
	assert.Equal(t, 2, attempt.FailedCount())

	// Next failure lands outside the window; counting restarts.
	late := now.Add(time.Minute).Add(policy.Window).Add(time.Second)
	attempt.RegisterFailure(late, policy)
	assert.Equal(t, 1, attempt.FailedCount())
	assert.False(t, attempt.IsLocked(late))
}

func TestLockExpires(t *testing.T) {
	now := time.Now().UTC()
	policy := testPolicy()

	attempt, err := NewLoginAttempt("hash-a", now)
	require.NoError(t, err)
	for i := 0; i < policy.MaxFailures; i++ {
		attempt.RegisterFailure(now, policy)
	}
	require.True(t, attempt.IsLocked(now))

	after := now.Add(policy.Duration).Add(time.Second)
	assert.False(t, attempt.IsLocked(after))
	assert.Equal(t, 0, attempt.RetrySeconds(after))
}

func TestRetrySeconds(t *testing.T) {
	now := time.Now().UTC()
	policy := testPolicy()

	attempt, err := NewLoginAttempt("hash-a", now)
	require.NoError(t, err)
	for i := 0; i < policy.MaxFailures; i++ {
		attempt.RegisterFailure(now, policy)
	}

	assert.Equal(t, int(policy.Duration.Seconds()), attempt.RetrySeconds(now))

	// Sub-second remainder still reports at least one second.
	almostOver := now.Add(policy.Duration).Add(-500 * time.Millisecond)
	assert.Equal(t, 1, attempt.RetrySeconds(almostOver))
}
