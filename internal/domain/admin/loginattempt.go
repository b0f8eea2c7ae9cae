package admin

import (
	"context"
	"fmt"
	"time"
)

// LockoutPolicy configures the sliding-window failure counter.
type LockoutPolicy struct {
	MaxFailures int
	Window      time.Duration
	Duration    time.Duration
}

func DefaultLockoutPolicy() LockoutPolicy {
	return LockoutPolicy{
		MaxFailures: 5,
		Window:      10 * time.Minute,
		Duration:    15 * time.Minute,
	}
}

// LoginAttempt tracks failed logins per hashed client identifier. It is
// store-backed because the serving environment may not retain process state
// between requests; lock and window expiry are computed lazily against "now".
//
// States: clear (no record), counting (failures within window), locked.
type LoginAttempt struct {
	clientHash    string
	failedCount   int
	lastAttemptAt time.Time
	lockedUntil   *time.Time
}

func NewLoginAttempt(clientHash string, now time.Time) (*LoginAttempt, error) {
	if clientHash == "" {
		return nil, fmt.Errorf("client hash is required")
	}
	return &LoginAttempt{
		clientHash:    clientHash,
		lastAttemptAt: now,
	}, nil
}

func ReconstructLoginAttempt(clientHash string, failedCount int, lastAttemptAt time.Time, lockedUntil *time.Time) (*LoginAttempt, error) {
	if clientHash == "" {
		return nil, fmt.Errorf("client hash is required")
	}
	return &LoginAttempt{
		clientHash:    clientHash,
		failedCount:   failedCount,
		lastAttemptAt: lastAttemptAt,
		lockedUntil:   lockedUntil,
	}, nil
}

func (a *LoginAttempt) ClientHash() string {
	return a.clientHash
}

func (a *LoginAttempt) FailedCount() int {
	return a.failedCount
}

func (a *LoginAttempt) LastAttemptAt() time.Time {
	return a.lastAttemptAt
}

func (a *LoginAttempt) LockedUntil() *time.Time {
	return a.lockedUntil
}

// IsLocked reports whether a lockout is active at the given instant.
func (a *LoginAttempt) IsLocked(now time.Time) bool {
	return a.lockedUntil != nil && now.Before(*a.lockedUntil)
}

// RetrySeconds returns the whole seconds remaining until the lock expires,
// at least 1 while locked, 0 otherwise.
func (a *LoginAttempt) RetrySeconds(now time.Time) int {
	if !a.IsLocked(now) {
		return 0
	}
	secs := int(a.lockedUntil.Sub(now).Seconds())
	if secs < 1 {
		secs = 1
	}
	return secs
}

// RegisterFailure records a failed verification. A record whose last attempt
// fell outside the sliding window restarts counting from zero; reaching the
// threshold arms the lockout.
func (a *LoginAttempt) RegisterFailure(now time.Time, policy LockoutPolicy) {
	if now.Sub(a.lastAttemptAt) > policy.Window {
		a.failedCount = 0
		a.lockedUntil = nil
	}
	a.failedCount++
	a.lastAttemptAt = now
	if a.failedCount >= policy.MaxFailures {
		until := now.Add(policy.Duration)
		a.lockedUntil = &until
	}
}

type LoginAttemptRepository interface {
	GetByClientHash(ctx context.Context, clientHash string) (*LoginAttempt, error)
	// Save upserts the record. Two concurrent failed attempts from the same
	// identifier may undercount by one; the lockout is a deterrent, not a
	// hard boundary.
	Save(ctx context.Context, attempt *LoginAttempt) error
	Delete(ctx context.Context, clientHash string) error
}
