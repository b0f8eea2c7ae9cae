package admin

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"inkwell/internal/shared/biztime"
)

// Session is a time-bounded proof of prior successful authentication. The raw
// opaque token is handed to the caller exactly once; only its SHA-256 digest
// is persisted, so a store compromise cannot yield usable tokens.
type Session struct {
	id           uint
	tokenHash    string
	credentialID uint
	createdAt    time.Time
	expiresAt    time.Time
}

const sessionTokenBytes = 32

// NewSession creates a session for the given credential with a fixed
// (non-sliding) TTL and returns the raw token alongside it.
func NewSession(credentialID uint, ttl time.Duration) (*Session, string, error) {
	if credentialID == 0 {
		return nil, "", fmt.Errorf("credential ID is required")
	}
	if ttl <= 0 {
		return nil, "", fmt.Errorf("session TTL must be positive")
	}

	rawToken, err := generateSessionToken()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	now := biztime.NowUTC()
	return &Session{
		tokenHash:    HashSessionToken(rawToken),
		credentialID: credentialID,
		createdAt:    now,
		expiresAt:    now.Add(ttl),
	}, rawToken, nil
}

func ReconstructSession(id uint, tokenHash string, credentialID uint, createdAt, expiresAt time.Time) (*Session, error) {
	if id == 0 {
		return nil, fmt.Errorf("session ID cannot be zero")
	}
	if tokenHash == "" {
		return nil, fmt.Errorf("token hash is required")
	}

	return &Session{
		id:           id,
		tokenHash:    tokenHash,
		credentialID: credentialID,
		createdAt:    createdAt,
		expiresAt:    expiresAt,
	}, nil
}

func (s *Session) ID() uint {
	return s.id
}

func (s *Session) TokenHash() string {
	return s.tokenHash
}

func (s *Session) CredentialID() uint {
	return s.credentialID
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Session) ExpiresAt() time.Time {
	return s.expiresAt
}

func (s *Session) IsExpired() bool {
	return biztime.NowUTC().After(s.expiresAt)
}

func (s *Session) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("session ID is already set")
	}
	s.id = id
	return nil
}

// HashSessionToken derives the at-rest digest of a raw session token.
func HashSessionToken(rawToken string) string {
	digest := sha256.Sum256([]byte(rawToken))
	return hex.EncodeToString(digest[:])
}

func generateSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*Session, error)
	// DeleteByTokenHash is idempotent: deleting a nonexistent session is not
	// an error.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
}
