package admin

import (
	"context"
	"fmt"
	"time"

	"inkwell/internal/shared/biztime"
)

// Credential is a stored identifier/password-hash pair used to authenticate
// the site operator. It is created once at bootstrap and never updated by
// normal flows; the plaintext password is hashed immediately and never kept.
type Credential struct {
	id           uint
	identifier   string
	passwordHash string
	passwordSalt string
	createdAt    time.Time
}

// DefaultIdentifier names the bootstrap credential when the deployment
// supplies a single shared admin secret.
const DefaultIdentifier = "admin"

func NewCredential(identifier, passwordHash, passwordSalt string) (*Credential, error) {
	if identifier == "" {
		return nil, fmt.Errorf("identifier is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if passwordSalt == "" {
		return nil, fmt.Errorf("password salt is required")
	}

	return &Credential{
		identifier:   identifier,
		passwordHash: passwordHash,
		passwordSalt: passwordSalt,
		createdAt:    biztime.NowUTC(),
	}, nil
}

func ReconstructCredential(id uint, identifier, passwordHash, passwordSalt string, createdAt time.Time) (*Credential, error) {
	if id == 0 {
		return nil, fmt.Errorf("credential ID cannot be zero")
	}
	if identifier == "" {
		return nil, fmt.Errorf("identifier is required")
	}

	return &Credential{
		id:           id,
		identifier:   identifier,
		passwordHash: passwordHash,
		passwordSalt: passwordSalt,
		createdAt:    createdAt,
	}, nil
}

func (c *Credential) ID() uint {
	return c.id
}

func (c *Credential) Identifier() string {
	return c.identifier
}

func (c *Credential) PasswordHash() string {
	return c.passwordHash
}

func (c *Credential) PasswordSalt() string {
	return c.passwordSalt
}

func (c *Credential) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Credential) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("credential ID is already set")
	}
	c.id = id
	return nil
}

// PasswordHasher derives and verifies password hashes. Verify must run the
// full derivation regardless of match so that cost is fixed per attempt.
type PasswordHasher interface {
	Hash(password string) (hash string, salt string, err error)
	Verify(password, hash, salt string) error
}

type CredentialRepository interface {
	Create(ctx context.Context, credential *Credential) error
	GetAll(ctx context.Context) ([]*Credential, error)
	GetByIdentifier(ctx context.Context, identifier string) (*Credential, error)
	Count(ctx context.Context) (int64, error)
}
