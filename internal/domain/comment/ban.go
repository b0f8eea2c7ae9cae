package comment

import (
	"fmt"
	"time"

	"inkwell/internal/shared/biztime"
)

// Ban permanently blocks a hashed client identifier from commenting. Bans are
// created by operator action and only consulted, never mutated, by the
// submission pipeline.
type Ban struct {
	id         uint
	clientHash string
	reason     string
	createdAt  time.Time
}

func NewBan(clientHash, reason string) (*Ban, error) {
	if clientHash == "" {
		return nil, fmt.Errorf("client hash is required")
	}
	return &Ban{
		clientHash: clientHash,
		reason:     reason,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructBan(id uint, clientHash, reason string, createdAt time.Time) (*Ban, error) {
	if id == 0 {
		return nil, fmt.Errorf("ban ID cannot be zero")
	}
	if clientHash == "" {
		return nil, fmt.Errorf("client hash is required")
	}
	return &Ban{
		id:         id,
		clientHash: clientHash,
		reason:     reason,
		createdAt:  createdAt,
	}, nil
}

func (b *Ban) ID() uint {
	return b.id
}

func (b *Ban) ClientHash() string {
	return b.clientHash
}

func (b *Ban) Reason() string {
	return b.reason
}

func (b *Ban) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Ban) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("ban ID is already set")
	}
	b.id = id
	return nil
}
