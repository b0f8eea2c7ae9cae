package comment

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, id string) (*Comment, error)
	// ListByTarget returns comments for a target whose stored status
	// normalizes to one of the given canonical statuses, newest first.
	ListByTarget(ctx context.Context, targetKey string, statuses []Status, limit int) ([]*Comment, error)
	ListByStatus(ctx context.Context, status Status, limit int) ([]*Comment, error)
	// CountRecentByClientHash counts comments from a hashed identifier since
	// the given instant; the throttle ceiling is enforced against it.
	CountRecentByClientHash(ctx context.Context, clientHash string, since time.Time) (int64, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
}

type BanRepository interface {
	Create(ctx context.Context, ban *Ban) error
	ExistsByClientHash(ctx context.Context, clientHash string) (bool, error)
}
