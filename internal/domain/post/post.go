package post

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"inkwell/internal/shared/biztime"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

func NormalizeStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusDraft, StatusPublished, StatusArchived:
		return Status(value), nil
	}
	return "", fmt.Errorf("unknown post status %q", value)
}

// Post is a published entry. Only the fields the comment pipeline and the
// admin console need are modeled; media attachments live elsewhere.
type Post struct {
	id          string
	slug        string
	title       string
	summary     string
	contentMD   string
	status      Status
	pinned      bool
	publishedAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPost(slug, title, summary, contentMD string) (*Post, error) {
	if slug == "" {
		return nil, fmt.Errorf("slug is required")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	now := biztime.NowUTC()
	return &Post{
		id:        uuid.NewString(),
		slug:      slug,
		title:     title,
		summary:   summary,
		contentMD: contentMD,
		status:    StatusDraft,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructPost(id, slug, title, summary, contentMD string, status Status, pinned bool, publishedAt *time.Time, createdAt, updatedAt time.Time) (*Post, error) {
	if id == "" {
		return nil, fmt.Errorf("post ID is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("slug is required")
	}

	return &Post{
		id:          id,
		slug:        slug,
		title:       title,
		summary:     summary,
		contentMD:   contentMD,
		status:      status,
		pinned:      pinned,
		publishedAt: publishedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Post) ID() string            { return p.id }
func (p *Post) Slug() string          { return p.slug }
func (p *Post) Title() string         { return p.title }
func (p *Post) Summary() string       { return p.summary }
func (p *Post) ContentMD() string     { return p.contentMD }
func (p *Post) Status() Status        { return p.status }
func (p *Post) Pinned() bool          { return p.pinned }
func (p *Post) PublishedAt() *time.Time { return p.publishedAt }
func (p *Post) CreatedAt() time.Time  { return p.createdAt }
func (p *Post) UpdatedAt() time.Time  { return p.updatedAt }

func (p *Post) IsPublished() bool {
	return p.status == StatusPublished
}

func (p *Post) UpdateContent(title, summary, contentMD string) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	p.title = title
	p.summary = summary
	p.contentMD = contentMD
	p.updatedAt = biztime.NowUTC()
	return nil
}

func (p *Post) SetPinned(pinned bool) {
	p.pinned = pinned
	p.updatedAt = biztime.NowUTC()
}

func (p *Post) Publish() {
	now := biztime.NowUTC()
	p.status = StatusPublished
	if p.publishedAt == nil {
		p.publishedAt = &now
	}
	p.updatedAt = now
}

func (p *Post) Unpublish() {
	p.status = StatusDraft
	p.updatedAt = biztime.NowUTC()
}

type Repository interface {
	Create(ctx context.Context, post *Post) error
	Update(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id string) (*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	List(ctx context.Context, publishedOnly bool) ([]*Post, error)
}
