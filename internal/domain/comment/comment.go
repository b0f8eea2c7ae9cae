package comment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"inkwell/internal/shared/biztime"
)

const (
	MaxDisplayNameLength = 60
	MaxBodyLength        = 2000
)

// Comment is a public comment on a published post. The submitter's network
// address and user-agent are never stored verbatim, only their one-way
// digests, which is enough for throttling and ban enforcement.
type Comment struct {
	id            string
	targetKey     string
	parentID      *string
	displayName   string
	body          string
	status        Status
	clientHash    string
	userAgentHash string
	createdAt     time.Time
}

func NewComment(targetKey, displayName, body string, parentID *string, status Status, clientHash, userAgentHash string) (*Comment, error) {
	if targetKey == "" {
		return nil, fmt.Errorf("target key is required")
	}
	if displayName == "" {
		return nil, fmt.Errorf("display name is required")
	}
	if len(displayName) > MaxDisplayNameLength {
		return nil, fmt.Errorf("display name exceeds maximum length of %d characters", MaxDisplayNameLength)
	}
	if body == "" {
		return nil, fmt.Errorf("body cannot be empty")
	}
	if len(body) > MaxBodyLength {
		return nil, fmt.Errorf("body exceeds maximum length of %d characters", MaxBodyLength)
	}
	if _, err := NormalizeStatus(string(status)); err != nil {
		return nil, err
	}

	return &Comment{
		id:            uuid.NewString(),
		targetKey:     targetKey,
		parentID:      parentID,
		displayName:   displayName,
		body:          body,
		status:        status,
		clientHash:    clientHash,
		userAgentHash: userAgentHash,
		createdAt:     biztime.NowUTC(),
	}, nil
}

func ReconstructComment(id, targetKey string, parentID *string, displayName, body string, status Status, clientHash, userAgentHash string, createdAt time.Time) (*Comment, error) {
	if id == "" {
		return nil, fmt.Errorf("comment ID is required")
	}
	if targetKey == "" {
		return nil, fmt.Errorf("target key is required")
	}

	return &Comment{
		id:            id,
		targetKey:     targetKey,
		parentID:      parentID,
		displayName:   displayName,
		body:          body,
		status:        status,
		clientHash:    clientHash,
		userAgentHash: userAgentHash,
		createdAt:     createdAt,
	}, nil
}

func (c *Comment) ID() string {
	return c.id
}

func (c *Comment) TargetKey() string {
	return c.targetKey
}

func (c *Comment) ParentID() *string {
	return c.parentID
}

func (c *Comment) DisplayName() string {
	return c.displayName
}

func (c *Comment) Body() string {
	return c.body
}

func (c *Comment) Status() Status {
	return c.status
}

func (c *Comment) ClientHash() string {
	return c.clientHash
}

func (c *Comment) UserAgentHash() string {
	return c.userAgentHash
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

// ChangeStatus moves the comment to a new moderation state. The input may be
// a legacy spelling; it is normalized before assignment.
func (c *Comment) ChangeStatus(value string) error {
	status, err := NormalizeStatus(value)
	if err != nil {
		return err
	}
	c.status = status
	return nil
}
