package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostStartsAsDraft(t *testing.T) {
	p, err := NewPost("hello-world", "Hello World", "a summary", "# Hi")
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, p.Status())
	assert.False(t, p.IsPublished())
	assert.Nil(t, p.PublishedAt())
	assert.NotEmpty(t, p.ID())
}

func TestNewPostValidation(t *testing.T) {
	_, err := NewPost("", "Title", "", "")
	assert.Error(t, err)

	_, err = NewPost("slug", "", "", "")
	assert.Error(t, err)
}

func TestPublishStampsOnce(t *testing.T) {
	p, err := NewPost("hello", "Hello", "", "")
	require.NoError(t, err)

	p.Publish()
	require.True(t, p.IsPublished())
	require.NotNil(t, p.PublishedAt())
	firstStamp := *p.PublishedAt()

	p.Unpublish()
	assert.False(t, p.IsPublished())
	// The original publish time survives unpublish and republish.
	require.NotNil(t, p.PublishedAt())

	p.Publish()
	assert.Equal(t, firstStamp, *p.PublishedAt())
}

func TestUpdateContent(t *testing.T) {
	p, err := NewPost("hello", "Hello", "", "")
	require.NoError(t, err)

	require.NoError(t, p.UpdateContent("New Title", "new summary", "body"))
	assert.Equal(t, "New Title", p.Title())
	assert.Equal(t, "new summary", p.Summary())
	assert.Equal(t, "body", p.ContentMD())

	assert.Error(t, p.UpdateContent("", "", ""))
}

func TestNormalizeStatus(t *testing.T) {
	got, err := NormalizeStatus("published")
	require.NoError(t, err)
	assert.Equal(t, StatusPublished, got)

	_, err = NormalizeStatus("bogus")
	assert.Error(t, err)
}
