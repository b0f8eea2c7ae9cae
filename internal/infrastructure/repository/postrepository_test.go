package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/domain/post"
	"inkwell/internal/shared/errors"
)

func mustPost(t *testing.T, slug, title string) *post.Post {
	t.Helper()
	p, err := post.NewPost(slug, title, "", "# body")
	require.NoError(t, err)
	return p
}

func TestPostCreateAndGet(t *testing.T) {
	db, provisioner := setupTestDB(t)
	repo := NewPostRepository(db, provisioner)
	ctx := context.Background()

	p := mustPost(t, "hello", "Hello")
	require.NoError(t, repo.Create(ctx, p))

	bySlug, err := repo.GetBySlug(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, p.ID(), bySlug.ID())

	byID, err := repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, "Hello", byID.Title())

	_, err = repo.GetBySlug(ctx, "missing")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestPostCreateRejectsDuplicateSlug(t *testing.T) {
	db, provisioner := setupTestDB(t)
	repo := NewPostRepository(db, provisioner)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, mustPost(t, "hello", "Hello")))
	err := repo.Create(ctx, mustPost(t, "hello", "Hello Again"))
	assert.True(t, errors.IsConflictError(err))
}

func TestPostUpdatePersistsStatusChange(t *testing.T) {
	db, provisioner := setupTestDB(t)
	repo := NewPostRepository(db, provisioner)
	ctx := context.Background()

	p := mustPost(t, "hello", "Hello")
	require.NoError(t, repo.Create(ctx, p))

	p.Publish()
	require.NoError(t, repo.Update(ctx, p))

	loaded, err := repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	assert.True(t, loaded.IsPublished())
	assert.NotNil(t, loaded.PublishedAt())
}

func TestPostListPublishedOnly(t *testing.T) {
	db, provisioner := setupTestDB(t)
	repo := NewPostRepository(db, provisioner)
	ctx := context.Background()

	draft := mustPost(t, "draft", "Draft")
	require.NoError(t, repo.Create(ctx, draft))

	published := mustPost(t, "published", "Published")
	published.Publish()
	require.NoError(t, repo.Create(ctx, published))

	publicList, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, publicList, 1)
	assert.Equal(t, "published", publicList[0].Slug())

	adminList, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, adminList, 2)
}

func TestPostListPinnedFirst(t *testing.T) {
	db, provisioner := setupTestDB(t)
	repo := NewPostRepository(db, provisioner)
	ctx := context.Background()

	ordinary := mustPost(t, "ordinary", "Ordinary")
	ordinary.Publish()
	require.NoError(t, repo.Create(ctx, ordinary))

	pinned := mustPost(t, "pinned", "Pinned")
	pinned.Publish()
	pinned.SetPinned(true)
	require.NoError(t, repo.Create(ctx, pinned))

	listed, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "pinned", listed[0].Slug())
}
