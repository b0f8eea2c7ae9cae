package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"inkwell/internal/domain/comment"
	"inkwell/internal/infrastructure/repository"
	"inkwell/internal/infrastructure/schema"
	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
)

type moderationFixture struct {
	commentRepo comment.Repository
	banRepo     comment.BanRepository
	moderateUC  *ModerateCommentUseCase
	deleteUC    *DeleteCommentUseCase
	banUC       *BanCommenterUseCase
	listUC      *ListCommentsUseCase
	queueUC     *ListCommentsByStatusUseCase
}

func newModerationFixture(t *testing.T) *moderationFixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	log := logger.NewLogger()
	provisioner := schema.NewProvisioner(db, true, log)
	commentRepo := repository.NewCommentRepository(db, provisioner)
	banRepo := repository.NewCommentBanRepository(db, provisioner)

	return &moderationFixture{
		commentRepo: commentRepo,
		banRepo:     banRepo,
		moderateUC:  NewModerateCommentUseCase(commentRepo, log),
		deleteUC:    NewDeleteCommentUseCase(commentRepo, log),
		banUC:       NewBanCommenterUseCase(commentRepo, banRepo, log),
		listUC:      NewListCommentsUseCase(commentRepo, log),
		queueUC:     NewListCommentsByStatusUseCase(commentRepo, log),
	}
}

func seedComment(t *testing.T, repo comment.Repository, status comment.Status, clientHash string) *comment.Comment {
	t.Helper()
	c, err := comment.NewComment("posts/hello", "Ada", "a comment", nil, status, clientHash, "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func TestModerateCommentApprovesWithAlias(t *testing.T) {
	f := newModerationFixture(t)
	ctx := context.Background()
	c := seedComment(t, f.commentRepo, comment.StatusPending, "")

	moderated, err := f.moderateUC.Execute(ctx, ModerateCommentCommand{CommentID: c.ID(), Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, comment.StatusVisible, moderated.Status())

	stored, err := f.commentRepo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, comment.StatusVisible, stored.Status())
}

func TestModerateCommentRejectsUnknownStatus(t *testing.T) {
	f := newModerationFixture(t)
	c := seedComment(t, f.commentRepo, comment.StatusPending, "")

	_, err := f.moderateUC.Execute(context.Background(), ModerateCommentCommand{CommentID: c.ID(), Status: "bogus"})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestModerateMissingComment(t *testing.T) {
	f := newModerationFixture(t)

	_, err := f.moderateUC.Execute(context.Background(), ModerateCommentCommand{CommentID: "missing", Status: "visible"})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteComment(t *testing.T) {
	f := newModerationFixture(t)
	ctx := context.Background()
	c := seedComment(t, f.commentRepo, comment.StatusVisible, "")

	require.NoError(t, f.deleteUC.Execute(ctx, DeleteCommentCommand{CommentID: c.ID()}))
	_, err := f.commentRepo.GetByID(ctx, c.ID())
	assert.True(t, errors.IsNotFoundError(err))
}

func TestBanCommenterHidesCommentAndBansHash(t *testing.T) {
	f := newModerationFixture(t)
	ctx := context.Background()
	c := seedComment(t, f.commentRepo, comment.StatusVisible, "hash-a")

	require.NoError(t, f.banUC.Execute(ctx, BanCommenterCommand{CommentID: c.ID(), Reason: "spam"}))

	banned, err := f.banRepo.ExistsByClientHash(ctx, "hash-a")
	require.NoError(t, err)
	assert.True(t, banned)

	stored, err := f.commentRepo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, comment.StatusHidden, stored.Status())
}

func TestBanCommenterWithoutIdentifier(t *testing.T) {
	f := newModerationFixture(t)
	c := seedComment(t, f.commentRepo, comment.StatusVisible, "")

	err := f.banUC.Execute(context.Background(), BanCommenterCommand{CommentID: c.ID()})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestListCommentsReturnsOnlyVisible(t *testing.T) {
	f := newModerationFixture(t)
	ctx := context.Background()
	seedComment(t, f.commentRepo, comment.StatusVisible, "")
	seedComment(t, f.commentRepo, comment.StatusPending, "")
	seedComment(t, f.commentRepo, comment.StatusHidden, "")

	listed, err := f.listUC.Execute(ctx, ListCommentsCommand{TargetKey: "posts/hello"})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, comment.StatusVisible, listed[0].Status())
}

func TestListCommentsByStatusAcceptsAliases(t *testing.T) {
	f := newModerationFixture(t)
	ctx := context.Background()
	seedComment(t, f.commentRepo, comment.StatusHidden, "")

	listed, err := f.queueUC.Execute(ctx, ListCommentsByStatusCommand{Status: "rejected"})
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}
