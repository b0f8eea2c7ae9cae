package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"inkwell/internal/domain/comment"
	"inkwell/internal/domain/post"
	"inkwell/internal/infrastructure/repository"
	"inkwell/internal/infrastructure/schema"
	"inkwell/internal/shared/config"
	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
)

// stubVerifier satisfies the captcha verifier contract without network calls.
type stubVerifier struct {
	enabled bool
	ok      bool
	err     error
}

func (s *stubVerifier) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	return s.ok, s.err
}

func (s *stubVerifier) Enabled() bool { return s.enabled }

type submitFixture struct {
	commentRepo comment.Repository
	banRepo     comment.BanRepository
	postRepo    post.Repository
	uc          *SubmitCommentUseCase
}

func newSubmitFixture(t *testing.T, verifier *stubVerifier, cfg config.CommentsConfig) *submitFixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	log := logger.NewLogger()
	provisioner := schema.NewProvisioner(db, true, log)
	commentRepo := repository.NewCommentRepository(db, provisioner)
	banRepo := repository.NewCommentBanRepository(db, provisioner)
	postRepo := repository.NewPostRepository(db, provisioner)

	f := &submitFixture{
		commentRepo: commentRepo,
		banRepo:     banRepo,
		postRepo:    postRepo,
		uc:          NewSubmitCommentUseCase(commentRepo, banRepo, postRepo, verifier, cfg, log),
	}
	f.seedPost(t, "hello", true)
	return f
}

func (f *submitFixture) seedPost(t *testing.T, slug string, published bool) {
	t.Helper()
	p, err := post.NewPost(slug, "Hello", "", "body")
	require.NoError(t, err)
	if published {
		p.Publish()
	}
	require.NoError(t, f.postRepo.Create(context.Background(), p))
}

func testCommentsConfig() config.CommentsConfig {
	return config.CommentsConfig{
		RequireReview:    false,
		MaxBodyLength:    2000,
		ReviewBodyLength: 500,
		Throttle:         config.ThrottleConfig{Limit: 3, WindowMinutes: 10},
	}
}

func submitCmd(body string) SubmitCommentCommand {
	return SubmitCommentCommand{
		TargetKey:   "posts/hello",
		DisplayName: "Ada",
		Body:        body,
		ClientHash:  "hash-a",
	}
}

func TestSubmitCommentPublishesShortCleanBody(t *testing.T) {
	f := newSubmitFixture(t, &stubVerifier{}, testCommentsConfig())

	result, err := f.uc.Execute(context.Background(), submitCmd("what a lovely post"))
	require.NoError(t, err)
	assert.False(t, result.Pending)
	assert.Equal(t, comment.StatusVisible, result.Comment.Status())
}

func TestSubmitCommentRejectsUnknownPost(t *testing.T) {
	f := newSubmitFixture(t, &stubVerifier{}, testCommentsConfig())

	cmd := submitCmd("hello")
	cmd.TargetKey = "posts/no-such-post"
	_, err := f.uc.Execute(context.Background(), cmd)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestSubmitCommentRejectsUnpublishedPost(t *testing.T) {
	f := newSubmitFixture(t, &stubVerifier{}, testCommentsConfig())
	f.seedPost(t, "draft-entry", false)

	cmd := submitCmd("hello")
	cmd.TargetKey = "posts/draft-entry"
	_, err := f.uc.Execute(context.Background(), cmd)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestSubmitCommentRoutesToModeration(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"body with link", "check this out https://example.com/spam"},
		{"body with bare www link", "go to www.example.com now"},
		{"long body", strings.Repeat("a", 501)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSubmitFixture(t, &stubVerifier{}, testCommentsConfig())

			result, err := f.uc.Execute(context.Background(), submitCmd(tt.body))
			require.NoError(t, err)
			assert.True(t, result.Pending)
			assert.Equal(t, comment.StatusPending, result.Comment.Status())
		})
	}
}

func TestSubmitCommentReviewThresholdCountsRunes(t *testing.T) {
	f := newSubmitFixture(t, &stubVerifier{}, testCommentsConfig())

	// 400 characters but well over 500 bytes; stays below the threshold.
	result, err := f.uc.Execute(context.Background(), submitCmd(strings.Repeat("é", 400)))
	require.NoError(t, err)
	assert.False(t, result.Pending)

	result, err = f.uc.Execute(context.Background(), submitCmd(strings.Repeat("é", 501)))
	require.NoError(t, err)
	assert.True(t, result.Pending)
}

func TestSubmitCommentRequireReviewForcesPending(t *testing.T) {
	cfg := testCommentsConfig()
	cfg.RequireReview = true
	f := newSubmitFixture(t, &stubVerifier{}, cfg)

	result, err := f.uc.Execute(context.Background(), submitCmd("short and clean"))
	require.NoError(t, err)
	assert.True(t, result.Pending)
}

func TestSubmitCommentRejectsBannedClient(t *testing.T) {
	f := newSubmitFixture(t, &stubVerifier{}, testCommentsConfig())
	ctx := context.Background()

	ban, err := comment.NewBan("hash-a", "spam")
	require.NoError(t, err)
	require.NoError(t, f.banRepo.Create(ctx, ban))

	_, err = f.uc.Execute(ctx, submitCmd("hello"))
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeBlocked))
}

func TestSubmitCommentThrottle(t *testing.T) {
	f := newSubmitFixture(t, &stubVerifier{}, testCommentsConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.uc.Execute(ctx, submitCmd("hello there"))
		require.NoError(t, err)
	}

	_, err := f.uc.Execute(ctx, submitCmd("one too many"))
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeThrottleExceeded))

	// A different identifier is unaffected.
	cmd := submitCmd("different client")
	cmd.ClientHash = "hash-b"
	_, err = f.uc.Execute(ctx, cmd)
	assert.NoError(t, err)
}

func TestSubmitCommentWithoutIdentifierSkipsThrottle(t *testing.T) {
	f := newSubmitFixture(t, &stubVerifier{}, testCommentsConfig())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		cmd := submitCmd("anonymous submission")
		cmd.ClientHash = ""
		_, err := f.uc.Execute(ctx, cmd)
		require.NoError(t, err)
	}
}

func TestSubmitCommentCaptcha(t *testing.T) {
	t.Run("token required when enabled", func(t *testing.T) {
		f := newSubmitFixture(t, &stubVerifier{enabled: true, ok: true}, testCommentsConfig())

		_, err := f.uc.Execute(context.Background(), submitCmd("hello"))
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeVerificationRequired))
	})

	t.Run("failed verification rejected", func(t *testing.T) {
		f := newSubmitFixture(t, &stubVerifier{enabled: true, ok: false}, testCommentsConfig())

		cmd := submitCmd("hello")
		cmd.CaptchaToken = "token"
		_, err := f.uc.Execute(context.Background(), cmd)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeVerificationFailed))
	})

	t.Run("valid token passes", func(t *testing.T) {
		f := newSubmitFixture(t, &stubVerifier{enabled: true, ok: true}, testCommentsConfig())

		cmd := submitCmd("hello")
		cmd.CaptchaToken = "token"
		result, err := f.uc.Execute(context.Background(), cmd)
		require.NoError(t, err)
		assert.False(t, result.Pending)
	})

	t.Run("disabled verifier skips check entirely", func(t *testing.T) {
		f := newSubmitFixture(t, &stubVerifier{enabled: false}, testCommentsConfig())

		result, err := f.uc.Execute(context.Background(), submitCmd("hello"))
		require.NoError(t, err)
		assert.NotNil(t, result)
	})
}

func TestSubmitCommentValidation(t *testing.T) {
	f := newSubmitFixture(t, &stubVerifier{}, testCommentsConfig())
	ctx := context.Background()

	cmd := submitCmd("hello")
	cmd.TargetKey = ""
	_, err := f.uc.Execute(ctx, cmd)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))

	cmd = submitCmd("")
	_, err = f.uc.Execute(ctx, cmd)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))

	cmd = submitCmd(strings.Repeat("a", 2001))
	_, err = f.uc.Execute(ctx, cmd)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}
