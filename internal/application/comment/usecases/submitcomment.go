package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"inkwell/internal/domain/comment"
	"inkwell/internal/domain/post"
	"inkwell/internal/infrastructure/captcha"
	"inkwell/internal/shared/biztime"
	"inkwell/internal/shared/config"
	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
)

type SubmitCommentCommand struct {
	TargetKey    string
	ParentID     *string
	DisplayName  string
	Body         string
	CaptchaToken string
	// ClientHash and UserAgentHash are salted digests computed at the edge;
	// either may be empty when the underlying value was absent.
	ClientHash    string
	UserAgentHash string
	// RemoteIP is forwarded to the verification service only and never stored.
	RemoteIP string
}

type SubmitCommentResult struct {
	Comment *comment.Comment
	// Pending is true when the comment was routed to moderation instead of
	// being published immediately.
	Pending bool
}

// SubmitCommentUseCase runs the public submission pipeline: ban check,
// throttle, anti-automation verification, then routing to visible or
// pending. Checks are ordered cheapest-rejection-first.
type SubmitCommentUseCase struct {
	commentRepo    comment.Repository
	banRepo        comment.BanRepository
	postRepo       post.Repository
	verifier       captcha.Verifier
	commentsConfig config.CommentsConfig
	logger         logger.Interface
}

func NewSubmitCommentUseCase(
	commentRepo comment.Repository,
	banRepo comment.BanRepository,
	postRepo post.Repository,
	verifier captcha.Verifier,
	commentsConfig config.CommentsConfig,
	logger logger.Interface,
) *SubmitCommentUseCase {
	return &SubmitCommentUseCase{
		commentRepo:    commentRepo,
		banRepo:        banRepo,
		postRepo:       postRepo,
		verifier:       verifier,
		commentsConfig: commentsConfig,
		logger:         logger,
	}
}

func (uc *SubmitCommentUseCase) Execute(ctx context.Context, cmd SubmitCommentCommand) (*SubmitCommentResult, error) {
	if err := uc.validate(cmd); err != nil {
		return nil, err
	}

	if err := uc.checkTarget(ctx, cmd.TargetKey); err != nil {
		return nil, err
	}

	banned, err := uc.banRepo.ExistsByClientHash(ctx, cmd.ClientHash)
	if err != nil {
		return nil, fmt.Errorf("failed to check ban list: %w", err)
	}
	if banned {
		return nil, errors.NewBlockedError("commenting is not available")
	}

	if err := uc.checkThrottle(ctx, cmd.ClientHash); err != nil {
		return nil, err
	}

	if uc.verifier.Enabled() {
		if cmd.CaptchaToken == "" {
			return nil, errors.NewVerificationRequiredError()
		}
		ok, err := uc.verifier.Verify(ctx, cmd.CaptchaToken, cmd.RemoteIP)
		if err != nil {
			uc.logger.Warnw("captcha verification errored", "error", err)
			return nil, errors.NewVerificationFailedError()
		}
		if !ok {
			return nil, errors.NewVerificationFailedError()
		}
	}

	status := uc.routeStatus(cmd.Body)
	newComment, err := comment.NewComment(
		cmd.TargetKey,
		strings.TrimSpace(cmd.DisplayName),
		strings.TrimSpace(cmd.Body),
		cmd.ParentID,
		status,
		cmd.ClientHash,
		cmd.UserAgentHash,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Create(ctx, newComment); err != nil {
		uc.logger.Errorw("failed to store comment", "error", err)
		return nil, fmt.Errorf("failed to store comment: %w", err)
	}

	uc.logger.Infow("comment submitted",
		"comment_id", newComment.ID(),
		"target", newComment.TargetKey(),
		"status", newComment.Status().String(),
	)
	return &SubmitCommentResult{
		Comment: newComment,
		Pending: status == comment.StatusPending,
	}, nil
}

func (uc *SubmitCommentUseCase) validate(cmd SubmitCommentCommand) error {
	if cmd.TargetKey == "" {
		return errors.NewValidationError("target is required")
	}
	if strings.TrimSpace(cmd.DisplayName) == "" {
		return errors.NewValidationError("display name is required")
	}
	body := strings.TrimSpace(cmd.Body)
	if body == "" {
		return errors.NewValidationError("body is required")
	}
	maxBody := uc.commentsConfig.MaxBodyLength
	if maxBody <= 0 || maxBody > comment.MaxBodyLength {
		maxBody = comment.MaxBodyLength
	}
	if len(body) > maxBody {
		return errors.NewValidationError(fmt.Sprintf("body exceeds maximum length of %d characters", maxBody))
	}
	return nil
}

// checkTarget rejects submissions that do not reference a published post.
// Target keys carry an optional "posts/" prefix in front of the slug.
func (uc *SubmitCommentUseCase) checkTarget(ctx context.Context, targetKey string) error {
	slug := strings.TrimPrefix(targetKey, "posts/")
	target, err := uc.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewValidationError("post not available")
		}
		return fmt.Errorf("failed to resolve comment target: %w", err)
	}
	if !target.IsPublished() {
		return errors.NewValidationError("post not available")
	}
	return nil
}

// checkThrottle enforces the per-identifier submission ceiling. Submissions
// without a derivable identifier pass: failing them would punish privacy
// proxies more than abusers.
func (uc *SubmitCommentUseCase) checkThrottle(ctx context.Context, clientHash string) error {
	if clientHash == "" {
		return nil
	}
	window := time.Duration(uc.commentsConfig.Throttle.WindowMinutes) * time.Minute
	limit := int64(uc.commentsConfig.Throttle.Limit)
	if window <= 0 || limit <= 0 {
		return nil
	}
	since := biztime.NowUTC().Add(-window)
	count, err := uc.commentRepo.CountRecentByClientHash(ctx, clientHash, since)
	if err != nil {
		return fmt.Errorf("failed to count recent comments: %w", err)
	}
	if count >= limit {
		return errors.NewThrottleExceededError("too many comments, slow down", int(window.Seconds()))
	}
	return nil
}

// routeStatus decides whether a submission publishes immediately or waits
// for moderation. Long bodies and bodies carrying links go to moderation.
func (uc *SubmitCommentUseCase) routeStatus(body string) comment.Status {
	if uc.commentsConfig.RequireReview {
		return comment.StatusPending
	}
	reviewLength := uc.commentsConfig.ReviewBodyLength
	if reviewLength <= 0 {
		reviewLength = 500
	}
	if utf8.RuneCountInString(body) > reviewLength {
		return comment.StatusPending
	}
	if containsLink(body) {
		return comment.StatusPending
	}
	return comment.StatusVisible
}

func containsLink(body string) bool {
	lower := strings.ToLower(body)
	return strings.Contains(lower, "http://") ||
		strings.Contains(lower, "https://") ||
		strings.Contains(lower, "www.")
}
