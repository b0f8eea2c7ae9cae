package usecases

import (
	"context"
	"fmt"

	"inkwell/internal/domain/comment"
	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
)

type BanCommenterCommand struct {
	// CommentID identifies the offending comment; the ban applies to its
	// submitter's hashed identifier.
	CommentID string
	Reason    string
}

// BanCommenterUseCase bans the submitter of a comment and hides the comment
// itself. Future submissions from the same hashed identifier are rejected
// before any other check runs.
type BanCommenterUseCase struct {
	commentRepo comment.Repository
	banRepo     comment.BanRepository
	logger      logger.Interface
}

func NewBanCommenterUseCase(
	commentRepo comment.Repository,
	banRepo comment.BanRepository,
	logger logger.Interface,
) *BanCommenterUseCase {
	return &BanCommenterUseCase{
		commentRepo: commentRepo,
		banRepo:     banRepo,
		logger:      logger,
	}
}

func (uc *BanCommenterUseCase) Execute(ctx context.Context, cmd BanCommenterCommand) error {
	if cmd.CommentID == "" {
		return errors.NewValidationError("comment ID is required")
	}

	offending, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		return err
	}
	if offending.ClientHash() == "" {
		return errors.NewValidationError("comment has no client identifier to ban")
	}

	ban, err := comment.NewBan(offending.ClientHash(), cmd.Reason)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := uc.banRepo.Create(ctx, ban); err != nil {
		return fmt.Errorf("failed to store ban: %w", err)
	}

	if err := uc.commentRepo.UpdateStatus(ctx, cmd.CommentID, comment.StatusHidden); err != nil {
		uc.logger.Warnw("failed to hide banned comment", "comment_id", cmd.CommentID, "error", err)
	}

	uc.logger.Infow("commenter banned", "comment_id", cmd.CommentID)
	return nil
}
