package usecases

import (
	"context"

	"inkwell/internal/domain/comment"
	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
)

type DeleteCommentCommand struct {
	CommentID string
}

// DeleteCommentUseCase removes a comment permanently. Moderation that should
// merely hide a comment goes through status changes instead.
type DeleteCommentUseCase struct {
	commentRepo comment.Repository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(commentRepo comment.Repository, logger logger.Interface) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) error {
	if cmd.CommentID == "" {
		return errors.NewValidationError("comment ID is required")
	}
	if err := uc.commentRepo.Delete(ctx, cmd.CommentID); err != nil {
		return err
	}
	uc.logger.Infow("comment deleted", "comment_id", cmd.CommentID)
	return nil
}
