package usecases

import (
	"context"

	"inkwell/internal/domain/comment"
	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
)

type ModerateCommentCommand struct {
	CommentID string
	// Status accepts canonical values and their legacy aliases; aliases
	// normalize before anything is written.
	Status string
}

// ModerateCommentUseCase moves a comment between moderation states.
type ModerateCommentUseCase struct {
	commentRepo comment.Repository
	logger      logger.Interface
}

func NewModerateCommentUseCase(commentRepo comment.Repository, logger logger.Interface) *ModerateCommentUseCase {
	return &ModerateCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *ModerateCommentUseCase) Execute(ctx context.Context, cmd ModerateCommentCommand) (*comment.Comment, error) {
	if cmd.CommentID == "" {
		return nil, errors.NewValidationError("comment ID is required")
	}
	status, err := comment.NormalizeStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		return nil, err
	}
	if err := existing.ChangeStatus(cmd.Status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.commentRepo.UpdateStatus(ctx, cmd.CommentID, status); err != nil {
		return nil, err
	}

	uc.logger.Infow("comment moderated", "comment_id", cmd.CommentID, "status", status.String())
	return existing, nil
}
