package usecases

import (
	"context"
	"fmt"

	"inkwell/internal/domain/comment"
	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
)

type ListCommentsByStatusCommand struct {
	Status string
	Limit  int
}

// ListCommentsByStatusUseCase backs the moderation queue: all comments in a
// given state across every target, newest first.
type ListCommentsByStatusUseCase struct {
	commentRepo comment.Repository
	logger      logger.Interface
}

func NewListCommentsByStatusUseCase(commentRepo comment.Repository, logger logger.Interface) *ListCommentsByStatusUseCase {
	return &ListCommentsByStatusUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *ListCommentsByStatusUseCase) Execute(ctx context.Context, cmd ListCommentsByStatusCommand) ([]*comment.Comment, error) {
	status, err := comment.NormalizeStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	limit := cmd.Limit
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	comments, err := uc.commentRepo.ListByStatus(ctx, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments by status: %w", err)
	}
	return comments, nil
}
