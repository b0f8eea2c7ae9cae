package usecases

import (
	"context"
	"fmt"

	"inkwell/internal/domain/comment"
	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
)

const defaultListLimit = 200

type ListCommentsCommand struct {
	TargetKey string
	Limit     int
}

// ListCommentsUseCase returns the publicly visible comments for a target,
// newest first.
type ListCommentsUseCase struct {
	commentRepo comment.Repository
	logger      logger.Interface
}

func NewListCommentsUseCase(commentRepo comment.Repository, logger logger.Interface) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, cmd ListCommentsCommand) ([]*comment.Comment, error) {
	if cmd.TargetKey == "" {
		return nil, errors.NewValidationError("target is required")
	}
	limit := cmd.Limit
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	comments, err := uc.commentRepo.ListByTarget(ctx, cmd.TargetKey, []comment.Status{comment.StatusVisible}, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}
