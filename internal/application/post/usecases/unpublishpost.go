package usecases

import (
	"context"

	"inkwell/internal/domain/post"
	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
)

type UnpublishPostCommand struct {
	PostID string
}

// UnpublishPostUseCase returns a post to draft, removing it from the public
// site without destroying its content or publish history.
type UnpublishPostUseCase struct {
	postRepo post.Repository
	logger   logger.Interface
}

func NewUnpublishPostUseCase(postRepo post.Repository, logger logger.Interface) *UnpublishPostUseCase {
	return &UnpublishPostUseCase{
		postRepo: postRepo,
		logger:   logger,
	}
}

func (uc *UnpublishPostUseCase) Execute(ctx context.Context, cmd UnpublishPostCommand) (*post.Post, error) {
	if cmd.PostID == "" {
		return nil, errors.NewValidationError("post ID is required")
	}
	existing, err := uc.postRepo.GetByID(ctx, cmd.PostID)
	if err != nil {
		return nil, err
	}
	existing.Unpublish()
	if err := uc.postRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	uc.logger.Infow("post unpublished", "post_id", existing.ID())
	return existing, nil
}
