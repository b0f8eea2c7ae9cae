package usecases

import (
	"context"

	"inkwell/internal/domain/post"
	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
)

type PublishPostCommand struct {
	PostID string
}

// PublishPostUseCase makes a post publicly visible. The first publication
// stamps the publish time; republishing keeps the original stamp.
type PublishPostUseCase struct {
	postRepo post.Repository
	logger   logger.Interface
}

func NewPublishPostUseCase(postRepo post.Repository, logger logger.Interface) *PublishPostUseCase {
	return &PublishPostUseCase{
		postRepo: postRepo,
		logger:   logger,
	}
}

func (uc *PublishPostUseCase) Execute(ctx context.Context, cmd PublishPostCommand) (*post.Post, error) {
	if cmd.PostID == "" {
		return nil, errors.NewValidationError("post ID is required")
	}
	existing, err := uc.postRepo.GetByID(ctx, cmd.PostID)
	if err != nil {
		return nil, err
	}
	existing.Publish()
	if err := uc.postRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	uc.logger.Infow("post published", "post_id", existing.ID(), "slug", existing.Slug())
	return existing, nil
}
