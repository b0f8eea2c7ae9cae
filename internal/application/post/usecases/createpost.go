package usecases

import (
	"context"

	"inkwell/internal/domain/post"
	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
)

type CreatePostCommand struct {
	Slug      string
	Title     string
	Summary   string
	ContentMD string
}

// CreatePostUseCase creates a draft post. Publishing is a separate step.
type CreatePostUseCase struct {
	postRepo post.Repository
	logger   logger.Interface
}

func NewCreatePostUseCase(postRepo post.Repository, logger logger.Interface) *CreatePostUseCase {
	return &CreatePostUseCase{
		postRepo: postRepo,
		logger:   logger,
	}
}

func (uc *CreatePostUseCase) Execute(ctx context.Context, cmd CreatePostCommand) (*post.Post, error) {
	newPost, err := post.NewPost(cmd.Slug, cmd.Title, cmd.Summary, cmd.ContentMD)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.postRepo.Create(ctx, newPost); err != nil {
		return nil, err
	}
	uc.logger.Infow("post created", "post_id", newPost.ID(), "slug", newPost.Slug())
	return newPost, nil
}
