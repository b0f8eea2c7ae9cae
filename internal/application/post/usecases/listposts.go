package usecases

import (
	"context"
	"fmt"

	"inkwell/internal/domain/post"
	"inkwell/internal/shared/logger"
)

type ListPostsCommand struct {
	// PublishedOnly restricts the listing to the public view. Admin callers
	// pass false to see drafts and archived posts too.
	PublishedOnly bool
}

type ListPostsUseCase struct {
	postRepo post.Repository
	logger   logger.Interface
}

func NewListPostsUseCase(postRepo post.Repository, logger logger.Interface) *ListPostsUseCase {
	return &ListPostsUseCase{
		postRepo: postRepo,
		logger:   logger,
	}
}

func (uc *ListPostsUseCase) Execute(ctx context.Context, cmd ListPostsCommand) ([]*post.Post, error) {
	posts, err := uc.postRepo.List(ctx, cmd.PublishedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}
