package usecases

import (
	"context"
	"fmt"

	"inkwell/internal/domain/post"
	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
	"inkwell/internal/shared/services/markdown"
)

type GetPostBySlugCommand struct {
	Slug string
	// IncludeUnpublished lets authenticated admin callers preview drafts.
	IncludeUnpublished bool
}

type GetPostBySlugResult struct {
	Post *post.Post
	// ContentHTML is the sanitized rendering of the post body.
	ContentHTML string
}

// GetPostBySlugUseCase fetches a single post and renders its body to
// sanitized HTML.
type GetPostBySlugUseCase struct {
	postRepo post.Repository
	markdown markdown.Service
	logger   logger.Interface
}

func NewGetPostBySlugUseCase(
	postRepo post.Repository,
	markdownService markdown.Service,
	logger logger.Interface,
) *GetPostBySlugUseCase {
	return &GetPostBySlugUseCase{
		postRepo: postRepo,
		markdown: markdownService,
		logger:   logger,
	}
}

func (uc *GetPostBySlugUseCase) Execute(ctx context.Context, cmd GetPostBySlugCommand) (*GetPostBySlugResult, error) {
	if cmd.Slug == "" {
		return nil, errors.NewValidationError("slug is required")
	}
	existing, err := uc.postRepo.GetBySlug(ctx, cmd.Slug)
	if err != nil {
		return nil, err
	}
	// Drafts look like missing posts to the public to avoid leaking their
	// existence.
	if !existing.IsPublished() && !cmd.IncludeUnpublished {
		return nil, errors.NewNotFoundError("post not found")
	}

	html, err := uc.markdown.ToHTMLSanitized(existing.ContentMD())
	if err != nil {
		return nil, fmt.Errorf("failed to render post content: %w", err)
	}
	return &GetPostBySlugResult{
		Post:        existing,
		ContentHTML: html,
	}, nil
}
