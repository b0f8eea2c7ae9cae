package usecases

import (
	"context"

	"inkwell/internal/domain/post"
	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
)

type UpdatePostCommand struct {
	PostID    string
	Title     string
	Summary   string
	ContentMD string
	Pinned    *bool
}

// UpdatePostUseCase edits a post's content in place. The slug is immutable
// once created; published URLs keep working.
type UpdatePostUseCase struct {
	postRepo post.Repository
	logger   logger.Interface
}

func NewUpdatePostUseCase(postRepo post.Repository, logger logger.Interface) *UpdatePostUseCase {
	return &UpdatePostUseCase{
		postRepo: postRepo,
		logger:   logger,
	}
}

func (uc *UpdatePostUseCase) Execute(ctx context.Context, cmd UpdatePostCommand) (*post.Post, error) {
	if cmd.PostID == "" {
		return nil, errors.NewValidationError("post ID is required")
	}
	existing, err := uc.postRepo.GetByID(ctx, cmd.PostID)
	if err != nil {
		return nil, err
	}
	if err := existing.UpdateContent(cmd.Title, cmd.Summary, cmd.ContentMD); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Pinned != nil {
		existing.SetPinned(*cmd.Pinned)
	}
	if err := uc.postRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	uc.logger.Infow("post updated", "post_id", existing.ID())
	return existing, nil
}
