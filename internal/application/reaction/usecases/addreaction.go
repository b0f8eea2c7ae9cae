package usecases

import (
	"context"
	"fmt"

	"inkwell/internal/domain/reaction"
	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
)

type AddReactionCommand struct {
	TargetKey string
	Kind      string
}

// AddReactionUseCase bumps an anonymous reaction counter. Reactors are not
// tracked, so the operation cannot be undone per user.
type AddReactionUseCase struct {
	reactionRepo reaction.Repository
	logger       logger.Interface
}

func NewAddReactionUseCase(reactionRepo reaction.Repository, logger logger.Interface) *AddReactionUseCase {
	return &AddReactionUseCase{
		reactionRepo: reactionRepo,
		logger:       logger,
	}
}

func (uc *AddReactionUseCase) Execute(ctx context.Context, cmd AddReactionCommand) error {
	if cmd.TargetKey == "" {
		return errors.NewValidationError("target is required")
	}
	if !reaction.IsValidKind(cmd.Kind) {
		return errors.NewValidationError("unknown reaction kind")
	}
	if err := uc.reactionRepo.Increment(ctx, cmd.TargetKey, cmd.Kind); err != nil {
		return fmt.Errorf("failed to add reaction: %w", err)
	}
	return nil
}
