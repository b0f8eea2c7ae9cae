package usecases

import (
	"context"
	"fmt"

	"inkwell/internal/domain/reaction"
	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
)

type ListReactionsCommand struct {
	TargetKey string
}

// ListReactionsUseCase returns the reaction counters for a target.
type ListReactionsUseCase struct {
	reactionRepo reaction.Repository
	logger       logger.Interface
}

func NewListReactionsUseCase(reactionRepo reaction.Repository, logger logger.Interface) *ListReactionsUseCase {
	return &ListReactionsUseCase{
		reactionRepo: reactionRepo,
		logger:       logger,
	}
}

func (uc *ListReactionsUseCase) Execute(ctx context.Context, cmd ListReactionsCommand) ([]*reaction.Reaction, error) {
	if cmd.TargetKey == "" {
		return nil, errors.NewValidationError("target is required")
	}
	reactions, err := uc.reactionRepo.ListByTarget(ctx, cmd.TargetKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list reactions: %w", err)
	}
	return reactions, nil
}
