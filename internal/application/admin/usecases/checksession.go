package usecases

import (
	"context"

	"inkwell/internal/domain/admin"
	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
)

type CheckSessionCommand struct {
	SessionToken string
}

// CheckSessionUseCase resolves a raw session token to a live session.
// Expired sessions are deleted lazily on first sight instead of by a
// background sweeper.
type CheckSessionUseCase struct {
	sessionRepo admin.SessionRepository
	logger      logger.Interface
}

func NewCheckSessionUseCase(sessionRepo admin.SessionRepository, logger logger.Interface) *CheckSessionUseCase {
	return &CheckSessionUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *CheckSessionUseCase) Execute(ctx context.Context, cmd CheckSessionCommand) (*admin.Session, error) {
	if cmd.SessionToken == "" {
		return nil, errors.NewUnauthorizedError("no session token")
	}

	tokenHash := admin.HashSessionToken(cmd.SessionToken)
	session, err := uc.sessionRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("session not found")
		}
		return nil, err
	}

	if session.IsExpired() {
		if err := uc.sessionRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
			uc.logger.Warnw("failed to delete expired session", "error", err)
		}
		return nil, errors.NewUnauthorizedError("session expired")
	}

	return session, nil
}
