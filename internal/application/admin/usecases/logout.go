package usecases

import (
	"context"

	"inkwell/internal/domain/admin"
	"inkwell/internal/shared/logger"
)

type LogoutCommand struct {
	SessionToken string
}

// LogoutUseCase revokes the session behind the presented token. It succeeds
// even when no such session exists, so repeated logouts are harmless.
type LogoutUseCase struct {
	sessionRepo admin.SessionRepository
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo admin.SessionRepository, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if cmd.SessionToken == "" {
		return nil
	}
	tokenHash := admin.HashSessionToken(cmd.SessionToken)
	if err := uc.sessionRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
		uc.logger.Warnw("failed to delete session on logout", "error", err)
		return err
	}
	return nil
}
