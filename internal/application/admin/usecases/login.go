package usecases

import (
	"context"
	"fmt"
	"time"

	"inkwell/internal/domain/admin"
	"inkwell/internal/shared/biztime"
	"inkwell/internal/shared/config"
	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
)

type LoginCommand struct {
	Password string
	// ClientHash is the salted digest of the caller's network identifier.
	// Empty when no identifier was derivable; rate limiting is skipped then.
	ClientHash string
}

type LoginResult struct {
	SessionToken string
	ExpiresAt    time.Time
}

// LoginUseCase authenticates the site operator. Failures are counted per
// hashed client identifier in the store, and enough of them within the
// window lock the identifier out for a fixed duration.
type LoginUseCase struct {
	credentialRepo admin.CredentialRepository
	sessionRepo    admin.SessionRepository
	attemptRepo    admin.LoginAttemptRepository
	hasher         admin.PasswordHasher
	authConfig     config.AuthConfig
	logger         logger.Interface
}

func NewLoginUseCase(
	credentialRepo admin.CredentialRepository,
	sessionRepo admin.SessionRepository,
	attemptRepo admin.LoginAttemptRepository,
	hasher admin.PasswordHasher,
	authConfig config.AuthConfig,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		credentialRepo: credentialRepo,
		sessionRepo:    sessionRepo,
		attemptRepo:    attemptRepo,
		hasher:         hasher,
		authConfig:     authConfig,
		logger:         logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Password == "" {
		return nil, errors.NewValidationError("password is required")
	}

	now := biztime.NowUTC()

	if err := uc.checkLockout(ctx, cmd.ClientHash, now); err != nil {
		return nil, err
	}

	if err := uc.bootstrapCredential(ctx); err != nil {
		return nil, err
	}

	credential, err := uc.verifyAgainstAll(ctx, cmd.Password)
	if err != nil {
		return nil, err
	}
	if credential == nil {
		uc.recordFailure(ctx, cmd.ClientHash, now)
		return nil, errors.NewCredentialInvalidError()
	}

	// A successful login clears the failure record for this identifier.
	if cmd.ClientHash != "" {
		if err := uc.attemptRepo.Delete(ctx, cmd.ClientHash); err != nil {
			uc.logger.Warnw("failed to clear login attempt record", "error", err)
		}
	}

	ttl := time.Duration(uc.authConfig.Session.TTLDays) * 24 * time.Hour
	session, rawToken, err := admin.NewSession(credential.ID(), ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to persist session", "error", err)
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	uc.logger.Infow("admin login succeeded", "credential_id", credential.ID())
	return &LoginResult{
		SessionToken: rawToken,
		ExpiresAt:    session.ExpiresAt(),
	}, nil
}

func (uc *LoginUseCase) checkLockout(ctx context.Context, clientHash string, now time.Time) error {
	if clientHash == "" {
		return nil
	}
	attempt, err := uc.attemptRepo.GetByClientHash(ctx, clientHash)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil
		}
		return fmt.Errorf("failed to check login attempts: %w", err)
	}
	if attempt.IsLocked(now) {
		return errors.NewRateLimitedError("too many failed login attempts", attempt.RetrySeconds(now))
	}
	return nil
}

// bootstrapCredential seeds the credential store from the configured
// bootstrap password when the store is empty, so a fresh deployment can log
// in without out-of-band setup.
func (uc *LoginUseCase) bootstrapCredential(ctx context.Context) error {
	count, err := uc.credentialRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count credentials: %w", err)
	}
	if count > 0 {
		return nil
	}
	if uc.authConfig.BootstrapPassword == "" {
		return errors.NewCredentialInvalidError()
	}

	hash, salt, err := uc.hasher.Hash(uc.authConfig.BootstrapPassword)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}
	credential, err := admin.NewCredential(admin.DefaultIdentifier, hash, salt)
	if err != nil {
		return fmt.Errorf("failed to build bootstrap credential: %w", err)
	}
	if err := uc.credentialRepo.Create(ctx, credential); err != nil {
		// A concurrent request may have seeded first; that credential works.
		if errors.IsConflictError(err) {
			return nil
		}
		return fmt.Errorf("failed to store bootstrap credential: %w", err)
	}
	uc.logger.Infow("bootstrapped admin credential", "identifier", credential.Identifier())
	return nil
}

// verifyAgainstAll checks the password against every stored credential and
// returns the first match. Every stored hash is tried even after a match so
// the work done does not reveal which credential matched.
func (uc *LoginUseCase) verifyAgainstAll(ctx context.Context, password string) (*admin.Credential, error) {
	credentials, err := uc.credentialRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}
	var matched *admin.Credential
	for _, credential := range credentials {
		if err := uc.hasher.Verify(password, credential.PasswordHash(), credential.PasswordSalt()); err == nil {
			if matched == nil {
				matched = credential
			}
		}
	}
	return matched, nil
}

func (uc *LoginUseCase) recordFailure(ctx context.Context, clientHash string, now time.Time) {
	if clientHash == "" {
		return
	}
	attempt, err := uc.attemptRepo.GetByClientHash(ctx, clientHash)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Warnw("failed to load login attempt record", "error", err)
			return
		}
		attempt, err = admin.NewLoginAttempt(clientHash, now)
		if err != nil {
			uc.logger.Warnw("failed to build login attempt record", "error", err)
			return
		}
	}
	attempt.RegisterFailure(now, uc.lockoutPolicy())
	if err := uc.attemptRepo.Save(ctx, attempt); err != nil {
		uc.logger.Warnw("failed to save login attempt record", "error", err)
	}
}

func (uc *LoginUseCase) lockoutPolicy() admin.LockoutPolicy {
	policy := admin.DefaultLockoutPolicy()
	if uc.authConfig.Lockout.MaxFailures > 0 {
		policy.MaxFailures = uc.authConfig.Lockout.MaxFailures
	}
	if uc.authConfig.Lockout.WindowMinutes > 0 {
		policy.Window = time.Duration(uc.authConfig.Lockout.WindowMinutes) * time.Minute
	}
	if uc.authConfig.Lockout.DurationMinutes > 0 {
		policy.Duration = time.Duration(uc.authConfig.Lockout.DurationMinutes) * time.Minute
	}
	return policy
}
