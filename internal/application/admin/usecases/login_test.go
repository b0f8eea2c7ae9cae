package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"inkwell/internal/domain/admin"
	"inkwell/internal/infrastructure/auth"
	"inkwell/internal/infrastructure/persistence/models"
	"inkwell/internal/infrastructure/repository"
	"inkwell/internal/infrastructure/schema"
	"inkwell/internal/shared/config"
	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
)

type loginFixture struct {
	db      *gorm.DB
	loginUC *LoginUseCase
}

func newLoginFixture(t *testing.T, authConfig config.AuthConfig) *loginFixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	log := logger.NewLogger()
	provisioner := schema.NewProvisioner(db, true, log)
	credentialRepo := repository.NewCredentialRepository(db, provisioner)
	sessionRepo := repository.NewAdminSessionRepository(db, provisioner)
	attemptRepo := repository.NewLoginAttemptRepository(db, provisioner)
	hasher := auth.NewPBKDF2PasswordHasher(authConfig.Password.Iterations)

	return &loginFixture{
		db:      db,
		loginUC: NewLoginUseCase(credentialRepo, sessionRepo, attemptRepo, hasher, authConfig, log),
	}
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		BootstrapPassword: "hunter2-hunter2",
		Password:          config.PasswordConfig{Iterations: 120000},
		Session:           config.SessionConfig{TTLDays: 7},
		Lockout: config.LockoutConfig{
			MaxFailures:     3,
			WindowMinutes:   10,
			DurationMinutes: 15,
		},
	}
}

func TestLoginBootstrapsAndSucceeds(t *testing.T) {
	f := newLoginFixture(t, testAuthConfig())
	ctx := context.Background()

	result, err := f.loginUC.Execute(ctx, LoginCommand{
		Password:   "hunter2-hunter2",
		ClientHash: "hash-a",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.SessionToken)
	assert.True(t, result.ExpiresAt.After(time.Now()))

	// The bootstrap credential was persisted.
	var count int64
	require.NoError(t, f.db.Model(&models.CredentialModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// The stored session carries the digest, not the raw token.
	var session models.AdminSessionModel
	require.NoError(t, f.db.First(&session).Error)
	assert.Equal(t, admin.HashSessionToken(result.SessionToken), session.TokenHash)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newLoginFixture(t, testAuthConfig())
	ctx := context.Background()

	_, err := f.loginUC.Execute(ctx, LoginCommand{
		Password:   "wrong",
		ClientHash: "hash-a",
	})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeCredentialInvalid))
}

func TestLoginLockoutAfterRepeatedFailures(t *testing.T) {
	cfg := testAuthConfig()
	f := newLoginFixture(t, cfg)
	ctx := context.Background()

	for i := 0; i < cfg.Lockout.MaxFailures; i++ {
		_, err := f.loginUC.Execute(ctx, LoginCommand{Password: "wrong", ClientHash: "hash-a"})
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeCredentialInvalid))
	}

	// Even the correct password is rejected while locked.
	_, err := f.loginUC.Execute(ctx, LoginCommand{Password: "hunter2-hunter2", ClientHash: "hash-a"})
	require.True(t, errors.IsErrorType(err, errors.ErrorTypeRateLimited))
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Greater(t, appErr.RetryAfter, 0)

	// A different identifier is unaffected.
	_, err = f.loginUC.Execute(ctx, LoginCommand{Password: "hunter2-hunter2", ClientHash: "hash-b"})
	assert.NoError(t, err)
}

func TestLoginSucceedsAfterLockoutExpires(t *testing.T) {
	cfg := testAuthConfig()
	f := newLoginFixture(t, cfg)
	ctx := context.Background()

	for i := 0; i < cfg.Lockout.MaxFailures; i++ {
		_, err := f.loginUC.Execute(ctx, LoginCommand{Password: "wrong", ClientHash: "hash-a"})
		require.Error(t, err)
	}
	_, err := f.loginUC.Execute(ctx, LoginCommand{Password: "hunter2-hunter2", ClientHash: "hash-a"})
	require.True(t, errors.IsErrorType(err, errors.ErrorTypeRateLimited))

	// The lockout has run its course.
	expired := time.Now().UTC().Add(-time.Minute)
	require.NoError(t, f.db.Model(&models.LoginAttemptModel{}).
		Where("client_hash = ?", "hash-a").
		Update("locked_until", expired).Error)

	result, err := f.loginUC.Execute(ctx, LoginCommand{Password: "hunter2-hunter2", ClientHash: "hash-a"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.SessionToken)

	// Success wipes the attempt row.
	var count int64
	require.NoError(t, f.db.Model(&models.LoginAttemptModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestLoginSuccessClearsFailures(t *testing.T) {
	f := newLoginFixture(t, testAuthConfig())
	ctx := context.Background()

	_, err := f.loginUC.Execute(ctx, LoginCommand{Password: "wrong", ClientHash: "hash-a"})
	require.Error(t, err)

	_, err = f.loginUC.Execute(ctx, LoginCommand{Password: "hunter2-hunter2", ClientHash: "hash-a"})
	require.NoError(t, err)

	var count int64
	require.NoError(t, f.db.Model(&models.LoginAttemptModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestLoginWithoutIdentifierSkipsRateLimiting(t *testing.T) {
	f := newLoginFixture(t, testAuthConfig())
	ctx := context.Background()

	// Identifier-less failures never accumulate a lockout.
	for i := 0; i < 10; i++ {
		_, err := f.loginUC.Execute(ctx, LoginCommand{Password: "wrong"})
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeCredentialInvalid))
	}

	_, err := f.loginUC.Execute(ctx, LoginCommand{Password: "hunter2-hunter2"})
	assert.NoError(t, err)
}

func TestLoginNoCredentialsAndNoBootstrap(t *testing.T) {
	cfg := testAuthConfig()
	cfg.BootstrapPassword = ""
	f := newLoginFixture(t, cfg)

	_, err := f.loginUC.Execute(context.Background(), LoginCommand{Password: "anything"})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeCredentialInvalid))
}
