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
	"inkwell/internal/infrastructure/persistence/models"
	"inkwell/internal/infrastructure/repository"
	"inkwell/internal/infrastructure/schema"
	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
)

func newSessionFixture(t *testing.T) (*gorm.DB, admin.SessionRepository, *CheckSessionUseCase, *LogoutUseCase) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	log := logger.NewLogger()
	provisioner := schema.NewProvisioner(db, true, log)
	sessionRepo := repository.NewAdminSessionRepository(db, provisioner)
	// Provision up front so tests can seed rows directly.
	require.NoError(t, db.AutoMigrate(&models.AdminSessionModel{}))
	return db, sessionRepo, NewCheckSessionUseCase(sessionRepo, log), NewLogoutUseCase(sessionRepo, log)
}

func TestCheckSessionAcceptsLiveSession(t *testing.T) {
	_, sessionRepo, checkUC, _ := newSessionFixture(t)
	ctx := context.Background()

	session, rawToken, err := admin.NewSession(1, time.Hour)
	require.NoError(t, err)
	require.NoError(t, sessionRepo.Create(ctx, session))

	resolved, err := checkUC.Execute(ctx, CheckSessionCommand{SessionToken: rawToken})
	require.NoError(t, err)
	assert.Equal(t, session.TokenHash(), resolved.TokenHash())
}

func TestCheckSessionRejectsMissingToken(t *testing.T) {
	_, _, checkUC, _ := newSessionFixture(t)

	_, err := checkUC.Execute(context.Background(), CheckSessionCommand{})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeUnauthorized))

	_, err = checkUC.Execute(context.Background(), CheckSessionCommand{SessionToken: "unknown"})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeUnauthorized))
}

func TestCheckSessionDeletesExpiredLazily(t *testing.T) {
	db, _, checkUC, _ := newSessionFixture(t)
	ctx := context.Background()

	rawToken := "expired-session-token"
	expired := models.AdminSessionModel{
		TokenHash:    admin.HashSessionToken(rawToken),
		CredentialID: 1,
		CreatedAt:    time.Now().UTC().Add(-48 * time.Hour),
		ExpiresAt:    time.Now().UTC().Add(-24 * time.Hour),
	}
	require.NoError(t, db.Create(&expired).Error)

	_, err := checkUC.Execute(ctx, CheckSessionCommand{SessionToken: rawToken})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeUnauthorized))

	// The expired row was removed on first sight.
	var count int64
	require.NoError(t, db.Model(&models.AdminSessionModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestLogoutRevokesSession(t *testing.T) {
	db, sessionRepo, checkUC, logoutUC := newSessionFixture(t)
	ctx := context.Background()

	session, rawToken, err := admin.NewSession(1, time.Hour)
	require.NoError(t, err)
	require.NoError(t, sessionRepo.Create(ctx, session))

	require.NoError(t, logoutUC.Execute(ctx, LogoutCommand{SessionToken: rawToken}))

	_, err = checkUC.Execute(ctx, CheckSessionCommand{SessionToken: rawToken})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeUnauthorized))

	var count int64
	require.NoError(t, db.Model(&models.AdminSessionModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// Logging out again is harmless.
	assert.NoError(t, logoutUC.Execute(ctx, LogoutCommand{SessionToken: rawToken}))
}
