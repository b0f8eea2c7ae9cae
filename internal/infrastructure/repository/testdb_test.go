package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"inkwell/internal/infrastructure/schema"
	"inkwell/internal/shared/logger"
)

func setupTestDB(t *testing.T) (*gorm.DB, *schema.Provisioner) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, schema.NewProvisioner(db, true, logger.NewLogger())
}
