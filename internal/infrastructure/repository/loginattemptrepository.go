package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"inkwell/internal/domain/admin"
	"inkwell/internal/infrastructure/persistence/mappers"
	"inkwell/internal/infrastructure/persistence/models"
	"inkwell/internal/infrastructure/schema"
	"inkwell/internal/shared/errors"
)

type LoginAttemptRepository struct {
	db     *gorm.DB
	schema *schema.Provisioner
	mapper mappers.LoginAttemptMapper
}

func NewLoginAttemptRepository(db *gorm.DB, provisioner *schema.Provisioner) admin.LoginAttemptRepository {
	return &LoginAttemptRepository{
		db:     db,
		schema: provisioner,
		mapper: mappers.NewLoginAttemptMapper(),
	}
}

func (r *LoginAttemptRepository) GetByClientHash(ctx context.Context, clientHash string) (*admin.LoginAttempt, error) {
	if err := r.schema.Ensure(schema.GroupAdmin, adminModels...); err != nil {
		return nil, err
	}
	var model models.LoginAttemptModel
	err := r.db.WithContext(ctx).Where("client_hash = ?", clientHash).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("login attempt record not found")
		}
		return nil, fmt.Errorf("failed to get login attempt record: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *LoginAttemptRepository) Save(ctx context.Context, attempt *admin.LoginAttempt) error {
	if err := r.schema.Ensure(schema.GroupAdmin, adminModels...); err != nil {
		return err
	}
	model := r.mapper.ToModel(attempt)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_hash"}},
			DoUpdates: clause.AssignmentColumns([]string{"failed_count", "last_attempt_at", "locked_until"}),
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to save login attempt record: %w", err)
	}
	return nil
}

func (r *LoginAttemptRepository) Delete(ctx context.Context, clientHash string) error {
	if err := r.schema.Ensure(schema.GroupAdmin, adminModels...); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Where("client_hash = ?", clientHash).
		Delete(&models.LoginAttemptModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete login attempt record: %w", result.Error)
	}
	return nil
}
