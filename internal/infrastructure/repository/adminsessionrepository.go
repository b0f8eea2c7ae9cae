package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"inkwell/internal/domain/admin"
	"inkwell/internal/infrastructure/persistence/mappers"
	"inkwell/internal/infrastructure/persistence/models"
	"inkwell/internal/infrastructure/schema"
	"inkwell/internal/shared/errors"
)

type AdminSessionRepository struct {
	db     *gorm.DB
	schema *schema.Provisioner
	mapper mappers.AdminSessionMapper
}

func NewAdminSessionRepository(db *gorm.DB, provisioner *schema.Provisioner) admin.SessionRepository {
	return &AdminSessionRepository{
		db:     db,
		schema: provisioner,
		mapper: mappers.NewAdminSessionMapper(),
	}
}

func (r *AdminSessionRepository) Create(ctx context.Context, session *admin.Session) error {
	if err := r.schema.Ensure(schema.GroupAdmin, adminModels...); err != nil {
		return err
	}
	model := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	if err := session.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to assign session ID: %w", err)
	}
	return nil
}

// GetByTokenHash returns the session regardless of expiry; callers decide
// whether an expired session is still acceptable and clean it up lazily.
func (r *AdminSessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*admin.Session, error) {
	if err := r.schema.Ensure(schema.GroupAdmin, adminModels...); err != nil {
		return nil, err
	}
	var model models.AdminSessionModel
	err := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("session not found")
		}
		return nil, fmt.Errorf("failed to get session by token hash: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *AdminSessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	if err := r.schema.Ensure(schema.GroupAdmin, adminModels...); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&models.AdminSessionModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete session: %w", result.Error)
	}
	return nil
}
