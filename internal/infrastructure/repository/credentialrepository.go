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

// adminModels is the table group every admin-context repository ensures
// before touching the database.
var adminModels = []interface{}{
	&models.CredentialModel{},
	&models.AdminSessionModel{},
	&models.LoginAttemptModel{},
}

type CredentialRepository struct {
	db     *gorm.DB
	schema *schema.Provisioner
	mapper mappers.CredentialMapper
}

func NewCredentialRepository(db *gorm.DB, provisioner *schema.Provisioner) admin.CredentialRepository {
	return &CredentialRepository{
		db:     db,
		schema: provisioner,
		mapper: mappers.NewCredentialMapper(),
	}
}

func (r *CredentialRepository) Create(ctx context.Context, credential *admin.Credential) error {
	if err := r.schema.Ensure(schema.GroupAdmin, adminModels...); err != nil {
		return err
	}
	model := r.mapper.ToModel(credential)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("credential already exists")
		}
		return fmt.Errorf("failed to create credential: %w", err)
	}
	if err := credential.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to assign credential ID: %w", err)
	}
	return nil
}

func (r *CredentialRepository) GetAll(ctx context.Context) ([]*admin.Credential, error) {
	if err := r.schema.Ensure(schema.GroupAdmin, adminModels...); err != nil {
		return nil, err
	}
	var credentialModels []models.CredentialModel
	if err := r.db.WithContext(ctx).Find(&credentialModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	credentials := make([]*admin.Credential, 0, len(credentialModels))
	for i := range credentialModels {
		credential, err := r.mapper.ToDomain(&credentialModels[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map credential: %w", err)
		}
		credentials = append(credentials, credential)
	}
	return credentials, nil
}

func (r *CredentialRepository) GetByIdentifier(ctx context.Context, identifier string) (*admin.Credential, error) {
	if err := r.schema.Ensure(schema.GroupAdmin, adminModels...); err != nil {
		return nil, err
	}
	var model models.CredentialModel
	err := r.db.WithContext(ctx).Where("identifier = ?", identifier).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("credential not found")
		}
		return nil, fmt.Errorf("failed to get credential by identifier: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *CredentialRepository) Count(ctx context.Context) (int64, error) {
	if err := r.schema.Ensure(schema.GroupAdmin, adminModels...); err != nil {
		return 0, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CredentialModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count credentials: %w", err)
	}
	return count, nil
}
