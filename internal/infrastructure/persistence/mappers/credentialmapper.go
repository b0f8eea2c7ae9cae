package mappers

import (
	"inkwell/internal/domain/admin"
	"inkwell/internal/infrastructure/persistence/models"
)

// CredentialMapper handles the conversion between Credential domain entities
// and persistence models.
type CredentialMapper interface {
	ToModel(entity *admin.Credential) *models.CredentialModel
	ToDomain(model *models.CredentialModel) (*admin.Credential, error)
}

type credentialMapperImpl struct{}

func NewCredentialMapper() CredentialMapper {
	return &credentialMapperImpl{}
}

func (m *credentialMapperImpl) ToModel(entity *admin.Credential) *models.CredentialModel {
	if entity == nil {
		return nil
	}
	return &models.CredentialModel{
		ID:           entity.ID(),
		Identifier:   entity.Identifier(),
		PasswordHash: entity.PasswordHash(),
		PasswordSalt: entity.PasswordSalt(),
		CreatedAt:    entity.CreatedAt(),
	}
}

func (m *credentialMapperImpl) ToDomain(model *models.CredentialModel) (*admin.Credential, error) {
	if model == nil {
		return nil, nil
	}
	return admin.ReconstructCredential(
		model.ID,
		model.Identifier,
		model.PasswordHash,
		model.PasswordSalt,
		model.CreatedAt,
	)
}
