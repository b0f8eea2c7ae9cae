package mappers

import (
	"inkwell/internal/domain/admin"
	"inkwell/internal/infrastructure/persistence/models"
)

// AdminSessionMapper handles the conversion between Session domain entities
// and persistence models.
type AdminSessionMapper interface {
	ToModel(entity *admin.Session) *models.AdminSessionModel
	ToDomain(model *models.AdminSessionModel) (*admin.Session, error)
}

type adminSessionMapperImpl struct{}

func NewAdminSessionMapper() AdminSessionMapper {
	return &adminSessionMapperImpl{}
}

func (m *adminSessionMapperImpl) ToModel(entity *admin.Session) *models.AdminSessionModel {
	if entity == nil {
		return nil
	}
	return &models.AdminSessionModel{
		ID:           entity.ID(),
		TokenHash:    entity.TokenHash(),
		CredentialID: entity.CredentialID(),
		CreatedAt:    entity.CreatedAt(),
		ExpiresAt:    entity.ExpiresAt(),
	}
}

func (m *adminSessionMapperImpl) ToDomain(model *models.AdminSessionModel) (*admin.Session, error) {
	if model == nil {
		return nil, nil
	}
	return admin.ReconstructSession(
		model.ID,
		model.TokenHash,
		model.CredentialID,
		model.CreatedAt,
		model.ExpiresAt,
	)
}
