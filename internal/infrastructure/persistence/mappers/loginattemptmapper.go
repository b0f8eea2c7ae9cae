package mappers

import (
	"inkwell/internal/domain/admin"
	"inkwell/internal/infrastructure/persistence/models"
)

// LoginAttemptMapper handles the conversion between LoginAttempt domain
// entities and persistence models.
type LoginAttemptMapper interface {
	ToModel(entity *admin.LoginAttempt) *models.LoginAttemptModel
	ToDomain(model *models.LoginAttemptModel) (*admin.LoginAttempt, error)
}

type loginAttemptMapperImpl struct{}

func NewLoginAttemptMapper() LoginAttemptMapper {
	return &loginAttemptMapperImpl{}
}

func (m *loginAttemptMapperImpl) ToModel(entity *admin.LoginAttempt) *models.LoginAttemptModel {
	if entity == nil {
		return nil
	}
	return &models.LoginAttemptModel{
		ClientHash:    entity.ClientHash(),
		FailedCount:   entity.FailedCount(),
		LastAttemptAt: entity.LastAttemptAt(),
		LockedUntil:   entity.LockedUntil(),
	}
}

func (m *loginAttemptMapperImpl) ToDomain(model *models.LoginAttemptModel) (*admin.LoginAttempt, error) {
	if model == nil {
		return nil, nil
	}
	return admin.ReconstructLoginAttempt(
		model.ClientHash,
		model.FailedCount,
		model.LastAttemptAt,
		model.LockedUntil,
	)
}
