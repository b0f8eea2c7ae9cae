package mappers

import (
	"inkwell/internal/domain/comment"
	"inkwell/internal/infrastructure/persistence/models"
)

// CommentBanMapper handles the conversion between Ban domain entities and
// persistence models.
type CommentBanMapper interface {
	ToModel(entity *comment.Ban) *models.CommentBanModel
	ToDomain(model *models.CommentBanModel) (*comment.Ban, error)
}

type commentBanMapperImpl struct{}

func NewCommentBanMapper() CommentBanMapper {
	return &commentBanMapperImpl{}
}

func (m *commentBanMapperImpl) ToModel(entity *comment.Ban) *models.CommentBanModel {
	if entity == nil {
		return nil
	}
	return &models.CommentBanModel{
		ID:         entity.ID(),
		ClientHash: entity.ClientHash(),
		Reason:     entity.Reason(),
		CreatedAt:  entity.CreatedAt(),
	}
}

func (m *commentBanMapperImpl) ToDomain(model *models.CommentBanModel) (*comment.Ban, error) {
	if model == nil {
		return nil, nil
	}
	return comment.ReconstructBan(
		model.ID,
		model.ClientHash,
		model.Reason,
		model.CreatedAt,
	)
}
