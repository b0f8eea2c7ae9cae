package mappers

import (
	"inkwell/internal/domain/comment"
	"inkwell/internal/infrastructure/persistence/models"
)

// CommentMapper handles the conversion between Comment domain entities and
// persistence models. Stored statuses may carry legacy spellings; ToDomain
// normalizes them to the canonical set.
type CommentMapper interface {
	ToModel(entity *comment.Comment) *models.CommentModel
	ToDomain(model *models.CommentModel) (*comment.Comment, error)
}

type commentMapperImpl struct{}

func NewCommentMapper() CommentMapper {
	return &commentMapperImpl{}
}

func (m *commentMapperImpl) ToModel(entity *comment.Comment) *models.CommentModel {
	if entity == nil {
		return nil
	}
	return &models.CommentModel{
		ID:            entity.ID(),
		TargetKey:     entity.TargetKey(),
		ParentID:      entity.ParentID(),
		DisplayName:   entity.DisplayName(),
		Body:          entity.Body(),
		Status:        entity.Status().String(),
		ClientHash:    entity.ClientHash(),
		UserAgentHash: entity.UserAgentHash(),
		CreatedAt:     entity.CreatedAt(),
	}
}

func (m *commentMapperImpl) ToDomain(model *models.CommentModel) (*comment.Comment, error) {
	if model == nil {
		return nil, nil
	}
	status, err := comment.NormalizeStatus(model.Status)
	if err != nil {
		return nil, err
	}
	return comment.ReconstructComment(
		model.ID,
		model.TargetKey,
		model.ParentID,
		model.DisplayName,
		model.Body,
		status,
		model.ClientHash,
		model.UserAgentHash,
		model.CreatedAt,
	)
}
