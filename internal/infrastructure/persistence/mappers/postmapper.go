package mappers

import (
	"inkwell/internal/domain/post"
	"inkwell/internal/infrastructure/persistence/models"
)

// PostMapper handles the conversion between Post domain entities and
// persistence models.
type PostMapper interface {
	ToModel(entity *post.Post) *models.PostModel
	ToDomain(model *models.PostModel) (*post.Post, error)
}

type postMapperImpl struct{}

func NewPostMapper() PostMapper {
	return &postMapperImpl{}
}

func (m *postMapperImpl) ToModel(entity *post.Post) *models.PostModel {
	if entity == nil {
		return nil
	}
	return &models.PostModel{
		ID:          entity.ID(),
		Slug:        entity.Slug(),
		Title:       entity.Title(),
		Summary:     entity.Summary(),
		ContentMD:   entity.ContentMD(),
		Status:      string(entity.Status()),
		Pinned:      entity.Pinned(),
		PublishedAt: entity.PublishedAt(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *postMapperImpl) ToDomain(model *models.PostModel) (*post.Post, error) {
	if model == nil {
		return nil, nil
	}
	status, err := post.NormalizeStatus(model.Status)
	if err != nil {
		return nil, err
	}
	return post.ReconstructPost(
		model.ID,
		model.Slug,
		model.Title,
		model.Summary,
		model.ContentMD,
		status,
		model.Pinned,
		model.PublishedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
