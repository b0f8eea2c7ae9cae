package mappers

import (
	"inkwell/internal/domain/reaction"
	"inkwell/internal/infrastructure/persistence/models"
)

// ReactionMapper handles the conversion between Reaction aggregates and
// persistence models.
type ReactionMapper interface {
	ToModel(entity *reaction.Reaction) *models.ReactionModel
	ToDomain(model *models.ReactionModel) (*reaction.Reaction, error)
}

type reactionMapperImpl struct{}

func NewReactionMapper() ReactionMapper {
	return &reactionMapperImpl{}
}

func (m *reactionMapperImpl) ToModel(entity *reaction.Reaction) *models.ReactionModel {
	if entity == nil {
		return nil
	}
	return &models.ReactionModel{
		TargetKey: entity.TargetKey(),
		Kind:      entity.Kind(),
		Count:     entity.Count(),
	}
}

func (m *reactionMapperImpl) ToDomain(model *models.ReactionModel) (*reaction.Reaction, error) {
	if model == nil {
		return nil, nil
	}
	return reaction.ReconstructReaction(model.TargetKey, model.Kind, model.Count)
}
