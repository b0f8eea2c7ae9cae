package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"inkwell/internal/domain/reaction"
	"inkwell/internal/infrastructure/persistence/mappers"
	"inkwell/internal/infrastructure/persistence/models"
	"inkwell/internal/infrastructure/schema"
)

var reactionModels = []interface{}{
	&models.ReactionModel{},
}

type ReactionRepository struct {
	db     *gorm.DB
	schema *schema.Provisioner
	mapper mappers.ReactionMapper
}

func NewReactionRepository(db *gorm.DB, provisioner *schema.Provisioner) reaction.Repository {
	return &ReactionRepository{
		db:     db,
		schema: provisioner,
		mapper: mappers.NewReactionMapper(),
	}
}

func (r *ReactionRepository) Increment(ctx context.Context, targetKey, kind string) error {
	if err := r.schema.Ensure(schema.GroupReactions, reactionModels...); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "target_key"}, {Name: "kind"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"count": gorm.Expr("count + 1"),
			}),
		}).
		Create(&models.ReactionModel{TargetKey: targetKey, Kind: kind, Count: 1}).Error
	if err != nil {
		return fmt.Errorf("failed to increment reaction: %w", err)
	}
	return nil
}

func (r *ReactionRepository) ListByTarget(ctx context.Context, targetKey string) ([]*reaction.Reaction, error) {
	if err := r.schema.Ensure(schema.GroupReactions, reactionModels...); err != nil {
		return nil, err
	}
	var reactionModels []models.ReactionModel
	err := r.db.WithContext(ctx).
		Where("target_key = ?", targetKey).
		Order("kind ASC").
		Find(&reactionModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reactions: %w", err)
	}
	reactions := make([]*reaction.Reaction, 0, len(reactionModels))
	for i := range reactionModels {
		entity, err := r.mapper.ToDomain(&reactionModels[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map reaction: %w", err)
		}
		reactions = append(reactions, entity)
	}
	return reactions, nil
}
