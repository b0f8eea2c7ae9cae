package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"inkwell/internal/domain/comment"
	"inkwell/internal/infrastructure/persistence/mappers"
	"inkwell/internal/infrastructure/persistence/models"
	"inkwell/internal/infrastructure/schema"
)

type CommentBanRepository struct {
	db     *gorm.DB
	schema *schema.Provisioner
	mapper mappers.CommentBanMapper
}

func NewCommentBanRepository(db *gorm.DB, provisioner *schema.Provisioner) comment.BanRepository {
	return &CommentBanRepository{
		db:     db,
		schema: provisioner,
		mapper: mappers.NewCommentBanMapper(),
	}
}

// Create is idempotent: banning an already banned commenter is a no-op.
func (r *CommentBanRepository) Create(ctx context.Context, ban *comment.Ban) error {
	if err := r.schema.Ensure(schema.GroupComments, commentModels...); err != nil {
		return err
	}
	model := r.mapper.ToModel(ban)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_hash"}},
			DoNothing: true,
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to create comment ban: %w", err)
	}
	if model.ID != 0 {
		if err := ban.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to assign ban ID: %w", err)
		}
	}
	return nil
}

func (r *CommentBanRepository) ExistsByClientHash(ctx context.Context, clientHash string) (bool, error) {
	if err := r.schema.Ensure(schema.GroupComments, commentModels...); err != nil {
		return false, err
	}
	if clientHash == "" {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CommentBanModel{}).
		Where("client_hash = ?", clientHash).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check comment ban: %w", err)
	}
	return count > 0, nil
}
