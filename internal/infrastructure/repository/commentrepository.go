package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"inkwell/internal/domain/comment"
	"inkwell/internal/infrastructure/persistence/mappers"
	"inkwell/internal/infrastructure/persistence/models"
	"inkwell/internal/infrastructure/schema"
	"inkwell/internal/shared/errors"
)

var commentModels = []interface{}{
	&models.CommentModel{},
	&models.CommentBanModel{},
}

type CommentRepository struct {
	db     *gorm.DB
	schema *schema.Provisioner
	mapper mappers.CommentMapper
}

func NewCommentRepository(db *gorm.DB, provisioner *schema.Provisioner) comment.Repository {
	return &CommentRepository{
		db:     db,
		schema: provisioner,
		mapper: mappers.NewCommentMapper(),
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) error {
	if err := r.schema.Ensure(schema.GroupComments, commentModels...); err != nil {
		return err
	}
	model := r.mapper.ToModel(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*comment.Comment, error) {
	if err := r.schema.Ensure(schema.GroupComments, commentModels...); err != nil {
		return nil, err
	}
	var model models.CommentModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("comment not found")
		}
		return nil, fmt.Errorf("failed to get comment by ID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// ListByTarget matches stored rows against every legacy spelling of the
// requested statuses, so rows written before status normalization still
// surface.
func (r *CommentRepository) ListByTarget(ctx context.Context, targetKey string, statuses []comment.Status, limit int) ([]*comment.Comment, error) {
	if err := r.schema.Ensure(schema.GroupComments, commentModels...); err != nil {
		return nil, err
	}
	var spellings []string
	for _, status := range statuses {
		spellings = append(spellings, comment.SpellingsOf(status)...)
	}
	query := r.db.WithContext(ctx).
		Where("target_key = ? AND status IN ?", targetKey, spellings).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var commentModels []models.CommentModel
	if err := query.Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments by target: %w", err)
	}
	return r.toDomainList(commentModels)
}

func (r *CommentRepository) ListByStatus(ctx context.Context, status comment.Status, limit int) ([]*comment.Comment, error) {
	if err := r.schema.Ensure(schema.GroupComments, commentModels...); err != nil {
		return nil, err
	}
	query := r.db.WithContext(ctx).
		Where("status IN ?", comment.SpellingsOf(status)).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var commentModels []models.CommentModel
	if err := query.Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments by status: %w", err)
	}
	return r.toDomainList(commentModels)
}

func (r *CommentRepository) CountRecentByClientHash(ctx context.Context, clientHash string, since time.Time) (int64, error) {
	if err := r.schema.Ensure(schema.GroupComments, commentModels...); err != nil {
		return 0, err
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CommentModel{}).
		Where("client_hash = ? AND created_at >= ?", clientHash, since).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count recent comments: %w", err)
	}
	return count, nil
}

func (r *CommentRepository) UpdateStatus(ctx context.Context, id string, status comment.Status) error {
	if err := r.schema.Ensure(schema.GroupComments, commentModels...); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&models.CommentModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return fmt.Errorf("failed to update comment status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("comment not found")
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	if err := r.schema.Ensure(schema.GroupComments, commentModels...); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CommentModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("comment not found")
	}
	return nil
}

func (r *CommentRepository) toDomainList(commentModels []models.CommentModel) ([]*comment.Comment, error) {
	comments := make([]*comment.Comment, 0, len(commentModels))
	for i := range commentModels {
		c, err := r.mapper.ToDomain(&commentModels[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, nil
}
