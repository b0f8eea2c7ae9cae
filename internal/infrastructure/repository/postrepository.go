package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"inkwell/internal/domain/post"
	"inkwell/internal/infrastructure/persistence/mappers"
	"inkwell/internal/infrastructure/persistence/models"
	"inkwell/internal/infrastructure/schema"
	"inkwell/internal/shared/errors"
)

var postModels = []interface{}{
	&models.PostModel{},
}

type PostRepository struct {
	db     *gorm.DB
	schema *schema.Provisioner
	mapper mappers.PostMapper
}

func NewPostRepository(db *gorm.DB, provisioner *schema.Provisioner) post.Repository {
	return &PostRepository{
		db:     db,
		schema: provisioner,
		mapper: mappers.NewPostMapper(),
	}
}

func (r *PostRepository) Create(ctx context.Context, p *post.Post) error {
	if err := r.schema.Ensure(schema.GroupPosts, postModels...); err != nil {
		return err
	}
	model := r.mapper.ToModel(p)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("a post with this slug already exists")
		}
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *PostRepository) Update(ctx context.Context, p *post.Post) error {
	if err := r.schema.Ensure(schema.GroupPosts, postModels...); err != nil {
		return err
	}
	model := r.mapper.ToModel(p)
	result := r.db.WithContext(ctx).Model(&models.PostModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.NewConflictError("a post with this slug already exists")
		}
		return fmt.Errorf("failed to update post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("post not found")
	}
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*post.Post, error) {
	if err := r.schema.Ensure(schema.GroupPosts, postModels...); err != nil {
		return nil, err
	}
	var model models.PostModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("post not found")
		}
		return nil, fmt.Errorf("failed to get post by ID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (*post.Post, error) {
	if err := r.schema.Ensure(schema.GroupPosts, postModels...); err != nil {
		return nil, err
	}
	var model models.PostModel
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("post not found")
		}
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// List orders pinned posts first, then newest by publish time with creation
// time as the fallback for drafts.
func (r *PostRepository) List(ctx context.Context, publishedOnly bool) ([]*post.Post, error) {
	if err := r.schema.Ensure(schema.GroupPosts, postModels...); err != nil {
		return nil, err
	}
	query := r.db.WithContext(ctx).Model(&models.PostModel{}).
		Order("pinned DESC").
		Order("COALESCE(published_at, created_at) DESC")
	if publishedOnly {
		query = query.Where("status = ?", string(post.StatusPublished))
	}
	var postModels []models.PostModel
	if err := query.Find(&postModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	posts := make([]*post.Post, 0, len(postModels))
	for i := range postModels {
		p, err := r.mapper.ToDomain(&postModels[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}
