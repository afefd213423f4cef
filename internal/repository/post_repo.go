package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/jihoon-lab/coinboard-api/internal/models"
)

// PostFilter narrows public board listings.
type PostFilter struct {
	Search   string
	Page     int
	PageSize int
}

// PostRepository manages board post persistence. The owner-scoped
// mutations encode the ownership predicate in the statement itself:
// a non-owner's update or delete matches zero rows and is reported as
// gorm.ErrRecordNotFound. Admins bypass the owner predicate.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (models.Post, error)
	List(ctx context.Context, filter PostFilter) ([]models.Post, int64, error)
	ListAll(ctx context.Context) ([]models.Post, error)
	UpdateOwned(ctx context.Context, id, userID uint, admin bool, title, content string) error
	DeleteOwned(ctx context.Context, id, userID uint, admin bool) error
	SetStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository constructs a post repository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).First(&post, id).Error
	return post, err
}

// List returns the public board page: hidden posts excluded, notices
// pinned first, then newest first.
func (r *postRepository) List(ctx context.Context, filter PostFilter) ([]models.Post, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("status <> ?", models.PostStatusHidden)

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern)
	}

	countQuery := query.Session(&gorm.Session{})
	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.PageSize > 0 {
		page := filter.Page
		if page <= 0 {
			page = 1
		}
		offset := (page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var posts []models.Post
	err := query.
		Order("CASE WHEN status = 'notice' THEN 0 ELSE 1 END").
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// ListAll returns every post for moderation: notices first, then
// hidden, then recency.
func (r *postRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Order("CASE WHEN status = 'notice' THEN 0 WHEN status = 'hidden' THEN 1 ELSE 2 END").
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) UpdateOwned(ctx context.Context, id, userID uint, admin bool, title, content string) error {
	query := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id)
	if !admin {
		query = query.Where("user_id = ?", userID)
	}

	result := query.Updates(map[string]interface{}{"title": title, "content": content})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *postRepository) DeleteOwned(ctx context.Context, id, userID uint, admin bool) error {
	query := r.db.WithContext(ctx).Where("id = ?", id)
	if !admin {
		query = query.Where("user_id = ?", userID)
	}

	result := query.Delete(&models.Post{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *postRepository) SetStatus(ctx context.Context, id uint, status string) error {
	result := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&count).Error
	return count, err
}
