package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/jihoon-lab/coinboard-api/internal/models"
)

// ModerationComment is a comment row joined with its post title and the
// commenter's current nickname for the moderation queue.
type ModerationComment struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	PostTitle string    `json:"post_title"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentRepository manages comment persistence. DeleteOwned follows
// the same ownership-in-the-statement convention as PostRepository.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByPost(ctx context.Context, postID uint) ([]models.Comment, error)
	DeleteOwned(ctx context.Context, id, userID uint, admin bool) error
	Delete(ctx context.Context, id uint) error
	ListModeration(ctx context.Context) ([]ModerationComment, error)
	Count(ctx context.Context) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository constructs a comment repository implementation.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) DeleteOwned(ctx context.Context, id, userID uint, admin bool) error {
	query := r.db.WithContext(ctx).Where("id = ?", id)
	if !admin {
		query = query.Where("user_id = ?", userID)
	}

	result := query.Delete(&models.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *commentRepository) ListModeration(ctx context.Context) ([]ModerationComment, error) {
	var rows []ModerationComment
	err := r.db.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.content, comments.created_at, posts.title AS post_title, users.nickname AS author").
		Joins("JOIN posts ON comments.post_id = posts.id").
		Joins("JOIN users ON comments.user_id = users.id").
		Order("comments.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *commentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Comment{}).Count(&count).Error
	return count, err
}
