package dto

import (
	"time"

	"github.com/jihoon-lab/coinboard-api/internal/models"
)

// CreateCommentRequest carries the body of a new comment.
type CreateCommentRequest struct {
	Content string `json:"content" form:"content" validate:"required"`
}

// CommentResponse is the API shape of a comment row.
type CommentResponse struct {
	ID        uint      `json:"id"`
	PostID    uint      `json:"post_id"`
	UserID    uint      `json:"user_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCommentResponse maps a comment row to its API shape.
func NewCommentResponse(comment models.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		Author:    comment.Author,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}
