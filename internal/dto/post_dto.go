package dto

import (
	"time"

	"github.com/jihoon-lab/coinboard-api/internal/models"
)

// CreatePostRequest carries the fields of a new post. The image part of
// the multipart form is handled separately by the upload service.
type CreatePostRequest struct {
	Title   string `json:"title" form:"title" validate:"required,max=255"`
	Content string `json:"content" form:"content" validate:"required"`
}

// UpdatePostRequest carries the editable fields of an existing post.
type UpdatePostRequest struct {
	Title   string `json:"title" form:"title" validate:"required,max=255"`
	Content string `json:"content" form:"content" validate:"required"`
}

// PostResponse is the API shape of a post row.
type PostResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	UserID    uint      `json:"user_id"`
	Image     *string   `json:"image"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPostResponse maps a post row to its API shape.
func NewPostResponse(post models.Post) PostResponse {
	return PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Author:    post.Author,
		UserID:    post.UserID,
		Image:     post.Image,
		Status:    post.Status,
		CreatedAt: post.CreatedAt,
	}
}

// PostListResponse is the paginated board listing. Field names follow
// the contract the board front end already consumes.
type PostListResponse struct {
	Posts       []PostResponse `json:"posts"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
}

// PostDetailResponse bundles a post with its comments.
type PostDetailResponse struct {
	Post     PostResponse      `json:"post"`
	Comments []CommentResponse `json:"comments"`
}
