package service

import (
	"context"
	"errors"
	"math"
	"mime/multipart"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/jihoon-lab/coinboard-api/internal/dto"
	"github.com/jihoon-lab/coinboard-api/internal/models"
	"github.com/jihoon-lab/coinboard-api/internal/repository"
)

// listPageSize is the fixed board page size.
const listPageSize = 10

// Actor is the authenticated identity performing a content operation.
type Actor struct {
	ID       uint
	Nickname string
	Role     string
}

// IsAdmin reports whether the actor may bypass ownership predicates.
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// PostService implements the board's post operations.
type PostService interface {
	List(ctx context.Context, search string, page int) (dto.PostListResponse, error)
	Get(ctx context.Context, id uint) (dto.PostResponse, error)
	GetWithComments(ctx context.Context, id uint) (dto.PostDetailResponse, error)
	Create(ctx context.Context, actor Actor, payload dto.CreatePostRequest, image *multipart.FileHeader) (dto.PostResponse, error)
	Update(ctx context.Context, actor Actor, id uint, payload dto.UpdatePostRequest) error
	Delete(ctx context.Context, actor Actor, id uint) error
}

type postService struct {
	posts     repository.PostRepository
	comments  repository.CommentRepository
	uploads   UploadService
	activity  ActivityRecorder
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewPostService constructs the post service.
func NewPostService(posts repository.PostRepository, comments repository.CommentRepository, uploads UploadService, activity ActivityRecorder, validate *validator.Validate, logger zerolog.Logger) PostService {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("br")

	return &postService{
		posts:     posts,
		comments:  comments,
		uploads:   uploads,
		activity:  activity,
		validator: validate,
		sanitizer: policy,
		logger:    logger.With().Str("component", "post_service").Logger(),
	}
}

func (s *postService) List(ctx context.Context, search string, page int) (dto.PostListResponse, error) {
	if page <= 0 {
		page = 1
	}

	posts, total, err := s.posts.List(ctx, repository.PostFilter{
		Search:   strings.TrimSpace(search),
		Page:     page,
		PageSize: listPageSize,
	})
	if err != nil {
		return dto.PostListResponse{}, err
	}

	responses := make([]dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, dto.NewPostResponse(post))
	}

	return dto.PostListResponse{
		Posts:       responses,
		TotalPages:  int(math.Ceil(float64(total) / float64(listPageSize))),
		CurrentPage: page,
	}, nil
}

func (s *postService) Get(ctx context.Context, id uint) (dto.PostResponse, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PostResponse{}, ErrNotFound
		}
		return dto.PostResponse{}, err
	}

	return dto.NewPostResponse(post), nil
}

func (s *postService) GetWithComments(ctx context.Context, id uint) (dto.PostDetailResponse, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return dto.PostDetailResponse{}, err
	}

	comments, err := s.comments.ListByPost(ctx, id)
	if err != nil {
		return dto.PostDetailResponse{}, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, dto.NewCommentResponse(comment))
	}

	return dto.PostDetailResponse{Post: post, Comments: responses}, nil
}

func (s *postService) Create(ctx context.Context, actor Actor, payload dto.CreatePostRequest, image *multipart.FileHeader) (dto.PostResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.PostResponse{}, err
	}

	post := models.Post{
		Title:   strings.TrimSpace(payload.Title),
		Content: s.sanitizer.Sanitize(payload.Content),
		Author:  actor.Nickname,
		UserID:  actor.ID,
		Status:  models.PostStatusVisible,
	}

	if image != nil {
		path, err := s.uploads.Store(ctx, image)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to store post image")
			return dto.PostResponse{}, err
		}
		post.Image = &path
	}

	if err := s.posts.Create(ctx, &post); err != nil {
		s.logger.Error().Err(err).Msg("failed to create post")
		return dto.PostResponse{}, err
	}

	s.recordActivity(actor.ID, models.ActionCreatePost, models.TargetTypePost, post.ID)

	return dto.NewPostResponse(post), nil
}

func (s *postService) Update(ctx context.Context, actor Actor, id uint, payload dto.UpdatePostRequest) error {
	if err := s.validator.Struct(payload); err != nil {
		return err
	}

	title := strings.TrimSpace(payload.Title)
	content := s.sanitizer.Sanitize(payload.Content)

	err := s.posts.UpdateOwned(ctx, id, actor.ID, actor.IsAdmin(), title, content)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *postService) Delete(ctx context.Context, actor Actor, id uint) error {
	err := s.posts.DeleteOwned(ctx, id, actor.ID, actor.IsAdmin())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// recordActivity appends the audit entry off the request path. The
// primary response never waits on or fails with the audit write.
func (s *postService) recordActivity(userID uint, action, targetType string, targetID uint) {
	id := targetID
	go func() {
		if err := s.activity.Record(context.Background(), ActivityEntry{
			UserID:     userID,
			Action:     action,
			TargetType: targetType,
			TargetID:   &id,
		}); err != nil {
			s.logger.Warn().Err(err).Str("action", action).Msg("activity record dropped")
		}
	}()
}
