package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/jihoon-lab/coinboard-api/internal/dto"
	"github.com/jihoon-lab/coinboard-api/internal/models"
	"github.com/jihoon-lab/coinboard-api/internal/repository"
)

// CommentService implements comment operations. Creation verifies the
// referenced post exists before writing.
type CommentService interface {
	ListByPost(ctx context.Context, postID uint) ([]dto.CommentResponse, error)
	Create(ctx context.Context, actor Actor, postID uint, payload dto.CreateCommentRequest) (dto.CommentResponse, error)
	Delete(ctx context.Context, actor Actor, id uint) error
}

type commentService struct {
	comments  repository.CommentRepository
	posts     repository.PostRepository
	activity  ActivityRecorder
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewCommentService constructs the comment service.
func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository, activity ActivityRecorder, validate *validator.Validate, logger zerolog.Logger) CommentService {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("br")

	return &commentService{
		comments:  comments,
		posts:     posts,
		activity:  activity,
		validator: validate,
		sanitizer: policy,
		logger:    logger.With().Str("component", "comment_service").Logger(),
	}
}

func (s *commentService) ListByPost(ctx context.Context, postID uint) ([]dto.CommentResponse, error) {
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, dto.NewCommentResponse(comment))
	}

	return responses, nil
}

func (s *commentService) Create(ctx context.Context, actor Actor, postID uint, payload dto.CreateCommentRequest) (dto.CommentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.CommentResponse{}, err
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CommentResponse{}, ErrNotFound
		}
		return dto.CommentResponse{}, err
	}

	comment := models.Comment{
		PostID:  postID,
		UserID:  actor.ID,
		Author:  actor.Nickname,
		Content: s.sanitizer.Sanitize(payload.Content),
	}

	if err := s.comments.Create(ctx, &comment); err != nil {
		s.logger.Error().Err(err).Msg("failed to create comment")
		return dto.CommentResponse{}, err
	}

	id := comment.ID
	go func() {
		if err := s.activity.Record(context.Background(), ActivityEntry{
			UserID:     actor.ID,
			Action:     models.ActionCreateComment,
			TargetType: models.TargetTypeComment,
			TargetID:   &id,
		}); err != nil {
			s.logger.Warn().Err(err).Msg("activity record dropped")
		}
	}()

	return dto.NewCommentResponse(comment), nil
}

func (s *commentService) Delete(ctx context.Context, actor Actor, id uint) error {
	err := s.comments.DeleteOwned(ctx, id, actor.ID, actor.IsAdmin())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
