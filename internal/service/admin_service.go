package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/jihoon-lab/coinboard-api/internal/dto"
	"github.com/jihoon-lab/coinboard-api/internal/models"
	"github.com/jihoon-lab/coinboard-api/internal/repository"
)

// dailyVisitWindow is how many trailing days the visit report covers.
const dailyVisitWindow = 30

// AdminService implements the moderation surface. Every operation is a
// direct statement; deleting a user deliberately does not cascade to
// their posts or comments.
type AdminService interface {
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
	ListPosts(ctx context.Context) ([]dto.PostResponse, error)
	ListUsers(ctx context.Context, search string) ([]dto.AdminUserResponse, error)
	UpdateRole(ctx context.Context, id uint, role string) error
	SuspendUser(ctx context.Context, id uint) error
	DeleteUser(ctx context.Context, id uint) error
	HidePost(ctx context.Context, id uint) error
	MakeNotice(ctx context.Context, id uint) error
	DeletePost(ctx context.Context, id uint) error
	ListComments(ctx context.Context) ([]dto.ModerationCommentResponse, error)
	DeleteComment(ctx context.Context, id uint) error
	ActivityLog(ctx context.Context) ([]dto.ActivityLogResponse, error)
	DailyVisits(ctx context.Context) ([]dto.DailyVisitResponse, error)
}

type adminService struct {
	users    repository.UserRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
	visitors repository.VisitorRepository
	activity ActivityService
	logger   zerolog.Logger
}

// NewAdminService constructs the moderation service.
func NewAdminService(users repository.UserRepository, posts repository.PostRepository, comments repository.CommentRepository, visitors repository.VisitorRepository, activity ActivityService, logger zerolog.Logger) AdminService {
	return &adminService{
		users:    users,
		posts:    posts,
		comments: comments,
		visitors: visitors,
		activity: activity,
		logger:   logger.With().Str("component", "admin_service").Logger(),
	}
}

func (s *adminService) Dashboard(ctx context.Context) (dto.DashboardResponse, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return dto.DashboardResponse{}, err
	}
	posts, err := s.posts.Count(ctx)
	if err != nil {
		return dto.DashboardResponse{}, err
	}
	comments, err := s.comments.Count(ctx)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	return dto.DashboardResponse{Users: users, Posts: posts, Comments: comments}, nil
}

func (s *adminService) ListPosts(ctx context.Context) ([]dto.PostResponse, error) {
	posts, err := s.posts.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, dto.NewPostResponse(post))
	}
	return responses, nil
}

func (s *adminService) ListUsers(ctx context.Context, search string) ([]dto.AdminUserResponse, error) {
	users, err := s.users.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AdminUserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.NewAdminUserResponse(user))
	}
	return responses, nil
}

func (s *adminService) UpdateRole(ctx context.Context, id uint, role string) error {
	role = strings.ToLower(strings.TrimSpace(role))
	if role != models.RoleUser && role != models.RoleAdmin {
		return ErrInvalidRole
	}

	return s.translateNotFound(s.users.UpdateRole(ctx, id, role))
}

// SuspendUser is idempotent: suspending an already-suspended member
// succeeds without error.
func (s *adminService) SuspendUser(ctx context.Context, id uint) error {
	return s.translateNotFound(s.users.UpdateStatus(ctx, id, models.UserStatusSuspended))
}

func (s *adminService) DeleteUser(ctx context.Context, id uint) error {
	return s.translateNotFound(s.users.Delete(ctx, id))
}

func (s *adminService) HidePost(ctx context.Context, id uint) error {
	return s.translateNotFound(s.posts.SetStatus(ctx, id, models.PostStatusHidden))
}

func (s *adminService) MakeNotice(ctx context.Context, id uint) error {
	return s.translateNotFound(s.posts.SetStatus(ctx, id, models.PostStatusNotice))
}

func (s *adminService) DeletePost(ctx context.Context, id uint) error {
	return s.translateNotFound(s.posts.Delete(ctx, id))
}

func (s *adminService) ListComments(ctx context.Context) ([]dto.ModerationCommentResponse, error) {
	rows, err := s.comments.ListModeration(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ModerationCommentResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, dto.ModerationCommentResponse{
			ID:        row.ID,
			Content:   row.Content,
			PostTitle: row.PostTitle,
			Author:    row.Author,
			CreatedAt: row.CreatedAt,
		})
	}
	return responses, nil
}

func (s *adminService) DeleteComment(ctx context.Context, id uint) error {
	return s.translateNotFound(s.comments.Delete(ctx, id))
}

func (s *adminService) ActivityLog(ctx context.Context) ([]dto.ActivityLogResponse, error) {
	return s.activity.List(ctx)
}

func (s *adminService) DailyVisits(ctx context.Context) ([]dto.DailyVisitResponse, error) {
	visits, err := s.visitors.ListDaily(ctx, dailyVisitWindow)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.DailyVisitResponse, 0, len(visits))
	for _, visit := range visits {
		responses = append(responses, dto.NewDailyVisitResponse(visit))
	}
	return responses, nil
}

func (s *adminService) translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
