package dto

import (
	"time"

	"github.com/jihoon-lab/coinboard-api/internal/models"
)

// AdminUserResponse is the member listing row shown to moderators.
// The password hash is never serialized.
type AdminUserResponse struct {
	ID        uint      `json:"id"`
	Nickname  string    `json:"nickname"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAdminUserResponse maps a user row to its moderation shape.
func NewAdminUserResponse(user models.User) AdminUserResponse {
	return AdminUserResponse{
		ID:        user.ID,
		Nickname:  user.Nickname,
		Email:     user.Email,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	}
}

// UpdateRoleRequest carries the new role for a member.
type UpdateRoleRequest struct {
	Role string `json:"role" form:"role" validate:"required,oneof=user admin"`
}

// ModerationCommentResponse is a comment joined with its post title and
// author nickname for the moderation queue.
type ModerationCommentResponse struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	PostTitle string    `json:"postTitle"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityLogResponse is an audit entry joined with the actor nickname.
type ActivityLogResponse struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	Nickname   string    `json:"nickname"`
	Action     string    `json:"action"`
	TargetType string    `json:"target_type"`
	TargetID   *uint     `json:"target_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// DailyVisitResponse is one day's unique visitor counter.
type DailyVisitResponse struct {
	VisitDate  string `json:"visit_date"`
	VisitCount int64  `json:"visit_count"`
}

// NewDailyVisitResponse maps a counter row to its API shape.
func NewDailyVisitResponse(visit models.DailyVisit) DailyVisitResponse {
	return DailyVisitResponse{
		VisitDate:  visit.VisitDate,
		VisitCount: visit.VisitCount,
	}
}

// DashboardResponse is the admin landing summary.
type DashboardResponse struct {
	Users    int64 `json:"users"`
	Posts    int64 `json:"posts"`
	Comments int64 `json:"comments"`
}
