package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/jihoon-lab/coinboard-api/internal/models"
)

// ActivityEntryRow is an audit entry joined with the actor's nickname.
type ActivityEntryRow struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	Nickname   string    `json:"nickname"`
	Action     string    `json:"action"`
	TargetType string    `json:"target_type"`
	TargetID   *uint     `json:"target_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ActivityLogRepository persists the append-only audit trail.
type ActivityLogRepository interface {
	Create(ctx context.Context, entry *models.ActivityLog) error
	ListWithNickname(ctx context.Context) ([]ActivityEntryRow, error)
}

type activityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository constructs the activity log repository.
func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Create(ctx context.Context, entry *models.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *activityLogRepository) ListWithNickname(ctx context.Context) ([]ActivityEntryRow, error) {
	var rows []ActivityEntryRow
	err := r.db.WithContext(ctx).
		Table("activity_logs").
		Select("activity_logs.id, activity_logs.user_id, activity_logs.action, activity_logs.target_type, activity_logs.target_id, activity_logs.created_at, users.nickname").
		Joins("JOIN users ON activity_logs.user_id = users.id").
		Order("activity_logs.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
