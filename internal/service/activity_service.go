package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/jihoon-lab/coinboard-api/internal/dto"
	"github.com/jihoon-lab/coinboard-api/internal/models"
	"github.com/jihoon-lab/coinboard-api/internal/observability"
	"github.com/jihoon-lab/coinboard-api/internal/repository"
)

// ActivityEntry captures the details required to persist an audit entry.
type ActivityEntry struct {
	UserID     uint
	Action     string
	TargetType string
	TargetID   *uint
	Metadata   map[string]interface{}
}

// ActivityRecorder defines behaviour for recording audit entries.
// Content services depend on this narrow interface, not the full
// activity service.
type ActivityRecorder interface {
	Record(ctx context.Context, entry ActivityEntry) error
}

// ActivityService records and queries the append-only audit trail.
type ActivityService interface {
	ActivityRecorder
	List(ctx context.Context) ([]dto.ActivityLogResponse, error)
}

type activityService struct {
	repo   repository.ActivityLogRepository
	logger zerolog.Logger
}

// NewActivityService constructs the activity log service.
func NewActivityService(repo repository.ActivityLogRepository, logger zerolog.Logger) ActivityService {
	return &activityService{
		repo:   repo,
		logger: logger.With().Str("component", "activity_service").Logger(),
	}
}

func (s *activityService) Record(ctx context.Context, entry ActivityEntry) error {
	if strings.TrimSpace(entry.Action) == "" {
		return fmt.Errorf("action is required")
	}
	if entry.UserID == 0 {
		return fmt.Errorf("user id is required")
	}

	model := models.ActivityLog{
		UserID:     entry.UserID,
		Action:     strings.TrimSpace(entry.Action),
		TargetType: strings.TrimSpace(entry.TargetType),
		TargetID:   entry.TargetID,
		Metadata:   toJSONMap(entry.Metadata),
	}

	if err := s.repo.Create(ctx, &model); err != nil {
		observability.ActivityLogFailures().Inc()
		s.logger.Error().Err(err).Str("action", entry.Action).Msg("failed to persist activity log")
		return err
	}

	return nil
}

func (s *activityService) List(ctx context.Context) ([]dto.ActivityLogResponse, error) {
	rows, err := s.repo.ListWithNickname(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ActivityLogResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, dto.ActivityLogResponse{
			ID:         row.ID,
			UserID:     row.UserID,
			Nickname:   row.Nickname,
			Action:     row.Action,
			TargetType: row.TargetType,
			TargetID:   row.TargetID,
			CreatedAt:  row.CreatedAt,
		})
	}

	return responses, nil
}

func toJSONMap(metadata map[string]interface{}) datatypes.JSONMap {
	if metadata == nil {
		return datatypes.JSONMap{}
	}

	out := datatypes.JSONMap{}
	for key, value := range metadata {
		out[key] = value
	}
	return out
}
