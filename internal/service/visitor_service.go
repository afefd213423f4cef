package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jihoon-lab/coinboard-api/internal/models"
	"github.com/jihoon-lab/coinboard-api/internal/observability"
	"github.com/jihoon-lab/coinboard-api/internal/repository"
)

// VisitorService records per-day unique visits. Failures are logged
// and counted but never propagated to the response path.
type VisitorService interface {
	Record(ctx context.Context, ip string) error
}

type visitorService struct {
	visitors repository.VisitorRepository
	logger   zerolog.Logger
	now      func() time.Time
}

// NewVisitorService constructs the visitor logging service.
func NewVisitorService(visitors repository.VisitorRepository, logger zerolog.Logger) VisitorService {
	return &visitorService{
		visitors: visitors,
		logger:   logger.With().Str("component", "visitor_service").Logger(),
		now:      time.Now,
	}
}

func (s *visitorService) Record(ctx context.Context, ip string) error {
	if ip == "" {
		return nil
	}

	date := s.now().Format(models.VisitDateLayout)

	newVisitor, err := s.visitors.RecordVisit(ctx, ip, date)
	if err != nil {
		observability.VisitorLogFailures().Inc()
		s.logger.Warn().Err(err).Str("date", date).Msg("failed to record visit")
		return err
	}

	if newVisitor {
		observability.UniqueVisitors().Inc()
	}

	return nil
}
