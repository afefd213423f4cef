package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jihoon-lab/coinboard-api/internal/models"
)

// VisitorRepository records per-day unique visits and serves the daily
// aggregates. Dedup relies on the store's conflict handling on the
// (ip_address, visit_date) key, not application-level coordination.
type VisitorRepository interface {
	// RecordVisit inserts the (ip, date) row if absent and bumps the
	// daily counter only when the insert landed. Returns true for a
	// first visit of the day.
	RecordVisit(ctx context.Context, ip, date string) (bool, error)
	ListDaily(ctx context.Context, limit int) ([]models.DailyVisit, error)
}

type visitorRepository struct {
	db *gorm.DB
}

// NewVisitorRepository constructs a visitor repository implementation.
func NewVisitorRepository(db *gorm.DB) VisitorRepository {
	return &visitorRepository{db: db}
}

func (r *visitorRepository) RecordVisit(ctx context.Context, ip, date string) (bool, error) {
	insert := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ip_address"}, {Name: "visit_date"}},
		DoNothing: true,
	}).Create(&models.VisitorLog{IPAddress: ip, VisitDate: date})
	if insert.Error != nil {
		return false, insert.Error
	}
	if insert.RowsAffected == 0 {
		return false, nil
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "visit_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"visit_count": gorm.Expr("daily_visits.visit_count + 1"),
		}),
	}).Create(&models.DailyVisit{VisitDate: date, VisitCount: 1}).Error
	if err != nil {
		return true, err
	}

	return true, nil
}

func (r *visitorRepository) ListDaily(ctx context.Context, limit int) ([]models.DailyVisit, error) {
	if limit <= 0 {
		limit = 30
	}

	var visits []models.DailyVisit
	err := r.db.WithContext(ctx).
		Order("visit_date DESC").
		Limit(limit).
		Find(&visits).Error
	return visits, err
}
