package models

import "time"

// VisitDateLayout is the calendar-date format used to key visitor rows.
const VisitDateLayout = "2006-01-02"

// VisitorLog records one row per distinct (ip, day). The composite
// unique index makes the insert-if-absent race safe: concurrent
// requests from the same address resolve at the store, not in the
// application.
type VisitorLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	IPAddress string    `gorm:"size:45;not null;uniqueIndex:idx_visitor_ip_date" json:"ip_address"`
	VisitDate string    `gorm:"size:10;not null;uniqueIndex:idx_visitor_ip_date" json:"visit_date"`
	CreatedAt time.Time `json:"created_at"`
}

// DailyVisit is the per-day unique visitor counter, upserted at most
// once per new visitor per day.
type DailyVisit struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	VisitDate  string    `gorm:"size:10;not null;uniqueIndex" json:"visit_date"`
	VisitCount int64     `gorm:"not null;default:0" json:"visit_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
