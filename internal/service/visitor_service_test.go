package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jihoon-lab/coinboard-api/internal/models"
)

type visitorRepoStub struct {
	lastIP   string
	lastDate string
	fresh    bool
	err      error
	daily    []models.DailyVisit
}

func (r *visitorRepoStub) RecordVisit(ctx context.Context, ip, date string) (bool, error) {
	r.lastIP = ip
	r.lastDate = date
	return r.fresh, r.err
}

func (r *visitorRepoStub) ListDaily(ctx context.Context, limit int) ([]models.DailyVisit, error) {
	return r.daily, nil
}

func TestVisitorServiceRecord(t *testing.T) {
	repo := &visitorRepoStub{fresh: true}
	svc := NewVisitorService(repo, zerolog.Nop())
	svc.(*visitorService).now = func() time.Time {
		return time.Date(2024, 3, 1, 23, 59, 0, 0, time.Local)
	}

	require.NoError(t, svc.Record(context.Background(), "203.0.113.7"))
	require.Equal(t, "203.0.113.7", repo.lastIP)
	require.Equal(t, "2024-03-01", repo.lastDate)
}

func TestVisitorServiceRecordEmptyIP(t *testing.T) {
	repo := &visitorRepoStub{}
	svc := NewVisitorService(repo, zerolog.Nop())

	require.NoError(t, svc.Record(context.Background(), ""))
	require.Empty(t, repo.lastDate, "empty addresses are not recorded")
}

func TestVisitorServiceRecordError(t *testing.T) {
	repo := &visitorRepoStub{err: errors.New("db down")}
	svc := NewVisitorService(repo, zerolog.Nop())

	require.Error(t, svc.Record(context.Background(), "203.0.113.7"))
}
