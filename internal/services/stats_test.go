package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"afairytale/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_GetDashboardStats(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates all four counts", func(t *testing.T) {
		residentRepo := newFakeResidentRepo()
		eventRepo := newFakeEventRepo()
		svc := NewStatsService(residentRepo, eventRepo, time.Second)

		residentSvc := NewResidentService(residentRepo, time.Second)
		require.NoError(t, residentSvc.CreateResident(ctx, &domain.Resident{Name: "DJ Nova", Role: "Resident DJ"}))
		require.NoError(t, residentSvc.CreateResident(ctx, &domain.Resident{Name: "DJ Flux", Role: "Resident DJ"}))

		eventSvc := NewEventService(eventRepo, time.Second)
		past := validEvent()
		past.Date = time.Now().Add(-48 * time.Hour)
		past.Status = domain.EventStatusPast
		require.NoError(t, eventSvc.CreateEvent(ctx, past))
		future := validEvent()
		future.Date = time.Now().Add(48 * time.Hour)
		require.NoError(t, eventSvc.CreateEvent(ctx, future))
		// caller-set status does not affect the date-derived counts
		cancelledFuture := validEvent()
		cancelledFuture.Date = time.Now().Add(72 * time.Hour)
		cancelledFuture.Status = domain.EventStatusCancelled
		require.NoError(t, eventSvc.CreateEvent(ctx, cancelledFuture))

		stats, err := svc.GetDashboardStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.ResidentCount)
		assert.Equal(t, 2, stats.UpcomingEventCount)
		assert.Equal(t, 1, stats.PastEventCount)
		assert.Equal(t, 3, stats.TotalEventCount)
		assert.Equal(t, stats.TotalEventCount, stats.UpcomingEventCount+stats.PastEventCount)
	})

	t.Run("single failing count fails the aggregate", func(t *testing.T) {
		residentRepo := newFakeResidentRepo()
		residentRepo.err = errors.New("connection refused")
		eventRepo := newFakeEventRepo()
		svc := NewStatsService(residentRepo, eventRepo, time.Second)

		stats, err := svc.GetDashboardStats(ctx)
		require.Error(t, err)
		assert.Nil(t, stats)
	})

	t.Run("event count failure fails the aggregate", func(t *testing.T) {
		residentRepo := newFakeResidentRepo()
		eventRepo := newFakeEventRepo()
		eventRepo.err = errors.New("connection refused")
		svc := NewStatsService(residentRepo, eventRepo, time.Second)

		stats, err := svc.GetDashboardStats(ctx)
		require.Error(t, err)
		assert.Nil(t, stats)
	})
}
