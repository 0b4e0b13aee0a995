package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"afairytale/internal/domain"
)

type statsService struct {
	residentRepo   domain.ResidentRepository
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewStatsService creates a StatsService computing dashboard counts from the
// resident and event repositories.
func NewStatsService(residentRepo domain.ResidentRepository, eventRepo domain.EventRepository, timeout time.Duration) domain.StatsService {
	return &statsService{
		residentRepo:   residentRepo,
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

// GetDashboardStats runs the four count queries concurrently. Any failing
// count fails the whole aggregate. The counts are four independent queries
// and may observe different points in time under concurrent writes.
func (s *statsService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	stats := &domain.DashboardStats{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.residentRepo.CountAll(ctx)
		if err != nil {
			return fmt.Errorf("count residents: %w", err)
		}
		stats.ResidentCount = count
		return nil
	})
	g.Go(func() error {
		count, err := s.eventRepo.CountUpcoming(ctx)
		if err != nil {
			return fmt.Errorf("count upcoming events: %w", err)
		}
		stats.UpcomingEventCount = count
		return nil
	})
	g.Go(func() error {
		count, err := s.eventRepo.CountPast(ctx)
		if err != nil {
			return fmt.Errorf("count past events: %w", err)
		}
		stats.PastEventCount = count
		return nil
	})
	g.Go(func() error {
		count, err := s.eventRepo.CountAll(ctx)
		if err != nil {
			return fmt.Errorf("count events: %w", err)
		}
		stats.TotalEventCount = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
