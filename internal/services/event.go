package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"afairytale/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewEventService creates an EventService backed by the given repository.
func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// CreateEvent re-checks the rules the API layer already validated: title,
// location and status are required, status must be a known value, and the
// date must be set. The status is stored as asserted by the caller.
func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if event.Title == "" || event.Location == "" {
		return fmt.Errorf("%w: title and location are required", domain.ErrInvalidInput)
	}
	if event.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	}
	if !domain.ValidEventStatus(event.Status) {
		return fmt.Errorf("%w: invalid status %q", domain.ErrInvalidInput, event.Status)
	}
	if event.Lineup == nil {
		event.Lineup = []string{}
	}

	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, update domain.EventUpdate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if update.Title != nil && *update.Title == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrInvalidInput)
	}
	if update.Location != nil && *update.Location == "" {
		return nil, fmt.Errorf("%w: location cannot be empty", domain.ErrInvalidInput)
	}
	if update.Date != nil && update.Date.IsZero() {
		return nil, fmt.Errorf("%w: invalid date", domain.ErrInvalidInput)
	}
	if update.Status != nil && !domain.ValidEventStatus(*update.Status) {
		return nil, fmt.Errorf("%w: invalid status %q", domain.ErrInvalidInput, *update.Status)
	}

	event, err := s.eventRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
