package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"afairytale/internal/domain"
)

type residentService struct {
	residentRepo   domain.ResidentRepository
	contextTimeout time.Duration
}

// NewResidentService creates a ResidentService backed by the given repository.
func NewResidentService(residentRepo domain.ResidentRepository, timeout time.Duration) domain.ResidentService {
	return &residentService{
		residentRepo:   residentRepo,
		contextTimeout: timeout,
	}
}

func (s *residentService) ListResidents(ctx context.Context) ([]*domain.Resident, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	residents, err := s.residentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list residents: %w", err)
	}
	if residents == nil {
		residents = []*domain.Resident{}
	}
	return residents, nil
}

func (s *residentService) GetResidentByID(ctx context.Context, id string) (*domain.Resident, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	resident, err := s.residentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get resident: %w", err)
	}
	return resident, nil
}

func (s *residentService) CreateResident(ctx context.Context, resident *domain.Resident) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if resident.Name == "" || resident.Role == "" {
		return fmt.Errorf("%w: name and role are required", domain.ErrInvalidInput)
	}

	resident.CreatedAt = time.Now()
	resident.UpdatedAt = time.Now()

	if err := s.residentRepo.Create(ctx, resident); err != nil {
		return fmt.Errorf("create resident: %w", err)
	}
	return nil
}

func (s *residentService) UpdateResident(ctx context.Context, id string, update domain.ResidentUpdate) (*domain.Resident, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if update.Name != nil && *update.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrInvalidInput)
	}
	if update.Role != nil && *update.Role == "" {
		return nil, fmt.Errorf("%w: role cannot be empty", domain.ErrInvalidInput)
	}

	resident, err := s.residentRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update resident: %w", err)
	}
	return resident, nil
}

func (s *residentService) DeleteResident(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.residentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete resident: %w", err)
	}
	return nil
}
