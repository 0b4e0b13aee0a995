package domain

import (
	"context"
	"time"
)

// Resident represents a recurring performer profile.
// swagger:model Resident
type Resident struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Bio       *string   `json:"bio"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewResident returns a new Resident with the given fields. ID is set by the repository on create.
func NewResident(name, role string, createdAt, updatedAt time.Time) *Resident {
	return &Resident{
		Name:      name,
		Role:      role,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// ResidentUpdate carries a partial update; unset fields are left unchanged.
// The nullable columns use Optional so an explicit null clears them.
type ResidentUpdate struct {
	Name  *string
	Role  *string
	Bio   Optional[string]
	Image Optional[string]
}

// Empty reports whether the update carries no fields at all.
func (u ResidentUpdate) Empty() bool {
	return u.Name == nil && u.Role == nil && !u.Bio.Set && !u.Image.Set
}

// ResidentRepository defines the interface for resident storage.
type ResidentRepository interface {
	List(ctx context.Context) ([]*Resident, error)
	GetByID(ctx context.Context, id string) (*Resident, error)
	Create(ctx context.Context, resident *Resident) error
	Update(ctx context.Context, id string, update ResidentUpdate) (*Resident, error)
	Delete(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int, error)
}

// ResidentService defines the business logic for resident management.
type ResidentService interface {
	ListResidents(ctx context.Context) ([]*Resident, error)
	GetResidentByID(ctx context.Context, id string) (*Resident, error)
	CreateResident(ctx context.Context, resident *Resident) error
	UpdateResident(ctx context.Context, id string, update ResidentUpdate) (*Resident, error)
	DeleteResident(ctx context.Context, id string) error
}
