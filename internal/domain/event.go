package domain

import (
	"context"
	"time"
)

// EventStatus is the caller-asserted lifecycle classification of an event.
// It is stored as given and never reconciled with the event date; the
// dashboard counts compare date to wall-clock time independently of it.
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusPast      EventStatus = "past"
	EventStatusCancelled EventStatus = "cancelled"
)

// ValidEventStatus reports whether s is one of the known status values.
func ValidEventStatus(s EventStatus) bool {
	switch s {
	case EventStatusUpcoming, EventStatusPast, EventStatusCancelled:
		return true
	}
	return false
}

// Event represents a scheduled occasion of the collective.
// swagger:model Event
type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Date        time.Time   `json:"date"`
	Location    string      `json:"location"`
	Description *string     `json:"description"`
	Image       *string     `json:"image"`
	Lineup      []string    `json:"lineup"`
	TicketLink  *string     `json:"ticketLink"`
	Status      EventStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(title string, date time.Time, location string, status EventStatus, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Title:     title,
		Date:      date,
		Location:  location,
		Lineup:    []string{},
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// EventUpdate carries a partial update; unset fields are left unchanged.
// The nullable columns use Optional so an explicit null clears them.
type EventUpdate struct {
	Title       *string
	Date        *time.Time
	Location    *string
	Description Optional[string]
	Image       Optional[string]
	Lineup      *[]string
	TicketLink  Optional[string]
	Status      *EventStatus
}

// Empty reports whether the update carries no fields at all.
func (u EventUpdate) Empty() bool {
	return u.Title == nil && u.Date == nil && u.Location == nil &&
		!u.Description.Set && !u.Image.Set && u.Lineup == nil &&
		!u.TicketLink.Set && u.Status == nil
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, id string, update EventUpdate) (*Event, error)
	Delete(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int, error)
	// CountUpcoming counts events whose date is at or after the current
	// wall-clock time, regardless of the stored status field.
	CountUpcoming(ctx context.Context) (int, error)
	// CountPast counts events whose date is strictly before the current
	// wall-clock time, regardless of the stored status field.
	CountPast(ctx context.Context) (int, error)
}

// EventService defines the business logic for event management.
type EventService interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEventByID(ctx context.Context, id string) (*Event, error)
	CreateEvent(ctx context.Context, event *Event) error
	UpdateEvent(ctx context.Context, id string, update EventUpdate) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
}
