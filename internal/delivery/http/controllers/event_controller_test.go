package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"afairytale/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	listErr    error
	getErr     error
	createErr  error
	updateErr  error
	deleteErr  error
	events     []*domain.Event
	lastCreate *domain.Event
	lastUpdate domain.EventUpdate
	updated    *domain.Event
}

func (f *fakeEventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.events == nil {
		return []*domain.Event{}, nil
	}
	return f.events, nil
}

func (f *fakeEventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	f.lastCreate = event
	if f.createErr != nil {
		return f.createErr
	}
	event.ID = "ev-created"
	return nil
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, id string, update domain.EventUpdate) (*domain.Event, error) {
	f.lastUpdate = update
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updated, nil
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, id string) error {
	return f.deleteErr
}

func TestEventController_CreateEvent(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
		checkEvent     func(t *testing.T, event domain.Event)
	}{
		{
			name:       "success",
			body:       `{"title":"Forest Gathering","date":"2026-09-12T20:00:00Z","location":"Old Mill","status":"upcoming","lineup":["Puck","Titania"]}`,
			wantStatus: http.StatusCreated,
			checkEvent: func(t *testing.T, event domain.Event) {
				assert.Equal(t, "ev-created", event.ID)
				assert.Equal(t, "Forest Gathering", event.Title)
				assert.Equal(t, domain.EventStatusUpcoming, event.Status)
				assert.Equal(t, []string{"Puck", "Titania"}, event.Lineup)
			},
		},
		{
			name:           "bad request invalid json",
			body:           `{invalid`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid",
		},
		{
			name:           "missing required fields",
			body:           `{"title":"","date":"","location":"","status":""}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "title is required",
		},
		{
			name:           "bad date format",
			body:           `{"title":"X","date":"next friday","location":"Y","status":"upcoming"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid date format",
		},
		{
			name:           "unknown status",
			body:           `{"title":"X","date":"2026-09-12T20:00:00Z","location":"Y","status":"postponed"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "status must be one of",
		},
		{
			name:           "service error",
			body:           `{"title":"X","date":"2026-09-12T20:00:00Z","location":"Y","status":"upcoming"}`,
			fakeErr:        errors.New("db down"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "Failed to create event",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{createErr: tt.fakeErr}
			ctrl := NewEventController(testLogger(), fake)
			req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.CreateEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantBodySubstr != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBodySubstr, "response body")
			}
			if tt.checkEvent != nil && tt.wantStatus == http.StatusCreated {
				var event domain.Event
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&event))
				tt.checkEvent(t, event)
			}
		})
	}
}

func TestEventController_CreateEvent_DefaultsLineup(t *testing.T) {
	fake := &fakeEventService{}
	ctrl := NewEventController(testLogger(), fake)
	body := `{"title":"Solo Set","date":"2026-01-01T22:00:00Z","location":"Cellar","status":"upcoming"}`
	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	ctrl.CreateEvent(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, fake.lastCreate)
	assert.NotNil(t, fake.lastCreate.Lineup, "omitted lineup should be an empty slice, not nil")
	assert.Empty(t, fake.lastCreate.Lineup)
}

func TestEventController_GetEvent(t *testing.T) {
	existing := &domain.Event{
		ID:       "ev-1",
		Title:    "Midsummer Rave",
		Date:     time.Date(2026, 6, 21, 22, 0, 0, 0, time.UTC),
		Location: "Clearing",
		Status:   domain.EventStatusUpcoming,
		Lineup:   []string{"Oberon"},
	}

	tests := []struct {
		name           string
		eventID        string
		getErr         error
		wantStatus     int
		wantBodySubstr string
	}{
		{name: "found", eventID: "ev-1", wantStatus: http.StatusOK, wantBodySubstr: "Midsummer Rave"},
		{name: "not found", eventID: "ev-missing", wantStatus: http.StatusNotFound, wantBodySubstr: "Event not found"},
		{name: "service error", eventID: "ev-1", getErr: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantBodySubstr: "Failed to fetch event"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{events: []*domain.Event{existing}, getErr: tt.getErr}
			ctrl := NewEventController(testLogger(), fake)
			req := httptest.NewRequest(http.MethodGet, "/events/"+tt.eventID, nil)
			req.SetPathValue("eventID", tt.eventID)
			rr := httptest.NewRecorder()

			ctrl.GetEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Contains(t, rr.Body.String(), tt.wantBodySubstr, "response body")
		})
	}
}

func TestEventController_ListEvents(t *testing.T) {
	t.Run("empty list is a JSON array", func(t *testing.T) {
		ctrl := NewEventController(testLogger(), &fakeEventService{})
		req := httptest.NewRequest(http.MethodGet, "/events", nil)
		rr := httptest.NewRecorder()

		ctrl.ListEvents(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		ctrl := NewEventController(testLogger(), &fakeEventService{listErr: errors.New("boom")})
		req := httptest.NewRequest(http.MethodGet, "/events", nil)
		rr := httptest.NewRecorder()

		ctrl.ListEvents(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "Failed to fetch events")
	})
}

func TestEventController_UpdateEvent(t *testing.T) {
	updated := &domain.Event{ID: "ev-1", Title: "Kept Title", Status: domain.EventStatusCancelled}

	tests := []struct {
		name           string
		body           string
		updateErr      error
		wantStatus     int
		wantBodySubstr string
		checkUpdate    func(t *testing.T, u domain.EventUpdate)
	}{
		{
			name:       "status only",
			body:       `{"status":"cancelled"}`,
			wantStatus: http.StatusOK,
			checkUpdate: func(t *testing.T, u domain.EventUpdate) {
				require.NotNil(t, u.Status)
				assert.Equal(t, domain.EventStatusCancelled, *u.Status)
				assert.Nil(t, u.Title, "omitted fields must not be sent to the service")
				assert.False(t, u.Image.Set, "omitted image must stay unset")
			},
		},
		{
			name:       "explicit null clears image",
			body:       `{"image":null}`,
			wantStatus: http.StatusOK,
			checkUpdate: func(t *testing.T, u domain.EventUpdate) {
				assert.True(t, u.Image.Set, "image: null must reach the service as a set field")
				assert.Nil(t, u.Image.Value, "image: null must clear the value")
				assert.False(t, u.Description.Set)
			},
		},
		{
			name:       "null and value mixed",
			body:       `{"ticketLink":null,"description":"moved to the big hall"}`,
			wantStatus: http.StatusOK,
			checkUpdate: func(t *testing.T, u domain.EventUpdate) {
				assert.True(t, u.TicketLink.Set)
				assert.Nil(t, u.TicketLink.Value)
				require.True(t, u.Description.Set)
				require.NotNil(t, u.Description.Value)
				assert.Equal(t, "moved to the big hall", *u.Description.Value)
			},
		},
		{
			name:           "empty body rejected",
			body:           `{}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "no update data provided",
		},
		{
			name:           "not found",
			body:           `{"status":"past"}`,
			updateErr:      domain.ErrNotFound,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "Event not found",
		},
		{
			name:           "service error",
			body:           `{"status":"past"}`,
			updateErr:      errors.New("boom"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "Failed to update event",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{updateErr: tt.updateErr, updated: updated}
			ctrl := NewEventController(testLogger(), fake)
			req := httptest.NewRequest(http.MethodPut, "/events/ev-1", bytes.NewBufferString(tt.body))
			req.SetPathValue("eventID", "ev-1")
			rr := httptest.NewRecorder()

			ctrl.UpdateEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantBodySubstr != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBodySubstr, "response body")
			}
			if tt.checkUpdate != nil {
				tt.checkUpdate(t, fake.lastUpdate)
			}
		})
	}
}

func TestEventController_DeleteEvent(t *testing.T) {
	tests := []struct {
		name       string
		deleteErr  error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusNoContent},
		{name: "not found", deleteErr: domain.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "service error", deleteErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewEventController(testLogger(), &fakeEventService{deleteErr: tt.deleteErr})
			req := httptest.NewRequest(http.MethodDelete, "/events/ev-1", nil)
			req.SetPathValue("eventID", "ev-1")
			rr := httptest.NewRecorder()

			ctrl.DeleteEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantStatus == http.StatusNoContent {
				assert.Empty(t, rr.Body.String(), "204 response must have no body")
			}
		})
	}
}
