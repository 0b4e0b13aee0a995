package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"afairytale/internal/delivery/http/helpers"
	"afairytale/internal/domain"
)

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List all events
// @Description Returns all events ordered by date, newest first. Public.
// @Tags events
// @Produce json
// @Success 200 {array} domain.Event
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Description Returns a single event. Public.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Missing event ID")
		return
	}
	event, err := c.Service.GetEventByID(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch event")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Lineup      []string `json:"lineup"`
	TicketLink  *string  `json:"ticketLink"`
	Status      string   `json:"status"`
}

// Validate implements Validator. Returns error messages for required and format rules.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if c.Title == "" {
		errs = append(errs, "title is required")
	}
	if c.Location == "" {
		errs = append(errs, "location is required")
	}
	if c.Date == "" {
		errs = append(errs, "date is required")
	} else if _, err := time.Parse(time.RFC3339, c.Date); err != nil {
		errs = append(errs, "invalid date format, expected RFC 3339")
	}
	if c.Status == "" {
		errs = append(errs, "status is required")
	} else if !domain.ValidEventStatus(domain.EventStatus(c.Status)) {
		errs = append(errs, "status must be one of: upcoming, past, cancelled")
	}
	return errs
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Creates an event. The status is stored as given; it is not derived from the date.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 403 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "invalid date format, expected RFC 3339")
		return
	}
	now := time.Now()
	event := domain.NewEvent(req.Title, date, req.Location, domain.EventStatus(req.Status), now, now)
	event.Description = req.Description
	event.Image = req.Image
	event.TicketLink = req.TicketLink
	if req.Lineup != nil {
		event.Lineup = req.Lineup
	}
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to create event")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, event)
}

// UpdateEventRequest is the request body for PUT /events/{eventID}. All
// fields optional; omitted fields are unchanged. The nullable fields accept
// an explicit null to clear the stored value, so `{"image": null}` removes
// the image while leaving the key out keeps it.
type UpdateEventRequest struct {
	Title       *string                 `json:"title"`
	Date        *string                 `json:"date"`
	Location    *string                 `json:"location"`
	Description domain.Optional[string] `json:"description"`
	Image       domain.Optional[string] `json:"image"`
	Lineup      *[]string               `json:"lineup"`
	TicketLink  domain.Optional[string] `json:"ticketLink"`
	Status      *string                 `json:"status"`
}

// Validate implements Validator.
func (u UpdateEventRequest) Validate() []string {
	var errs []string
	if u.Title == nil && u.Date == nil && u.Location == nil && !u.Description.Set &&
		!u.Image.Set && u.Lineup == nil && !u.TicketLink.Set && u.Status == nil {
		return []string{"no update data provided"}
	}
	if u.Title != nil && *u.Title == "" {
		errs = append(errs, "title cannot be empty if provided")
	}
	if u.Location != nil && *u.Location == "" {
		errs = append(errs, "location cannot be empty if provided")
	}
	if u.Date != nil {
		if _, err := time.Parse(time.RFC3339, *u.Date); err != nil {
			errs = append(errs, "invalid date format, expected RFC 3339")
		}
	}
	if u.Status != nil && !domain.ValidEventStatus(domain.EventStatus(*u.Status)) {
		errs = append(errs, "status must be one of: upcoming, past, cancelled")
	}
	return errs
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Partial update; omitted fields are unchanged.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param body body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 403 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{eventID} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Missing event ID")
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	update := domain.EventUpdate{
		Title:       req.Title,
		Location:    req.Location,
		Description: req.Description,
		Image:       req.Image,
		Lineup:      req.Lineup,
		TicketLink:  req.TicketLink,
	}
	if req.Date != nil {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, "invalid date format, expected RFC 3339")
			return
		}
		update.Date = &date
	}
	if req.Status != nil {
		status := domain.EventStatus(*req.Status)
		update.Status = &status
	}
	event, err := c.Service.UpdateEvent(r.Context(), eventID, update)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to update event")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Hard-deletes the event. The image file it referenced, if any, is left in place.
// @Tags events
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 204 "No Content"
// @Failure 403 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Missing event ID")
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to delete event")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
