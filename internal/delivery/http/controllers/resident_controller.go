package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"afairytale/internal/delivery/http/helpers"
	"afairytale/internal/domain"
)

type ResidentController struct {
	Logger  *slog.Logger
	Service domain.ResidentService
}

func NewResidentController(logger *slog.Logger, svc domain.ResidentService) *ResidentController {
	return &ResidentController{
		Logger:  logger,
		Service: svc,
	}
}

// ListResidents godoc
// @Summary List all residents
// @Description Returns all resident DJs ordered by name. Public.
// @Tags residents
// @Produce json
// @Success 200 {array} domain.Resident
// @Failure 500 {object} helpers.ErrorResponse
// @Router /residents [get]
func (c *ResidentController) ListResidents(w http.ResponseWriter, r *http.Request) {
	residents, err := c.Service.ListResidents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch residents")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, residents)
}

// GetResident godoc
// @Summary Get a resident by ID
// @Description Returns a single resident. Public.
// @Tags residents
// @Produce json
// @Param residentID path string true "Resident ID"
// @Success 200 {object} domain.Resident
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /residents/{residentID} [get]
func (c *ResidentController) GetResident(w http.ResponseWriter, r *http.Request) {
	residentID := r.PathValue("residentID")
	if residentID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Missing resident ID")
		return
	}
	resident, err := c.Service.GetResidentByID(r.Context(), residentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Resident not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch resident")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, resident)
}

// CreateResidentRequest is the request body for POST /residents.
type CreateResidentRequest struct {
	Name  string  `json:"name"`
	Role  string  `json:"role"`
	Bio   *string `json:"bio"`
	Image *string `json:"image"`
}

// Validate implements Validator.
func (c CreateResidentRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.Role == "" {
		errs = append(errs, "role is required")
	}
	return errs
}

// CreateResident godoc
// @Summary Create a new resident
// @Tags residents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param resident body CreateResidentRequest true "Resident data"
// @Success 201 {object} domain.Resident
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 403 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /residents [post]
func (c *ResidentController) CreateResident(w http.ResponseWriter, r *http.Request) {
	var req CreateResidentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	resident := &domain.Resident{
		Name:  req.Name,
		Role:  req.Role,
		Bio:   req.Bio,
		Image: req.Image,
	}
	if err := c.Service.CreateResident(r.Context(), resident); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to create resident")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, resident)
}

// UpdateResidentRequest is the request body for PUT /residents/{residentID}.
// All fields optional; omitted fields are unchanged. bio and image accept an
// explicit null to clear the stored value.
type UpdateResidentRequest struct {
	Name  *string                 `json:"name"`
	Role  *string                 `json:"role"`
	Bio   domain.Optional[string] `json:"bio"`
	Image domain.Optional[string] `json:"image"`
}

// Validate implements Validator.
func (u UpdateResidentRequest) Validate() []string {
	var errs []string
	if u.Name == nil && u.Role == nil && !u.Bio.Set && !u.Image.Set {
		return []string{"no update data provided"}
	}
	if u.Name != nil && *u.Name == "" {
		errs = append(errs, "name cannot be empty if provided")
	}
	if u.Role != nil && *u.Role == "" {
		errs = append(errs, "role cannot be empty if provided")
	}
	return errs
}

// UpdateResident godoc
// @Summary Update a resident
// @Description Partial update; omitted fields are unchanged.
// @Tags residents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param residentID path string true "Resident ID"
// @Param body body UpdateResidentRequest true "Fields to update (all optional)"
// @Success 200 {object} domain.Resident
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 403 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /residents/{residentID} [put]
func (c *ResidentController) UpdateResident(w http.ResponseWriter, r *http.Request) {
	residentID := r.PathValue("residentID")
	if residentID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Missing resident ID")
		return
	}
	var req UpdateResidentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	resident, err := c.Service.UpdateResident(r.Context(), residentID, domain.ResidentUpdate{
		Name:  req.Name,
		Role:  req.Role,
		Bio:   req.Bio,
		Image: req.Image,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Resident not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to update resident")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, resident)
}

// DeleteResident godoc
// @Summary Delete a resident
// @Tags residents
// @Security BearerAuth
// @Param residentID path string true "Resident ID"
// @Success 204 "No Content"
// @Failure 403 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /residents/{residentID} [delete]
func (c *ResidentController) DeleteResident(w http.ResponseWriter, r *http.Request) {
	residentID := r.PathValue("residentID")
	if residentID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Missing resident ID")
		return
	}
	if err := c.Service.DeleteResident(r.Context(), residentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Resident not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to delete resident")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
