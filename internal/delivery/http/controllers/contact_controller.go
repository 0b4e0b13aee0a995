package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"afairytale/internal/delivery/http/helpers"
	"afairytale/internal/domain"
)

type ContactController struct {
	Logger  *slog.Logger
	Service domain.ContactService
}

func NewContactController(logger *slog.Logger, svc domain.ContactService) *ContactController {
	return &ContactController{
		Logger:  logger,
		Service: svc,
	}
}

// ContactRequest is the request body for POST /contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate implements Validator.
func (c ContactRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	email := strings.TrimSpace(strings.ToLower(c.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	if strings.TrimSpace(c.Message) == "" {
		errs = append(errs, "message is required")
	}
	return errs
}

// ContactResponse is the success body for POST /contact.
type ContactResponse struct {
	Status string `json:"status"`
}

// SendMessage godoc
// @Summary Send a contact-form message
// @Description Delivers the message to the collective's inbox. Public.
// @Tags contact
// @Accept json
// @Produce json
// @Param message body ContactRequest true "Message"
// @Success 200 {object} ContactResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /contact [post]
func (c *ContactController) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	data := &domain.ContactMessageEmailData{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(strings.ToLower(req.Email)),
		Message: req.Message,
	}
	if err := c.Service.SendContactMessage(r.Context(), data); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to send message")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ContactResponse{Status: "sent"})
}
