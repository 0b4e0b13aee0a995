package controllers

import (
	"log/slog"
	"net/http"

	"afairytale/internal/delivery/http/helpers"
	"afairytale/internal/domain"
)

// maxUploadBytes caps a single image upload.
const maxUploadBytes = 10 << 20

type UploadController struct {
	Logger *slog.Logger
	Store  domain.ImageStore
}

func NewUploadController(logger *slog.Logger, store domain.ImageStore) *UploadController {
	return &UploadController{
		Logger: logger,
		Store:  store,
	}
}

// UploadResponse is the success body for POST /upload.
type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

// Upload godoc
// @Summary Upload an image
// @Description Accepts a single multipart file under the "file" field and returns its public reference path. The file is kept even if no record ever references it.
// @Tags upload
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 201 {object} UploadResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 403 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /upload [post]
func (c *UploadController) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "No file uploaded.")
		return
	}
	defer file.Close()

	path, err := c.Store.Save(header.Filename, file)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Error saving file.")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, UploadResponse{ImageURL: path})
}
