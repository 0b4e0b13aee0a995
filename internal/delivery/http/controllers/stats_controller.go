package controllers

import (
	"log/slog"
	"net/http"

	"afairytale/internal/delivery/http/helpers"
	"afairytale/internal/domain"
)

type StatsController struct {
	Logger  *slog.Logger
	Service domain.StatsService
}

func NewStatsController(logger *slog.Logger, svc domain.StatsService) *StatsController {
	return &StatsController{
		Logger:  logger,
		Service: svc,
	}
}

// GetStats godoc
// @Summary Admin dashboard statistics
// @Description Resident count plus total/upcoming/past event counts. Upcoming and past are derived from the event date against the current time, independent of the status field.
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.DashboardStats
// @Failure 403 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /stats [get]
func (c *StatsController) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Service.GetDashboardStats(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch admin statistics")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, stats)
}
