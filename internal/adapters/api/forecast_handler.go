package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherforecast.app/pkg/errors"
)

const defaultTrigger = "manual"

// RefreshRequest is the optional body of POST /api/refresh
type RefreshRequest struct {
	Trigger string `json:"trigger" binding:"omitempty,trigger"`
}

// RefreshResponse acknowledges a started refresh cycle
type RefreshResponse struct {
	Message string `json:"message"`
	Trigger string `json:"trigger"`
}

// getForecast handles GET /api/forecast requests
func (s *HTTPServerAdapter) getForecast(c *gin.Context) {
	state := s.display.Current()

	if state.Forecast == nil {
		if state.Error != "" {
			s.handleError(c, errors.NewDisplayError(state.Error, nil))
			return
		}
		s.handleError(c, errors.NewNotFoundError("No forecast available yet"))
		return
	}

	c.JSON(http.StatusOK, state)
}

// triggerRefresh handles POST /api/refresh requests
func (s *HTTPServerAdapter) triggerRefresh(c *gin.Context) {
	var req RefreshRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			slog.Error("Request binding error", "error", err)
			s.handleError(c, errors.NewValidationError("Invalid request format"))
			return
		}
	}
	if req.Trigger == "" {
		req.Trigger = defaultTrigger
	}

	slog.Debug("Refresh requested", "trigger", req.Trigger)
	s.controller.Refresh()

	c.JSON(http.StatusAccepted, RefreshResponse{Message: "Refresh started", Trigger: req.Trigger})
}

// getRefreshStatus handles GET /api/refresh/status requests
func (s *HTTPServerAdapter) getRefreshStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.controller.State())
}
