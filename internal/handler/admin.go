// This file defines the admin refresh handler.  A refresh is not executed
// inline: the request is validated, published to the weekend.refresh queue
// and acknowledged with 202, leaving the scraping to the background
// consumer so the HTTP worker never blocks on dozens of upstream calls.

package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tedjkamau/BFI/internal/queue"
	queue_publisher "github.com/tedjkamau/BFI/internal/service"
)

// AdminHandler exposes operator-only endpoints behind the JWT middleware.
type AdminHandler struct{}

// refreshRequest is the JSON body of POST /v1/admin/refresh.
type refreshRequest struct {
	Year int `json:"year"`
	Week int `json:"week"`
}

// Refresh publishes a weekend refresh request.  Returns 202 with the
// queued event so the operator can correlate it with the audit log.
func (h *AdminHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Year < 2002 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid year: must be 2002 or later"})
	}
	if req.Week < 1 || req.Week > 53 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid week: must be 1-53"})
	}

	ev := queue.WeekendRefreshEvent{
		Year:        req.Year,
		Week:        req.Week,
		RequestedBy: fmt.Sprintf("%v", c.Get("subject")),
		RequestedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := queue_publisher.PublishWeekendRefresh(c.Request().Context(), ev); err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "refresh queue unavailable"})
	}
	return c.JSON(http.StatusAccepted, echo.Map{"queued": ev})
}
