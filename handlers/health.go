package handlers

import (
	"casa_hotels_go/db"
	"casa_hotels_go/services"
	"casa_hotels_go/services/dates"
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports database reachability and the server's calendar day
func HealthHandler(c echo.Context) error {
	status := map[string]interface{}{
		"status":   "ok",
		"today":    dates.Today(),
		"database": "ok",
		"storage":  "unconfigured",
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		status["status"] = "degraded"
		status["database"] = err.Error()
		return c.JSON(http.StatusServiceUnavailable, status)
	}

	if services.Storage != nil && services.Storage.IsConfigured() {
		status["storage"] = "ok"
	}
	return c.JSON(http.StatusOK, status)
}
