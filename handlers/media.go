package handlers

import (
	"casa_hotels_go/services"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// MediaHandler streams an uploaded photo from the configured storage
func MediaHandler(c echo.Context) error {
	key := strings.TrimPrefix(c.Param("*"), "/")
	if key == "" || strings.Contains(key, "..") {
		return echo.NewHTTPError(http.StatusNotFound, "File not found")
	}
	if services.Storage == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Storage unavailable")
	}

	reader, contentType, err := services.Storage.Get(c.Request().Context(), key)
	if err != nil {
		c.Logger().Warnf("Media lookup failed for %s: %v", key, err)
		return echo.NewHTTPError(http.StatusNotFound, "File not found")
	}
	defer reader.Close()

	c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	c.Response().Header().Set(echo.HeaderContentType, contentType)
	c.Response().WriteHeader(http.StatusOK)
	_, err = io.Copy(c.Response().Writer, reader)
	return err
}
