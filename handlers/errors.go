package handlers

import (
	"casa_hotels_go/models"
	"casa_hotels_go/templates/pages"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler renders HTML error pages for browsers and JSON for the API
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Something went wrong on our side. Please try again in a moment."
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if code < http.StatusInternalServerError {
			message = fmt.Sprint(he.Message)
		}
	}
	if code >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}

	if strings.HasPrefix(c.Request().URL.Path, "/api/") || strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) {
		if jerr := c.JSON(code, map[string]string{"error": message}); jerr != nil {
			c.Logger().Error(jerr)
		}
		return
	}

	if c.Request().Method == http.MethodHead {
		if nerr := c.NoContent(code); nerr != nil {
			c.Logger().Error(nerr)
		}
		return
	}

	title := http.StatusText(code)
	if code == http.StatusNotFound {
		title = "Page not found"
		message = "The page you are looking for does not exist or has moved."
	}

	seo := models.DefaultSEO(title+" | "+getConfig(c).SiteName, message).WithNoIndex()
	page := pages.Error(pages.ErrorView{
		Page:    newPage(c, seo),
		Code:    code,
		Title:   title,
		Message: message,
	})
	if rerr := renderStatus(c, code, page); rerr != nil {
		c.Logger().Error(rerr)
	}
}
