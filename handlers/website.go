package handlers

import (
	"casa_hotels_go/templates/pages"

	"github.com/labstack/echo/v4"
)

func WebsiteAboutHandler(c echo.Context) error {
	cfg := getConfig(c)
	return render(c, pages.About(newPage(c, GetSEO(cfg, "about")), cfg.SiteName))
}

func WebsiteContactHandler(c echo.Context) error {
	cfg := getConfig(c)
	return render(c, pages.Contact(newPage(c, GetSEO(cfg, "contact")), cfg.SiteName))
}
