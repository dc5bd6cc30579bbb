package handlers

import (
	"casa_hotels_go/templates/pages"

	"github.com/labstack/echo/v4"
)

// HomeHandler renders the landing page with the search form prefilled from
// the visitor's last search
func HomeHandler(c echo.Context) error {
	cfg := getConfig(c)
	properties := activeProperties(c)
	search := currentSearch(c)

	return render(c, pages.Home(pages.HomeView{
		Page:       newPage(c, GetSEO(cfg, "home")),
		SearchForm: searchFormView(c, search, properties),
		Properties: properties,
	}))
}
