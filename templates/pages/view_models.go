package pages

import (
	"casa_hotels_go/models"
	"casa_hotels_go/services/dates"
	"casa_hotels_go/templates/components"
	"casa_hotels_go/templates/partials"
)

// HomeView holds the data for the landing page
type HomeView struct {
	Page       components.Page
	SearchForm partials.SearchFormView
	Properties []models.Property
}

// PropertiesView holds the data for the catalogue page
type PropertiesView struct {
	Page       components.Page
	SearchForm partials.SearchFormView
	Properties []models.Property
	Search     dates.SearchSnapshot
}

// PropertyDetailView holds the data for a single property page
type PropertyDetailView struct {
	Page        components.Page
	Property    models.Property
	Description string // sanitized HTML
	SearchForm  partials.SearchFormView
	Search      dates.SearchSnapshot
	BookingPath string
}

// ErrorView describes a friendly error page
type ErrorView struct {
	Page    components.Page
	Code    int
	Title   string
	Message string
}
