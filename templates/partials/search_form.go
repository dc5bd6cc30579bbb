package partials

import (
	"casa_hotels_go/models"
	"casa_hotels_go/services/dates"
	"casa_hotels_go/templates/components"
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// MaxGuests is the largest party the search form offers
const MaxGuests = 8

// SearchFormView prefills the availability form
type SearchFormView struct {
	Search     dates.SearchSnapshot
	MinDate    string // earliest selectable check-in, hotel-local today
	Properties []models.Property
	// When set the property selector is hidden and this slug is submitted
	FixedPropertyID string
	Error           string
	CSRFToken       string
}

// SearchForm renders the check-in / check-out / guests form posting to /search
func SearchForm(v SearchFormView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		minCheckOut := dates.AddDays(v.MinDate, 1)

		h.Raw(`<form class="search-form" method="post" action="/search">`)
		h.Raw(`<input type="hidden" name="csrf"`).Attr("value", v.CSRFToken).Raw(">")
		if v.Error != "" {
			h.Raw(`<p class="form-error" role="alert">`).Text(v.Error).Raw("</p>")
		}

		h.Raw(`<label>Check-in<input type="date" name="check_in" required`).
			Attr("value", v.Search.CheckIn).Attr("min", v.MinDate).Raw("></label>")
		h.Raw(`<label>Check-out<input type="date" name="check_out" required`).
			Attr("value", v.Search.CheckOut).Attr("min", minCheckOut).Raw("></label>")

		h.Raw(`<label>Guests<select name="guests">`)
		for n := 1; n <= MaxGuests; n++ {
			h.Raw("<option").Attr("value", strconv.Itoa(n)).BoolAttr("selected", n == v.Search.Guests).Raw(">").
				Text(guestsLabel(n)).Raw("</option>")
		}
		h.Raw("</select></label>")

		if v.FixedPropertyID != "" {
			h.Raw(`<input type="hidden" name="property_id"`).Attr("value", v.FixedPropertyID).Raw(">")
		} else if len(v.Properties) > 0 {
			h.Raw(`<label>Hotel<select name="property_id"><option value="">All hotels</option>`)
			for _, p := range v.Properties {
				h.Raw("<option").Attr("value", p.Slug).BoolAttr("selected", p.Slug == v.Search.PropertyID).Raw(">").
					Text(p.Name).Raw("</option>")
			}
			h.Raw("</select></label>")
		}

		h.Raw(`<button type="submit" class="btn btn-primary">Check availability</button>`)
		h.Raw(`<p class="search-summary">`).Text(stayLabel(v.Search)).Raw("</p>")
		h.Raw("</form>")
		return h.Err()
	})
}
