package pages

import (
	"casa_hotels_go/services/dates"
	"casa_hotels_go/templates/components"
	"casa_hotels_go/templates/partials"
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Properties renders the catalogue with the visitor's current search
func Properties(v PropertiesView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw(`<section class="page-header"><h1>Our Hotels</h1>`)
		h.Component(ctx, partials.SearchForm(v.SearchForm))
		h.Raw("</section>")
		h.Component(ctx, partials.PropertyGrid(v.Properties, v.Search))
		return h.Err()
	})
	return components.Layout(v.Page, body)
}

// PropertyDetail renders one property with its carousel, amenities and stay summary
func PropertyDetail(v PropertyDetailView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		p := v.Property
		nights := v.Search.Nights()

		h.Raw(`<article class="property-detail">`)
		h.Raw("<header><h1>").Text(p.Name).Raw(`</h1><p class="location">`).Text(p.Location).Raw("</p></header>")
		h.Component(ctx, partials.Carousel(p))

		h.Raw(`<div class="property-description">`).Raw(v.Description).Raw("</div>")

		if names := p.AmenityNames(); len(names) > 0 {
			h.Raw(`<section class="amenities"><h2>Amenities</h2><ul>`)
			for _, name := range names {
				h.Raw("<li>").Text(name).Raw("</li>")
			}
			h.Raw("</ul></section>")
		}

		h.Raw(`<aside class="stay-summary"><h2>Your stay</h2><dl>`)
		h.Raw("<dt>Check-in</dt><dd>").Text(dates.FormatForDisplay(v.Search.CheckIn, dates.StyleLong)).Raw("</dd>")
		h.Raw("<dt>Check-out</dt><dd>").Text(dates.FormatForDisplay(v.Search.CheckOut, dates.StyleLong)).Raw("</dd>")
		h.Raw("<dt>Nights</dt><dd>").Text(strconv.Itoa(nights)).Raw("</dd>")
		h.Raw("<dt>Guests</dt><dd>").Text(strconv.Itoa(v.Search.Guests)).Raw("</dd>")
		h.Raw("</dl>")
		h.Raw(`<a class="btn btn-primary"`).Attr("href", v.BookingPath).Raw(">Book now</a>")
		h.Component(ctx, partials.SearchForm(v.SearchForm))
		h.Raw("</aside></article>")
		return h.Err()
	})
	return components.Layout(v.Page, body)
}
