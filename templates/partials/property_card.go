package partials

import (
	"casa_hotels_go/models"
	"casa_hotels_go/services/dates"
	"casa_hotels_go/templates/components"
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"
)

// PropertyCard renders a catalogue card with a book button for the stored stay
func PropertyCard(p models.Property, search dates.SearchSnapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		detail := "/properties/" + url.PathEscape(p.Slug)

		h.Raw(`<article class="property-card">`)
		h.Raw("<a").Attr("href", detail).Raw(">")
		h.Raw("<img").URLAttr("src", p.MainPhoto()).Attr("alt", p.Name).Raw(` loading="lazy">`)
		h.Raw("</a>")
		h.Raw(`<div class="property-card-body">`)
		h.Raw("<h3><a").Attr("href", detail).Raw(">").Text(p.Name).Raw("</a></h3>")
		h.Raw(`<p class="location">`).Text(p.Location).Raw("</p>")
		if names := p.AmenityNames(); len(names) > 0 {
			h.Raw(`<ul class="amenities">`)
			for _, name := range names {
				h.Raw("<li>").Text(name).Raw("</li>")
			}
			h.Raw("</ul>")
		}
		h.Raw(`<a class="btn btn-primary"`).Attr("href", BookingPath(p.Slug, search)).Raw(">Book ").
			Text(nightsLabel(search.Nights())).Raw("</a>")
		h.Raw("</div></article>")
		return h.Err()
	})
}

// PropertyGrid renders cards for every property
func PropertyGrid(properties []models.Property, search dates.SearchSnapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		if len(properties) == 0 {
			h.Raw(`<p class="empty">No hotels are available right now.</p>`)
			return h.Err()
		}
		h.Raw(`<div class="property-grid">`)
		for _, p := range properties {
			h.Component(ctx, PropertyCard(p, search))
		}
		h.Raw("</div>")
		return h.Err()
	})
}
