package pages

import (
	"casa_hotels_go/templates/components"
	"casa_hotels_go/templates/partials"
	"context"
	"io"

	"github.com/a-h/templ"
)

// Home renders the landing page: hero, search form and the catalogue
func Home(v HomeView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)

		h.Raw(`<section class="hero"><div class="hero-content">`)
		h.Raw(`<span class="badge">Find Your <strong>Perfect Stay</strong></span>`)
		h.Raw("<h1>Discover</h1><h2>Amazing Places</h2>")
		h.Raw("<p>Premium accommodations for your perfect vacation or business trip.</p>")
		h.Component(ctx, partials.SearchForm(v.SearchForm))
		h.Raw("</div></section>")

		h.Raw(`<section class="featured"><h2>Our Hotels</h2>`)
		h.Component(ctx, partials.PropertyGrid(v.Properties, v.SearchForm.Search))
		h.Raw("</section>")
		return h.Err()
	})
	return components.Layout(v.Page, body)
}
