package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// HTML writes markup to w and remembers the first write error, so component
// bodies can be written straight through and checked once at the end.
type HTML struct {
	w   io.Writer
	err error
}

// NewHTML wraps w
func NewHTML(w io.Writer) *HTML {
	return &HTML{w: w}
}

// Raw writes trusted markup as is
func (h *HTML) Raw(s string) *HTML {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
	return h
}

// Text writes escaped text
func (h *HTML) Text(s string) *HTML {
	return h.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with the value escaped
func (h *HTML) Attr(name, value string) *HTML {
	return h.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// URLAttr is Attr for href/src values; unsafe schemes are replaced by templ
func (h *HTML) URLAttr(name, url string) *HTML {
	return h.Attr(name, string(templ.URL(url)))
}

// BoolAttr writes a bare attribute when on is true
func (h *HTML) BoolAttr(name string, on bool) *HTML {
	if on {
		h.Raw(" " + name)
	}
	return h
}

// Component renders a nested component into the same writer
func (h *HTML) Component(ctx context.Context, c templ.Component) *HTML {
	if h.err == nil && c != nil {
		h.err = c.Render(ctx, h.w)
	}
	return h
}

// Err returns the first error encountered
func (h *HTML) Err() error {
	return h.err
}
