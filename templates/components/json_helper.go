package components

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/a-h/templ"
)

// JSON marshals an object to a JSON string, returning "{}" on error
func JSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[WARNING] Error marshaling JSON: %v", err)
		return "{}"
	}
	return string(b)
}

// JSONLD renders structured data as an application/ld+json script tag
func JSONLD(nonce string, v interface{}) templ.Component {
	// json.Marshal escapes <, > and & so the payload cannot close the tag
	payload := JSON(v)
	var b strings.Builder
	b.WriteString(`<script type="application/ld+json"`)
	if nonce != "" {
		b.WriteString(` nonce="` + templ.EscapeString(nonce) + `"`)
	}
	b.WriteString(">")
	b.WriteString(payload)
	b.WriteString("</script>")
	return templ.Raw(b.String())
}
