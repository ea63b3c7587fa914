package query

import (
	"fmt"
	"net/url"
)

// Query parameter names understood by the Vitibrasil CGI.
const (
	paramYear        = "ano"
	paramCategory    = "opcao"
	paramSubcategory = "subopcao"
)

// BuildURL serializes a validated query against the base endpoint.
// Parameter order is fixed (ano, opcao, then subopcao) and the
// subcategory parameter is omitted entirely when absent, so equal
// queries always produce the same string byte for byte and distinct
// queries never collide.
func BuildURL(base string, q Query) string {
	s := fmt.Sprintf("%s?%s=%d&%s=%s", base, paramYear, q.Year, paramCategory, url.QueryEscape(q.Category.String()))
	if q.Subcategory != nil {
		s += fmt.Sprintf("&%s=%s", paramSubcategory, url.QueryEscape(q.Subcategory.String()))
	}
	return s
}
