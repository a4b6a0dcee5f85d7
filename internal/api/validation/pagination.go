package validation

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/cfelipe-app/Route/internal/query"
)

// Pagination extracts the pagination, search and sort parameters of a paged listing request.
// Malformed or missing page and size values fall back to their defaults instead of being rejected; the page size
// is bounded by maxPageSize.
func Pagination(request *http.Request, defaultPageSize, maxPageSize int) *query.Request {
	values := request.URL.Query()
	if defaultPageSize < 1 {
		defaultPageSize = query.DefaultPageSize
	}

	req := &query.Request{
		Term:     values.Get("term"),
		Page:     lenientInt(values.Get("page"), 1),
		PageSize: lenientInt(values.Get("recordsNumber"), defaultPageSize),
		SortBy:   values.Get("sortBy"),
		SortDir:  query.SortDirection(values.Get("sortDir")),
	}
	return req.Normalize(maxPageSize)
}

func lenientInt(raw string, def int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return parsed
}
