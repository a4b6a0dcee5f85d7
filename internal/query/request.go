package query

import (
	"math"
	"strings"
)

const (
	// DefaultPageSize is used whenever a client does not specify a page size
	DefaultPageSize = 10

	// MaxPageSize is the upper page size bound used if no other one is configured
	MaxPageSize = 200
)

// SortDirection represents the direction records are ordered in
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// ParseSortDirection resolves a client-supplied sort direction.
// Only a case-insensitive "desc" results in descending order; everything else (including an empty string) is
// ascending.
func ParseSortDirection(raw string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(raw), string(Descending)) {
		return Descending
	}
	return Ascending
}

// Request represents the untrusted pagination, search and sort parameters of a single listing call
type Request struct {
	Term     string
	Page     int
	PageSize int
	SortBy   string
	SortDir  SortDirection
}

// Normalize returns a copy of the request whose page and page size are coerced to be at least 1 and whose page size
// does not exceed maxPageSize (MaxPageSize if maxPageSize < 1).
// The sort direction is resolved using ParseSortDirection.
func (req *Request) Normalize(maxPageSize int) *Request {
	if maxPageSize < 1 {
		maxPageSize = MaxPageSize
	}
	cpy := req.coerce()
	if cpy.PageSize > maxPageSize {
		cpy.PageSize = maxPageSize
	}
	return cpy
}

// Offset returns the amount of records to skip before the requested page begins.
// The result saturates at math.MaxUint64 instead of wrapping around.
func (req *Request) Offset() uint64 {
	if req.Page < 1 || req.PageSize < 1 {
		return 0
	}
	pages, size := uint64(req.Page-1), uint64(req.PageSize)
	if pages > math.MaxUint64/size {
		return math.MaxUint64
	}
	return pages * size
}

func (req *Request) coerce() *Request {
	cpy := Request{}
	if req != nil {
		cpy = *req
	}
	if cpy.Page < 1 {
		cpy.Page = 1
	}
	if cpy.PageSize < 1 {
		cpy.PageSize = 1
	}
	cpy.SortBy = strings.TrimSpace(cpy.SortBy)
	cpy.SortDir = ParseSortDirection(string(cpy.SortDir))
	return &cpy
}
