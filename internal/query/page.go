package query

import "encoding/json"

// Page represents a single page of shaped records
type Page[T any] struct {
	Items    []T
	Page     int
	PageSize int

	// Total is the amount of records matching the filters and the search term before pagination was applied
	Total uint64
}

// Envelope wraps a page of records into a Page
func Envelope[T any](items []T, page, pageSize int, total uint64) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}
}

// TotalPages returns ceil(Total / max(PageSize, 1))
func (page *Page[T]) TotalPages() uint64 {
	size := uint64(1)
	if page.PageSize > 1 {
		size = uint64(page.PageSize)
	}
	return (page.Total + size - 1) / size
}

type pageJSON[T any] struct {
	Items      []T    `json:"items"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	Total      uint64 `json:"total"`
	TotalPages uint64 `json:"totalPages"`
}

// MarshalJSON encodes the page including its derived page count
func (page *Page[T]) MarshalJSON() ([]byte, error) {
	items := page.Items
	if items == nil {
		items = []T{}
	}
	return json.Marshal(pageJSON[T]{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages(),
	})
}

// UnmarshalJSON decodes a page; the derived page count is ignored
func (page *Page[T]) UnmarshalJSON(data []byte) error {
	var raw pageJSON[T]
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*page = Page[T]{
		Items:    raw.Items,
		Page:     raw.Page,
		PageSize: raw.PageSize,
		Total:    raw.Total,
	}
	return nil
}
