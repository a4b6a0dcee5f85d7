package query

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortDirection(t *testing.T) {
	tests := map[string]SortDirection{
		"desc":    Descending,
		" DESC ":  Descending,
		"Desc":    Descending,
		"asc":     Ascending,
		"":        Ascending,
		"down":    Ascending,
		"descend": Ascending,
	}
	for raw, want := range tests {
		assert.Equal(t, want, ParseSortDirection(raw), raw)
	}
}

func TestRequest_Normalize(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
		max  int
		want Request
	}{
		{
			name: "zero values",
			req:  &Request{},
			want: Request{Page: 1, PageSize: 1, SortDir: Ascending},
		},
		{
			name: "negative values",
			req:  &Request{Page: -1, PageSize: -20, SortDir: "sideways"},
			want: Request{Page: 1, PageSize: 1, SortDir: Ascending},
		},
		{
			name: "page size above maximum",
			req:  &Request{Page: 3, PageSize: 1000, SortBy: " plate ", SortDir: "DESC"},
			max:  50,
			want: Request{Page: 3, PageSize: 50, SortBy: "plate", SortDir: Descending},
		},
		{
			name: "default maximum",
			req:  &Request{Page: 1, PageSize: MaxPageSize + 1},
			want: Request{Page: 1, PageSize: MaxPageSize, SortDir: Ascending},
		},
		{
			name: "nil request",
			req:  nil,
			want: Request{Page: 1, PageSize: 1, SortDir: Ascending},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, *tt.req.Normalize(tt.max))
		})
	}
}

func TestRequest_Offset(t *testing.T) {
	assert.Equal(t, uint64(0), (&Request{Page: 1, PageSize: 10}).Offset())
	assert.Equal(t, uint64(40), (&Request{Page: 5, PageSize: 10}).Offset())
	assert.Equal(t, uint64(math.MaxUint64), (&Request{Page: 144115188075855873, PageSize: 128}).Offset())
	assert.Equal(t, uint64(math.MaxUint64), (&Request{Page: math.MaxInt, PageSize: math.MaxInt}).Offset())
}
