package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_TotalPages(t *testing.T) {
	tests := []struct {
		total    uint64
		pageSize int
		want     uint64
	}{
		{total: 0, pageSize: 10, want: 0},
		{total: 1, pageSize: 10, want: 1},
		{total: 10, pageSize: 10, want: 1},
		{total: 11, pageSize: 10, want: 2},
		{total: 5, pageSize: 0, want: 5},
		{total: 5, pageSize: -4, want: 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Envelope([]int{}, 1, tt.pageSize, tt.total).TotalPages())
	}
}

func TestPage_MarshalJSON(t *testing.T) {
	raw, err := json.Marshal(Envelope[string](nil, 2, 10, 25))
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"page":2,"pageSize":10,"total":25,"totalPages":3}`, string(raw))
}
