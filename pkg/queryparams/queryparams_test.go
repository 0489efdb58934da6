package queryparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateClampsValues(t *testing.T) {
	p := ListParams{Page: -3, PerPage: 1000, OrderBy: "sideways"}
	p.Validate()

	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, MaxPerPage, p.PerPage)
	assert.Equal(t, DefaultOrderBy, p.OrderBy)
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 2, CalculateTotalPages(11, 10))
}

func TestPaginateSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	result := PaginateSlice(items, ListParams{Page: 2, PerPage: 2})
	data, ok := result.Data.([]int)
	require.True(t, ok)
	assert.Equal(t, []int{3, 4}, data)
	assert.Equal(t, int64(5), result.Meta.TotalItems)
	assert.Equal(t, 3, result.Meta.TotalPages)
	assert.True(t, result.Meta.HasPrev())
	assert.True(t, result.Meta.HasNext())

	past := PaginateSlice(items, ListParams{Page: 9, PerPage: 2})
	assert.Empty(t, past.Data)
}
