package feeds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageOffset_FiftyFiveItems(t *testing.T) {
	const total = 55 // 6 pages: 5 full, last with 5 items

	tests := []struct {
		name       string
		page       int
		wantOffset int
		wantErr    bool
	}{
		{"first page", 1, 0, false},
		{"middle page", 3, 20, false},
		{"last page", 6, 50, false},
		{"zero", 0, 0, true},
		{"negative", -100, 0, true},
		{"past the end", 7, 0, true},
		{"far past the end", 100, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, err := pageOffset(tt.page, total)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPageNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestPageMetadata_FiftyFiveItems(t *testing.T) {
	const total = 55

	first := newPage(make([]*PostView, PageSize), 1, total)
	assert.False(t, first.HasPrevious)
	assert.True(t, first.HasNext)
	assert.Equal(t, 2, first.NextNumber)
	assert.Len(t, first.Items, 10)
	assert.Equal(t, 6, first.TotalPages)

	third := newPage(make([]*PostView, PageSize), 3, total)
	assert.True(t, third.HasPrevious)
	assert.Equal(t, 2, third.PreviousNumber)
	assert.True(t, third.HasNext)
	assert.Equal(t, 4, third.NextNumber)

	last := newPage(make([]*PostView, 5), 6, total)
	assert.True(t, last.HasPrevious)
	assert.False(t, last.HasNext)
	assert.Len(t, last.Items, 5)
}

func TestPageOffset_EmptyCollection(t *testing.T) {
	// Page 1 of nothing is valid and empty; anything past it is not found
	offset, err := pageOffset(1, 0)
	require.NoError(t, err)
	assert.Zero(t, offset)

	_, err = pageOffset(2, 0)
	assert.ErrorIs(t, err, ErrPageNotFound)

	page := newPage(nil, 1, 0)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasPrevious)
	assert.False(t, page.HasNext)
	assert.Equal(t, 1, page.TotalPages)
}

func TestPageOffset_ExactMultiple(t *testing.T) {
	// 20 items is exactly 2 pages, not 3
	offset, err := pageOffset(2, 20)
	require.NoError(t, err)
	assert.Equal(t, 10, offset)

	_, err = pageOffset(3, 20)
	assert.ErrorIs(t, err, ErrPageNotFound)
}
