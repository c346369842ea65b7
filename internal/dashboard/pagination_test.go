package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"avatarhub/internal/model"
)

func makeRecords(n int) []model.AvatarRecord {
	out := make([]model.AvatarRecord, n)
	for i := range out {
		out[i] = model.AvatarRecord{ID: i + 1}
	}
	return out
}

func ids(records []model.AvatarRecord) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestPaginator_PageCount(t *testing.T) {
	p := NewPaginator(9)

	tests := []struct {
		total    int
		expected int
	}{
		{0, 0},
		{1, 1},
		{9, 1},
		{10, 2},
		{18, 2},
		{27, 3},
		{28, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, p.PageCount(tt.total), "total=%d", tt.total)
	}
}

func TestNewPaginator_DefaultsPageSize(t *testing.T) {
	assert.Equal(t, DefaultPageSize, NewPaginator(0).PageSize)
	assert.Equal(t, DefaultPageSize, NewPaginator(-3).PageSize)
	assert.Equal(t, 4, NewPaginator(4).PageSize)
}

func TestPaginator_VisibleSlice(t *testing.T) {
	p := NewPaginator(9)
	records := makeRecords(20)

	tests := []struct {
		name     string
		page     int
		expected []int
	}{
		{"first page", 1, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"second page", 2, []int{10, 11, 12, 13, 14, 15, 16, 17, 18}},
		{"last partial page", 3, []int{19, 20}},
		{"past the end", 4, []int{}},
		{"page zero", 0, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(p.VisibleSlice(records, tt.page)))
		})
	}
}

func TestPaginator_VisibleSliceEmptyStore(t *testing.T) {
	assert.Empty(t, NewPaginator(9).VisibleSlice(nil, 1))
}

func TestPagination_GoToPageClamps(t *testing.T) {
	p := NewPagination(9)
	total := 20

	assert.Equal(t, 3, p.GoToPage(3, total))
	assert.Equal(t, 3, p.GoToPage(0, total), "page 0 must not move")
	assert.Equal(t, 3, p.GoToPage(p.PageCount(total)+1, total), "page past the end must not move")
	assert.Equal(t, 3, p.GoToPage(-1, total))
	assert.Equal(t, 2, p.GoToPage(2, total))
}

func TestPagination_GoToPageEmptyStore(t *testing.T) {
	p := NewPagination(9)

	assert.Equal(t, 1, p.GoToPage(1, 0))
	assert.Equal(t, 1, p.CurrentPage)
}

func TestPagination_Window(t *testing.T) {
	p := NewPagination(9)
	p.GoToPage(3, 20)

	w := p.Window(20)

	assert.Equal(t, Window{
		Page:      3,
		PageCount: 3,
		Total:     20,
		First:     19,
		Last:      20,
		HasPrev:   true,
		HasNext:   false,
		Active:    true,
	}, w)
}

func TestPagination_WindowEmpty(t *testing.T) {
	w := NewPagination(9).Window(0)

	assert.False(t, w.Active)
	assert.Zero(t, w.PageCount)
	assert.False(t, w.HasPrev)
	assert.False(t, w.HasNext)
}
