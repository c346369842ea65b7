package dashboard

import "avatarhub/internal/model"

// DefaultPageSize is the number of cards shown per page.
const DefaultPageSize = 9

// Paginator holds the page math for a fixed page size.
type Paginator struct {
	PageSize int
}

// NewPaginator returns a Paginator, falling back to DefaultPageSize for non-positive sizes.
func NewPaginator(pageSize int) Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Paginator{PageSize: pageSize}
}

// PageCount returns ceil(total / PageSize), which is 0 for an empty store.
func (p Paginator) PageCount(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + p.PageSize - 1) / p.PageSize
}

// Bounds returns the half-open index range [start, end) of page within total records.
// Pages outside the valid range yield an empty range.
func (p Paginator) Bounds(total, page int) (start, end int) {
	if page < 1 || total <= 0 {
		return 0, 0
	}
	start = (page - 1) * p.PageSize
	if start >= total {
		return total, total
	}
	end = min(start+p.PageSize, total)
	return start, end
}

// VisibleSlice returns the records shown on page.
func (p Paginator) VisibleSlice(records []model.AvatarRecord, page int) []model.AvatarRecord {
	start, end := p.Bounds(len(records), page)
	out := make([]model.AvatarRecord, end-start)
	copy(out, records[start:end])
	return out
}

// Pagination is the current-page view state.
type Pagination struct {
	Paginator
	CurrentPage int
}

// NewPagination starts on page 1.
func NewPagination(pageSize int) Pagination {
	return Pagination{Paginator: NewPaginator(pageSize), CurrentPage: 1}
}

// GoToPage moves to requested when it lies in [1, PageCount(total)] and
// otherwise leaves the current page alone. It returns the resulting page.
func (p *Pagination) GoToPage(requested, total int) int {
	if requested >= 1 && requested <= p.PageCount(total) {
		p.CurrentPage = requested
	}
	return p.CurrentPage
}

// Window describes the pagination controls for the current page.
type Window struct {
	Page      int
	PageCount int
	Total     int
	// First and Last are 1-based positions for "Showing First to Last of Total".
	First   int
	Last    int
	HasPrev bool
	HasNext bool
	// Active is false when there is nothing to page.
	Active bool
}

// Window summarizes the current page for total records.
func (p Pagination) Window(total int) Window {
	count := p.PageCount(total)
	w := Window{
		Page:      p.CurrentPage,
		PageCount: count,
		Total:     total,
		Active:    total > 0,
	}
	if !w.Active {
		return w
	}
	start, end := p.Bounds(total, p.CurrentPage)
	if end > start {
		w.First = start + 1
		w.Last = end
	}
	w.HasPrev = p.CurrentPage > 1
	w.HasNext = p.CurrentPage < count
	return w
}
