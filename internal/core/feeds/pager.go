package feeds

// PageSize is the fixed number of posts per feed page
const PageSize = 10

// totalPages computes the page count for an item total. An empty
// collection still has one (empty) page, so page 1 is always valid.
func totalPages(totalItems int) int {
	if totalItems <= 0 {
		return 1
	}
	return (totalItems + PageSize - 1) / PageSize
}

// pageOffset validates a 1-based page number against the item total and
// returns the window offset. Pages below 1 or beyond the last page are
// ErrPageNotFound.
func pageOffset(page, totalItems int) (int, error) {
	if page < 1 || page > totalPages(totalItems) {
		return 0, ErrPageNotFound
	}
	return (page - 1) * PageSize, nil
}

// newPage assembles a page with its navigation metadata
func newPage(items []*PostView, page, totalItems int) *Page {
	if items == nil {
		items = []*PostView{}
	}

	p := &Page{
		Items:      items,
		Number:     page,
		TotalItems: totalItems,
		TotalPages: totalPages(totalItems),
	}

	if page > 1 {
		p.HasPrevious = true
		p.PreviousNumber = page - 1
	}
	if page < p.TotalPages {
		p.HasNext = true
		p.NextNumber = page + 1
	}

	return p
}
