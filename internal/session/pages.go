package session

import "github.com/n9rs9/hadithsahih/internal/domain"

// Pages is the page cursor of the book browser. The entry list is
// loaded once at resolution time and owned by this session alone.
type Pages struct {
	Entries  []domain.BookEntry
	PageSize int
	Current  int
}

// NewPages creates a cursor positioned on the first page.
func NewPages(entries []domain.BookEntry, pageSize int) *Pages {
	return &Pages{Entries: entries, PageSize: pageSize}
}

// TotalPages reports the number of navigable pages. A non-empty list
// always yields at least two: the final page doubles as an explicit
// "end of list" view even when every entry fits on the first page.
func (p *Pages) TotalPages() int {
	n := len(p.Entries)
	if n == 0 {
		return 0
	}
	pages := (n + p.PageSize - 1) / p.PageSize
	if pages < 2 {
		pages = 2
	}
	return pages
}

// Prev moves to the previous page and reports whether the cursor
// moved. At the first page it holds position; the previous button is
// not rendered there, so this path is defensive.
func (p *Pages) Prev() bool {
	if p.Current <= 0 {
		return false
	}
	p.Current--
	return true
}

// Next moves to the next page, bounded by TotalPages-1.
func (p *Pages) Next() bool {
	if p.Current >= p.TotalPages()-1 {
		return false
	}
	p.Current++
	return true
}

// Offset returns the index of the first entry on the current page.
func (p *Pages) Offset() int {
	return p.Current * p.PageSize
}

// Page returns the entries visible on the current page. The slice is
// empty on the forced end page when everything fit on page one.
func (p *Pages) Page() []domain.BookEntry {
	start := p.Offset()
	if start >= len(p.Entries) {
		return nil
	}
	end := start + p.PageSize
	if end > len(p.Entries) {
		end = len(p.Entries)
	}
	return p.Entries[start:end]
}
