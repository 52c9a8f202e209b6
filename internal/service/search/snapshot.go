package search

import (
	"github.com/bashyamgroup/employee-console/internal/domain/employee"
)

const windowSize = 5

// Snapshot is the listing state as the browser should render it: the current
// page slice, the visible page-number window, and the inline error flag.
type Snapshot struct {
	Term            string              `json:"term"`
	Filter          employee.Filter     `json:"filter"`
	Page            int                 `json:"page"`
	TotalPages      int                 `json:"total_pages"`
	TotalCount      int                 `json:"total_count"`
	Employees       []employee.Employee `json:"employees"`
	PageWindow      []int               `json:"page_window"`
	Suggestions     []string            `json:"suggestions"`
	ShowSuggestions bool                `json:"show_suggestions"`
	Loading         bool                `json:"loading"`
	FetchFailed     bool                `json:"fetch_failed"`
}

func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Term:            c.term,
		Filter:          c.filter,
		Page:            c.page,
		TotalPages:      c.totalPages,
		TotalCount:      len(c.employees),
		Suggestions:     c.suggestions,
		ShowSuggestions: c.showSuggestions && len(c.suggestions) > 0,
		Loading:         c.loading,
		FetchFailed:     c.fetchFailed,
	}

	if len(c.employees) > 0 {
		start := (c.page - 1) * c.opts.PageSize
		if start > len(c.employees) {
			start = len(c.employees)
		}
		end := start + c.opts.PageSize
		if end > len(c.employees) {
			end = len(c.employees)
		}
		snap.Employees = c.employees[start:end]
		snap.PageWindow = pageWindow(c.page, c.totalPages)
	}

	return snap
}

// pageWindow picks the up-to-five page numbers the pagination control shows:
// all pages when few, pinned to either edge near it, otherwise centered on
// the current page.
func pageWindow(current, total int) []int {
	if total <= 0 {
		return nil
	}

	count := windowSize
	if total < count {
		count = total
	}

	var first int
	switch {
	case total <= windowSize:
		first = 1
	case current <= 3:
		first = 1
	case current >= total-2:
		first = total - windowSize + 1
	default:
		first = current - 2
	}

	window := make([]int, count)
	for i := range window {
		window[i] = first + i
	}
	return window
}
