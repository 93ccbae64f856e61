// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package pagination computes page windows for the blog feed from the
// count/page/page_size triple the list endpoint works with.
package pagination

// Info describes one page of a paginated collection.
type Info struct {
	Page        int
	TotalPages  int
	Total       int
	Start       int // 1-based index of the first item on the page
	End         int // 1-based index of the last item on the page
	HasNext     bool
	HasPrevious bool
}

// Compute derives the page window for the given page number, total item
// count and page size. Page numbers are clamped to at least 1; an empty
// collection yields a single empty page.
func Compute(page, count, pageSize int) Info {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := (count + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page-1)*pageSize + 1
	end := page * pageSize
	if end > count {
		end = count
	}
	if count == 0 {
		start = 0
		end = 0
	}

	return Info{
		Page:        page,
		TotalPages:  totalPages,
		Total:       count,
		Start:       start,
		End:         end,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
