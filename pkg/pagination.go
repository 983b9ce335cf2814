package pkg

import "fmt"

// PaginationLinks navigates a paginated result set.
type PaginationLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// PaginationMeta describes the current page.
type PaginationMeta struct {
	CurrentPage int    `json:"current_page"`
	From        int    `json:"from"`
	To          int    `json:"to"`
	LastPage    int    `json:"last_page"`
	PerPage     int    `json:"per_page"`
	Total       int    `json:"total"`
	Path        string `json:"path"`
}

// Paginated is the uniform list envelope: {data, links, meta}.
type Paginated[T any] struct {
	Data  []T             `json:"data"`
	Links PaginationLinks `json:"links"`
	Meta  PaginationMeta  `json:"meta"`
}

func pageURL(path string, page, limit int) string {
	return fmt.Sprintf("%s?page=%d&limit=%d", path, page, limit)
}

// NewPaginated wraps one page of data in the standard envelope.
// data must already be the slice for the requested page.
func NewPaginated[T any](data []T, total, page, limit int, path string) Paginated[T] {
	lastPage := (total + limit - 1) / limit
	if lastPage < 1 {
		lastPage = 1
	}
	offset := (page - 1) * limit

	links := PaginationLinks{
		First: pageURL(path, 1, limit),
		Last:  pageURL(path, lastPage, limit),
	}
	if page > 1 {
		prev := pageURL(path, page-1, limit)
		links.Prev = &prev
	}
	if page < lastPage {
		next := pageURL(path, page+1, limit)
		links.Next = &next
	}

	from := 0
	to := 0
	if total > 0 && offset < total {
		from = offset + 1
		to = offset + limit
		if to > total {
			to = total
		}
	}

	if data == nil {
		data = []T{}
	}

	return Paginated[T]{
		Data:  data,
		Links: links,
		Meta: PaginationMeta{
			CurrentPage: page,
			From:        from,
			To:          to,
			LastPage:    lastPage,
			PerPage:     limit,
			Total:       total,
			Path:        path,
		},
	}
}
