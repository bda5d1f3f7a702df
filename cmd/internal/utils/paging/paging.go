// Package paging normalizes caller supplied page, size and sort parameters
// into a query the repositories can run.
package paging

import "strings"

const (
	DefaultPage   = 0
	DefaultSize   = 10
	DefaultSortBy = "id"
)

type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// ParseDirection yields DESC only for a case-insensitive "DESC".
// Anything else, unknown values included, is ascending.
func ParseDirection(s string) Direction {
	if strings.EqualFold(s, string(DESC)) {
		return DESC
	}
	return ASC
}

// Request is the normalized paging input. Page and size are not bounded:
// negative values and very large sizes are passed through as given, but a
// page whose offset cannot be addressed resolves to an empty one.
type Request struct {
	Page      int
	Size      int
	SortBy    string
	Direction Direction
}

func Normalize(page, size *int, sortBy, direction string) Request {
	req := Request{
		Page:      DefaultPage,
		Size:      DefaultSize,
		SortBy:    strings.TrimSpace(sortBy),
		Direction: ParseDirection(direction),
	}

	if page != nil {
		req.Page = *page
	}

	if size != nil {
		req.Size = *size
	}

	if req.SortBy == "" {
		req.SortBy = DefaultSortBy
	}
	return req
}

// Query is what repositories consume. Column is always a vetted column name.
// Empty marks a page that lies past any addressable offset; it has no records.
type Query struct {
	Offset int
	Limit  int
	Column string
	Desc   bool
	Empty  bool
}

// Resolve maps the requested sort field through sortable (wire name -> column).
// It reports false when the field cannot be sorted on.
func (r Request) Resolve(sortable map[string]string) (Query, bool) {
	column, ok := sortable[r.SortBy]
	if !ok {
		return Query{}, false
	}

	offset, ok := offsetOf(r.Page, r.Size)
	return Query{
		Offset: offset,
		Limit:  r.Size,
		Column: column,
		Desc:   r.Direction == DESC,
		Empty:  !ok,
	}, true
}

// offsetOf multiplies page by size, failing on overflow or a negative offset.
func offsetOf(page, size int) (int, bool) {
	if page == 0 || size == 0 {
		return 0, true
	}

	offset := page * size
	if offset/size != page || offset < 0 {
		return 0, false
	}
	return offset, true
}

type Page[T any] struct {
	Content       []T       `json:"content"`
	Page          int       `json:"page"`
	Size          int       `json:"size"`
	TotalElements int64     `json:"total_elements"`
	TotalPages    int       `json:"total_pages"`
	SortBy        string    `json:"sort_by"`
	Direction     Direction `json:"direction"`
}

func NewPage[T any](content []T, req Request, total int64) *Page[T] {
	if content == nil {
		content = []T{}
	}

	return &Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages(total, req.Size),
		SortBy:        req.SortBy,
		Direction:     req.Direction,
	}
}

func totalPages(total int64, size int) int {
	if size <= 0 {
		if total > 0 {
			return 1
		}
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
