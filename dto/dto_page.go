package dto

import "strconv"

// Pagination is the descriptor every list endpoint returns.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// PageQuery carries the shared list parameters after parsing.
type PageQuery struct {
	Search string
	Page   int
	Limit  int
}

// ParsePageQuery clamps page and limit to at least 1; malformed numbers
// fall back to the defaults.
func ParsePageQuery(search, pageStr, limitStr string) PageQuery {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = 10
	}
	return PageQuery{Search: search, Page: page, Limit: limit}
}

func (q PageQuery) Skip() int64 {
	return int64(q.Page-1) * int64(q.Limit)
}

// NewPagination computes pages as ceil(total/limit).
func NewPagination(total int64, q PageQuery) Pagination {
	pages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return Pagination{Total: total, Page: q.Page, Limit: q.Limit, Pages: pages}
}
