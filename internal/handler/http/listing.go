package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/opsdesk/workforce-backend-go/internal/handler/http/response"
	"github.com/opsdesk/workforce-backend-go/internal/pkg/queryscope"
)

// parseListQuery extracts sort, dir, page and the filter_* parameters
// from a listing request. Everything here is untrusted input; the
// queryscope allow-lists decide what any of it means.
func parseListQuery(r *http.Request) queryscope.Query {
	params := r.URL.Query()

	q := queryscope.Query{Filters: make(map[string]string)}
	for key := range params {
		if strings.HasPrefix(key, "filter_") {
			q.Filters[key] = params.Get(key)
		}
	}

	q.Sort = params.Get("sort")
	q.Dir = params.Get("dir")

	// A client tracking its previous sort state sends last_sort and
	// last_dir instead of dir; the toggle derives the next direction.
	if q.Dir == "" && params.Get("last_sort") != "" {
		q.Dir = string(queryscope.NextDirection(
			params.Get("last_sort"),
			queryscope.Direction(params.Get("last_dir")),
			q.Sort,
		))
	}

	if p := params.Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			q.Page = pageNum
		}
	}

	return q
}

// listMeta builds the pagination meta block for a listing envelope.
func listMeta(page, limit int, totalCount int64, totalPages int) *response.Meta {
	return &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: totalCount,
		TotalPages: totalPages,
	}
}
