// Package listing parses list-screen query strings and builds the paging
// model the templates render.
package listing

import (
	"net/url"
	"strconv"
	"strings"

	"console/internal/domain"
)

const (
	ParamPage   = "page"
	ParamSize   = "size"
	ParamSubmit = "submit"
)

// PageSizes are the sizes offered by the page size selector.
var PageSizes = []int{10, 20, 30, 50}

// Query is the state of a list screen: zero-based page index, page size and
// the active filters.
type Query struct {
	PageIndex int
	PageSize  int
	Filters   map[string]string
}

// Parse reads the page, size and the named filters from v. Submitting the
// filter form (a "submit" parameter) always starts again from the first page.
func Parse(v url.Values, defaultSize, maxSize int, filters ...string) Query {
	q := Query{PageSize: defaultSize, Filters: map[string]string{}}

	if n, err := strconv.Atoi(v.Get(ParamPage)); err == nil && n > 0 {
		q.PageIndex = n
	}
	if n, err := strconv.Atoi(v.Get(ParamSize)); err == nil {
		q.PageSize = n
	}
	if q.PageSize < 1 {
		q.PageSize = 1
	}
	if maxSize > 0 && q.PageSize > maxSize {
		q.PageSize = maxSize
	}

	for _, key := range filters {
		if val := strings.TrimSpace(v.Get(key)); val != "" {
			q.Filters[key] = val
		}
	}

	if v.Has(ParamSubmit) {
		q.PageIndex = 0
	}
	return q
}

func (q Query) Get(key string) string { return q.Filters[key] }

// SizeOptions lists PageSizes plus the current size when it is not one of
// them, in ascending order.
func (q Query) SizeOptions() []int {
	out := make([]int, 0, len(PageSizes)+1)
	added := false
	for _, n := range PageSizes {
		if !added && q.PageSize < n {
			out = append(out, q.PageSize)
			added = true
		}
		if n == q.PageSize {
			added = true
		}
		out = append(out, n)
	}
	if !added {
		out = append(out, q.PageSize)
	}
	return out
}

// Filtered reports whether any filter is set.
func (q Query) Filtered() bool { return len(q.Filters) > 0 }

// Values encodes the query for a given page, keeping filters and size.
func (q Query) Values(pageIndex int) url.Values {
	v := url.Values{}
	for k, val := range q.Filters {
		v.Set(k, val)
	}
	v.Set(ParamSize, strconv.Itoa(q.PageSize))
	if pageIndex > 0 {
		v.Set(ParamPage, strconv.Itoa(pageIndex))
	}
	return v
}

// Page is one page of a backend list.
type Page[T any] struct {
	Items      []T
	PageIndex  int
	PageSize   int
	TotalPages int
	TotalItems int
	Path       string
	Query      Query
}

// NewPage builds a page from backend totals. When the backend only reports
// the item count the page count is derived from it.
func NewPage[T any](path string, q Query, items []T, info domain.PageInfo) Page[T] {
	p := Page[T]{
		Items:      items,
		PageIndex:  q.PageIndex,
		PageSize:   q.PageSize,
		TotalPages: info.TotalPages,
		TotalItems: info.TotalItems,
		Path:       path,
		Query:      q,
	}
	if p.TotalPages == 0 && p.TotalItems > 0 && p.PageSize > 0 {
		p.TotalPages = (p.TotalItems + p.PageSize - 1) / p.PageSize
	}
	if p.TotalPages == 0 && info.HasNextPage {
		p.TotalPages = p.PageIndex + 2
	}
	return p
}

func (p Page[T]) HasPrev() bool { return p.PageIndex > 0 }

func (p Page[T]) HasNext() bool { return p.PageIndex+1 < p.TotalPages }

// Number is the one-based page number shown to the operator.
func (p Page[T]) Number() int { return p.PageIndex + 1 }

func (p Page[T]) Empty() bool { return len(p.Items) == 0 }

// Pages returns up to five page indexes around the current one.
func (p Page[T]) Pages() []int {
	const window = 5
	if p.TotalPages <= 0 {
		return nil
	}
	start := p.PageIndex - window/2
	if start+window > p.TotalPages {
		start = p.TotalPages - window
	}
	if start < 0 {
		start = 0
	}
	end := start + window
	if end > p.TotalPages {
		end = p.TotalPages
	}
	out := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return out
}

// Link is the URL of another page of the same list with the same filters.
func (p Page[T]) Link(pageIndex int) string {
	if pageIndex < 0 {
		pageIndex = 0
	}
	return p.Path + "?" + p.Query.Values(pageIndex).Encode()
}

func (p Page[T]) PrevLink() string { return p.Link(p.PageIndex - 1) }

func (p Page[T]) NextLink() string { return p.Link(p.PageIndex + 1) }
