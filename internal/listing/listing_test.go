package listing

import (
	"net/url"
	"testing"

	"console/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantIndex int
		wantSize  int
		filters   map[string]string
	}{
		{name: "defaults", raw: "", wantIndex: 0, wantSize: 10, filters: map[string]string{}},
		{name: "page and size", raw: "page=3&size=25", wantIndex: 3, wantSize: 25, filters: map[string]string{}},
		{name: "negative page clamps", raw: "page=-4", wantIndex: 0, wantSize: 10, filters: map[string]string{}},
		{name: "garbage page", raw: "page=abc&size=xyz", wantIndex: 0, wantSize: 10, filters: map[string]string{}},
		{name: "size above max", raw: "size=1000", wantIndex: 0, wantSize: 100, filters: map[string]string{}},
		{name: "size below one", raw: "size=0", wantIndex: 0, wantSize: 1, filters: map[string]string{}},
		{name: "filters trimmed and blank dropped", raw: "name=+Acme+&status=&page=2", wantIndex: 2, wantSize: 10, filters: map[string]string{"name": "Acme"}},
		{name: "submit resets page", raw: "name=Acme&page=5&submit=1", wantIndex: 0, wantSize: 10, filters: map[string]string{"name": "Acme"}},
		{name: "unknown keys ignored", raw: "other=1", wantIndex: 0, wantSize: 10, filters: map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := url.ParseQuery(tt.raw)
			assert.NoError(t, err)

			q := Parse(v, 10, 100, "name", "status")
			assert.Equal(t, tt.wantIndex, q.PageIndex)
			assert.Equal(t, tt.wantSize, q.PageSize)
			assert.Equal(t, tt.filters, q.Filters)
			assert.Equal(t, len(tt.filters) > 0, q.Filtered())
		})
	}
}

func TestPage_Navigation(t *testing.T) {
	q := Query{PageIndex: 0, PageSize: 10, Filters: map[string]string{"name": "Acme"}}
	p := NewPage("/corporates", q, []int{1, 2}, domain.PageInfo{TotalPages: 3, TotalItems: 25})

	assert.False(t, p.HasPrev())
	assert.True(t, p.HasNext())
	assert.Equal(t, 1, p.Number())
	assert.Equal(t, []int{0, 1, 2}, p.Pages())
	assert.Equal(t, "/corporates?name=Acme&page=1&size=10", p.NextLink())
	assert.Equal(t, "/corporates?name=Acme&size=10", p.PrevLink())

	last := NewPage("/corporates", Query{PageIndex: 2, PageSize: 10}, []int{}, domain.PageInfo{TotalPages: 3})
	assert.True(t, last.HasPrev())
	assert.False(t, last.HasNext())
	assert.True(t, last.Empty())
}

func TestPage_DerivesTotalPages(t *testing.T) {
	p := NewPage("/travelers", Query{PageSize: 10}, []string{"a"}, domain.PageInfo{TotalItems: 31})
	assert.Equal(t, 4, p.TotalPages)

	p = NewPage("/travelers", Query{PageIndex: 1, PageSize: 10}, []string{"a"}, domain.PageInfo{HasNextPage: true})
	assert.True(t, p.HasNext())
}

func TestPage_PagesWindow(t *testing.T) {
	p := NewPage("/logs", Query{PageIndex: 7, PageSize: 10}, []int{}, domain.PageInfo{TotalPages: 20})
	assert.Equal(t, []int{5, 6, 7, 8, 9}, p.Pages())

	p = NewPage("/logs", Query{PageIndex: 19, PageSize: 10}, []int{}, domain.PageInfo{TotalPages: 20})
	assert.Equal(t, []int{15, 16, 17, 18, 19}, p.Pages())

	p = NewPage("/logs", Query{PageSize: 10}, []int{}, domain.PageInfo{})
	assert.Nil(t, p.Pages())
}

func TestQuery_SizeOptions(t *testing.T) {
	assert.Equal(t, []int{10, 20, 30, 50}, Query{PageSize: 20}.SizeOptions())
	assert.Equal(t, []int{10, 20, 25, 30, 50}, Query{PageSize: 25}.SizeOptions())
	assert.Equal(t, []int{5, 10, 20, 30, 50}, Query{PageSize: 5}.SizeOptions())
	assert.Equal(t, []int{10, 20, 30, 50, 100}, Query{PageSize: 100}.SizeOptions())
}
