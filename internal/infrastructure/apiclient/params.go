package apiclient

import (
	"net/url"
	"strconv"
)

// ListParams are the paging and filter parameters shared by list endpoints.
// Zero values are left out of the query.
type ListParams struct {
	Page       int
	PageSize   int
	Sort       string
	CategoryID uint
	Query      string
	Status     string
}

func (p ListParams) values() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		v.Set("pageSize", strconv.Itoa(p.PageSize))
	}
	if p.Sort != "" {
		v.Set("sort", p.Sort)
	}
	if p.CategoryID > 0 {
		v.Set("category", strconv.FormatUint(uint64(p.CategoryID), 10))
	}
	if p.Query != "" {
		v.Set("query", p.Query)
	}
	if p.Status != "" {
		v.Set("status", p.Status)
	}
	return v
}

// resourceDefaults mirrors the listing the resource center opens with.
func resourceDefaults(p ListParams) ListParams {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 12
	}
	if p.Sort == "" {
		p.Sort = "newest"
	}
	return p
}
