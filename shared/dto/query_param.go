package dto

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"borrowdung/shared/constant"
)

// QueryParams is the pagination and free-text part shared by every list
// endpoint of the booking API. Zero values are treated as unset.
type QueryParams struct {
	Page     int    `json:"page"     validate:"omitempty,gte=1"`
	PageSize int    `json:"pageSize" validate:"omitempty,gte=1"`
	Search   string `json:"search"   validate:"omitempty"`
}

// FromRequest populates QueryParams from the page's query string.
// When defaultRequest is true a missing page size falls back to DefaultValuePageSize.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if pageSize := queryParams.Get(constant.RequestParamPageSize); pageSize != "" {
		if pageSizeInt, err := strconv.Atoi(pageSize); err == nil && pageSizeInt > 0 {
			q.PageSize = pageSizeInt
		}
	}

	q.Search = strings.TrimSpace(queryParams.Get(constant.RequestParamSearch))

	if defaultRequest && q.PageSize == 0 {
		q.PageSize = constant.DefaultValuePageSize
	}
}

// Encode writes the set parameters into values. Unset parameters are omitted.
func (q QueryParams) Encode(values url.Values) {
	if q.Page > 0 {
		values.Set(constant.RequestParamPage, strconv.Itoa(q.Page))
	}

	if q.PageSize > 0 {
		values.Set(constant.RequestParamPageSize, strconv.Itoa(q.PageSize))
	}

	if q.Search != "" {
		values.Set(constant.RequestParamSearch, q.Search)
	}
}

// ListResult is one page of a list endpoint. Total comes from the
// X-Total-Count response header and falls back to len(Items).
type ListResult[T any] struct {
	Items []T
	Total int
}

// NewListResult builds a ListResult from decoded items and the response headers.
func NewListResult[T any](items []T, header http.Header) ListResult[T] {
	if items == nil {
		items = []T{}
	}

	total := len(items)

	if raw := header.Get(constant.ResponseHeaderTotalCount); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			total = parsed
		}
	}

	return ListResult[T]{Items: items, Total: total}
}
