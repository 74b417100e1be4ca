package dto

import (
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"tzform/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit, sort_by and sort_dir from the query string.
// Malformed or non-positive numbers are ignored and limit is capped at
// constant.MaxValueLimit. With withDefaults set, a missing page or limit
// falls back to the configured defaults.
func (q *QueryParams) FromRequest(r *http.Request, withDefaults bool) {
	query := r.URL.Query()

	if page, ok := positiveInt(query, constant.RequestParamPage); ok {
		q.Page = page
	}

	if limit, ok := positiveInt(query, constant.RequestParamLimit); ok {
		q.Limit = min(limit, constant.MaxValueLimit)
	}

	if sortBy := strings.TrimSpace(query.Get(constant.RequestParamSortBy)); sortBy != "" {
		q.SortBy = sortBy
	}

	if dir := strings.ToUpper(query.Get(constant.RequestParamSortDir)); dir == SortDirAsc || dir == SortDirDesc {
		q.SortDir = dir
	}

	if !withDefaults {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

// Sanitize replaces a SortBy outside sortable with the default column and
// fills an empty SortDir. SortBy reaches SQL unescaped, so callers must run
// this before querying.
func (q *QueryParams) Sanitize(sortable []string) {
	if !slices.Contains(sortable, q.SortBy) {
		q.SortBy = constant.DefaultValueSortBy
	}

	if q.SortDir != SortDirAsc && q.SortDir != SortDirDesc {
		q.SortDir = constant.DefaultValueSortDir
	}
}

// Offset is the number of rows skipped before Page.
func (q QueryParams) Offset() int {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}

func positiveInt(query url.Values, key string) (int, bool) {
	value, err := strconv.Atoi(query.Get(key))
	if err != nil || value <= 0 {
		return 0, false
	}

	return value, true
}
