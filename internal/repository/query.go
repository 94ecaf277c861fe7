package repository

import (
	"net/url"
	"strconv"

	"github.com/rioharsa/storefront-gateway/internal/domain"
)

// BuildProductQuery serializes one filter snapshot into the upstream query
// string. Text filters are omitted when empty; numeric bounds and paging are
// always emitted because 0 and 1000 are meaningful values, not absences.
func BuildProductQuery(criteria domain.FilterCriteria) url.Values {
	query := url.Values{}

	if criteria.Search != "" {
		query.Set("search", criteria.Search)
	}
	if criteria.Category != "" {
		query.Set("category", criteria.Category)
	}
	if criteria.Brand != "" {
		query.Set("brand", criteria.Brand)
	}

	query.Set("minPrice", strconv.FormatFloat(criteria.MinPrice, 'f', -1, 64))
	query.Set("maxPrice", strconv.FormatFloat(criteria.MaxPrice, 'f', -1, 64))
	query.Set("sortBy", criteria.SortBy)
	query.Set("sortOrder", criteria.SortOrder)
	query.Set("page", strconv.Itoa(criteria.Page))
	query.Set("pageSize", strconv.Itoa(criteria.PageSize))

	return query
}
