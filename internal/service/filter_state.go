package service

import (
	"github.com/rioharsa/storefront-gateway/internal/domain"
	"github.com/rioharsa/storefront-gateway/internal/dto"
	"github.com/rioharsa/storefront-gateway/pkg/errs"
)

// Filter mutations. Each takes a snapshot by value and returns a new one;
// the invariant throughout is that changing anything except the page number
// moves the session back to page 1.

// ApplyFilterUpdate applies the fields present in a partial update. An empty
// update is a no-op and keeps the current page.
func ApplyFilterUpdate(criteria domain.FilterCriteria, update dto.FilterUpdateRequest) (domain.FilterCriteria, error) {
	if update.PageSize != nil && *update.PageSize <= 0 {
		return criteria, errs.ErrInvalidPageSize
	}

	changed := false

	if update.Search != nil {
		criteria.Search = *update.Search
		changed = true
	}
	if update.Category != nil {
		criteria.Category = *update.Category
		changed = true
	}
	if update.Brand != nil {
		criteria.Brand = *update.Brand
		changed = true
	}
	if update.PageSize != nil {
		criteria.PageSize = *update.PageSize
		changed = true
	}

	if changed {
		criteria.Page = 1
	}

	return criteria, nil
}

// WithPriceRange updates both bounds atomically. An inverted or negative
// range is rejected outright rather than clamped; the caller's input is
// wrong and silently fixing it would hide that.
func WithPriceRange(criteria domain.FilterCriteria, minPrice, maxPrice float64) (domain.FilterCriteria, error) {
	if minPrice < 0 || minPrice > maxPrice {
		return criteria, errs.ErrInvalidPriceRange
	}

	criteria.MinPrice = minPrice
	criteria.MaxPrice = maxPrice
	criteria.Page = 1

	return criteria, nil
}

// WithSort maps a sort criterion string onto a (sortBy, sortOrder) pair.
// Rating only sorts descending; nobody asks for the worst-rated items first.
func WithSort(criteria domain.FilterCriteria, criterion string) (domain.FilterCriteria, error) {
	switch criterion {
	case "name":
		criteria.SortBy = domain.SortByName
		criteria.SortOrder = domain.SortOrderAsc
	case "price:asc":
		criteria.SortBy = domain.SortByPrice
		criteria.SortOrder = domain.SortOrderAsc
	case "price:desc":
		criteria.SortBy = domain.SortByPrice
		criteria.SortOrder = domain.SortOrderDesc
	case "rating":
		criteria.SortBy = domain.SortByRating
		criteria.SortOrder = domain.SortOrderDesc
	default:
		return criteria, errs.ErrInvalidSort
	}

	criteria.Page = 1

	return criteria, nil
}

// WithPage moves to page n without touching anything else. This is the one
// mutation that does not reset the page.
func WithPage(criteria domain.FilterCriteria, n int) (domain.FilterCriteria, error) {
	if n < 1 {
		return criteria, errs.ErrInvalidPage
	}

	criteria.Page = n

	return criteria, nil
}
