package domain

const (
	SortByName   = "name"
	SortByPrice  = "price"
	SortByRating = "rating"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// FilterCriteria is one immutable snapshot of the browse filters. Mutations
// go through service.FilterState, which copies the snapshot rather than
// editing it in place.
type FilterCriteria struct {
	Search    string  `json:"search"`
	Category  string  `json:"category"`
	Brand     string  `json:"brand"`
	MinPrice  float64 `json:"minPrice"`
	MaxPrice  float64 `json:"maxPrice"`
	SortBy    string  `json:"sortBy"`
	SortOrder string  `json:"sortOrder"`
	Page      int     `json:"page"`
	PageSize  int     `json:"pageSize"`
}

func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		Search:    "",
		Category:  "",
		Brand:     "",
		MinPrice:  0,
		MaxPrice:  1000,
		SortBy:    SortByName,
		SortOrder: SortOrderAsc,
		Page:      1,
		PageSize:  12,
	}
}
