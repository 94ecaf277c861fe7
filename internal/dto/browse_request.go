package dto

// FilterUpdateRequest is a partial filter update. Only the fields present in
// the payload are applied; applying any of them moves the session back to
// page 1.
type FilterUpdateRequest struct {
	Search   *string `json:"search"`
	Category *string `json:"category"`
	Brand    *string `json:"brand"`
	PageSize *int    `json:"pageSize"`
}

type PriceRangeRequest struct {
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
}

type SortRequest struct {
	// Criterion is one of "name", "price:asc", "price:desc", "rating".
	Criterion string `json:"criterion"`
}

type PageRequest struct {
	Page int `json:"page"`
}
