package dto

import "github.com/rioharsa/storefront-gateway/internal/domain"

// BrowseStateResponse is the full visible state of a browse session. Items
// and PageInfo always come from the same fetch; a failed fetch leaves them
// untouched and sets FetchError instead.
type BrowseStateResponse struct {
	SessionID  string                `json:"sessionId"`
	Filters    domain.FilterCriteria `json:"filters"`
	Items      []domain.Product      `json:"items"`
	TotalCount int64                 `json:"totalCount"`
	PageInfo   domain.PageInfo       `json:"pageInfo"`
	FetchError string                `json:"fetchError,omitempty"`
}
