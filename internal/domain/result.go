package domain

// ResultEnvelope is one page of catalog results as returned by the upstream
// product API. The upstream guarantees totalPages = ceil(totalCount/pageSize);
// the gateway trusts it.
type ResultEnvelope struct {
	Items      []Product `json:"items"`
	TotalCount int64     `json:"totalCount"`
	TotalPages int       `json:"totalPages"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
}

type PageInfo struct {
	Page       int  `json:"page"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}
