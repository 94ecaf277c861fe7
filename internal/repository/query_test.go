package repository

import (
	"testing"

	"github.com/rioharsa/storefront-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildProductQuery_Defaults(t *testing.T) {
	query := BuildProductQuery(domain.DefaultFilterCriteria())

	// empty text filters are omitted, numeric bounds are not
	assert.False(t, query.Has("search"))
	assert.False(t, query.Has("category"))
	assert.False(t, query.Has("brand"))

	assert.Equal(t, "0", query.Get("minPrice"))
	assert.Equal(t, "1000", query.Get("maxPrice"))
	assert.Equal(t, "name", query.Get("sortBy"))
	assert.Equal(t, "asc", query.Get("sortOrder"))
	assert.Equal(t, "1", query.Get("page"))
	assert.Equal(t, "12", query.Get("pageSize"))

	assert.Equal(t, "maxPrice=1000&minPrice=0&page=1&pageSize=12&sortBy=name&sortOrder=asc", query.Encode())
}

func TestBuildProductQuery_AllFieldsSet(t *testing.T) {
	criteria := domain.FilterCriteria{
		Search:    "mechanical keyboard",
		Category:  "electronics",
		Brand:     "acme",
		MinPrice:  19.99,
		MaxPrice:  250,
		SortBy:    domain.SortByPrice,
		SortOrder: domain.SortOrderDesc,
		Page:      3,
		PageSize:  24,
	}

	query := BuildProductQuery(criteria)

	assert.Equal(t, "mechanical keyboard", query.Get("search"))
	assert.Equal(t, "electronics", query.Get("category"))
	assert.Equal(t, "acme", query.Get("brand"))
	assert.Equal(t, "19.99", query.Get("minPrice"))
	assert.Equal(t, "250", query.Get("maxPrice"))
	assert.Equal(t, "price", query.Get("sortBy"))
	assert.Equal(t, "desc", query.Get("sortOrder"))
	assert.Equal(t, "3", query.Get("page"))
	assert.Equal(t, "24", query.Get("pageSize"))

	// percent-encoding round-trips through the server's parser
	assert.Contains(t, query.Encode(), "search=mechanical+keyboard")
}
