package service

import (
	"testing"

	"github.com/rioharsa/storefront-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDerivePageInfo(t *testing.T) {
	testCases := []struct {
		Name     string
		Envelope domain.ResultEnvelope
		Expected domain.PageInfo
	}{
		{
			Name:     "middle page",
			Envelope: domain.ResultEnvelope{Page: 3, TotalPages: 5},
			Expected: domain.PageInfo{Page: 3, TotalPages: 5, HasNext: true, HasPrev: true},
		},
		{
			Name:     "first page",
			Envelope: domain.ResultEnvelope{Page: 1, TotalPages: 5},
			Expected: domain.PageInfo{Page: 1, TotalPages: 5, HasNext: true, HasPrev: false},
		},
		{
			Name:     "last page",
			Envelope: domain.ResultEnvelope{Page: 5, TotalPages: 5},
			Expected: domain.PageInfo{Page: 5, TotalPages: 5, HasNext: false, HasPrev: true},
		},
		{
			Name:     "single page",
			Envelope: domain.ResultEnvelope{Page: 1, TotalPages: 1},
			Expected: domain.PageInfo{Page: 1, TotalPages: 1, HasNext: false, HasPrev: false},
		},
		{
			Name:     "empty result",
			Envelope: domain.ResultEnvelope{Page: 1, TotalPages: 0},
			Expected: domain.PageInfo{Page: 1, TotalPages: 0, HasNext: false, HasPrev: false},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, DerivePageInfo(tc.Envelope))
		})
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 5, ClampPage(999, 5))
	assert.Equal(t, 1, ClampPage(0, 5))
	assert.Equal(t, 1, ClampPage(-3, 5))
	assert.Equal(t, 3, ClampPage(3, 5))
	assert.Equal(t, 1, ClampPage(2, 0))
}
