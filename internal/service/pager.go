package service

import "github.com/rioharsa/storefront-gateway/internal/domain"

// DerivePageInfo reads the pagination facts out of a result envelope. The
// envelope's totalPages is trusted as-is; the upstream computes it.
func DerivePageInfo(envelope domain.ResultEnvelope) domain.PageInfo {
	return domain.PageInfo{
		Page:       envelope.Page,
		TotalPages: envelope.TotalPages,
		HasNext:    envelope.Page < envelope.TotalPages,
		HasPrev:    envelope.Page > 1,
	}
}

// ClampPage bounds a requested page to [1, totalPages]. Out-of-range page
// controls are clamped, never errored; an empty result set still has a
// page 1 to stand on.
func ClampPage(n, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}

	if n < 1 {
		return 1
	}
	if n > totalPages {
		return totalPages
	}

	return n
}
