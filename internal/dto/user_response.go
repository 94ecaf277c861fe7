package dto

import "github.com/rioharsa/storefront-gateway/internal/domain"

type LoginResponse struct {
	Token   string             `json:"token"`
	Profile domain.UserProfile `json:"profile"`
}

type RegisterResponse struct {
	Profile domain.UserProfile `json:"profile"`
}

type SessionResponse struct {
	State   string              `json:"state"`
	Profile *domain.UserProfile `json:"profile,omitempty"`
}

type DashboardResponse struct {
	Orders   []domain.OrderSummary `json:"orders"`
	Wishlist []domain.WishlistItem `json:"wishlist"`
}
