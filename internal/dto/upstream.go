package dto

import "github.com/rioharsa/storefront-gateway/internal/domain"

// Shapes of the upstream auth API payloads.

type UpstreamLoginResponse struct {
	Token string             `json:"token"`
	User  domain.UserProfile `json:"user"`
}

type UpstreamRegisterResponse struct {
	User domain.UserProfile `json:"user"`
}

type UpstreamErrorResponse struct {
	Message string `json:"message"`
}
