package repository

import (
	"context"

	"github.com/rioharsa/storefront-gateway/internal/domain"
	"github.com/rioharsa/storefront-gateway/internal/dto"
)

type CatalogRepository interface {
	GetProducts(ctx context.Context, criteria domain.FilterCriteria) (domain.ResultEnvelope, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetBrands(ctx context.Context) ([]domain.Brand, error)
}

type AuthRepository interface {
	Login(ctx context.Context, payload dto.LoginRequest) (string, domain.UserProfile, error)
	Register(ctx context.Context, payload dto.RegisterRequest) (domain.UserProfile, error)
	GetProfile(ctx context.Context, token string) (domain.UserProfile, error)
	GetOrders(ctx context.Context, token string) ([]domain.OrderSummary, error)
	GetWishlist(ctx context.Context, token string) ([]domain.WishlistItem, error)
}
