package service

import (
	"context"

	"github.com/rioharsa/storefront-gateway/internal/domain"
	"github.com/rioharsa/storefront-gateway/internal/dto"
	"github.com/rioharsa/storefront-gateway/internal/session"
)

type CatalogService interface {
	GetBrowseState(ctx context.Context, sess *session.Browse) dto.BrowseStateResponse
	UpdateFilters(ctx context.Context, sess *session.Browse, update dto.FilterUpdateRequest) (dto.BrowseStateResponse, error)
	SetPriceRange(ctx context.Context, sess *session.Browse, req dto.PriceRangeRequest) (dto.BrowseStateResponse, error)
	SetSort(ctx context.Context, sess *session.Browse, req dto.SortRequest) (dto.BrowseStateResponse, error)
	GotoPage(ctx context.Context, sess *session.Browse, req dto.PageRequest) (dto.BrowseStateResponse, error)
	ResetFilters(ctx context.Context, sess *session.Browse) (dto.BrowseStateResponse, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	GetCategories(ctx context.Context) []domain.Category
	GetBrands(ctx context.Context) []domain.Brand
}

type UserService interface {
	Login(ctx context.Context, sess *session.Browse, payload dto.LoginRequest) (dto.LoginResponse, error)
	Register(ctx context.Context, payload dto.RegisterRequest) (dto.RegisterResponse, error)
	Logout(ctx context.Context, sess *session.Browse)
	GetSession(ctx context.Context, sess *session.Browse) dto.SessionResponse
	GetProfile(ctx context.Context, sess *session.Browse) (domain.UserProfile, error)
	GetDashboard(ctx context.Context, sess *session.Browse) (dto.DashboardResponse, error)
	ResolveSession(sess *session.Browse)
}
