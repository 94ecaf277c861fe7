package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rioharsa/storefront-gateway/internal/domain"
	"github.com/rioharsa/storefront-gateway/internal/dto"
	"github.com/rioharsa/storefront-gateway/internal/middleware"
	"github.com/rioharsa/storefront-gateway/internal/service"
	"github.com/rioharsa/storefront-gateway/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogRepo struct{}

func (r *fakeCatalogRepo) GetProducts(ctx context.Context, criteria domain.FilterCriteria) (domain.ResultEnvelope, error) {
	return domain.ResultEnvelope{
		Items:      []domain.Product{{ID: "p1", Name: "keyboard", Category: criteria.Category}},
		TotalCount: 1,
		TotalPages: 1,
		Page:       criteria.Page,
		PageSize:   criteria.PageSize,
	}, nil
}

func (r *fakeCatalogRepo) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	return domain.Product{ID: id, Name: "keyboard"}, nil
}

func (r *fakeCatalogRepo) GetCategories(ctx context.Context) ([]domain.Category, error) {
	return []domain.Category{{ID: "c1", Name: "electronics"}}, nil
}

func (r *fakeCatalogRepo) GetBrands(ctx context.Context) ([]domain.Brand, error) {
	return []domain.Brand{}, nil
}

type fakeAuthRepo struct{}

func (r *fakeAuthRepo) Login(ctx context.Context, payload dto.LoginRequest) (string, domain.UserProfile, error) {
	return "jwt-abc", domain.UserProfile{ID: "u1", Email: payload.Email}, nil
}

func (r *fakeAuthRepo) Register(ctx context.Context, payload dto.RegisterRequest) (domain.UserProfile, error) {
	return domain.UserProfile{ID: "u2", Email: payload.Email}, nil
}

func (r *fakeAuthRepo) GetProfile(ctx context.Context, token string) (domain.UserProfile, error) {
	return domain.UserProfile{ID: "u1"}, nil
}

func (r *fakeAuthRepo) GetOrders(ctx context.Context, token string) ([]domain.OrderSummary, error) {
	return []domain.OrderSummary{}, nil
}

func (r *fakeAuthRepo) GetWishlist(ctx context.Context, token string) ([]domain.WishlistItem, error) {
	return []domain.WishlistItem{}, nil
}

type successEnvelope struct {
	Status  string                  `json:"status"`
	Message string                  `json:"message"`
	Data    dto.BrowseStateResponse `json:"data"`
}

func setupGateway(t *testing.T) *echo.Echo {
	t.Helper()

	store := session.CreateStore(time.Minute)
	t.Cleanup(store.Close)

	catalogSvc := service.CreateCatalogService(&fakeCatalogRepo{})
	userSvc := service.CreateUserService(&fakeAuthRepo{}, time.Second)

	e := echo.New()
	g := e.Group("/api/v1")
	g.Use(middleware.BrowseSession(store, userSvc))

	CreateCatalogController(g, catalogSvc)
	CreateUserController(g, userSvc)

	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, sessionID, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if sessionID != "" {
		req.Header.Set(middleware.SessionHeader, sessionID)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestBrowseFlow(t *testing.T) {
	e := setupGateway(t)

	// opening the storefront creates a session and fetches page 1
	rec := doJSON(t, e, http.MethodPost, "/api/v1/browse", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	sessionID := rec.Header().Get(middleware.SessionHeader)
	require.NotEmpty(t, sessionID)

	var created successEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, domain.DefaultFilterCriteria(), created.Data.Filters)
	require.Len(t, created.Data.Items, 1)

	// narrowing a filter keeps the session and resets the page
	rec = doJSON(t, e, http.MethodPut, "/api/v1/browse/page", sessionID, `{"page": 1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, e, http.MethodPatch, "/api/v1/browse/filters", sessionID, `{"category": "electronics"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var filtered successEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &filtered))
	assert.Equal(t, sessionID, filtered.Data.SessionID)
	assert.Equal(t, "electronics", filtered.Data.Filters.Category)
	assert.Equal(t, 1, filtered.Data.Filters.Page)
}

func TestSetPriceRange_InvalidRangeIsBadRequest(t *testing.T) {
	e := setupGateway(t)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/browse", "", "")
	sessionID := rec.Header().Get(middleware.SessionHeader)

	rec = doJSON(t, e, http.MethodPut, "/api/v1/browse/price-range", sessionID, `{"minPrice": 20, "maxPrice": 10}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProfile_AnonymousIsUnauthorized(t *testing.T) {
	e := setupGateway(t)

	rec := doJSON(t, e, http.MethodGet, "/api/v1/users/profile", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginThenProfile(t *testing.T) {
	e := setupGateway(t)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/browse", "", "")
	sessionID := rec.Header().Get(middleware.SessionHeader)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/users/login", sessionID, `{"email": "admin@example.com", "password": "123456"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/api/v1/users/profile", sessionID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExpiredSessionHeaderGetsFreshSession(t *testing.T) {
	e := setupGateway(t)

	rec := doJSON(t, e, http.MethodGet, "/api/v1/browse/products", "01ARZ3NDEKTSV4RRFFQ69G5FAV", "")
	require.Equal(t, http.StatusOK, rec.Code)

	issued := rec.Header().Get(middleware.SessionHeader)
	assert.NotEmpty(t, issued)
	assert.NotEqual(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", issued)
}
