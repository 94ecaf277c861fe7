package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rioharsa/storefront-gateway/internal/domain"
	"github.com/rioharsa/storefront-gateway/internal/infrastructure/circuitbreaker"
	"github.com/rioharsa/storefront-gateway/pkg/errs"
	"github.com/rioharsa/storefront-gateway/pkg/httpclient"
	"github.com/sony/gobreaker/v2"
)

type UpstreamCatalogRepository struct {
	host    string
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func CreateUpstreamCatalogRepository(host string) CatalogRepository {
	return &UpstreamCatalogRepository{
		host:    host,
		breaker: circuitbreaker.CreateCircuitBreaker("catalog-upstream"),
	}
}

func (r *UpstreamCatalogRepository) get(ctx context.Context, url string) (int, []byte, error) {
	var statusCode int

	body, err := r.breaker.Execute(func() ([]byte, error) {
		var respBody []byte
		var err error

		statusCode, respBody, err = httpclient.SendRequest(ctx, httpclient.HttpRequest{
			URL:    url,
			Method: http.MethodGet,
		})
		if err != nil {
			return nil, err
		}

		// 5xx responses count against the breaker, 4xx do not.
		if statusCode >= http.StatusInternalServerError {
			return respBody, fmt.Errorf("upstream returned status %d", statusCode)
		}

		return respBody, nil
	})
	if err != nil {
		return statusCode, nil, fmt.Errorf("%w: %v", errs.ErrUpstreamUnavailable, err)
	}

	return statusCode, body, nil
}

func (r *UpstreamCatalogRepository) GetProducts(ctx context.Context, criteria domain.FilterCriteria) (envelope domain.ResultEnvelope, err error) {
	url := fmt.Sprintf("%s/api/products?%s", r.host, BuildProductQuery(criteria).Encode())

	statusCode, body, err := r.get(ctx, url)
	if err != nil {
		return
	}

	if statusCode != http.StatusOK {
		return envelope, fmt.Errorf("%w: upstream returned status %d", errs.ErrUpstreamUnavailable, statusCode)
	}

	if err := json.Unmarshal(body, &envelope); err != nil {
		return envelope, fmt.Errorf("%w: %v", errs.ErrMalformedUpstreamResponse, err)
	}

	return envelope, nil
}

func (r *UpstreamCatalogRepository) GetProduct(ctx context.Context, id string) (product domain.Product, err error) {
	url := fmt.Sprintf("%s/api/products/%s", r.host, id)

	statusCode, body, err := r.get(ctx, url)
	if err != nil {
		return
	}

	if statusCode == http.StatusNotFound {
		return product, errs.ErrNotFound
	}

	if statusCode != http.StatusOK {
		return product, fmt.Errorf("%w: upstream returned status %d", errs.ErrUpstreamUnavailable, statusCode)
	}

	if err := json.Unmarshal(body, &product); err != nil {
		return product, fmt.Errorf("%w: %v", errs.ErrMalformedUpstreamResponse, err)
	}

	return product, nil
}

func (r *UpstreamCatalogRepository) GetCategories(ctx context.Context) (categories []domain.Category, err error) {
	url := fmt.Sprintf("%s/api/products/categories", r.host)

	statusCode, body, err := r.get(ctx, url)
	if err != nil {
		return
	}

	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: upstream returned status %d", errs.ErrUpstreamUnavailable, statusCode)
	}

	if err := json.Unmarshal(body, &categories); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrMalformedUpstreamResponse, err)
	}

	return categories, nil
}

func (r *UpstreamCatalogRepository) GetBrands(ctx context.Context) (brands []domain.Brand, err error) {
	url := fmt.Sprintf("%s/api/products/brands", r.host)

	statusCode, body, err := r.get(ctx, url)
	if err != nil {
		return
	}

	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: upstream returned status %d", errs.ErrUpstreamUnavailable, statusCode)
	}

	if err := json.Unmarshal(body, &brands); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrMalformedUpstreamResponse, err)
	}

	return brands, nil
}
