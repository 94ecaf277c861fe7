package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rioharsa/storefront-gateway/internal/domain"
	"github.com/rioharsa/storefront-gateway/internal/dto"
	"github.com/rioharsa/storefront-gateway/internal/infrastructure/circuitbreaker"
	"github.com/rioharsa/storefront-gateway/pkg/errs"
	"github.com/rioharsa/storefront-gateway/pkg/httpclient"
	"github.com/sony/gobreaker/v2"
)

type UpstreamAuthRepository struct {
	host    string
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func CreateUpstreamAuthRepository(host string) AuthRepository {
	return &UpstreamAuthRepository{
		host:    host,
		breaker: circuitbreaker.CreateCircuitBreaker("auth-upstream"),
	}
}

func (r *UpstreamAuthRepository) send(ctx context.Context, req httpclient.HttpRequest) (int, []byte, error) {
	var statusCode int

	body, err := r.breaker.Execute(func() ([]byte, error) {
		var respBody []byte
		var err error

		statusCode, respBody, err = httpclient.SendRequest(ctx, req)
		if err != nil {
			return nil, err
		}

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

// upstreamAuthError surfaces the upstream's rejection message verbatim,
// falling back to a generic one when the body cannot be parsed.
func upstreamAuthError(statusCode int, body []byte) error {
	var upstreamErr dto.UpstreamErrorResponse
	if err := json.Unmarshal(body, &upstreamErr); err == nil && upstreamErr.Message != "" {
		return &errs.UpstreamAuthError{Message: upstreamErr.Message, StatusCode: statusCode}
	}

	return &errs.UpstreamAuthError{Message: errs.ErrInvalidCredentials.Error(), StatusCode: statusCode}
}

func (r *UpstreamAuthRepository) Login(ctx context.Context, payload dto.LoginRequest) (token string, profile domain.UserProfile, err error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return "", profile, fmt.Errorf("error marshalling login request: %v", err)
	}

	statusCode, body, err := r.send(ctx, httpclient.HttpRequest{
		URL:    fmt.Sprintf("%s/api/auth/login", r.host),
		Method: http.MethodPost,
		Body:   jsonBody,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	})
	if err != nil {
		return
	}

	if statusCode != http.StatusOK {
		return "", profile, upstreamAuthError(statusCode, body)
	}

	var loginResp dto.UpstreamLoginResponse
	if err := json.Unmarshal(body, &loginResp); err != nil {
		return "", profile, fmt.Errorf("%w: %v", errs.ErrMalformedUpstreamResponse, err)
	}

	return loginResp.Token, loginResp.User, nil
}

func (r *UpstreamAuthRepository) Register(ctx context.Context, payload dto.RegisterRequest) (profile domain.UserProfile, err error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return profile, fmt.Errorf("error marshalling register request: %v", err)
	}

	statusCode, body, err := r.send(ctx, httpclient.HttpRequest{
		URL:    fmt.Sprintf("%s/api/auth/register", r.host),
		Method: http.MethodPost,
		Body:   jsonBody,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	})
	if err != nil {
		return
	}

	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		return profile, upstreamAuthError(statusCode, body)
	}

	var registerResp dto.UpstreamRegisterResponse
	if err := json.Unmarshal(body, &registerResp); err != nil {
		return profile, fmt.Errorf("%w: %v", errs.ErrMalformedUpstreamResponse, err)
	}

	return registerResp.User, nil
}

func (r *UpstreamAuthRepository) GetProfile(ctx context.Context, token string) (profile domain.UserProfile, err error) {
	statusCode, body, err := r.send(ctx, httpclient.HttpRequest{
		URL:    fmt.Sprintf("%s/api/auth/profile", r.host),
		Method: http.MethodGet,
		Headers: map[string]string{
			"Authorization": fmt.Sprintf("Bearer %s", token),
		},
	})
	if err != nil {
		return
	}

	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		return profile, errs.ErrNotLoggedIn
	}

	if statusCode != http.StatusOK {
		return profile, fmt.Errorf("%w: upstream returned status %d", errs.ErrUpstreamUnavailable, statusCode)
	}

	if err := json.Unmarshal(body, &profile); err != nil {
		return profile, fmt.Errorf("%w: %v", errs.ErrMalformedUpstreamResponse, err)
	}

	return profile, nil
}

func (r *UpstreamAuthRepository) GetOrders(ctx context.Context, token string) (orders []domain.OrderSummary, err error) {
	statusCode, body, err := r.send(ctx, httpclient.HttpRequest{
		URL:    fmt.Sprintf("%s/api/orders", r.host),
		Method: http.MethodGet,
		Headers: map[string]string{
			"Authorization": fmt.Sprintf("Bearer %s", token),
		},
	})
	if err != nil {
		return
	}

	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: upstream returned status %d", errs.ErrUpstreamUnavailable, statusCode)
	}

	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrMalformedUpstreamResponse, err)
	}

	return orders, nil
}

func (r *UpstreamAuthRepository) GetWishlist(ctx context.Context, token string) (wishlist []domain.WishlistItem, err error) {
	statusCode, body, err := r.send(ctx, httpclient.HttpRequest{
		URL:    fmt.Sprintf("%s/api/wishlist", r.host),
		Method: http.MethodGet,
		Headers: map[string]string{
			"Authorization": fmt.Sprintf("Bearer %s", token),
		},
	})
	if err != nil {
		return
	}

	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: upstream returned status %d", errs.ErrUpstreamUnavailable, statusCode)
	}

	if err := json.Unmarshal(body, &wishlist); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrMalformedUpstreamResponse, err)
	}

	return wishlist, nil
}
