package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusBadGateway     = http.StatusBadGateway
	ErrStatusResolving      = http.StatusServiceUnavailable
)

var (
	ErrInternalServer            = errors.New("Internal server error")
	ErrClient                    = errors.New("Bad request")
	ErrNotLoggedIn               = errors.New("Unauthorized access")
	ErrNotFound                  = errors.New("Resource not found")
	ErrInvalidCredentials        = errors.New("Email or password is incorrect")
	ErrInvalidPriceRange         = errors.New("Minimum price must not exceed maximum price")
	ErrInvalidPage               = errors.New("Page number must be at least 1")
	ErrInvalidSort               = errors.New("Unknown sort criterion")
	ErrInvalidPageSize           = errors.New("Page size must be greater than zero")
	ErrBrowseSessionNotFound     = errors.New("Browse session not found or expired")
	ErrSessionResolving          = errors.New("Session is still being resolved")
	ErrUpstreamUnavailable       = errors.New("Upstream service is unavailable")
	ErrMalformedUpstreamResponse = errors.New("Upstream service returned a malformed response")
)

var errorMap = map[error]int{
	ErrInternalServer:            ErrStatusInternalServer,
	ErrClient:                    ErrStatusClient,
	ErrNotLoggedIn:               ErrStatusNotLoggedIn,
	ErrNotFound:                  ErrStatusNotFound,
	ErrInvalidCredentials:        ErrStatusNotLoggedIn,
	ErrInvalidPriceRange:         ErrStatusClient,
	ErrInvalidPage:               ErrStatusClient,
	ErrInvalidSort:               ErrStatusClient,
	ErrInvalidPageSize:           ErrStatusClient,
	ErrBrowseSessionNotFound:     ErrStatusNotFound,
	ErrSessionResolving:          ErrStatusResolving,
	ErrUpstreamUnavailable:       ErrStatusBadGateway,
	ErrMalformedUpstreamResponse: ErrStatusBadGateway,
}

// UpstreamAuthError carries an upstream auth rejection through to the client
// verbatim, message and status code both.
type UpstreamAuthError struct {
	Message    string
	StatusCode int
}

func (e *UpstreamAuthError) Error() string {
	return e.Message
}

func GetErrorStatusCode(err error) int {
	var authErr *UpstreamAuthError
	if errors.As(err, &authErr) {
		return authErr.StatusCode
	}

	for target, statusCode := range errorMap {
		if errors.Is(err, target) {
			return statusCode
		}
	}

	return errorMap[ErrInternalServer]
}
