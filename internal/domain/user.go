package domain

type UserProfile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// SessionState is the authentication state of one browse session.
//
// Resolving means a persisted credential was presented but has not been
// validated against the upstream yet; protected access is deferred, never
// assumed either way, until resolution completes.
type SessionState int

const (
	SessionResolving SessionState = iota
	SessionAnonymous
	SessionAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case SessionResolving:
		return "resolving"
	case SessionAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

type OrderSummary struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	Status    string  `json:"status"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}

type WishlistItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl"`
}
