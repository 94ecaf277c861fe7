package service

import (
	"context"
	"errors"
	"time"

	"github.com/rioharsa/storefront-gateway/internal/domain"
	"github.com/rioharsa/storefront-gateway/internal/dto"
	"github.com/rioharsa/storefront-gateway/internal/repository"
	"github.com/rioharsa/storefront-gateway/internal/session"
	"github.com/rioharsa/storefront-gateway/pkg/errs"
	"github.com/rioharsa/storefront-gateway/pkg/utils"
	"github.com/rs/zerolog/log"
)

type UserServiceImpl struct {
	authRepo       repository.AuthRepository
	resolveTimeout time.Duration
}

func CreateUserService(authRepo repository.AuthRepository, resolveTimeout time.Duration) UserService {
	return &UserServiceImpl{
		authRepo:       authRepo,
		resolveTimeout: resolveTimeout,
	}
}

func (s *UserServiceImpl) Login(ctx context.Context, sess *session.Browse, payload dto.LoginRequest) (dto.LoginResponse, error) {
	token, profile, err := s.authRepo.Login(ctx, payload)
	if err != nil {
		log.Info().Err(err).Str("component", "Login").Str("session", sess.ID).Msg("login rejected")
		return dto.LoginResponse{}, err
	}

	sess.SetAuthenticated(profile, token)

	return dto.LoginResponse{Token: token, Profile: profile}, nil
}

// Register creates the account and nothing more. The user logs in
// afterwards; a fresh registration does not establish a session.
func (s *UserServiceImpl) Register(ctx context.Context, payload dto.RegisterRequest) (dto.RegisterResponse, error) {
	profile, err := s.authRepo.Register(ctx, payload)
	if err != nil {
		return dto.RegisterResponse{}, err
	}

	return dto.RegisterResponse{Profile: profile}, nil
}

// Logout drops the credential unconditionally, whatever state the session
// was in.
func (s *UserServiceImpl) Logout(ctx context.Context, sess *session.Browse) {
	sess.SetAnonymous()
}

func (s *UserServiceImpl) GetSession(ctx context.Context, sess *session.Browse) dto.SessionResponse {
	state, profile, _ := sess.Auth()

	return dto.SessionResponse{
		State:   state.String(),
		Profile: profile,
	}
}

// GetProfile is the protected read. While the session is still Resolving the
// answer is "not yet", never a guess either way.
func (s *UserServiceImpl) GetProfile(ctx context.Context, sess *session.Browse) (domain.UserProfile, error) {
	state, profile, _ := sess.Auth()

	switch state {
	case domain.SessionAuthenticated:
		return *profile, nil
	case domain.SessionResolving:
		go s.ResolveSession(sess)
		return domain.UserProfile{}, errs.ErrSessionResolving
	default:
		return domain.UserProfile{}, errs.ErrNotLoggedIn
	}
}

// GetDashboard loads the profile page's orders and wishlist tabs. Each tab
// degrades to an empty list on upstream failure; the profile itself still
// renders.
func (s *UserServiceImpl) GetDashboard(ctx context.Context, sess *session.Browse) (dto.DashboardResponse, error) {
	state, _, token := sess.Auth()

	switch state {
	case domain.SessionResolving:
		go s.ResolveSession(sess)
		return dto.DashboardResponse{}, errs.ErrSessionResolving
	case domain.SessionAnonymous:
		return dto.DashboardResponse{}, errs.ErrNotLoggedIn
	}

	resp := dto.DashboardResponse{
		Orders:   []domain.OrderSummary{},
		Wishlist: []domain.WishlistItem{},
	}

	orders, err := s.authRepo.GetOrders(ctx, token)
	if err != nil {
		log.Warn().Err(err).Str("component", "GetDashboard").Msg("failed to fetch orders")
	} else {
		resp.Orders = orders
	}

	wishlist, err := s.authRepo.GetWishlist(ctx, token)
	if err != nil {
		log.Warn().Err(err).Str("component", "GetDashboard").Msg("failed to fetch wishlist")
	} else {
		resp.Wishlist = wishlist
	}

	return resp, nil
}

// ResolveSession validates a presented credential against the upstream and
// settles the session into Authenticated or Anonymous. On a transport
// failure the session stays Resolving and the next protected access retries.
// Locally expired tokens settle to Anonymous without a round trip.
//
// Settling goes through SettleAuthenticated/SettleAnonymous so a login or
// logout issued while the resolver was in flight always wins over the
// resolver's outcome.
func (s *UserServiceImpl) ResolveSession(sess *session.Browse) {
	token, ok := sess.BeginResolve()
	if !ok {
		return
	}
	defer sess.EndResolve()

	if utils.TokenExpired(token) {
		sess.SettleAnonymous(token)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.resolveTimeout)
	defer cancel()

	profile, err := s.authRepo.GetProfile(ctx, token)
	if err != nil {
		if errors.Is(err, errs.ErrNotLoggedIn) {
			sess.SettleAnonymous(token)
			return
		}

		log.Warn().Err(err).Str("component", "ResolveSession").Str("session", sess.ID).Msg("credential resolution deferred")
		return
	}

	if !sess.SettleAuthenticated(token, profile) {
		log.Debug().Str("component", "ResolveSession").Str("session", sess.ID).Msg("discarded stale credential resolution")
	}
}
