package service

import (
	"context"

	"github.com/rioharsa/storefront-gateway/internal/domain"
	"github.com/rioharsa/storefront-gateway/internal/dto"
	"github.com/rioharsa/storefront-gateway/internal/repository"
	"github.com/rioharsa/storefront-gateway/internal/session"
	"github.com/rs/zerolog/log"
)

type CatalogServiceImpl struct {
	catalogRepo repository.CatalogRepository
}

func CreateCatalogService(catalogRepo repository.CatalogRepository) CatalogService {
	return &CatalogServiceImpl{catalogRepo: catalogRepo}
}

// refresh runs one filter mutation through the fetch cycle: mutate the
// snapshot and take a sequence ticket, fetch without holding the session
// lock, then apply the outcome only if the ticket is still the latest. A
// validation error aborts before any fetch; a fetch failure is not an error
// to the caller, it shows up as the FetchError indicator while the previous
// items stay on screen.
func (s *CatalogServiceImpl) refresh(ctx context.Context, sess *session.Browse, mutate func(domain.FilterCriteria) (domain.FilterCriteria, error)) (dto.BrowseStateResponse, error) {
	criteria, seq, err := sess.Update(mutate)
	if err != nil {
		return s.view(sess), err
	}

	envelope, err := s.catalogRepo.GetProducts(ctx, criteria)
	if err != nil {
		log.Warn().Err(err).Str("component", "refresh").Str("session", sess.ID).Msg("catalog fetch failed")
		sess.ApplyFailure(seq, err)
	} else {
		if !sess.ApplyResult(seq, envelope) {
			log.Debug().Str("component", "refresh").Str("session", sess.ID).Uint64("seq", seq).Msg("discarded stale catalog response")
		}
	}

	return s.view(sess), nil
}

func (s *CatalogServiceImpl) view(sess *session.Browse) dto.BrowseStateResponse {
	criteria, result, fetchErr := sess.View()

	resp := dto.BrowseStateResponse{
		SessionID: sess.ID,
		Filters:   criteria,
		Items:     []domain.Product{},
		PageInfo: domain.PageInfo{
			Page:       criteria.Page,
			TotalPages: 0,
		},
	}

	if result != nil {
		resp.Items = result.Items
		resp.TotalCount = result.TotalCount
		resp.PageInfo = DerivePageInfo(*result)
	}

	if fetchErr != nil {
		resp.FetchError = fetchErr.Error()
	}

	return resp
}

func (s *CatalogServiceImpl) GetBrowseState(ctx context.Context, sess *session.Browse) dto.BrowseStateResponse {
	if !sess.HasFetched() {
		state, _ := s.refresh(ctx, sess, nil)
		return state
	}

	return s.view(sess)
}

func (s *CatalogServiceImpl) UpdateFilters(ctx context.Context, sess *session.Browse, update dto.FilterUpdateRequest) (dto.BrowseStateResponse, error) {
	return s.refresh(ctx, sess, func(criteria domain.FilterCriteria) (domain.FilterCriteria, error) {
		return ApplyFilterUpdate(criteria, update)
	})
}

func (s *CatalogServiceImpl) SetPriceRange(ctx context.Context, sess *session.Browse, req dto.PriceRangeRequest) (dto.BrowseStateResponse, error) {
	return s.refresh(ctx, sess, func(criteria domain.FilterCriteria) (domain.FilterCriteria, error) {
		return WithPriceRange(criteria, req.MinPrice, req.MaxPrice)
	})
}

func (s *CatalogServiceImpl) SetSort(ctx context.Context, sess *session.Browse, req dto.SortRequest) (dto.BrowseStateResponse, error) {
	return s.refresh(ctx, sess, func(criteria domain.FilterCriteria) (domain.FilterCriteria, error) {
		return WithSort(criteria, req.Criterion)
	})
}

// GotoPage clamps the requested page against the last seen envelope before
// moving. Before any fetch has succeeded the only known page is 1.
func (s *CatalogServiceImpl) GotoPage(ctx context.Context, sess *session.Browse, req dto.PageRequest) (dto.BrowseStateResponse, error) {
	_, result, _ := sess.View()

	totalPages := 1
	if result != nil {
		totalPages = result.TotalPages
	}

	page := ClampPage(req.Page, totalPages)

	return s.refresh(ctx, sess, func(criteria domain.FilterCriteria) (domain.FilterCriteria, error) {
		return WithPage(criteria, page)
	})
}

func (s *CatalogServiceImpl) ResetFilters(ctx context.Context, sess *session.Browse) (dto.BrowseStateResponse, error) {
	return s.refresh(ctx, sess, func(domain.FilterCriteria) (domain.FilterCriteria, error) {
		return domain.DefaultFilterCriteria(), nil
	})
}

func (s *CatalogServiceImpl) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	return s.catalogRepo.GetProduct(ctx, id)
}

// The category and brand lists feed the filter panel. Either degrades to an
// empty list on upstream failure; a broken filter panel must not block
// browsing.

func (s *CatalogServiceImpl) GetCategories(ctx context.Context) []domain.Category {
	categories, err := s.catalogRepo.GetCategories(ctx)
	if err != nil {
		log.Warn().Err(err).Str("component", "GetCategories").Msg("failed to fetch categories")
		return []domain.Category{}
	}

	return categories
}

func (s *CatalogServiceImpl) GetBrands(ctx context.Context) []domain.Brand {
	brands, err := s.catalogRepo.GetBrands(ctx)
	if err != nil {
		log.Warn().Err(err).Str("component", "GetBrands").Msg("failed to fetch brands")
		return []domain.Brand{}
	}

	return brands
}
