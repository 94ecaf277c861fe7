package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/rioharsa/storefront-gateway/internal/dto"
	"github.com/rioharsa/storefront-gateway/internal/middleware"
	"github.com/rioharsa/storefront-gateway/internal/service"
	"github.com/rioharsa/storefront-gateway/pkg/response"
	"github.com/rs/zerolog/log"
)

type CatalogController struct {
	service service.CatalogService
}

func CreateCatalogController(e *echo.Group, service service.CatalogService) {
	c := CatalogController{
		service: service,
	}

	e.POST("/browse", c.CreateBrowse)
	e.GET("/browse/products", c.GetBrowseProducts)
	e.PATCH("/browse/filters", c.UpdateFilters)
	e.PUT("/browse/price-range", c.SetPriceRange)
	e.PUT("/browse/sort", c.SetSort)
	e.PUT("/browse/page", c.GotoPage)
	e.POST("/browse/reset", c.ResetFilters)
	e.GET("/products/:id", c.GetProduct)
	e.GET("/products/categories", c.GetCategories)
	e.GET("/products/brands", c.GetBrands)
}

func (c *CatalogController) CreateBrowse(e echo.Context) error {
	sess := middleware.GetBrowseSession(e)

	state := c.service.GetBrowseState(e.Request().Context(), sess)

	return response.WriteSuccessResponse(e, "browse session ready", state)
}

func (c *CatalogController) GetBrowseProducts(e echo.Context) error {
	sess := middleware.GetBrowseSession(e)

	state := c.service.GetBrowseState(e.Request().Context(), sess)

	return response.WriteSuccessResponse(e, "", state)
}

func (c *CatalogController) UpdateFilters(e echo.Context) error {
	payload := dto.FilterUpdateRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateFilters").Msg("")
	}

	sess := middleware.GetBrowseSession(e)

	state, err := c.service.UpdateFilters(e.Request().Context(), sess, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", state)
}

func (c *CatalogController) SetPriceRange(e echo.Context) error {
	payload := dto.PriceRangeRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "SetPriceRange").Msg("")
	}

	sess := middleware.GetBrowseSession(e)

	state, err := c.service.SetPriceRange(e.Request().Context(), sess, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", state)
}

func (c *CatalogController) SetSort(e echo.Context) error {
	payload := dto.SortRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "SetSort").Msg("")
	}

	sess := middleware.GetBrowseSession(e)

	state, err := c.service.SetSort(e.Request().Context(), sess, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", state)
}

func (c *CatalogController) GotoPage(e echo.Context) error {
	payload := dto.PageRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "GotoPage").Msg("")
	}

	sess := middleware.GetBrowseSession(e)

	state, err := c.service.GotoPage(e.Request().Context(), sess, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", state)
}

func (c *CatalogController) ResetFilters(e echo.Context) error {
	sess := middleware.GetBrowseSession(e)

	state, err := c.service.ResetFilters(e.Request().Context(), sess)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", state)
}

func (c *CatalogController) GetProduct(e echo.Context) error {
	product, err := c.service.GetProduct(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", product)
}

func (c *CatalogController) GetCategories(e echo.Context) error {
	return response.WriteSuccessResponse(e, "", c.service.GetCategories(e.Request().Context()))
}

func (c *CatalogController) GetBrands(e echo.Context) error {
	return response.WriteSuccessResponse(e, "", c.service.GetBrands(e.Request().Context()))
}
