package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/rioharsa/storefront-gateway/internal/dto"
	"github.com/rioharsa/storefront-gateway/internal/middleware"
	"github.com/rioharsa/storefront-gateway/internal/service"
	"github.com/rioharsa/storefront-gateway/pkg/response"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(e *echo.Group, service service.UserService) {
	uc := UserController{
		service: service,
	}

	e.POST("/users/login", uc.Login)
	e.POST("/users/register", uc.Register)
	e.POST("/users/logout", uc.Logout)
	e.GET("/users/session", uc.GetSession)
	e.GET("/users/profile", uc.GetProfile)
	e.GET("/users/dashboard", uc.GetDashboard)
}

func (c *UserController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	sess := middleware.GetBrowseSession(e)

	respPayload, err := c.service.Login(e.Request().Context(), sess, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *UserController) Register(e echo.Context) error {
	payload := dto.RegisterRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
	}

	respPayload, err := c.service.Register(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "account created, please log in", respPayload)
}

func (c *UserController) Logout(e echo.Context) error {
	sess := middleware.GetBrowseSession(e)

	c.service.Logout(e.Request().Context(), sess)

	return response.WriteSuccessResponse(e, "logged out", nil)
}

func (c *UserController) GetSession(e echo.Context) error {
	sess := middleware.GetBrowseSession(e)

	return response.WriteSuccessResponse(e, "", c.service.GetSession(e.Request().Context(), sess))
}

func (c *UserController) GetProfile(e echo.Context) error {
	sess := middleware.GetBrowseSession(e)

	profile, err := c.service.GetProfile(e.Request().Context(), sess)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", profile)
}

func (c *UserController) GetDashboard(e echo.Context) error {
	sess := middleware.GetBrowseSession(e)

	respPayload, err := c.service.GetDashboard(e.Request().Context(), sess)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}
