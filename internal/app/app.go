package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rioharsa/storefront-gateway/config"
	"github.com/rioharsa/storefront-gateway/internal/controller"
	"github.com/rioharsa/storefront-gateway/internal/infrastructure/tracing"
	gatewaymiddleware "github.com/rioharsa/storefront-gateway/internal/middleware"
	"github.com/rioharsa/storefront-gateway/internal/repository"
	"github.com/rioharsa/storefront-gateway/internal/service"
	"github.com/rioharsa/storefront-gateway/internal/session"
	"github.com/rioharsa/storefront-gateway/pkg/httpclient"
	"github.com/rioharsa/storefront-gateway/pkg/response"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type App struct {
	Config   *config.Config
	Server   *echo.Echo
	Sessions *session.Store
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	httpclient.SetTimeout(app.Config.RequestTimeout)

	e := echo.New()
	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	} else {
		defer func() {
			if err := traceProvider.Shutdown(context.Background()); err != nil {
				logger.Error().Err(err).Msg("Failed to shutdown tracing")
			}
		}()

		tracer := traceProvider.Tracer("storefront-gateway")

		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
				defer span.End()

				req := c.Request()
				c.SetRequest(req.WithContext(ctx))

				return next(c)
			}
		})
	}

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	app.Sessions = session.CreateStore(app.Config.SessionTTL)

	catalogRepo := repository.CreateUpstreamCatalogRepository(app.Config.UpstreamHost)
	authRepo := repository.CreateUpstreamAuthRepository(app.Config.UpstreamHost)

	catalogSvc := service.CreateCatalogService(catalogRepo)
	userSvc := service.CreateUserService(authRepo, app.Config.RequestTimeout)

	g := e.Group("/api/v1")
	g.Use(gatewaymiddleware.Logger)
	g.Use(gatewaymiddleware.BrowseSession(app.Sessions, userSvc))

	controller.CreateCatalogController(g, catalogSvc)
	controller.CreateUserController(g, userSvc)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})

	app.Server = e

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))
}

func (app *App) StopServer() error {
	if app.Sessions != nil {
		app.Sessions.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
