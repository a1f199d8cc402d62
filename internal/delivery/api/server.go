package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"identity/config"
	"identity/internal/delivery"
	apimiddleware "identity/internal/delivery/api/middleware"
	"identity/internal/delivery/api/render"
	"identity/internal/delivery/api/router"
	"identity/internal/delivery/api/validator"
	"identity/internal/delivery/middleware"
	"identity/internal/domain/lifecycle"
	"identity/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the identity HTTP server and registers its shutdown hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e, err := newEcho(params.Cfg, params.Logger, router.NewRouter(params.RouterParams))
	if err != nil {
		return nil, err
	}

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

type routeRegistrar interface {
	RegisterRoutes(e *echo.Echo)
	RegisterMetricsRoute(e *echo.Echo)
}

func newEcho(cfg *config.Config, logger *slog.Logger, routes routeRegistrar) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Order matters: recover first, request id before the access log.
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "0",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "no-referrer",
	}))
	if len(cfg.HTTP.AllowOrigins) > 0 {
		e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins:     cfg.HTTP.AllowOrigins,
			AllowCredentials: true,
		}))
	}
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))
	e.Use(noStoreAuthResponses)

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	renderer, err := render.New()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	routes.RegisterRoutes(e)
	routes.RegisterMetricsRoute(e)

	return e, nil
}

// noStoreAuthResponses keeps responses that set or read credentials out of shared caches.
func noStoreAuthResponses(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		if strings.HasPrefix(path, "/auth/") || strings.HasPrefix(path, "/user/") {
			c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
		}

		return next(c)
	}
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting identity HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down identity HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
