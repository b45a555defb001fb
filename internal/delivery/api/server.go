// Package api serves the passwarden HTTP API.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"passwarden/config"
	"passwarden/internal/delivery"
	apimiddleware "passwarden/internal/delivery/api/middleware"
	"passwarden/internal/delivery/api/router"
	"passwarden/internal/delivery/api/validator"
	"passwarden/internal/delivery/middleware"
	"passwarden/internal/domain/lifecycle"
	"passwarden/internal/errors"

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

// NewServer builds the echo instance and registers its shutdown hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: NewEcho(params.Cfg, params.Logger, params.RouterParams),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho assembles middleware, error handling and routes. It is shared by the server and the HTTP tests.
func NewEcho(cfg *config.Config, logger *slog.Logger, routerParams router.RouterParams) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout
	echoServer.IPExtractor = newIPExtractor(cfg.HTTP.TrustedProxies)

	// Recover first, then the request id so that the access log sees it.
	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(middleware.RequestID(logger))
	accessLog := middleware.AccessLogConfig{Logger: logger, Debug: cfg.Env.Debug}
	if routerParams.Metrics != nil {
		accessLog.Observer = routerParams.Metrics
	}
	echoServer.Use(middleware.AccessLog(accessLog))
	echoServer.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	errorMiddleware := apimiddleware.NewErrorMiddleware(logger)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	echoServer.Validator = validator.New()

	r := router.NewRouter(routerParams)
	r.RegisterRoutes(echoServer)
	r.RegisterMetricsRoute(echoServer)

	return echoServer
}

// newIPExtractor uses the peer address unless trusted proxies are configured. Only the configured
// ranges are trusted to append to X-Forwarded-For; loopback and private networks are not trusted implicitly.
func newIPExtractor(trustedProxies []string) echo.IPExtractor {
	if len(trustedProxies) == 0 {
		return echo.ExtractIPDirect()
	}

	options := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range trustedProxies {
		// Config.Validate already rejected malformed ranges.
		if _, ipNet, err := net.ParseCIDR(cidr); err == nil {
			options = append(options, echo.TrustIPRange(ipNet))
		}
	}

	return echo.ExtractIPFromXFFHeader(options...)
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
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

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
