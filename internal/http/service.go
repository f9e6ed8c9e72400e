package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/wwdevkhati/shop-backend/internal/config"
	"github.com/wwdevkhati/shop-backend/internal/http/apierr"
	"github.com/wwdevkhati/shop-backend/internal/http/metric"
	"github.com/wwdevkhati/shop-backend/internal/http/middleware"
	"github.com/wwdevkhati/shop-backend/internal/http/swagger"
	"github.com/wwdevkhati/shop-backend/internal/service"
	"github.com/wwdevkhati/shop-backend/internal/storage/db"
	"github.com/wwdevkhati/shop-backend/pkg/validator"
)

var tracer = otel.Tracer("internal/http")

const adminRealm = "shop admin"

// Service represents the HTTP service.
type Service struct {
	cfg      config.HTTP
	adminCfg config.Admin
	logger   *slog.Logger
	metrics  *metric.Metrics
	validate validator.Validator

	catalogSvc service.CatalogService
	orderSvc   service.OrderService
	health     db.HealthChecker
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	adminCfg config.Admin,
	log *slog.Logger,
	catalogSvc service.CatalogService,
	orderSvc service.OrderService,
	health db.HealthChecker,
) *Service {
	return &Service{
		cfg:        cfg,
		adminCfg:   adminCfg,
		logger:     log.With(slog.String("service", "http")),
		metrics:    metric.New(),
		validate:   validator.NewDefaultValidator(),
		catalogSvc: catalogSvc,
		orderSvc:   orderSvc,
		health:     health,
	}
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)

	if s.cfg.Swagger {
		swagger.Register(r)
	}

	s.RegisterHandlers(r)

	return s.RunWithServer(ctx, r)
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) {
	r.Get("/products", s.wrap(s.listProducts))
	r.Post("/order", s.wrap(s.placeOrder))

	r.Route("/admin", func(r chi.Router) {
		r.Use(chimiddleware.BasicAuth(adminRealm, map[string]string{
			s.adminCfg.User: s.adminCfg.Password,
		}))

		r.Post("/add-product", s.wrap(s.addProduct))
		r.Get("/", s.wrap(s.listOrders))
		r.Get("/orders", s.wrap(s.listOrders))
	})

	r.Get("/healthz", s.wrap(s.healthz))

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))
}

// handlerFunc is an http handler that reports its failure instead of
// writing it, so every error flows through one response mapping.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (s *Service) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			s.handleResponseError(w, r, err)
		}
	}
}

func (s *Service) handleResponseError(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	s.logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding error response",
			slog.Any("error", err))
	}
}

func (s *Service) healthz(w http.ResponseWriter, r *http.Request) error {
	if _, err := s.health.IsHealthy(r.Context()); err != nil {
		return fmt.Errorf("health check: %w", err)
	}

	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write([]byte("ok"))
	return nil
}
