package wire

import (
	"net/http"

	"safari-booking/internal/adaptor"
	"safari-booking/internal/data/fallback"
	"safari-booking/internal/data/memory"
	"safari-booking/internal/data/repository"
	"safari-booking/internal/data/resolve"
	"safari-booking/internal/notify"
	"safari-booking/internal/usecase"
	"safari-booking/pkg/database"
	"safari-booking/pkg/metrics"
	"safari-booking/pkg/middleware"
	"safari-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Options are the collaborators built outside the router.
type Options struct {
	DB       database.PgxIface // nil when DATABASE_URL is unset
	Fallback *fallback.Set
	Notifier notify.Notifier
	Registry *prometheus.Registry
}

// App holds the router plus the process-lifetime in-memory store.
type App struct {
	Router *chi.Mux
	Store  *memory.Store
}

// Wiring builds every layer and mounts the routes.
func Wiring(opts Options, config *utils.Config, logger *zap.Logger) *App {
	if opts.Fallback == nil {
		opts.Fallback = fallback.Default()
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.NewNotifier(notify.NewLogSender(logger), config.Notify.To, logger)
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}

	m := metrics.New(opts.Registry)
	store := memory.NewStore()
	hasDB := config.Database.Configured()
	if hasDB && opts.DB == nil {
		logger.Warn("DATABASE_URL is set but no connection pool was supplied, using fallback content and in-memory storage")
		hasDB = false
	}
	resolver := resolve.NewResolver(resolve.Configured(hasDB), logger, m)

	var repo *repository.Repository
	if resolver.HasDB() {
		repo = repository.NewRepository(opts.DB, logger)
	}

	service := usecase.NewService(usecase.Dependencies{
		Repo:     repo,
		Store:    store,
		Fallback: opts.Fallback,
		Resolver: resolver,
		Notifier: opts.Notifier,
		Metrics:  m,
		Config:   config,
	}, logger)
	handler := adaptor.NewHandler(service, resolver, opts.DB, logger)

	router := setupRouter(handler, opts.Registry, m, config, logger)

	return &App{
		Router: router,
		Store:  store,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	registry *prometheus.Registry,
	m *metrics.Metrics,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger, m))
	r.Use(middleware.Recover(logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseError(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	// Apply routes
	wireContent(r, handler.Content)
	wireSubmissions(r, handler.Booking, handler.Contact)
	wireAdmin(r, handler, config, logger)

	r.Get("/health", handler.Health.Live)
	r.Get("/health/ready", handler.Health.Ready)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return r
}
