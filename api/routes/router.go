package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/printventory/printventory-backend/api/controllers"
	"github.com/printventory/printventory-backend/api/middleware"
	"github.com/printventory/printventory-backend/internal/auth"
	"github.com/printventory/printventory-backend/internal/catalog"
	"github.com/printventory/printventory-backend/internal/inventory"
	"github.com/printventory/printventory-backend/internal/reports"
	"github.com/printventory/printventory-backend/internal/transactions"
	"github.com/printventory/printventory-backend/pkg/config"
	"github.com/printventory/printventory-backend/pkg/logger"
	"github.com/printventory/printventory-backend/pkg/metrics"
	"github.com/printventory/printventory-backend/pkg/redis"
)

// Services bundles the domain services served by the API.
type Services struct {
	Auth         auth.Service
	Catalog      catalog.Service
	Inventory    inventory.Service
	Transactions transactions.Service
	Reports      reports.Service
}

// NewRouter wires the middleware chain and every API route.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	redisClient *redis.Client,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
		middleware.Metrics(httpMetrics),
	)

	passthrough := func(next http.Handler) http.Handler { return next }
	loginLimit, registerLimit := passthrough, passthrough
	if redisClient != nil {
		loginPolicy := middleware.NewAuthRateLimitPolicy(
			"login",
			cfg.AuthRateLimit.LoginWindow,
			cfg.AuthRateLimit.LoginIPLimit,
			cfg.AuthRateLimit.LoginUsernameLimit,
		)
		registerPolicy := middleware.NewAuthRateLimitPolicy(
			"register",
			cfg.AuthRateLimit.RegisterWindow,
			cfg.AuthRateLimit.RegisterIPLimit,
			cfg.AuthRateLimit.RegisterUsernameLimit,
		)
		loginLimit = middleware.AuthRateLimit(loginPolicy, redisClient, logg)
		registerLimit = middleware.AuthRateLimit(registerPolicy, redisClient, logg)
	}

	r.Get("/api/health", controllers.Health(cfg))
	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.With(registerLimit).Post("/register", controllers.Register(svcs.Auth, logg))
		r.With(loginLimit).Post("/login", controllers.Login(svcs.Auth, logg))
	})

	r.Group(func(r chi.Router) {
		// Resource endpoints serve with or without a token; a valid
		// bearer token only attributes the request in the logs.
		r.Use(middleware.Identify(cfg.JWT, logg))

		r.Route("/api/categories", func(r chi.Router) {
			r.Get("/", controllers.ListCategories(svcs.Catalog, logg))
			r.Post("/", controllers.CreateCategory(svcs.Catalog, logg))
		})

		r.Route("/api/locations", func(r chi.Router) {
			r.Get("/", controllers.ListLocations(svcs.Catalog, logg))
			r.Post("/", controllers.CreateLocation(svcs.Catalog, logg))
			r.Put("/{locationID}", controllers.UpdateLocation(svcs.Catalog, logg))
			r.Delete("/{locationID}", controllers.DeleteLocation(svcs.Catalog, logg))
		})

		r.Route("/api/printers", func(r chi.Router) {
			r.Get("/", controllers.ListPrinters(svcs.Catalog, logg))
			r.Post("/", controllers.CreatePrinter(svcs.Catalog, logg))
			r.Put("/{printerID}", controllers.UpdatePrinter(svcs.Catalog, logg))
			r.Delete("/{printerID}", controllers.DeletePrinter(svcs.Catalog, logg))
		})

		r.Route("/api/inventory", func(r chi.Router) {
			r.Get("/", controllers.ListInventory(svcs.Inventory, logg))
			r.Post("/", controllers.CreateInventoryItem(svcs.Inventory, logg))
			r.Put("/{itemID}", controllers.UpdateInventoryItem(svcs.Inventory, logg))
			r.Delete("/{itemID}", controllers.DeleteInventoryItem(svcs.Inventory, logg))
		})

		r.Route("/api/transactions", func(r chi.Router) {
			r.Get("/", controllers.ListTransactions(svcs.Transactions, logg))
			r.Post("/", controllers.CreateTransaction(svcs.Transactions, logg))
		})

		r.Get("/api/financial/summary", controllers.FinancialSummary(svcs.Reports, logg))
		r.Get("/api/reports/low-stock", controllers.LowStockReport(svcs.Reports, logg))
		r.Get("/api/reports/inventory-value", controllers.InventoryValueReport(svcs.Reports, logg))
		r.Get("/api/dashboard/metrics", controllers.DashboardMetrics(svcs.Reports, logg))
		r.Get("/api/dashboard/charts", controllers.DashboardCharts(svcs.Reports, logg))
	})

	return r
}
