package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/planetpizza/planetpizza-backend/api/controllers"
	"github.com/planetpizza/planetpizza-backend/api/middleware"
	"github.com/planetpizza/planetpizza-backend/internal/auth"
	"github.com/planetpizza/planetpizza-backend/internal/billing"
	"github.com/planetpizza/planetpizza-backend/internal/combos"
	"github.com/planetpizza/planetpizza-backend/internal/coupons"
	"github.com/planetpizza/planetpizza-backend/internal/customers"
	"github.com/planetpizza/planetpizza-backend/internal/orders"
	"github.com/planetpizza/planetpizza-backend/internal/products"
	"github.com/planetpizza/planetpizza-backend/internal/settings"
	"github.com/planetpizza/planetpizza-backend/internal/staff"
	"github.com/planetpizza/planetpizza-backend/pkg/auth/session"
	"github.com/planetpizza/planetpizza-backend/pkg/config"
	"github.com/planetpizza/planetpizza-backend/pkg/enums"
	"github.com/planetpizza/planetpizza-backend/pkg/logger"
	"github.com/planetpizza/planetpizza-backend/pkg/metrics"
	"github.com/planetpizza/planetpizza-backend/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Rotate(context.Context, string, string) (string, string, error)
	Revoke(context.Context, string) error
}

// Deps bundles everything the router wires into handlers. main builds it
// once at startup.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	Redis       *redis.Client
	Sessions    sessionManager
	HTTPMetrics *metrics.HTTPMetrics

	AuthService     auth.Service
	StaffRepo       *staff.Repository
	ProductService  products.Service
	ComboService    combos.Service
	CouponService   coupons.Service
	CustomerService customers.Service
	OrderService    orders.Service
	BillingService  billing.Service
	SettingsService settings.Service
}

// NewRouter assembles the HTTP surface: the legacy admin-auth function,
// the public storefront API, and the authenticated back office.
func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)
	if deps.HTTPMetrics != nil {
		r.Use(deps.HTTPMetrics.Middleware)
	}

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginUsernameLimit,
	)

	var cache redis.Pinger
	var limiter redis.Limiter
	if deps.Redis != nil {
		cache = deps.Redis
		limiter = deps.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, cache, logg))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// The pre-migration admin panel posts every auth action here.
	r.Route("/functions/v1/admin-auth", func(r chi.Router) {
		r.Use(middleware.LegacyCORS())
		r.Use(middleware.AuthRateLimit(loginPolicy, limiter, logg))
		r.Post("/", controllers.LegacyAdminAuth(deps.AuthService, cfg.JWT, deps.Sessions, logg))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.CORS())

		r.Get("/ping", controllers.PublicPing())

		// Storefront, unauthenticated.
		r.Get("/cardapio", controllers.PublicMenu(deps.ProductService, logg))
		r.Get("/combos", controllers.PublicCombos(deps.ComboService, logg))
		r.Get("/loja", controllers.PublicSettings(deps.SettingsService, logg))
		r.Post("/checkout", controllers.CheckoutCreate(deps.OrderService, logg))

		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(loginPolicy, limiter, logg)).
				Post("/login", controllers.AuthLogin(deps.AuthService, logg))
			r.Post("/logout", controllers.AuthLogout(deps.Sessions, cfg.JWT, logg))
			r.Post("/refresh", controllers.AuthRefresh(deps.Sessions, cfg.JWT, logg))
		})

		// Back office, any authenticated funcionario.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))

			r.Get("/admin/ping", controllers.AdminPing())
			r.Get("/pedidos", controllers.OrdersList(deps.OrderService, logg))
			r.Get("/pedidos/{id}", controllers.OrderGet(deps.OrderService, logg))
			r.Get("/produtos", controllers.ProductsList(deps.ProductService, logg))
			r.Get("/admin/combos", controllers.CombosList(deps.ComboService, logg))
			r.Get("/cupons", controllers.CouponsList(deps.CouponService, logg))
			r.Get("/clientes", controllers.CustomersList(deps.CustomerService, logg))

			// Admin-only management surface.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(enums.StaffRoleAdmin.String(), logg))

				r.Get("/funcionarios", controllers.StaffList(deps.StaffRepo, logg))
				r.Post("/funcionarios", controllers.StaffCreate(deps.AuthService, logg))
				r.Patch("/funcionarios/{id}/ativo", controllers.StaffSetActive(deps.StaffRepo, logg))

				r.Post("/produtos", controllers.ProductCreate(deps.ProductService, logg))
				r.Put("/produtos/{id}", controllers.ProductUpdate(deps.ProductService, logg))
				r.Patch("/produtos/{id}/ativo", controllers.ProductSetActive(deps.ProductService, logg))
				r.Delete("/produtos/{id}", controllers.ProductDelete(deps.ProductService, logg))

				r.Post("/admin/combos", controllers.ComboCreate(deps.ComboService, logg))
				r.Patch("/admin/combos/{id}/ativo", controllers.ComboSetActive(deps.ComboService, logg))
				r.Delete("/admin/combos/{id}", controllers.ComboDelete(deps.ComboService, logg))

				r.Post("/cupons", controllers.CouponCreate(deps.CouponService, logg))
				r.Patch("/cupons/{id}/ativo", controllers.CouponSetActive(deps.CouponService, logg))
				r.Delete("/cupons/{id}", controllers.CouponDelete(deps.CouponService, logg))

				r.Get("/faturamento", controllers.BillingSummary(deps.BillingService, logg))
				r.Get("/faturamento/dia", controllers.BillingDay(deps.BillingService, logg))
				r.Get("/faturamento/export", controllers.BillingExportCSV(deps.BillingService, logg))

				r.Put("/loja", controllers.SettingsUpdate(deps.SettingsService, logg))
			})
		})
	})

	return r
}
