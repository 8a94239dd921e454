package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/planetpizza/planetpizza-backend/api/routes"
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
	"github.com/planetpizza/planetpizza-backend/pkg/db"
	"github.com/planetpizza/planetpizza-backend/pkg/logger"
	"github.com/planetpizza/planetpizza-backend/pkg/metrics"
	"github.com/planetpizza/planetpizza-backend/pkg/migrate"
	"github.com/planetpizza/planetpizza-backend/pkg/redis"
)

const shutdownGracePeriod = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	gormDB := dbClient.DB()
	staffRepo := staff.NewRepository(gormDB)

	authService, err := auth.NewService(auth.ServiceParams{
		StaffRepo:      staffRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
		Logger:         logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	productsRepo := products.NewRepository(gormDB)
	productService, err := products.NewService(productsRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create product service", err)
		os.Exit(1)
	}

	comboService, err := combos.NewService(combos.NewRepository(gormDB))
	if err != nil {
		logg.Error(context.Background(), "failed to create combo service", err)
		os.Exit(1)
	}

	couponService, err := coupons.NewService(coupons.NewRepository(gormDB))
	if err != nil {
		logg.Error(context.Background(), "failed to create coupon service", err)
		os.Exit(1)
	}

	customerService, err := customers.NewService(customers.NewRepository(gormDB))
	if err != nil {
		logg.Error(context.Background(), "failed to create customer service", err)
		os.Exit(1)
	}

	settingsService, err := settings.NewService(settings.NewRepository(gormDB))
	if err != nil {
		logg.Error(context.Background(), "failed to create settings service", err)
		os.Exit(1)
	}

	orderService, err := orders.NewService(orders.ServiceParams{
		OrderRepo: orders.NewRepository(gormDB),
		Catalog:   productsRepo,
		Coupons:   couponService,
		Customers: customerService,
		Settings:  settingsService,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}

	billingService := billing.NewService(billing.NewRepository(gormDB), time.Local)

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	router := routes.NewRouter(routes.Deps{
		Config:          cfg,
		Logger:          logg,
		Redis:           redisClient,
		Sessions:        sessionManager,
		HTTPMetrics:     httpMetrics,
		AuthService:     authService,
		StaffRepo:       staffRepo,
		ProductService:  productService,
		ComboService:    comboService,
		CouponService:   couponService,
		CustomerService: customerService,
		OrderService:    orderService,
		BillingService:  billingService,
		SettingsService: settingsService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			_ = closeAll(dbClient, redisClient)
			os.Exit(1)
		}
	case <-runCtx.Done():
		logg.Info(ctx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancel()

	if err := multierr.Combine(server.Shutdown(shutdownCtx), closeAll(dbClient, redisClient)); err != nil {
		logg.Error(ctx, "shutdown finished with errors", err)
		os.Exit(1)
	}
	logg.Info(ctx, "api server stopped")
}

func closeAll(dbClient *db.Client, redisClient *redis.Client) error {
	var errs []error
	if dbClient != nil {
		errs = append(errs, dbClient.Close())
	}
	if redisClient != nil {
		errs = append(errs, redisClient.Close())
	}
	return multierr.Combine(errs...)
}
