package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/mpcoutinho/condo_admin_app/internal/core/services"
	"github.com/mpcoutinho/condo_admin_app/internal/handlers"
	"github.com/mpcoutinho/condo_admin_app/internal/middleware"
	"github.com/mpcoutinho/condo_admin_app/internal/repositories/database/pgsql"
	"github.com/mpcoutinho/condo_admin_app/internal/utils"
	"github.com/mpcoutinho/condo_admin_app/pkg/config"
	"github.com/mpcoutinho/condo_admin_app/pkg/database"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portsrepo "github.com/mpcoutinho/condo_admin_app/internal/core/ports/repositories"
	portssvc "github.com/mpcoutinho/condo_admin_app/internal/core/ports/services"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Condo Admin API
// @version 1.0
// @description Backend for condominium administration: residents, suppliers, charges, payments and maintenance.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	registerCustomValidators(logger)

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSAllowOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"X-Request-ID"},
	}))
	r.Use(middleware.RateLimit(newIPRateLimiter(cfg.RateLimitPerMinute)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := newServiceContainer(repos)
	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newServiceContainer wires repositories into the service layer.
func newServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Resident:    services.NewResidentService(repos.ResidentRepo),
		Supplier:    services.NewSupplierService(repos.SupplierRepo),
		Charge:      services.NewChargeService(repos.ChargeRepo, repos.ResidentRepo),
		Payment:     services.NewPaymentService(repos.PaymentRepo),
		Maintenance: services.NewMaintenanceService(repos.MaintenanceRepo),
		Reporting:   services.NewReportingService(repos.ReportingRepo),
	}
}

// registerCustomValidators adds the caldate rule used by the date fields
// in request DTOs: a value must decode as a plain YYYY-MM-DD string.
func registerCustomValidators(logger *slog.Logger) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		logger.Error("Failed to access the gin validator engine")
		os.Exit(1)
	}

	err := v.RegisterValidation("caldate", func(fl validator.FieldLevel) bool {
		_, err := utils.ParseCalendarDate(fl.Field().String())
		return err == nil
	})
	if err != nil {
		logger.Error("Failed to register caldate validation", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newIPRateLimiter builds an in-memory per-IP limiter.
func newIPRateLimiter(perMinute int) *limiter.Limiter {
	rate, _ := limiter.NewRateFromFormatted(fmt.Sprintf("%d-M", perMinute))
	store := memory.NewStore()
	return limiter.New(store, rate)
}

// runMigrations applies all pending "up" migrations before the server starts.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	// Open a temporary standard sql.DB connection for migrations
	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	if err := migrationDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", upErr)
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
