package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pulsohoreca/pulso/internal/pulso/cache"
	httpapi "github.com/pulsohoreca/pulso/internal/pulso/http"
	"github.com/pulsohoreca/pulso/internal/pulso/metrics"
	"github.com/pulsohoreca/pulso/internal/pulso/service"
	"github.com/pulsohoreca/pulso/internal/pulso/store/drivers/sqlite"
	"github.com/pulsohoreca/pulso/pkg/jwtx"
	"github.com/pulsohoreca/pulso/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags "-X".
var BuildVersion = "v0.1.0"

const serviceName = "pulso-access"

// Application encapsulates the access service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       *sqlite.Store
	verifier *jwtx.HS256
	metrics  *metrics.Metrics
	cache    cache.PermissionCache

	sessionService      *service.SessionService
	permissions         *service.PermissionManager
	gate                *service.Gate
	onboardingService   *service.OnboardingService
	companyService      *service.CompanyService
	navigationService   *service.NavigationService
	invitationService   *service.InvitationService
	rolesService        *service.RolesService
	membersService      *service.MembersService
	checklistService    *service.ChecklistService
	catalogService      *service.CatalogService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// NewLogger builds the service logger from cfg.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: serviceName,
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// New creates an Application with all dependencies initialized. The
// database is migrated and the role catalog seeded before it returns.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg:    cfg,
		logger: NewLogger(cfg),
	}

	verifier, err := jwtx.NewHS256([]byte(cfg.JWTSecret), jwtx.VerifyOptions{
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		Leeway:   30 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session verifier: %w", err)
	}
	app.verifier = verifier

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()

	if err := app.seedCatalog(context.Background()); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()
	return app, nil
}

// Handler exposes the HTTP handler, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("access service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down access service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("access service stopped")
	return nil
}

// OpenDatabase opens the configured SQLite file.
func OpenDatabase(cfg Config) (*sqlite.Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

// initDatabase opens the database and applies migrations.
func (app *Application) initDatabase() error {
	db, err := OpenDatabase(app.cfg)
	if err != nil {
		return err
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// seedCatalog installs the default roles and permissions on first start.
func (app *Application) seedCatalog(ctx context.Context) error {
	ctx = slogx.WithContext(ctx, app.logger)

	seeded, err := app.catalogService.Seed(ctx, service.DefaultCatalog())
	if err != nil {
		return fmt.Errorf("failed to seed role catalog: %w", err)
	}
	if seeded {
		app.logger.Info("role catalog seeded")
	}
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	if app.cfg.MetricsEnabled {
		app.metrics = metrics.New(metrics.Config{
			ServiceName: serviceName,
			Environment: app.cfg.Env,
		})
	}

	app.cache = cache.NewPermissionCache(app.cfg.PermissionCacheTTL)
	app.permissions = service.NewPermissionManager(app.db, app.cache)

	app.sessionService = &service.SessionService{Store: app.db, Verifier: app.verifier}
	app.gate = &service.Gate{Checker: app.permissions, Metrics: app.metrics}
	app.onboardingService = &service.OnboardingService{Store: app.db, Metrics: app.metrics}
	app.invitationService = &service.InvitationService{
		Store:       app.db,
		Permissions: app.permissions,
		Metrics:     app.metrics,
		TTL:         app.cfg.InvitationTTL,
	}
	app.companyService = &service.CompanyService{
		Store:         app.db,
		Permissions:   app.permissions,
		Metrics:       app.metrics,
		InvitationTTL: app.cfg.InvitationTTL,
	}
	app.navigationService = &service.NavigationService{
		Store:       app.db,
		Permissions: app.permissions,
		Policy:      service.DefaultRoutePolicy(),
		Metrics:     app.metrics,
	}
	app.rolesService = &service.RolesService{Store: app.db}
	app.membersService = &service.MembersService{Store: app.db, Permissions: app.permissions}
	app.checklistService = &service.ChecklistService{}
	app.catalogService = &service.CatalogService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.invitationService,
		app.cache,
		app.metrics,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	router.Metrics = app.metrics
	router.SessionService = app.sessionService
	router.OnboardingService = app.onboardingService
	router.CompanyService = app.companyService
	router.Permissions = app.permissions
	router.Gate = app.gate
	router.NavigationService = app.navigationService
	router.InvitationService = app.invitationService
	router.RolesService = app.rolesService
	router.MembersService = app.membersService
	router.ChecklistService = app.checklistService
	router.CatalogService = app.catalogService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
