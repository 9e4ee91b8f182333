package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/metrics"
	"github.com/pulsohoreca/pulso/internal/pulso/service"
	"github.com/pulsohoreca/pulso/internal/pulso/store"
	"github.com/pulsohoreca/pulso/pkg/httpx"
	"github.com/pulsohoreca/pulso/pkg/slogx"

	_ "github.com/pulsohoreca/pulso/api/pulso" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	Metrics *metrics.Metrics

	SessionService    *service.SessionService
	OnboardingService *service.OnboardingService
	CompanyService    *service.CompanyService
	Permissions       *service.PermissionManager
	Gate              *service.Gate
	NavigationService *service.NavigationService
	InvitationService *service.InvitationService
	RolesService      *service.RolesService
	MembersService    *service.MembersService
	ChecklistService  *service.ChecklistService
	CatalogService    *service.CatalogService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.SessionMiddleware(r.resolveSession),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSession()
	r.registerOnboarding()
	r.registerPermissions()
	r.registerRoles()
	r.registerNavigation()
	r.registerMembers()
	r.registerInvitations()
	r.registerChecklists()
	r.registerPages()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			PULSO HORECA Access Service API
//	@version		0.1.0
//	@description	Authorization and onboarding decisions for PULSO HORECA: permission checks, onboarding redirects, dashboard menus, members, invitations and checklist drafts.
//	@description
//	@description				Requests are authenticated with the auth provider's session JWT (HS256).
//
//	@contact.name				PULSO HORECA
//	@contact.url				https://github.com/pulsohoreca/pulso
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session JWT. Format: "Bearer {token}". The sb-access-token cookie is accepted as well.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// resolveSession adapts SessionService to the session middleware.
func (r *Router) resolveSession(ctx context.Context, token string) (*httpx.Principal, error) {
	u, err := r.SessionService.CurrentUser(ctx, token)
	if err != nil || u == nil {
		return nil, err
	}
	return &httpx.Principal{UserID: u.ID, Email: u.Email}, nil
}

func (r *Router) registerSession() {
	h := &SessionHandler{}

	r.Mux.Handle("GET /v1/session",
		httpx.Chain(h,
			httpx.RequireUser(),
			httpx.RateLimitByUser(httpx.StandardLimit),
		),
	)
}

func (r *Router) registerOnboarding() {
	h := &OnboardingHandler{
		OnboardingService: r.OnboardingService,
		CompanyService:    r.CompanyService,
	}

	// Anonymous callers get a /login destination rather than a 401.
	r.Mux.Handle("GET /v1/onboarding/status",
		httpx.Chain(http.HandlerFunc(h.HandleStatus),
			httpx.RateLimitByUser(httpx.StandardLimit),
		),
	)
	r.Mux.Handle("POST /v1/onboarding",
		httpx.Chain(http.HandlerFunc(h.HandleSubmit),
			httpx.RequireUser(),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerPermissions() {
	h := &PermissionsHandler{Gate: r.Gate, Permissions: r.Permissions}

	// The gate itself answers for anonymous callers.
	r.Mux.Handle("POST /v1/permissions/check",
		httpx.Chain(http.HandlerFunc(h.HandleCheck),
			httpx.RateLimitByUser(httpx.StandardLimit),
		),
	)
	r.Mux.Handle("GET /v1/permissions/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			httpx.RequireUser(),
			httpx.RateLimitByUser(httpx.StandardLimit),
		),
	)
}

func (r *Router) registerRoles() {
	h := &RolesHandler{RolesService: r.RolesService, Permissions: r.Permissions}

	r.Mux.Handle("GET /v1/roles",
		httpx.Chain(h,
			httpx.RequireUser(),
			httpx.RateLimitByUser(httpx.StandardLimit),
		),
	)
}

func (r *Router) registerNavigation() {
	h := &NavigationHandler{NavigationService: r.NavigationService}

	r.Mux.Handle("GET /v1/navigation",
		httpx.Chain(h,
			httpx.RequireUser(),
			httpx.RateLimitByUser(httpx.StandardLimit),
		),
	)
}

func (r *Router) registerMembers() {
	h := &MembersHandler{MembersService: r.MembersService}

	r.Mux.Handle("GET /v1/members",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RequireUser(),
			httpx.RateLimitByUser(httpx.StandardLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/members/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleRevoke),
			httpx.RequireUser(),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerInvitations() {
	h := &InvitationsHandler{InvitationService: r.InvitationService}

	r.Mux.Handle("POST /v1/invitations",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RequireUser(),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("GET /v1/invitations",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RequireUser(),
			httpx.RateLimitByUser(httpx.StandardLimit),
		),
	)

	// Invitees open the link before signing in; limit by IP against token guessing.
	r.Mux.Handle("GET /v1/invitations/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/invitations/{token}/accept",
		httpx.Chain(http.HandlerFunc(h.HandleAccept),
			httpx.RequireUser(),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/invitations/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleRevoke),
			httpx.RequireUser(),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerChecklists() {
	h := &ChecklistsHandler{ChecklistService: r.ChecklistService}

	r.Mux.Handle("POST /v1/checklists/drafts",
		httpx.Chain(h,
			httpx.RequireUser(),
			httpx.RateLimitByUser(httpx.StandardLimit),
			r.requirePermission(domain.Criteria{Permission: service.PermChecklistCreate}, nil),
		),
	)

	// Callers without checklist.create still see the form, read-only.
	r.Mux.Handle("GET /v1/checklists/form",
		httpx.Chain(http.HandlerFunc(h.HandleForm),
			httpx.RequireUser(),
			httpx.RateLimitByUser(httpx.StandardLimit),
			r.requirePermission(
				domain.Criteria{Permission: service.PermChecklistCreate},
				http.HandlerFunc(h.HandleReadOnlyForm),
			),
		),
	)
}

func (r *Router) registerPages() {
	h := &PagesHandler{
		OnboardingService: r.OnboardingService,
		InvitationService: r.InvitationService,
	}
	page := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.RateLimitByUser(httpx.StandardLimit),
			r.navigate(),
		)
	}

	r.Mux.Handle("GET /{$}", page(h.View("home")))
	r.Mux.Handle("GET /login", page(h.View("login")))
	r.Mux.Handle("GET /register", page(h.View("register")))
	r.Mux.Handle("GET /unauthorized", page(h.View("unauthorized")))
	r.Mux.Handle("GET /onboarding", page(h.HandleOnboarding))
	r.Mux.Handle("GET /dashboard", page(h.HandleDashboard))
	r.Mux.Handle("GET /dashboard/{path...}", page(h.HandleDashboard))
	r.Mux.Handle("GET /accept-invitation/{token}", page(h.HandleAcceptInvitation))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.CatalogService),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	if r.Metrics != nil {
		r.Mux.Handle("GET /metrics", r.Metrics.Handler())
	}
}
