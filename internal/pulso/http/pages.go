package http

import (
	"errors"
	"net/http"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/service"
	"github.com/pulsohoreca/pulso/pkg/httpx"
	"github.com/pulsohoreca/pulso/pkg/pulsosdk"
)

// PageView is the page model handed to the web client once navigation has
// let the request through. The client owns rendering.
type PageView struct {
	View string                 `json:"view"`
	Path string                 `json:"path"`
	User *pulsosdk.UserResponse `json:"user,omitempty"`
	Data any                    `json:"data,omitempty"`
}

// wizardData is what the onboarding wizard offers.
type wizardData struct {
	Plans          []string `json:"plans"`
	InvitableRoles []string `json:"invitable_roles"`
	Categories     []string `json:"checklist_categories"`
}

type PagesHandler struct {
	OnboardingService *service.OnboardingService
	InvitationService *service.InvitationService
}

func newPageView(r *http.Request, view string) PageView {
	pv := PageView{View: view, Path: r.URL.Path}
	if u := userFromRequest(r); u != nil {
		pv.User = &pulsosdk.UserResponse{ID: u.ID, Email: u.Email}
	}
	return pv
}

// View serves a page with no data of its own.
func (h *PagesHandler) View(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, newPageView(r, name))
	}
}

// HandleOnboarding sends the user where the redirector decides, or serves
// the wizard.
func (h *PagesHandler) HandleOnboarding(w http.ResponseWriter, r *http.Request) {
	res := h.OnboardingService.Resolve(r.Context(), userFromRequest(r))
	if !res.ShowWizard {
		httpx.SeeOther(w, r, res.Destination)
		return
	}

	pv := newPageView(r, "onboarding_wizard")
	pv.Data = wizardData{
		Plans:          service.Plans,
		InvitableRoles: service.InvitableRoles,
		Categories: []string{
			string(domain.CategoryLimpieza),
			string(domain.CategorySeguridad),
			string(domain.CategoryAtencionCliente),
			string(domain.CategoryOperaciones),
		},
	}
	httpx.WriteJSON(w, http.StatusOK, pv)
}

func (h *PagesHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, newPageView(r, "dashboard"))
}

// HandleAcceptInvitation shows the invitation behind a link, or a not-found
// view for unknown tokens.
func (h *PagesHandler) HandleAcceptInvitation(w http.ResponseWriter, r *http.Request) {
	inv, err := h.InvitationService.GetByToken(r.Context(), r.PathValue("token"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrInvitationNotFound) {
			status = http.StatusNotFound
		}
		httpx.WriteJSON(w, status, newPageView(r, "invitation_not_found"))
		return
	}

	pv := newPageView(r, "accept_invitation")
	pv.Data = toInvitationResponse(inv, false)
	httpx.WriteJSON(w, http.StatusOK, pv)
}
