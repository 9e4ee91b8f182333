package pulsosdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client calls the access service on behalf of one signed-in user.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Token is the caller's session token. Anonymous when empty.
	Token string
}

// NewClient creates a client for baseURL using token as the session.
func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Token: token,
	}
}

// WithToken returns a copy of c acting as another session.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.Token = token
	return &cp
}

func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentUser returns the user behind the session token.
func (c *Client) CurrentUser(ctx context.Context) (*UserResponse, error) {
	var out UserResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/session", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// OnboardingStatus asks where the user belongs. Anonymous callers are sent
// to /login.
func (c *Client) OnboardingStatus(ctx context.Context) (*OnboardingStatusResponse, error) {
	var out OnboardingStatusResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/onboarding/status", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CompleteOnboarding submits the wizard.
func (c *Client) CompleteOnboarding(ctx context.Context, req OnboardingRequest) (*OnboardingResponse, error) {
	var out OnboardingResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/onboarding", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckPermission evaluates gate criteria for the caller.
func (c *Client) CheckPermission(ctx context.Context, req CheckRequest) (*CheckResponse, error) {
	var out CheckResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/permissions/check", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyPermissions lists the caller's roles and permissions, optionally scoped
// to one company.
func (c *Client) MyPermissions(ctx context.Context, empresaID string) (*MyPermissionsResponse, error) {
	path := "/v1/permissions/me"
	if empresaID != "" {
		path += "?empresa_id=" + url.QueryEscape(empresaID)
	}
	var out MyPermissionsResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListRoles(ctx context.Context) (*ListRolesResponse, error) {
	var out ListRolesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/roles", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Navigation returns the caller's dashboard menu. An empty empresaID picks
// the caller's own company.
func (c *Client) Navigation(ctx context.Context, empresaID string) (*NavigationResponse, error) {
	path := "/v1/navigation"
	if empresaID != "" {
		path += "?empresa_id=" + url.QueryEscape(empresaID)
	}
	var out NavigationResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListMembers(ctx context.Context, empresaID string) (*ListMembersResponse, error) {
	var out ListMembersResponse
	path := "/v1/members?empresa_id=" + url.QueryEscape(empresaID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// RevokeMember deactivates one role assignment by its ID.
func (c *Client) RevokeMember(ctx context.Context, assignmentID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/members/"+url.PathEscape(assignmentID), nil, nil, http.StatusNoContent)
}

func (c *Client) CreateInvitation(ctx context.Context, req InvitationRequest) (*InvitationResponse, error) {
	var out InvitationResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/invitations", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListInvitations(ctx context.Context, empresaID string) (*ListInvitationsResponse, error) {
	var out ListInvitationsResponse
	path := "/v1/invitations?empresa_id=" + url.QueryEscape(empresaID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetInvitation looks up an invitation by its token. The token itself is not
// echoed back.
func (c *Client) GetInvitation(ctx context.Context, token string) (*InvitationResponse, error) {
	var out InvitationResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/invitations/"+url.PathEscape(token), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AcceptInvitation(ctx context.Context, token string) (*AcceptInvitationResponse, error) {
	var out AcceptInvitationResponse
	path := "/v1/invitations/" + url.PathEscape(token) + "/accept"
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RevokeInvitation(ctx context.Context, token string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/invitations/"+url.PathEscape(token), nil, nil, http.StatusNoContent)
}

// SubmitChecklistDraft validates a draft checklist. Nothing is stored.
func (c *Client) SubmitChecklistDraft(ctx context.Context, req ChecklistDraftRequest) (*ChecklistDraftResponse, error) {
	var out ChecklistDraftResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/checklists/drafts", req, &out, http.StatusAccepted); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChecklistForm describes the new checklist form, read-only for callers
// who may not create checklists.
func (c *Client) ChecklistForm(ctx context.Context, empresaID string) (*ChecklistFormResponse, error) {
	path := "/v1/checklists/form"
	if empresaID != "" {
		path += "?empresa_id=" + url.QueryEscape(empresaID)
	}
	var out ChecklistFormResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
