package store

import (
	"context"
	"errors"
	"time"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement this.
// It exposes sub-repositories to keep concerns tidy and testable, and so a
// Tx-scoped store cannot open a nested transaction by accident.
type Store interface {
	Users() Users
	Empresas() Empresas
	Sucursales() Sucursales
	Invitations() Invitations
	Roles() Roles
	Permissions() Permissions
	UserRoles() UserRoles

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error, the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// UpsertUser records the identity from a session token, refreshing the
	// email if it changed at the provider.
	UpsertUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)
}

type Empresas interface {
	// CreateEmpresa returns ErrAlreadyExists when the owner already has one.
	CreateEmpresa(ctx context.Context, e domain.Empresa) error

	GetEmpresaByID(ctx context.Context, id string) (domain.Empresa, error)

	// GetEmpresaByOwnerEmail is the onboarding lookup.
	GetEmpresaByOwnerEmail(ctx context.Context, email string) (domain.Empresa, error)
}

type Sucursales interface {
	// CreateSucursal returns ErrAlreadyExists when the company already has a
	// main branch and s is marked as one.
	CreateSucursal(ctx context.Context, s domain.Sucursal) error

	GetSucursalByID(ctx context.Context, id string) (domain.Sucursal, error)

	// ListSucursalesByEmpresa returns the main branch first.
	ListSucursalesByEmpresa(ctx context.Context, empresaID string) ([]domain.Sucursal, error)
}

type Invitations interface {
	// CreateInvitation returns ErrAlreadyExists when the email already has a
	// pending invitation or the token collides.
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	GetInvitationByToken(ctx context.Context, token string) (domain.Invitation, error)

	// GetPendingInvitationByEmail returns the single pending invitation for email.
	GetPendingInvitationByEmail(ctx context.Context, email string) (domain.Invitation, error)

	ListInvitationsByEmpresa(ctx context.Context, empresaID string) ([]domain.Invitation, error)

	// MarkInvitationAccepted only transitions pending invitations; it returns
	// ErrNotFound otherwise.
	MarkInvitationAccepted(ctx context.Context, id string, at time.Time) error

	// RevokeInvitation only transitions pending invitations.
	RevokeInvitation(ctx context.Context, id string) error

	// ExpireInvitations marks pending invitations past their expiry as expired
	// and returns how many changed.
	ExpireInvitations(ctx context.Context, now time.Time) (int64, error)

	// ExpireInvitationsForEmail does the same for one email, freeing it for a
	// new invitation.
	ExpireInvitationsForEmail(ctx context.Context, email string, now time.Time) (int64, error)
}

type Roles interface {
	GetRoleByID(ctx context.Context, id string) (domain.Role, error)
	GetRoleByName(ctx context.Context, name string) (domain.Role, error)

	// ListAll returns all roles ordered by hierarchy level, highest first.
	ListAll(ctx context.Context) ([]domain.Role, error)

	CreateRole(ctx context.Context, r domain.Role) error

	// GrantPermission links a permission to a role. Granting twice is a no-op.
	GrantPermission(ctx context.Context, roleID, permissionID string) error

	IsEmpty(ctx context.Context) (bool, error)
}

type Permissions interface {
	CreatePermission(ctx context.Context, p domain.Permission) error
	GetPermissionByName(ctx context.Context, name string) (domain.Permission, error)

	// ListForUser returns the distinct permissions granted by the user's
	// active roles. An empty empresaID spans every company.
	ListForUser(ctx context.Context, userID, empresaID string) ([]domain.Permission, error)

	// UserHasPermission reports whether any active role grants name.
	UserHasPermission(ctx context.Context, userID, name, empresaID string) (bool, error)
}

type UserRoles interface {
	// AssignRole creates an active assignment. Assigning the same role in the
	// same company twice returns ErrAlreadyExists.
	AssignRole(ctx context.Context, ur domain.UserRole) error

	// ListActiveForUser returns active assignments with role details and
	// granted permissions. An empty empresaID spans every company.
	ListActiveForUser(ctx context.Context, userID, empresaID string) ([]domain.UserRole, error)

	// GetUserRole returns an assignment, active or not, with role details.
	GetUserRole(ctx context.Context, id string) (domain.UserRole, error)

	// ListMembers returns the active assignments of a company with the
	// member's email, highest level first.
	ListMembers(ctx context.Context, empresaID string) ([]domain.UserRole, error)

	// DeactivateRole switches off an active assignment without deleting it.
	// It returns ErrNotFound when there is no active assignment with id.
	DeactivateRole(ctx context.Context, id string) error
}
