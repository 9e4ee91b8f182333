package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/store"
	"github.com/pulsohoreca/pulso/internal/pulso/store/drivers/sqlite/gen"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// One connection: sqlite serialises writers anyway, per-connection pragmas
	// stay in force, and ":memory:" databases are per connection.
	db.SetMaxOpenConns(1)

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Users() store.Users             { return &usersRepo{q: s.q} }
func (s *Store) Empresas() store.Empresas       { return &empresasRepo{q: s.q} }
func (s *Store) Sucursales() store.Sucursales   { return &sucursalesRepo{q: s.q} }
func (s *Store) Invitations() store.Invitations { return &invitationsRepo{q: s.q} }
func (s *Store) Roles() store.Roles             { return &rolesRepo{q: s.q} }
func (s *Store) Permissions() store.Permissions { return &permissionsRepo{q: s.q} }
func (s *Store) UserRoles() store.UserRoles     { return &userRolesRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint turns unique and primary key violations into ErrAlreadyExists.
func mapConstraint(err error) error {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		switch serr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return store.ErrAlreadyExists
		}
	}
	return err
}

// mapRowsAffected reports ErrNotFound when a guarded update touched nothing.
func mapRowsAffected(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapNullStringPtr(ns sql.NullString) *string {
	if ns.Valid {
		val := ns.String
		return &val
	}
	return nil
}

func mapOptionalString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}

// mapScope turns an optional company id into the nullable filter argument.
func mapScope(empresaID string) sql.NullString {
	if empresaID == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: empresaID, Valid: true}
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time
		return &val
	}
	return nil
}

func mapUser(row gen.User) domain.User {
	return domain.User{
		ID:        row.ID,
		Email:     row.Email,
		CreatedAt: row.CreatedAt,
	}
}

func mapEmpresa(row gen.Empresa) domain.Empresa {
	return domain.Empresa{
		ID:                             row.ID,
		Nombre:                         row.Nombre,
		TipoNegocio:                    row.TipoNegocio,
		Ciudad:                         row.Ciudad,
		Telefono:                       row.Telefono,
		PlanActivo:                     row.PlanActivo,
		PropietarioEmail:               row.PropietarioEmail,
		ConfiguracionInicialCompletada: row.ConfiguracionInicialCompletada,
		CreatedAt:                      row.CreatedAt,
		UpdatedAt:                      row.UpdatedAt,
	}
}

func mapSucursal(row gen.Sucursal) domain.Sucursal {
	return domain.Sucursal{
		ID:                row.ID,
		EmpresaID:         row.EmpresaID,
		Nombre:            row.Nombre,
		Direccion:         row.Direccion,
		Ciudad:            row.Ciudad,
		Telefono:          row.Telefono,
		CapacidadPersonas: int(row.CapacidadPersonas),
		NumeroMesas:       int(row.NumeroMesas),
		HorarioApertura:   row.HorarioApertura,
		HorarioCierre:     row.HorarioCierre,
		EsPrincipal:       row.EsPrincipal,
		Activa:            row.Activa,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}

func mapInvitation(row gen.UserInvitation) domain.Invitation {
	return domain.Invitation{
		ID:         row.ID,
		Email:      row.Email,
		EmpresaID:  row.EmpresaID,
		RoleID:     row.RoleID,
		SucursalID: mapNullStringPtr(row.SucursalID),
		Token:      row.InvitationToken,
		Status:     domain.InvitationStatus(row.Status),
		InvitedBy:  row.InvitedBy,
		ExpiresAt:  row.ExpiresAt,
		AcceptedAt: mapNullTimePtr(row.AcceptedAt),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func mapRole(row gen.Role) domain.Role {
	return domain.Role{
		ID:             row.ID,
		Name:           row.Name,
		DisplayName:    row.DisplayName,
		HierarchyLevel: int(row.HierarchyLevel),
		CreatedAt:      row.CreatedAt,
	}
}

func mapPermission(row gen.Permission) domain.Permission {
	return domain.Permission{
		ID:               row.ID,
		Name:             row.Name,
		Category:         row.Category,
		Resource:         row.Resource,
		Action:           row.Action,
		CriticalityLevel: int(row.CriticalityLevel),
	}
}

func mapPermissions(rows []gen.Permission) []domain.Permission {
	out := make([]domain.Permission, len(rows))
	for i, row := range rows {
		out[i] = mapPermission(row)
	}
	return out
}

func mapUserRole(row gen.ListActiveUserRolesRow) domain.UserRole {
	return domain.UserRole{
		ID:             row.ID,
		UserID:         row.UserID,
		RoleID:         row.RoleID,
		RoleName:       row.RoleName,
		HierarchyLevel: int(row.HierarchyLevel),
		EmpresaID:      row.EmpresaID,
		SucursalID:     mapNullStringPtr(row.SucursalID),
		Active:         row.Active,
		AssignedBy:     row.AssignedBy,
		CreatedAt:      row.CreatedAt,
	}
}
