package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/metrics"
	"github.com/pulsohoreca/pulso/internal/pulso/store"
	"github.com/pulsohoreca/pulso/pkg/cryptox"
	"github.com/pulsohoreca/pulso/pkg/idx"
	"github.com/pulsohoreca/pulso/pkg/slogx"
)

// Plans offered by the wizard. An empty plan is allowed and chosen later.
var Plans = []string{"basico", "profesional", "empresarial"}

// InvitableRoles are the roles the wizard may hand out.
var InvitableRoles = []string{domain.RoleGeneralManager, domain.RoleBranchManager, domain.RoleSupervisor}

const maxNombreLen = 200

// OnboardingInput is the submitted onboarding wizard.
type OnboardingInput struct {
	Nombre      string
	TipoNegocio string
	Ciudad      string
	Telefono    string
	PlanActivo  string
	Sucursal    SucursalInput
	Invitations []Invitee
}

// SucursalInput describes the main branch. Blank Nombre, Ciudad and Telefono
// fall back to "Sucursal Principal" and the company's own values.
type SucursalInput struct {
	Nombre            string
	Direccion         string
	Ciudad            string
	Telefono          string
	CapacidadPersonas int
	NumeroMesas       int
	HorarioApertura   string
	HorarioCierre     string
}

// Invitee is a team member to invite. Role defaults to branch_manager.
type Invitee struct {
	Email string
	Role  string
}

// OnboardingResult is what the wizard created.
type OnboardingResult struct {
	Empresa     domain.Empresa
	Sucursal    domain.Sucursal
	Invitations []domain.Invitation
	// Skipped lists invitee emails that already had a pending invitation.
	Skipped []string
}

type CompanyService struct {
	Store         store.Store
	Permissions   *PermissionManager
	Metrics       *metrics.Metrics
	InvitationTTL time.Duration
}

// CompleteOnboarding creates the user's company and its main branch, makes
// them its owner and invites their team to that branch, all in one
// transaction.
func (s *CompanyService) CompleteOnboarding(
	ctx context.Context,
	user *domain.User,
	in OnboardingInput,
) (OnboardingResult, error) {
	if user == nil {
		return OnboardingResult{}, ErrUnauthenticated
	}
	log := slogx.FromContext(ctx)
	ownerEmail := normalizeEmail(user.Email)

	in, invitees, err := normalizeOnboarding(in, ownerEmail)
	if err != nil {
		log.Warn("invalid onboarding submission", slog.Any("error", err))
		return OnboardingResult{}, err
	}

	ttl := s.InvitationTTL
	if ttl <= 0 {
		ttl = DefaultInvitationTTL
	}

	res := OnboardingResult{
		Empresa: domain.Empresa{
			ID:                             idx.New().String(),
			Nombre:                         in.Nombre,
			TipoNegocio:                    in.TipoNegocio,
			Ciudad:                         in.Ciudad,
			Telefono:                       in.Telefono,
			PlanActivo:                     in.PlanActivo,
			PropietarioEmail:               ownerEmail,
			ConfiguracionInicialCompletada: true,
		},
	}
	res.Sucursal = domain.Sucursal{
		ID:                idx.New().String(),
		EmpresaID:         res.Empresa.ID,
		Nombre:            in.Sucursal.Nombre,
		Direccion:         in.Sucursal.Direccion,
		Ciudad:            in.Sucursal.Ciudad,
		Telefono:          in.Sucursal.Telefono,
		CapacidadPersonas: in.Sucursal.CapacidadPersonas,
		NumeroMesas:       in.Sucursal.NumeroMesas,
		HorarioApertura:   in.Sucursal.HorarioApertura,
		HorarioCierre:     in.Sucursal.HorarioCierre,
		EsPrincipal:       true,
		Activa:            true,
	}

	var freed int64
	now := time.Now()

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Empresas().GetEmpresaByOwnerEmail(ctx, ownerEmail); err == nil {
			return ErrCompanyExists
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		if err := tx.Empresas().CreateEmpresa(ctx, res.Empresa); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrCompanyExists
			}
			return err
		}

		owner, err := tx.Roles().GetRoleByName(ctx, domain.RoleOwner)
		if err != nil {
			return fmt.Errorf("owner role: %w", err)
		}
		if err := tx.UserRoles().AssignRole(ctx, domain.UserRole{
			ID:         idx.New().String(),
			UserID:     user.ID,
			RoleID:     owner.ID,
			EmpresaID:  res.Empresa.ID,
			Active:     true,
			AssignedBy: user.ID,
		}); err != nil {
			return err
		}

		if err := tx.Sucursales().CreateSucursal(ctx, res.Sucursal); err != nil {
			return fmt.Errorf("main branch: %w", err)
		}

		roleIDs := make(map[string]string)
		for _, inv := range invitees {
			roleID, ok := roleIDs[inv.Role]
			if !ok {
				role, err := tx.Roles().GetRoleByName(ctx, inv.Role)
				if err != nil {
					return fmt.Errorf("role %q: %w", inv.Role, err)
				}
				roleID = role.ID
				roleIDs[inv.Role] = roleID
			}

			invitation, err := newInvitation(inv.Email, res.Empresa.ID, roleID, &res.Sucursal.ID, user.ID, ttl)
			if err != nil {
				return err
			}
			n, err := insertInvitation(ctx, tx, invitation, now)
			freed += n
			if err != nil {
				if errors.Is(err, store.ErrAlreadyExists) {
					res.Skipped = append(res.Skipped, inv.Email)
					continue
				}
				return err
			}
			res.Invitations = append(res.Invitations, invitation)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrCompanyExists) {
			log.Warn("onboarding submitted twice", slog.String("user_id", user.ID))
		} else {
			log.Error("failed to complete onboarding",
				slog.String("user_id", user.ID),
				slog.Any("error", err),
			)
		}
		return OnboardingResult{}, err
	}

	s.Permissions.ClearCache(user.ID)
	for range freed {
		s.Metrics.InvitationEvent("expired")
	}
	for _, inv := range res.Invitations {
		s.Metrics.InvitationEvent("created")
		log.Info("invitation created",
			slog.String("invitation_id", inv.ID),
			slog.String("empresa_id", inv.EmpresaID),
			slog.String("token_fp", cryptox.Fingerprint(inv.Token)),
		)
	}
	log.Info("onboarding completed",
		slog.String("user_id", user.ID),
		slog.String("empresa_id", res.Empresa.ID),
		slog.String("sucursal_id", res.Sucursal.ID),
		slog.Int("invitations", len(res.Invitations)),
		slog.Int("skipped", len(res.Skipped)),
	)
	return res, nil
}

// GetOwned returns the company owned by user, if any.
func (s *CompanyService) GetOwned(ctx context.Context, user *domain.User) (domain.Empresa, error) {
	if user == nil {
		return domain.Empresa{}, ErrUnauthenticated
	}
	return s.Store.Empresas().GetEmpresaByOwnerEmail(ctx, normalizeEmail(user.Email))
}

func normalizeOnboarding(in OnboardingInput, ownerEmail string) (OnboardingInput, []Invitee, error) {
	in.Nombre = strings.TrimSpace(in.Nombre)
	in.TipoNegocio = strings.TrimSpace(in.TipoNegocio)
	in.Ciudad = strings.TrimSpace(in.Ciudad)
	in.Telefono = strings.TrimSpace(in.Telefono)
	in.PlanActivo = strings.ToLower(strings.TrimSpace(in.PlanActivo))

	if in.Nombre == "" || utf8.RuneCountInString(in.Nombre) > maxNombreLen {
		return in, nil, fmt.Errorf("%w: nombre is required and at most %d characters", ErrInvalidCompany, maxNombreLen)
	}

	suc := &in.Sucursal
	suc.Nombre = strings.TrimSpace(suc.Nombre)
	suc.Direccion = strings.TrimSpace(suc.Direccion)
	suc.Ciudad = strings.TrimSpace(suc.Ciudad)
	suc.Telefono = strings.TrimSpace(suc.Telefono)
	suc.HorarioApertura = strings.TrimSpace(suc.HorarioApertura)
	suc.HorarioCierre = strings.TrimSpace(suc.HorarioCierre)
	if suc.Nombre == "" {
		suc.Nombre = domain.DefaultSucursalNombre
	}
	if suc.Ciudad == "" {
		suc.Ciudad = in.Ciudad
	}
	if suc.Telefono == "" {
		suc.Telefono = in.Telefono
	}
	if utf8.RuneCountInString(suc.Nombre) > maxNombreLen {
		return in, nil, fmt.Errorf("%w: sucursal nombre is at most %d characters", ErrInvalidCompany, maxNombreLen)
	}
	if suc.CapacidadPersonas < 0 || suc.NumeroMesas < 0 {
		return in, nil, fmt.Errorf("%w: sucursal capacity must not be negative", ErrInvalidCompany)
	}
	if in.PlanActivo != "" && !slices.Contains(Plans, in.PlanActivo) {
		return in, nil, fmt.Errorf("%w: unknown plan %q", ErrInvalidCompany, in.PlanActivo)
	}

	var invitees []Invitee
	seen := make(map[string]struct{})
	for _, inv := range in.Invitations {
		if strings.TrimSpace(inv.Email) == "" {
			continue // blank rows are left over from the form
		}
		email, err := parseEmail(inv.Email)
		if err != nil {
			return in, nil, fmt.Errorf("%w: invalid email %q", ErrInvalidCompany, inv.Email)
		}
		if email == ownerEmail {
			continue
		}
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}

		role := strings.TrimSpace(inv.Role)
		if role == "" {
			role = domain.RoleBranchManager
		}
		if !slices.Contains(InvitableRoles, role) {
			return in, nil, fmt.Errorf("%w: role %q cannot be invited", ErrInvalidCompany, role)
		}
		invitees = append(invitees, Invitee{Email: email, Role: role})
	}
	return in, invitees, nil
}
